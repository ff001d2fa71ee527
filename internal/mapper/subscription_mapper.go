package mapper

import (
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) PlanToEntity(p *model.SubscriptionPlan) *entity.SubscriptionPlan {
	if p == nil {
		return nil
	}
	return &entity.SubscriptionPlan{
		Id:              p.Id,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Tagline:         p.Tagline,
		Price:           p.Price,
		TaxRate:         p.TaxRate,
		BillingPeriod:   entity.BillingPeriod(p.BillingPeriod),
		IncludedCredits: p.IncludedCredits,
		BookingQuota:    p.BookingQuota,
		WaiverQuota:     p.WaiverQuota,
		AiQuota:         p.AiQuota,
		IsMostPopular:   p.IsMostPopular,
		IsActive:        p.IsActive,
		SortOrder:       p.SortOrder,
	}
}

func (m *SubscriptionMapper) PlanToModel(p *entity.SubscriptionPlan) *model.SubscriptionPlan {
	if p == nil {
		return nil
	}
	return &model.SubscriptionPlan{
		Id:              p.Id,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Tagline:         p.Tagline,
		Price:           p.Price,
		TaxRate:         p.TaxRate,
		BillingPeriod:   string(p.BillingPeriod),
		IncludedCredits: p.IncludedCredits,
		BookingQuota:    p.BookingQuota,
		WaiverQuota:     p.WaiverQuota,
		AiQuota:         p.AiQuota,
		IsMostPopular:   p.IsMostPopular,
		IsActive:        p.IsActive,
		SortOrder:       p.SortOrder,
	}
}

func (m *SubscriptionMapper) SubscriptionToEntity(s *model.TenantSubscription) *entity.TenantSubscription {
	if s == nil {
		return nil
	}
	return &entity.TenantSubscription{
		Id:                    s.Id,
		TenantId:              s.TenantId,
		PlanId:                s.PlanId,
		Status:                entity.SubscriptionStatus(s.Status),
		BillingCycle:          entity.BillingPeriod(s.BillingCycle),
		CurrentPeriodStart:    s.CurrentPeriodStart,
		CurrentPeriodEnd:      s.CurrentPeriodEnd,
		CancelAtPeriodEnd:     s.CancelAtPeriodEnd,
		PaymentStatus:         entity.PaymentStatus(s.PaymentStatus),
		ProviderTransactionId: s.ProviderTransactionId,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) SubscriptionToModel(s *entity.TenantSubscription) *model.TenantSubscription {
	if s == nil {
		return nil
	}
	return &model.TenantSubscription{
		Id:                    s.Id,
		TenantId:              s.TenantId,
		PlanId:                s.PlanId,
		Status:                string(s.Status),
		BillingCycle:          string(s.BillingCycle),
		CurrentPeriodStart:    s.CurrentPeriodStart,
		CurrentPeriodEnd:      s.CurrentPeriodEnd,
		CancelAtPeriodEnd:     s.CancelAtPeriodEnd,
		PaymentStatus:         string(s.PaymentStatus),
		ProviderTransactionId: s.ProviderTransactionId,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) CancellationToEntity(c *model.CancellationRequest) *entity.CancellationRequest {
	if c == nil {
		return nil
	}
	return &entity.CancellationRequest{
		ID:             c.ID,
		SubscriptionID: c.SubscriptionID,
		TenantID:       c.TenantID,
		Reason:         c.Reason,
		Status:         entity.CancellationStatus(c.Status),
		AdminNotes:     c.AdminNotes,
		EffectiveDate:  c.EffectiveDate,
		ProcessedAt:    c.ProcessedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *SubscriptionMapper) CancellationToModel(c *entity.CancellationRequest) *model.CancellationRequest {
	if c == nil {
		return nil
	}
	return &model.CancellationRequest{
		ID:             c.ID,
		SubscriptionID: c.SubscriptionID,
		TenantID:       c.TenantID,
		Reason:         c.Reason,
		Status:         string(c.Status),
		AdminNotes:     c.AdminNotes,
		EffectiveDate:  c.EffectiveDate,
		ProcessedAt:    c.ProcessedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
