package mapper

import (
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/model"
)

type CreditMapper struct{}

func NewCreditMapper() *CreditMapper {
	return &CreditMapper{}
}

func (m *CreditMapper) BalanceToEntity(b *model.CreditBalance) *entity.CreditBalance {
	if b == nil {
		return nil
	}
	return &entity.CreditBalance{
		Id:                  b.Id,
		TenantId:            b.TenantId,
		Balance:             b.Balance,
		PlanCredits:         b.PlanCredits,
		PurchasedCredits:    b.PurchasedCredits,
		BookingsUsed:        b.BookingsUsed,
		WaiversUsed:         b.WaiversUsed,
		AiConversationsUsed: b.AiConversationsUsed,
		LastResetAt:         b.LastResetAt,
		NextResetAt:         b.NextResetAt,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (m *CreditMapper) BalanceToModel(b *entity.CreditBalance) *model.CreditBalance {
	if b == nil {
		return nil
	}
	return &model.CreditBalance{
		Id:                  b.Id,
		TenantId:            b.TenantId,
		Balance:             b.Balance,
		PlanCredits:         b.PlanCredits,
		PurchasedCredits:    b.PurchasedCredits,
		BookingsUsed:        b.BookingsUsed,
		WaiversUsed:         b.WaiversUsed,
		AiConversationsUsed: b.AiConversationsUsed,
		LastResetAt:         b.LastResetAt,
		NextResetAt:         b.NextResetAt,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (m *CreditMapper) TransactionToEntity(t *model.CreditTransaction) *entity.CreditTransaction {
	if t == nil {
		return nil
	}
	return &entity.CreditTransaction{
		Id:            t.Id,
		TenantId:      t.TenantId,
		Type:          entity.CreditTransactionType(t.Type),
		Amount:        t.Amount,
		BalanceBefore: t.BalanceBefore,
		BalanceAfter:  t.BalanceAfter,
		BookingId:     t.BookingId,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
	}
}

func (m *CreditMapper) TransactionToModel(t *entity.CreditTransaction) *model.CreditTransaction {
	if t == nil {
		return nil
	}
	return &model.CreditTransaction{
		Id:            t.Id,
		TenantId:      t.TenantId,
		Type:          string(t.Type),
		Amount:        t.Amount,
		BalanceBefore: t.BalanceBefore,
		BalanceAfter:  t.BalanceAfter,
		BookingId:     t.BookingId,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
	}
}

func (m *CreditMapper) PackageToEntity(p *model.CreditPackage) *entity.CreditPackage {
	if p == nil {
		return nil
	}
	return &entity.CreditPackage{
		Id:        p.Id,
		Name:      p.Name,
		Credits:   p.Credits,
		Price:     p.Price,
		IsActive:  p.IsActive,
		SortOrder: p.SortOrder,
	}
}

func (m *CreditMapper) PackageToModel(p *entity.CreditPackage) *model.CreditPackage {
	if p == nil {
		return nil
	}
	return &model.CreditPackage{
		Id:        p.Id,
		Name:      p.Name,
		Credits:   p.Credits,
		Price:     p.Price,
		IsActive:  p.IsActive,
		SortOrder: p.SortOrder,
	}
}
