package mapper

import (
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/model"
)

type RefundMapper struct{}

func NewRefundMapper() *RefundMapper {
	return &RefundMapper{}
}

func (m *RefundMapper) ToEntity(r *model.Refund) *entity.Refund {
	if r == nil {
		return nil
	}
	return &entity.Refund{
		ID:          r.ID,
		BookingID:   r.BookingID,
		TenantID:    r.TenantID,
		Amount:      r.Amount,
		Reason:      r.Reason,
		Status:      entity.RefundStatus(r.Status),
		AdminNotes:  r.AdminNotes,
		ProcessedAt: r.ProcessedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *RefundMapper) ToModel(r *entity.Refund) *model.Refund {
	if r == nil {
		return nil
	}
	return &model.Refund{
		ID:          r.ID,
		BookingID:   r.BookingID,
		TenantID:    r.TenantID,
		Amount:      r.Amount,
		Reason:      r.Reason,
		Status:      string(r.Status),
		AdminNotes:  r.AdminNotes,
		ProcessedAt: r.ProcessedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
