package mapper

import (
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/model"
)

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToEntity(b *model.Booking) *entity.Booking {
	if b == nil {
		return nil
	}
	return &entity.Booking{
		Id:                 b.Id,
		Reference:          b.Reference,
		TenantId:           b.TenantId,
		ActivityId:         b.ActivityId,
		VenueId:            b.VenueId,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		Date:               b.Date,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		PartySize:          b.PartySize,
		TotalAmount:        b.TotalAmount,
		PaymentStatus:      entity.BookingPaymentStatus(b.PaymentStatus),
		Status:             entity.BookingStatus(b.Status),
		CancelledAt:        b.CancelledAt,
		CancellationReason: b.CancellationReason,
		PreviousSlot:       b.PreviousSlot,
		Version:            b.Version,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (m *BookingMapper) ToModel(b *entity.Booking) *model.Booking {
	if b == nil {
		return nil
	}
	return &model.Booking{
		Id:                 b.Id,
		Reference:          b.Reference,
		TenantId:           b.TenantId,
		ActivityId:         b.ActivityId,
		VenueId:            b.VenueId,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		Date:               b.Date,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		PartySize:          b.PartySize,
		TotalAmount:        b.TotalAmount,
		PaymentStatus:      string(b.PaymentStatus),
		Status:             string(b.Status),
		CancelledAt:        b.CancelledAt,
		CancellationReason: b.CancellationReason,
		PreviousSlot:       b.PreviousSlot,
		Version:            b.Version,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
