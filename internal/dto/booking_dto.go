package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ActivityId    uuid.UUID `json:"activity_id" validate:"required"`
	SlotId        uuid.UUID `json:"slot_id" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	PartySize     int       `json:"party_size" validate:"required,min=1"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

type RescheduleBookingRequest struct {
	SlotId uuid.UUID `json:"slot_id" validate:"required"`
}

type ListBookingsRequest struct {
	Status   string `query:"status"`
	DateFrom string `query:"date_from"` // "2006-01-02"
	DateTo   string `query:"date_to"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

type AvailabilityRequest struct {
	ActivityId uuid.UUID `query:"activity_id" validate:"required"`
	DateFrom   string    `query:"date_from" validate:"required"`
	DateTo     string    `query:"date_to" validate:"required"`
	PartySize  int       `query:"party_size"`
}

type BookingResponse struct {
	Id                 uuid.UUID  `json:"id"`
	Reference          string     `json:"reference"`
	ActivityId         uuid.UUID  `json:"activity_id"`
	ActivityName       string     `json:"activity_name,omitempty"`
	VenueId            uuid.UUID  `json:"venue_id"`
	CustomerName       string     `json:"customer_name"`
	CustomerEmail      string     `json:"customer_email"`
	CustomerPhone      string     `json:"customer_phone,omitempty"`
	Date               string     `json:"date"`
	StartTime          string     `json:"start_time"`
	EndTime            string     `json:"end_time"`
	PartySize          int        `json:"party_size"`
	TotalAmount        float64    `json:"total_amount"`
	PaymentStatus      string     `json:"payment_status"`
	Status             string     `json:"status"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	PreviousSlot       string     `json:"previous_slot,omitempty"`
	CanCancel          bool       `json:"can_cancel"`
	CanReschedule      bool       `json:"can_reschedule"`
	CreatedAt          time.Time  `json:"created_at"`
}

// CancelBookingResponse carries the advisory refund alongside the updated
// booking.
type CancelBookingResponse struct {
	Booking      BookingResponse `json:"booking"`
	RefundAmount *float64        `json:"refund_amount,omitempty"`
	RefundStatus string          `json:"refund_status"` // "full" or "none"
}

type AvailableSlotResponse struct {
	SlotId    uuid.UUID `json:"slot_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Capacity  int       `json:"capacity"`
	Booked    int       `json:"booked"`
	Remaining int       `json:"remaining"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
