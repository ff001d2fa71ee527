package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string
type BookingPaymentStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCheckedIn BookingStatus = "checked_in"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"

	BookingPaymentPending           BookingPaymentStatus = "pending"
	BookingPaymentPaid              BookingPaymentStatus = "paid"
	BookingPaymentPartiallyRefunded BookingPaymentStatus = "partially_refunded"
	BookingPaymentRefunded          BookingPaymentStatus = "refunded"
	BookingPaymentFailed            BookingPaymentStatus = "failed"
)

// CancellationWindow is the cutoff before a booking's start after which
// cancel and reschedule are disallowed.
const CancellationWindow = 24 * time.Hour

type Booking struct {
	Id                 uuid.UUID
	Reference          string
	TenantId           uuid.UUID
	ActivityId         uuid.UUID
	VenueId            uuid.UUID
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	Date               time.Time // calendar day
	StartTime          string    // "14:00"
	EndTime            string
	PartySize          int
	TotalAmount        float64
	PaymentStatus      BookingPaymentStatus
	Status             BookingStatus
	CancelledAt        *time.Time
	CancellationReason string
	PreviousSlot       string
	Version            int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// StartInstant combines the calendar date and the start time into a single
// instant in the given location.
func (b *Booking) StartInstant(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	var hour, minute int
	fmt.Sscanf(b.StartTime, "%d:%d", &hour, &minute)
	return time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), hour, minute, 0, 0, loc)
}

// CancellationDeadline is the booking start minus the window. Derived,
// never stored.
func (b *Booking) CancellationDeadline(loc *time.Location) time.Time {
	return b.StartInstant(loc).Add(-CancellationWindow)
}

// SlotLabel renders the current date/time fields for the reschedule audit
// trail, e.g. "2025-11-05 14:00-15:00".
func (b *Booking) SlotLabel() string {
	return fmt.Sprintf("%s %s-%s", b.Date.Format("2006-01-02"), b.StartTime, b.EndTime)
}

// MoveToSlot retargets the booking onto another slot's date and times,
// recording the outgoing slot in PreviousSlot. Identity fields
// (Id, Reference) are untouched.
func (b *Booking) MoveToSlot(slot *ScheduleSlot) {
	b.PreviousSlot = b.SlotLabel()
	b.Date = slot.Date
	b.StartTime = slot.StartTime
	b.EndTime = slot.EndTime
}

// BookingPermissions are the derived cancel/reschedule flags.
type BookingPermissions struct {
	CanCancel     bool
	CanReschedule bool
}

// Permissions gates cancel/reschedule on status and the cancellation
// window. Terminal statuses are never mutable; otherwise both flags are
// true iff now is strictly before start minus the window. At exactly the
// boundary the answer is false.
func (b *Booking) Permissions(now time.Time, loc *time.Location) BookingPermissions {
	switch b.Status {
	case BookingStatusCancelled, BookingStatusCompleted, BookingStatusNoShow:
		return BookingPermissions{}
	}
	allowed := now.Before(b.CancellationDeadline(loc))
	return BookingPermissions{CanCancel: allowed, CanReschedule: allowed}
}

// RefundForCancellation computes the advisory refund: the full amount for
// a paid booking, nothing otherwise. The refund is never executed here.
func (b *Booking) RefundForCancellation() (amount *float64, status string) {
	if b.PaymentStatus == BookingPaymentPaid {
		v := b.TotalAmount
		return &v, "full"
	}
	return nil, "none"
}

// AvailableSlot is a schedule slot with its remaining capacity resolved.
type AvailableSlot struct {
	SlotId     uuid.UUID
	ActivityId uuid.UUID
	Date       time.Time
	StartTime  string
	EndTime    string
	Capacity   int
	Booked     int
}

func (s AvailableSlot) Remaining() int {
	return s.Capacity - s.Booked
}

// FilterSlots keeps slots whose remaining capacity covers the party size,
// sorted ascending by (date, start time).
func FilterSlots(slots []AvailableSlot, partySize int) []AvailableSlot {
	var out []AvailableSlot
	for _, s := range slots {
		if s.Remaining() >= partySize {
			out = append(out, s)
		}
	}
	// insertion sort: slot lists per query window are small
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			a, b := out[j-1], out[j]
			if b.Date.Before(a.Date) || (b.Date.Equal(a.Date) && b.StartTime < a.StartTime) {
				out[j-1], out[j] = b, a
			} else {
				break
			}
		}
	}
	return out
}
