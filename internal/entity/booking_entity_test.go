package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testBooking() *Booking {
	return &Booking{
		Id:        uuid.New(),
		Reference: "BK-2025-A1B2C3",
		Date:      time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "15:00",
		Status:    BookingStatusConfirmed,
	}
}

func TestStartInstant(t *testing.T) {
	b := testBooking()

	got := b.StartInstant(time.UTC)
	assert.Equal(t, time.Date(2025, 11, 5, 14, 0, 0, 0, time.UTC), got)

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)
	got = b.StartInstant(jakarta)
	assert.Equal(t, time.Date(2025, 11, 5, 14, 0, 0, 0, jakarta), got)

	// nil location falls back to UTC
	assert.Equal(t, b.StartInstant(time.UTC), b.StartInstant(nil))
}

func TestCancellationDeadline(t *testing.T) {
	b := testBooking()
	want := time.Date(2025, 11, 4, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, want, b.CancellationDeadline(time.UTC))
}

func TestPermissionsWindow(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		status  BookingStatus
		allowed bool
	}{
		{
			name:    "well before deadline",
			now:     time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
			status:  BookingStatusConfirmed,
			allowed: true,
		},
		{
			name:    "one second before deadline",
			now:     time.Date(2025, 11, 4, 13, 59, 59, 0, time.UTC),
			status:  BookingStatusConfirmed,
			allowed: true,
		},
		{
			name:    "exactly at deadline",
			now:     time.Date(2025, 11, 4, 14, 0, 0, 0, time.UTC),
			status:  BookingStatusConfirmed,
			allowed: false,
		},
		{
			name:    "after deadline",
			now:     time.Date(2025, 11, 5, 2, 0, 0, 0, time.UTC),
			status:  BookingStatusConfirmed,
			allowed: false,
		},
		{
			name:    "cancelled booking never mutable",
			now:     time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			status:  BookingStatusCancelled,
			allowed: false,
		},
		{
			name:    "completed booking never mutable",
			now:     time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			status:  BookingStatusCompleted,
			allowed: false,
		},
		{
			name:    "no-show booking never mutable",
			now:     time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			status:  BookingStatusNoShow,
			allowed: false,
		},
		{
			name:    "pending booking inside window",
			now:     time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
			status:  BookingStatusPending,
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBooking()
			b.Status = tt.status
			perms := b.Permissions(tt.now, time.UTC)
			assert.Equal(t, tt.allowed, perms.CanCancel)
			assert.Equal(t, tt.allowed, perms.CanReschedule)
		})
	}
}

func TestRefundForCancellation(t *testing.T) {
	b := testBooking()
	b.TotalAmount = 600000

	b.PaymentStatus = BookingPaymentPaid
	amount, status := b.RefundForCancellation()
	assert.NotNil(t, amount)
	assert.Equal(t, 600000.0, *amount)
	assert.Equal(t, "full", status)

	b.PaymentStatus = BookingPaymentPending
	amount, status = b.RefundForCancellation()
	assert.Nil(t, amount)
	assert.Equal(t, "none", status)
}

func TestSlotLabel(t *testing.T) {
	b := testBooking()
	assert.Equal(t, "2025-11-05 14:00-15:00", b.SlotLabel())
}

func TestMoveToSlot(t *testing.T) {
	b := testBooking()
	origId, origRef := b.Id, b.Reference

	b.MoveToSlot(&ScheduleSlot{
		Date:      time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	assert.Equal(t, origId, b.Id)
	assert.Equal(t, origRef, b.Reference)
	assert.Equal(t, "2025-11-05 14:00-15:00", b.PreviousSlot)
	assert.Equal(t, "2025-11-08 10:00-11:00", b.SlotLabel())
}

func TestFilterSlots(t *testing.T) {
	day1 := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC)

	slots := []AvailableSlot{
		{Date: day2, StartTime: "10:00", Capacity: 6, Booked: 0},
		{Date: day1, StartTime: "16:00", Capacity: 6, Booked: 5},
		{Date: day1, StartTime: "14:00", Capacity: 6, Booked: 2},
	}

	got := FilterSlots(slots, 4)
	if assert.Len(t, got, 2) {
		// sorted by (date, start time); the nearly full 16:00 slot is gone
		assert.Equal(t, "14:00", got[0].StartTime)
		assert.True(t, got[0].Date.Equal(day1))
		assert.Equal(t, "10:00", got[1].StartTime)
		assert.True(t, got[1].Date.Equal(day2))
	}

	// exact fit counts as available
	got = FilterSlots(slots, 1)
	assert.Len(t, got, 3)

	// party larger than every remaining capacity
	got = FilterSlots(slots, 7)
	assert.Empty(t, got)
}

func TestAvailableSlotRemaining(t *testing.T) {
	s := AvailableSlot{Capacity: 6, Booked: 4}
	assert.Equal(t, 2, s.Remaining())
}
