package service

import (
	"testing"
	"time"

	"escapedesk-be/internal/model"
	"escapedesk-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTenantFromPayload(t *testing.T) {
	tenantID := uuid.New()

	t.Run("string tenant id", func(t *testing.T) {
		evt := events.BaseEvent{Data: map[string]interface{}{"tenant_id": tenantID.String()}}
		got, ok := tenantFromPayload(evt)
		assert.True(t, ok)
		assert.Equal(t, tenantID, got)
	})

	t.Run("uuid tenant id", func(t *testing.T) {
		evt := events.BaseEvent{Data: map[string]interface{}{"tenant_id": tenantID}}
		got, ok := tenantFromPayload(evt)
		assert.True(t, ok)
		assert.Equal(t, tenantID, got)
	})

	t.Run("missing tenant id", func(t *testing.T) {
		evt := events.BaseEvent{Data: map[string]interface{}{}}
		_, ok := tenantFromPayload(evt)
		assert.False(t, ok)
	})

	t.Run("garbage tenant id", func(t *testing.T) {
		evt := events.BaseEvent{Data: map[string]interface{}{"tenant_id": "not-a-uuid"}}
		_, ok := tenantFromPayload(evt)
		assert.False(t, ok)
	})
}

func TestBuildNotification(t *testing.T) {
	s := &NotificationService{}
	tenantID := uuid.New()
	bookingID := uuid.New()

	config := &model.NotificationType{
		Code:        "BOOKING_CREATED",
		DisplayName: "New Booking",
		Template:    "New booking {reference} for {activity_name} ({party_size} guests)",
	}
	evt := events.BaseEvent{
		Type: "BOOKING_CREATED",
		Data: map[string]interface{}{
			"tenant_id":     tenantID.String(),
			"reference":     "BK-7F2MQX9T",
			"activity_name": "The Vault",
			"party_size":    4,
			"entity_type":   "booking",
			"entity_id":     bookingID.String(),
		},
		OccurredAt: time.Now(),
	}

	n := s.buildNotification(tenantID, config, evt)

	assert.Equal(t, tenantID, n.TenantID)
	assert.Equal(t, "BOOKING_CREATED", n.TypeCode)
	assert.Equal(t, "New Booking", n.Title)
	assert.Equal(t, "New booking BK-7F2MQX9T for The Vault (4 guests)", n.Message)
	assert.Equal(t, "booking", n.EntityType)
	if assert.NotNil(t, n.EntityID) {
		assert.Equal(t, bookingID, *n.EntityID)
	}
	assert.False(t, n.IsRead)
	assert.Contains(t, string(n.Metadata), "/bookings/"+bookingID.String())
}

func TestBuildNotificationLeavesUnknownPlaceholders(t *testing.T) {
	s := &NotificationService{}
	config := &model.NotificationType{
		Code:        "BOOKING_CANCELLED",
		DisplayName: "Booking Cancelled",
		Template:    "Booking {reference} was cancelled. {refund_note}",
	}
	evt := events.BaseEvent{
		Data: map[string]interface{}{"reference": "BK-7F2MQX9T"},
	}

	n := s.buildNotification(uuid.New(), config, evt)
	assert.Equal(t, "Booking BK-7F2MQX9T was cancelled. {refund_note}", n.Message)
}
