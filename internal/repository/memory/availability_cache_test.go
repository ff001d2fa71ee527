package memory

import (
	"testing"
	"time"

	"escapedesk-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAvailabilityCacheRoundTrip(t *testing.T) {
	c := NewAvailabilityCache()
	activityId := uuid.New()
	from := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	_, found := c.Get(activityId, from, to)
	assert.False(t, found)

	slots := []entity.AvailableSlot{
		{SlotId: uuid.New(), ActivityId: activityId, Date: from, StartTime: "14:00", Capacity: 6, Booked: 2},
	}
	c.Save(activityId, from, to, slots)

	got, found := c.Get(activityId, from, to)
	assert.True(t, found)
	assert.Equal(t, slots, got)

	// a different window is a different key
	_, found = c.Get(activityId, from, from.AddDate(0, 0, 1))
	assert.False(t, found)
}

func TestAvailabilityCacheInvalidateActivity(t *testing.T) {
	c := NewAvailabilityCache()
	activityA := uuid.New()
	activityB := uuid.New()
	from := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	c.Save(activityA, from, to, []entity.AvailableSlot{{ActivityId: activityA}})
	c.Save(activityA, from, to.AddDate(0, 0, 7), []entity.AvailableSlot{{ActivityId: activityA}})
	c.Save(activityB, from, to, []entity.AvailableSlot{{ActivityId: activityB}})

	c.InvalidateActivity(activityA)

	_, found := c.Get(activityA, from, to)
	assert.False(t, found)
	_, found = c.Get(activityA, from, to.AddDate(0, 0, 7))
	assert.False(t, found)

	// other activities stay cached
	_, found = c.Get(activityB, from, to)
	assert.True(t, found)
}
