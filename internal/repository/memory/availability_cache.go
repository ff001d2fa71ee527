package memory

import (
	"fmt"
	"time"

	"escapedesk-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// AvailabilityCache holds resolved slot availability for a short window.
// Availability is recomputed on every booking mutation, so the TTL just
// absorbs bursts of identical widget queries.
type AvailabilityCache struct {
	cache *cache.Cache
}

func NewAvailabilityCache() *AvailabilityCache {
	c := cache.New(30*time.Second, 1*time.Minute)
	return &AvailabilityCache{
		cache: c,
	}
}

func availabilityKey(activityId uuid.UUID, from, to time.Time) string {
	return fmt.Sprintf("%s:%s:%s", activityId, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func (r *AvailabilityCache) Save(activityId uuid.UUID, from, to time.Time, slots []entity.AvailableSlot) {
	r.cache.Set(availabilityKey(activityId, from, to), slots, cache.DefaultExpiration)
}

func (r *AvailabilityCache) Get(activityId uuid.UUID, from, to time.Time) ([]entity.AvailableSlot, bool) {
	if x, found := r.cache.Get(availabilityKey(activityId, from, to)); found {
		return x.([]entity.AvailableSlot), true
	}
	return nil, false
}

// InvalidateActivity drops every cached window for an activity after a
// booking create/cancel/reschedule.
func (r *AvailabilityCache) InvalidateActivity(activityId uuid.UUID) {
	prefix := activityId.String() + ":"
	for key := range r.cache.Items() {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			r.cache.Delete(key)
		}
	}
}
