package entity

import (
	"time"

	"github.com/google/uuid"
)

type Venue struct {
	Id           uuid.UUID
	TenantId     uuid.UUID
	Name         string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	Timezone     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Location resolves the venue's timezone, falling back to UTC when the
// name is missing or unknown.
func (v *Venue) Location() *time.Location {
	if v == nil || v.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type Activity struct {
	Id              uuid.UUID
	TenantId        uuid.UUID
	VenueId         uuid.UUID
	Name            string
	Slug            string
	Description     string
	DurationMinutes int
	MinPartySize    int
	MaxPartySize    int
	Price           float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ScheduleSlot struct {
	Id         uuid.UUID
	TenantId   uuid.UUID
	ActivityId uuid.UUID
	Date       time.Time
	StartTime  string
	EndTime    string
	Capacity   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
