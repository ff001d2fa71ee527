package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Venues ---

type CreateVenueRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Timezone     string `json:"timezone" validate:"required"`
}

type UpdateVenueRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2"`
	AddressLine1 *string `json:"address_line1,omitempty"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	Country      *string `json:"country,omitempty"`
	Timezone     *string `json:"timezone,omitempty"`
}

type VenueResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	AddressLine1 string    `json:"address_line1,omitempty"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	PostalCode   string    `json:"postal_code,omitempty"`
	Country      string    `json:"country,omitempty"`
	Timezone     string    `json:"timezone"`
	CreatedAt    time.Time `json:"created_at"`
}

// --- Activities ---

type CreateActivityRequest struct {
	VenueId         uuid.UUID `json:"venue_id" validate:"required"`
	Name            string    `json:"name" validate:"required,min=2"`
	Slug            string    `json:"slug" validate:"required"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,min=15"`
	MinPartySize    int       `json:"min_party_size" validate:"min=1"`
	MaxPartySize    int       `json:"max_party_size" validate:"required,min=1"`
	Price           float64   `json:"price" validate:"required,min=0"`
}

type UpdateActivityRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=2"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,min=15"`
	MinPartySize    *int     `json:"min_party_size,omitempty" validate:"omitempty,min=1"`
	MaxPartySize    *int     `json:"max_party_size,omitempty" validate:"omitempty,min=1"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

type ActivityResponse struct {
	Id              uuid.UUID `json:"id"`
	VenueId         uuid.UUID `json:"venue_id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	MinPartySize    int       `json:"min_party_size"`
	MaxPartySize    int       `json:"max_party_size"`
	Price           float64   `json:"price"`
	IsActive        bool      `json:"is_active"`
}

// --- Schedule Slots ---

type CreateSlotRequest struct {
	ActivityId uuid.UUID `json:"activity_id" validate:"required"`
	Date       string    `json:"date" validate:"required"` // "2006-01-02"
	StartTime  string    `json:"start_time" validate:"required"`
	EndTime    string    `json:"end_time" validate:"required"`
	Capacity   int       `json:"capacity" validate:"required,min=1"`
}

type UpdateSlotRequest struct {
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Capacity  *int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
}

type SlotResponse struct {
	Id         uuid.UUID `json:"id"`
	ActivityId uuid.UUID `json:"activity_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Capacity   int       `json:"capacity"`
}
