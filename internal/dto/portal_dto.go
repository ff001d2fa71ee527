package dto

import "time"

type PortalLookupRequest struct {
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Reference string `json:"reference,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type PortalSessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type PortalBookingsResponse struct {
	Bookings []BookingResponse      `json:"bookings"`
	Waivers  []WaiverRecordResponse `json:"waivers"`
}
