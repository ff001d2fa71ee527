package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Templates ---

type CreateWaiverTemplateRequest struct {
	Name           string   `json:"name" validate:"required,min=3"`
	Type           string   `json:"type" validate:"required,oneof=liability photo_release medical custom"`
	Content        string   `json:"content" validate:"required"`
	RequiredFields []string `json:"required_fields"`
}

type UpdateWaiverTemplateRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=3"`
	Type           *string  `json:"type,omitempty" validate:"omitempty,oneof=liability photo_release medical custom"`
	Content        *string  `json:"content,omitempty"`
	RequiredFields []string `json:"required_fields,omitempty"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,oneof=draft active inactive"`
}

type WaiverTemplateResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Content        string    `json:"content"`
	RequiredFields []string  `json:"required_fields"`
	Status         string    `json:"status"`
	UsageCount     int       `json:"usage_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// --- Records ---

// SubmitWaiverRequest signs a waiver in one step (kiosk / front desk).
type SubmitWaiverRequest struct {
	TemplateId       uuid.UUID              `json:"template_id" validate:"required"`
	BookingId        *uuid.UUID             `json:"booking_id,omitempty"`
	ParticipantName  string                 `json:"participant_name" validate:"required"`
	ParticipantEmail string                 `json:"participant_email" validate:"required,email"`
	ParticipantPhone string                 `json:"participant_phone,omitempty"`
	DateOfBirth      *string                `json:"date_of_birth,omitempty"` // "2006-01-02"
	Signature        map[string]interface{} `json:"signature" validate:"required"`
}

// RequestSignatureRequest creates a pending record and emails the
// participant a signing link.
type RequestSignatureRequest struct {
	TemplateId       uuid.UUID  `json:"template_id" validate:"required"`
	BookingId        *uuid.UUID `json:"booking_id,omitempty"`
	ParticipantName  string     `json:"participant_name" validate:"required"`
	ParticipantEmail string     `json:"participant_email" validate:"required,email"`
	ExpiresInHours   int        `json:"expires_in_hours,omitempty"`
}

// SignWaiverRequest completes a pending record via its waiver code.
type SignWaiverRequest struct {
	Signature   map[string]interface{} `json:"signature" validate:"required"`
	DateOfBirth *string                `json:"date_of_birth,omitempty"`
}

type WaiverRecordResponse struct {
	Id               uuid.UUID  `json:"id"`
	TemplateId       uuid.UUID  `json:"template_id"`
	TemplateName     string     `json:"template_name,omitempty"`
	BookingId        *uuid.UUID `json:"booking_id,omitempty"`
	WaiverCode       string     `json:"waiver_code"`
	ParticipantName  string     `json:"participant_name"`
	ParticipantEmail string     `json:"participant_email"`
	Status           string     `json:"status"`
	SignedAt         *time.Time `json:"signed_at,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	CheckInCount     int        `json:"check_in_count"`
	CreatedAt        time.Time  `json:"created_at"`
}

type WaiverCheckInResponse struct {
	Id          uuid.UUID  `json:"id"`
	RecordId    uuid.UUID  `json:"record_id"`
	CheckedInAt time.Time  `json:"checked_in_at"`
	CheckedInBy *uuid.UUID `json:"checked_in_by,omitempty"`
}

type ListWaiverRecordsRequest struct {
	Status     string `query:"status"`
	TemplateId string `query:"template_id"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}
