package entity

import (
	"time"

	"github.com/google/uuid"
)

type WaiverTemplateStatus string
type WaiverRecordStatus string

const (
	WaiverTemplateDraft    WaiverTemplateStatus = "draft"
	WaiverTemplateActive   WaiverTemplateStatus = "active"
	WaiverTemplateInactive WaiverTemplateStatus = "inactive"

	WaiverRecordPending WaiverRecordStatus = "pending"
	WaiverRecordSigned  WaiverRecordStatus = "signed"
	WaiverRecordExpired WaiverRecordStatus = "expired"
)

type WaiverTemplate struct {
	Id             uuid.UUID
	TenantId       uuid.UUID
	Name           string
	Type           string
	Content        string
	RequiredFields []string
	Status         WaiverTemplateStatus
	UsageCount     int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Duplicate deep-copies the template for editing: fresh identity, draft
// status, zero usage, name suffixed " (Copy)". The receiver is untouched.
func (t *WaiverTemplate) Duplicate() *WaiverTemplate {
	fields := make([]string, len(t.RequiredFields))
	copy(fields, t.RequiredFields)

	return &WaiverTemplate{
		Id:             uuid.New(),
		TenantId:       t.TenantId,
		Name:           t.Name + " (Copy)",
		Type:           t.Type,
		Content:        t.Content,
		RequiredFields: fields,
		Status:         WaiverTemplateDraft,
		UsageCount:     0,
	}
}

type WaiverRecord struct {
	Id               uuid.UUID
	TenantId         uuid.UUID
	TemplateId       uuid.UUID
	BookingId        *uuid.UUID
	WaiverCode       string
	ParticipantName  string
	ParticipantEmail string
	ParticipantPhone string
	DateOfBirth      *time.Time
	Signature        map[string]interface{}
	Status           WaiverRecordStatus
	SignedAt         *time.Time
	ExpiresAt        *time.Time
	CheckInCount     int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type WaiverCheckIn struct {
	Id          uuid.UUID
	RecordId    uuid.UUID
	CheckedInAt time.Time
	CheckedInBy *uuid.UUID
}
