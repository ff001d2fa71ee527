package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WaiverTemplate struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name           string         `gorm:"type:varchar(255);not null"`
	Type           string         `gorm:"type:varchar(50);not null;default:'liability'"`
	Content        string         `gorm:"type:text;not null"`
	RequiredFields datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Status         string         `gorm:"type:varchar(50);not null;default:'draft'"`
	UsageCount     int            `gorm:"not null;default:0"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (WaiverTemplate) TableName() string {
	return "waiver_templates"
}

type WaiverRecord struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	TemplateId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	BookingId        *uuid.UUID     `gorm:"type:uuid;index"`
	WaiverCode       string         `gorm:"type:varchar(20);uniqueIndex;not null"`
	ParticipantName  string         `gorm:"type:varchar(255);not null"`
	ParticipantEmail string         `gorm:"type:varchar(255);not null;index"`
	ParticipantPhone string         `gorm:"type:varchar(50)"`
	DateOfBirth      *time.Time     `gorm:"type:date"`
	Signature        datatypes.JSON `gorm:"type:jsonb"`
	Status           string         `gorm:"type:varchar(50);not null;default:'pending';index"`
	SignedAt         *time.Time
	ExpiresAt        *time.Time
	CheckInCount     int       `gorm:"not null;default:0"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`

	// Relations
	Template WaiverTemplate `gorm:"foreignKey:TemplateId"`
}

func (WaiverRecord) TableName() string {
	return "waiver_records"
}

// WaiverCheckIn rows are append-only; the parent record's counter is
// incremented alongside but its status never changes.
type WaiverCheckIn struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecordId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckedInAt time.Time `gorm:"not null;default:now()"`
	CheckedInBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (WaiverCheckIn) TableName() string {
	return "waiver_check_ins"
}
