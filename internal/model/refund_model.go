package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Refund rows are advisory: booking cancellation records the amount owed,
// staff approve or reject; no payment-platform call is made here.
type Refund struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BookingID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      float64   `gorm:"type:decimal(10,2);not null"`
	Reason      string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(50);default:'pending'"` // pending, approved, rejected
	AdminNotes  string    `gorm:"type:text"`
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Relations
	Booking Booking `gorm:"foreignKey:BookingID"`
	Tenant  Tenant  `gorm:"foreignKey:TenantID"`
}

func (Refund) TableName() string {
	return "refunds"
}
