package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	Id                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Reference          string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	TenantId           uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActivityId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	VenueId            uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerName       string     `gorm:"type:varchar(255);not null"`
	CustomerEmail      string     `gorm:"type:varchar(255);not null;index"`
	CustomerPhone      string     `gorm:"type:varchar(50);index"`
	Date               time.Time  `gorm:"type:date;not null;index"`
	StartTime          string     `gorm:"type:varchar(5);not null"`
	EndTime            string     `gorm:"type:varchar(5);not null"`
	PartySize          int        `gorm:"not null"`
	TotalAmount        float64    `gorm:"type:decimal(10,2);not null"`
	PaymentStatus      string     `gorm:"type:varchar(50);not null;default:'pending'"`
	Status             string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	CancelledAt        *time.Time
	CancellationReason string `gorm:"type:text"`
	PreviousSlot       string `gorm:"type:varchar(64)"` // audit of last reschedule
	Version            int    `gorm:"not null;default:1"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`

	// Relations
	Activity Activity `gorm:"foreignKey:ActivityId"`
	Venue    Venue    `gorm:"foreignKey:VenueId"`
}

func (Booking) TableName() string {
	return "bookings"
}
