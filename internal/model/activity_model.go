package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Activity struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId        uuid.UUID `gorm:"type:uuid;not null;index"`
	VenueId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Slug            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description     string    `gorm:"type:text"`
	DurationMinutes int       `gorm:"not null;default:60"`
	MinPartySize    int       `gorm:"not null;default:1"`
	MaxPartySize    int       `gorm:"not null;default:8"`
	Price           float64   `gorm:"type:decimal(10,2);not null"`
	IsActive        bool      `gorm:"default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	// Relations
	Venue Venue `gorm:"foreignKey:VenueId"`
}

func (Activity) TableName() string {
	return "activities"
}

type ScheduleSlot struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId   uuid.UUID `gorm:"type:uuid;not null;index"`
	ActivityId uuid.UUID `gorm:"type:uuid;not null;index:idx_slots_activity_date,priority:1"`
	Date       time.Time `gorm:"type:date;not null;index:idx_slots_activity_date,priority:2"`
	StartTime  string    `gorm:"type:varchar(5);not null"` // "14:00"
	EndTime    string    `gorm:"type:varchar(5);not null"`
	Capacity   int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (ScheduleSlot) TableName() string {
	return "schedule_slots"
}
