package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CancellationRequest records a tenant asking to cancel their subscription
// at the end of the current billing period.
type CancellationRequest struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;index"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason         string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(50);default:'pending';index"` // pending, approved, rejected
	AdminNotes     string    `gorm:"type:text"`
	EffectiveDate  time.Time `gorm:"not null"` // usually current_period_end
	ProcessedAt    *time.Time
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	// Relations
	Subscription TenantSubscription `gorm:"foreignKey:SubscriptionID"`
	Tenant       Tenant             `gorm:"foreignKey:TenantID"`
}

func (CancellationRequest) TableName() string {
	return "cancellation_requests"
}
