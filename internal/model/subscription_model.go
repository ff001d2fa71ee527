package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPlan struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Slug            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description     string    `gorm:"type:text"`
	Tagline         string    `gorm:"type:text"`
	Price           float64   `gorm:"type:decimal(10,2);not null"`
	TaxRate         float64   `gorm:"type:decimal(5,4);default:0"`
	BillingPeriod   string    `gorm:"type:billing_period;not null"`
	IncludedCredits int       `gorm:"default:0"`
	// Monthly included quotas; -1 = unlimited, overages debit credits
	BookingQuota int `gorm:"default:0"`
	WaiverQuota  int `gorm:"default:0"`
	AiQuota      int `gorm:"default:0"`
	// Display Settings
	IsMostPopular bool `gorm:"default:false"`
	IsActive      bool `gorm:"default:true"`
	SortOrder     int  `gorm:"default:0"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

type TenantSubscription struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId              uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId                uuid.UUID `gorm:"type:uuid;not null;index"`
	Status                string    `gorm:"type:varchar(50);not null"`
	BillingCycle          string    `gorm:"type:varchar(50);not null"`
	CurrentPeriodStart    time.Time `gorm:"not null"`
	CurrentPeriodEnd      time.Time `gorm:"not null"`
	CancelAtPeriodEnd     bool      `gorm:"default:false"`
	PaymentStatus         string    `gorm:"type:varchar(50);not null"`
	ProviderTransactionId *string   `gorm:"type:varchar(255)"`
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (TenantSubscription) TableName() string {
	return "tenant_subscriptions"
}
