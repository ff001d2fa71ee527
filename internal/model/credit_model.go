package model

import (
	"time"

	"github.com/google/uuid"
)

type CreditBalance struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Balance              int       `gorm:"not null;default:0"`
	PlanCredits          int       `gorm:"not null;default:0"`
	PurchasedCredits     int       `gorm:"not null;default:0"`
	BookingsUsed         int       `gorm:"not null;default:0"`
	WaiversUsed          int       `gorm:"not null;default:0"`
	AiConversationsUsed  int       `gorm:"not null;default:0"`
	LastResetAt          time.Time `gorm:"not null"`
	NextResetAt          time.Time `gorm:"not null"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

func (CreditBalance) TableName() string {
	return "credit_balances"
}

type CreditTransaction struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type          string     `gorm:"type:credit_transaction_type;not null"`
	Amount        int        `gorm:"not null"`
	BalanceBefore int        `gorm:"not null"`
	BalanceAfter  int        `gorm:"not null"`
	BookingId     *uuid.UUID `gorm:"type:uuid"`
	Notes         *string    `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"default:now();not null;index"`
}

func (CreditTransaction) TableName() string {
	return "credit_transactions"
}

type CreditPackage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Credits   int       `gorm:"not null"`
	Price     float64   `gorm:"type:decimal(10,2);not null"`
	IsActive  bool      `gorm:"default:true"`
	SortOrder int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CreditPackage) TableName() string {
	return "credit_packages"
}
