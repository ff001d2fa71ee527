package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type PaymentStatus string
type BillingPeriod string

const (
	SubscriptionStatusTrialing          SubscriptionStatus = "trialing"
	SubscriptionStatusActive            SubscriptionStatus = "active"
	SubscriptionStatusPastDue           SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled          SubscriptionStatus = "canceled"
	SubscriptionStatusUnpaid            SubscriptionStatus = "unpaid"
	SubscriptionStatusIncomplete        SubscriptionStatus = "incomplete"
	SubscriptionStatusIncompleteExpired SubscriptionStatus = "incomplete_expired"
	SubscriptionStatusPaused            SubscriptionStatus = "paused"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "success" // matches DB enum 'success'
	PaymentStatusFailed  PaymentStatus = "failed"

	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodYearly  BillingPeriod = "yearly"
)

type SubscriptionPlan struct {
	Id              uuid.UUID
	Name            string
	Slug            string
	Description     string
	Tagline         string
	Price           float64
	TaxRate         float64
	BillingPeriod   BillingPeriod
	IncludedCredits int
	// Monthly quotas; -1 = unlimited, overages debit credits
	BookingQuota int
	WaiverQuota  int
	AiQuota      int
	// Display Settings
	IsMostPopular bool
	IsActive      bool
	SortOrder     int
}

type TenantSubscription struct {
	Id                    uuid.UUID
	TenantId              uuid.UUID
	PlanId                uuid.UUID
	Status                SubscriptionStatus
	BillingCycle          BillingPeriod
	CurrentPeriodStart    time.Time
	CurrentPeriodEnd      time.Time
	CancelAtPeriodEnd     bool
	PaymentStatus         PaymentStatus
	ProviderTransactionId *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Entitled reports whether the subscription currently grants access:
// active or trialing with an unexpired period.
func (s *TenantSubscription) Entitled(now time.Time) bool {
	if s.Status != SubscriptionStatusActive && s.Status != SubscriptionStatusTrialing {
		return false
	}
	return s.CurrentPeriodEnd.After(now)
}

// ActivationPending reports whether moving to newStatus would be this
// subscription's first successful activation. That is the one moment the
// plan's included credits are allocated, so it holds only while no payment
// has ever settled.
func (s *TenantSubscription) ActivationPending(newStatus SubscriptionStatus) bool {
	return newStatus == SubscriptionStatusActive && s.PaymentStatus != PaymentStatusPaid
}

// SubscriptionTransaction is a read model of a subscription payment.
type SubscriptionTransaction struct {
	Id              uuid.UUID
	TenantId        uuid.UUID
	TenantName      string
	PlanName        string
	Amount          float64
	Status          SubscriptionStatus
	PaymentStatus   PaymentStatus
	CreatedAt       time.Time
	ProviderOrderId *string
}

type CancellationStatus string

const (
	CancellationStatusPending  CancellationStatus = "pending"
	CancellationStatusApproved CancellationStatus = "approved"
	CancellationStatusRejected CancellationStatus = "rejected"
)

type CancellationRequest struct {
	ID             uuid.UUID
	SubscriptionID uuid.UUID
	TenantID       uuid.UUID
	Reason         string
	Status         CancellationStatus
	AdminNotes     string
	EffectiveDate  time.Time
	ProcessedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
