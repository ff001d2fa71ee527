package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlanResponse struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Tagline         string    `json:"tagline,omitempty"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	BillingPeriod   string    `json:"billing_period"`
	IncludedCredits int       `json:"included_credits"`
	BookingQuota    int       `json:"booking_quota"`
	WaiverQuota     int       `json:"waiver_quota"`
	AiQuota         int       `json:"ai_quota"`
	IsMostPopular   bool      `json:"is_most_popular"`
}

type OrderSummaryResponse struct {
	PlanName      string  `json:"plan_name"`
	BillingPeriod string  `json:"billing_period"`
	PricePerUnit  string  `json:"price_per_unit"` // e.g., "$49/month"
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}

type CheckoutRequest struct {
	PlanId    uuid.UUID `json:"plan_id" validate:"required"`
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone" validate:"omitempty"`
}

type CheckoutResponse struct {
	SubscriptionId  uuid.UUID `json:"subscription_id"`
	SnapRedirectUrl string    `json:"snap_redirect_url"`
	SnapToken       string    `json:"snap_token"`
}

type BuyCreditsRequest struct {
	PackageId uuid.UUID `json:"package_id" validate:"required"`
}

type BuyCreditsResponse struct {
	OrderId         string `json:"order_id"`
	SnapRedirectUrl string `json:"snap_redirect_url"`
	SnapToken       string `json:"snap_token"`
}

type PaymentWebhookRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	// Signature validation fields
	SignatureKey string `json:"signature_key"`
	StatusCode   string `json:"status_code"`
	GrossAmount  string `json:"gross_amount"`
}

type SubscriptionResponse struct {
	Id                 uuid.UUID `json:"id"`
	PlanId             uuid.UUID `json:"plan_id"`
	PlanName           string    `json:"plan_name,omitempty"`
	Status             string    `json:"status"`
	BillingCycle       string    `json:"billing_cycle"`
	CurrentPeriodStart time.Time `json:"current_period_start"`
	CurrentPeriodEnd   time.Time `json:"current_period_end"`
	CancelAtPeriodEnd  bool      `json:"cancel_at_period_end"`
	PaymentStatus      string    `json:"payment_status"`
}

type BillingPortalRequest struct {
	ReturnUrl string `json:"return_url" validate:"omitempty,url"`
}

type BillingPortalResponse struct {
	RedirectUrl string `json:"redirect_url"`
}

type RequestCancellationRequest struct {
	Reason string `json:"reason" validate:"required,min=5"`
}

type CancellationResponse struct {
	Id            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	EffectiveDate time.Time `json:"effective_date"`
}
