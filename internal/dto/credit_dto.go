package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreditBalanceResponse struct {
	Balance             int       `json:"balance"`
	PlanCredits         int       `json:"plan_credits"`
	PurchasedCredits    int       `json:"purchased_credits"`
	UsedThisMonth       int       `json:"used_this_month"`
	BookingsUsed        int       `json:"bookings_used"`
	WaiversUsed         int       `json:"waivers_used"`
	AiConversationsUsed int       `json:"ai_conversations_used"`
	CanAffordAction     bool      `json:"can_afford_action"`
	NextResetAt         time.Time `json:"next_reset_at"`
}

type CreditTransactionResponse struct {
	Id            uuid.UUID  `json:"id"`
	Type          string     `json:"type"`
	Amount        int        `json:"amount"`
	BalanceBefore int        `json:"balance_before"`
	BalanceAfter  int        `json:"balance_after"`
	BookingId     *uuid.UUID `json:"booking_id,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CreditTransactionListResponse struct {
	Transactions []CreditTransactionResponse `json:"transactions"`
	Page         int                         `json:"page"`
	Limit        int                         `json:"limit"`
}

type CreditPackageResponse struct {
	Id      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Credits int       `json:"credits"`
	Price   float64   `json:"price"`
}

type AdjustCreditsRequest struct {
	Amount int    `json:"amount" validate:"required"`
	Notes  string `json:"notes,omitempty"`
}

type LedgerVerificationResponse struct {
	Valid  bool   `json:"valid"`
	Detail string `json:"detail,omitempty"`
}
