package dto

import (
	"time"

	"github.com/google/uuid"
)

type DashboardStatsResponse struct {
	TotalTenants      int64   `json:"total_tenants"`
	ActiveSubscribers int     `json:"active_subscribers"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalBookings     int64   `json:"total_bookings"`
}

type TransactionResponse struct {
	Id              uuid.UUID `json:"id"`
	TenantId        uuid.UUID `json:"tenant_id"`
	TenantName      string    `json:"tenant_name"`
	PlanName        string    `json:"plan_name"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
	ProviderOrderId *string   `json:"provider_order_id,omitempty"`
}

type ProcessRefundRequest struct {
	Action     string `json:"action" validate:"required,oneof=approve reject"`
	AdminNotes string `json:"admin_notes,omitempty"`
}

type RefundResponse struct {
	Id          uuid.UUID  `json:"id"`
	BookingId   uuid.UUID  `json:"booking_id"`
	TenantId    uuid.UUID  `json:"tenant_id"`
	Amount      float64    `json:"amount"`
	Reason      string     `json:"reason,omitempty"`
	Status      string     `json:"status"`
	AdminNotes  string     `json:"admin_notes,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TenantUsageResponse struct {
	TenantId            uuid.UUID `json:"tenant_id"`
	TenantName          string    `json:"tenant_name"`
	Balance             int       `json:"balance"`
	BookingsUsed        int       `json:"bookings_used"`
	WaiversUsed         int       `json:"waivers_used"`
	AiConversationsUsed int       `json:"ai_conversations_used"`
	UsedThisMonth       int       `json:"used_this_month"`
	NextResetAt         time.Time `json:"next_reset_at"`
}

type ProcessCancellationRequest struct {
	Action     string `json:"action" validate:"required,oneof=approve reject"`
	AdminNotes string `json:"admin_notes,omitempty"`
}
