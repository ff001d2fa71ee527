package entity

import (
	"time"

	"github.com/google/uuid"
)

type RefundStatus string

const (
	RefundStatusPending  RefundStatus = "pending"
	RefundStatusApproved RefundStatus = "approved"
	RefundStatusRejected RefundStatus = "rejected"
)

type Refund struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	TenantID    uuid.UUID
	Amount      float64
	Reason      string
	Status      RefundStatus
	AdminNotes  string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
