package contract

import (
	"context"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

// UsageCounter names a metered-usage column on the balance row.
type UsageCounter string

const (
	UsageBookings        UsageCounter = "bookings_used"
	UsageWaivers         UsageCounter = "waivers_used"
	UsageAiConversations UsageCounter = "ai_conversations_used"
)

// CreditBucket names an informational breakdown column on the balance row.
type CreditBucket string

const (
	BucketPlan      CreditBucket = "plan_credits"
	BucketPurchased CreditBucket = "purchased_credits"
)

type CreditRepository interface {
	CreateBalance(ctx context.Context, balance *entity.CreditBalance) error
	GetBalance(ctx context.Context, tenantId uuid.UUID) (*entity.CreditBalance, error)
	FindAllBalances(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditBalance, error)

	// ApplyDelta adjusts the balance in a single conditional UPDATE: a
	// negative delta only applies while the balance stays non-negative.
	// Returns the balance before and after, or applied=false when the
	// condition failed or no balance row exists.
	ApplyDelta(ctx context.Context, tenantId uuid.UUID, delta int) (before, after int, applied bool, err error)

	// IncrementUsage bumps one metered counter atomically.
	IncrementUsage(ctx context.Context, tenantId uuid.UUID, counter UsageCounter) error

	// AddToBucket adds to a breakdown column (plan vs purchased credits).
	AddToBucket(ctx context.Context, tenantId uuid.UUID, bucket CreditBucket, amount int) error

	AppendTransaction(ctx context.Context, tx *entity.CreditTransaction) error
	FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditTransaction, error)

	// Packages
	FindOnePackage(ctx context.Context, specs ...specification.Specification) (*entity.CreditPackage, error)
	FindAllPackages(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditPackage, error)
}
