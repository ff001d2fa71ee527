package contract

import (
	"context"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RefundRepository interface {
	Create(ctx context.Context, refund *entity.Refund) error
	Update(ctx context.Context, refund *entity.Refund) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Refund, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Refund, error)
}
