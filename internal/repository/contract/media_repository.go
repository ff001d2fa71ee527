package contract

import (
	"context"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MediaRepository interface {
	Create(ctx context.Context, asset *entity.MediaAsset) error
	Update(ctx context.Context, asset *entity.MediaAsset) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MediaAsset, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MediaAsset, error)
}
