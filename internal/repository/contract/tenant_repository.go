package contract

import (
	"context"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	Update(ctx context.Context, tenant *entity.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tenant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tenant, error)
	Count(ctx context.Context) (int64, error)
}

type StaffRepository interface {
	Create(ctx context.Context, user *entity.StaffUser) error
	Update(ctx context.Context, user *entity.StaffUser) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StaffUser, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StaffUser, error)

	CreateRefreshToken(ctx context.Context, token *entity.StaffRefreshToken) error
	FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.StaffRefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id uuid.UUID) error
	RevokeAllRefreshTokens(ctx context.Context, userId uuid.UUID) error
}
