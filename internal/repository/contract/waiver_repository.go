package contract

import (
	"context"
	"time"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WaiverRepository interface {
	// Templates
	CreateTemplate(ctx context.Context, template *entity.WaiverTemplate) error
	UpdateTemplate(ctx context.Context, template *entity.WaiverTemplate) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	FindOneTemplate(ctx context.Context, specs ...specification.Specification) (*entity.WaiverTemplate, error)
	FindAllTemplates(ctx context.Context, specs ...specification.Specification) ([]*entity.WaiverTemplate, error)

	// IncrementTemplateUsage bumps usage_count in a single UPDATE; no
	// read-then-write involved.
	IncrementTemplateUsage(ctx context.Context, templateId uuid.UUID) error

	// Records
	CreateRecord(ctx context.Context, record *entity.WaiverRecord) error
	UpdateRecord(ctx context.Context, record *entity.WaiverRecord) error
	FindOneRecord(ctx context.Context, specs ...specification.Specification) (*entity.WaiverRecord, error)
	FindAllRecords(ctx context.Context, specs ...specification.Specification) ([]*entity.WaiverRecord, error)

	// ExpirePendingRecords flips pending records past their expiry to
	// expired; returns how many rows changed.
	ExpirePendingRecords(ctx context.Context, now time.Time) (int64, error)

	// Check-ins
	AppendCheckIn(ctx context.Context, checkIn *entity.WaiverCheckIn) error
	IncrementCheckInCount(ctx context.Context, recordId uuid.UUID) error
	FindCheckIns(ctx context.Context, recordId uuid.UUID) ([]*entity.WaiverCheckIn, error)
}
