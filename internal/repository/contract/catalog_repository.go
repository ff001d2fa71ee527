package contract

import (
	"context"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	// Venues
	CreateVenue(ctx context.Context, venue *entity.Venue) error
	UpdateVenue(ctx context.Context, venue *entity.Venue) error
	DeleteVenue(ctx context.Context, id uuid.UUID) error
	FindOneVenue(ctx context.Context, specs ...specification.Specification) (*entity.Venue, error)
	FindAllVenues(ctx context.Context, specs ...specification.Specification) ([]*entity.Venue, error)

	// Activities
	CreateActivity(ctx context.Context, activity *entity.Activity) error
	UpdateActivity(ctx context.Context, activity *entity.Activity) error
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	FindOneActivity(ctx context.Context, specs ...specification.Specification) (*entity.Activity, error)
	FindAllActivities(ctx context.Context, specs ...specification.Specification) ([]*entity.Activity, error)

	// Schedule slots
	CreateSlot(ctx context.Context, slot *entity.ScheduleSlot) error
	UpdateSlot(ctx context.Context, slot *entity.ScheduleSlot) error
	DeleteSlot(ctx context.Context, id uuid.UUID) error
	FindOneSlot(ctx context.Context, specs ...specification.Specification) (*entity.ScheduleSlot, error)
	FindAllSlots(ctx context.Context, specs ...specification.Specification) ([]*entity.ScheduleSlot, error)
}
