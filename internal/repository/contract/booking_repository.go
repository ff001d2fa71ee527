package contract

import (
	"context"
	"time"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateVersioned persists the booking only if the stored version still
	// matches expectedVersion, bumping it by one. Returns false when a
	// concurrent writer got there first.
	UpdateVersioned(ctx context.Context, booking *entity.Booking, expectedVersion int) (bool, error)

	// SlotAvailability resolves schedule slots in [from, to] with the party
	// sizes of live bookings already summed in.
	SlotAvailability(ctx context.Context, activityId uuid.UUID, from, to time.Time) ([]entity.AvailableSlot, error)
}
