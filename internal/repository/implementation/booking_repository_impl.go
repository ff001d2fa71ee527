package implementation

import (
	"context"
	"errors"
	"time"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/mapper"
	"escapedesk-be/internal/model"
	"escapedesk-be/internal/repository/contract"
	"escapedesk-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookingMapper
}

func NewBookingRepository(db *gorm.DB) contract.BookingRepository {
	return &BookingRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookingMapper(),
	}
}

func (r *BookingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *entity.Booking) error {
	m := r.mapper.ToModel(booking)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*booking = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, booking *entity.Booking) error {
	m := r.mapper.ToModel(booking)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*booking = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Booking{}, id).Error
}

func (r *BookingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error) {
	var m model.Booking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BookingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error) {
	var models []*model.Booking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Booking, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *BookingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Booking{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *BookingRepositoryImpl) UpdateVersioned(ctx context.Context, booking *entity.Booking, expectedVersion int) (bool, error) {
	m := r.mapper.ToModel(booking)
	m.Version = expectedVersion + 1

	// Guarded single-statement update: a concurrent cancel/reschedule that
	// bumped the version first leaves RowsAffected at zero.
	result := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ? AND version = ?", m.Id, expectedVersion).
		Updates(map[string]interface{}{
			"status":              m.Status,
			"payment_status":      m.PaymentStatus,
			"date":                m.Date,
			"start_time":          m.StartTime,
			"end_time":            m.EndTime,
			"cancelled_at":        m.CancelledAt,
			"cancellation_reason": m.CancellationReason,
			"previous_slot":       m.PreviousSlot,
			"version":             m.Version,
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	booking.Version = m.Version
	return true, nil
}

func (r *BookingRepositoryImpl) SlotAvailability(ctx context.Context, activityId uuid.UUID, from, to time.Time) ([]entity.AvailableSlot, error) {
	var results []entity.AvailableSlot

	// Sum party sizes of live bookings per slot. Cancelled and no-show
	// bookings release their seats.
	err := r.db.WithContext(ctx).Table("schedule_slots").
		Select(`
			schedule_slots.id as slot_id,
			schedule_slots.activity_id,
			schedule_slots.date,
			schedule_slots.start_time,
			schedule_slots.end_time,
			schedule_slots.capacity,
			COALESCE(SUM(bookings.party_size), 0) as booked
		`).
		Joins(`LEFT JOIN bookings ON bookings.activity_id = schedule_slots.activity_id
			AND bookings.date = schedule_slots.date
			AND bookings.start_time = schedule_slots.start_time
			AND bookings.status NOT IN ('cancelled', 'no_show')
			AND bookings.deleted_at IS NULL`).
		Where("schedule_slots.activity_id = ?", activityId).
		Where("schedule_slots.date BETWEEN ? AND ?", from, to).
		Group("schedule_slots.id, schedule_slots.activity_id, schedule_slots.date, schedule_slots.start_time, schedule_slots.end_time, schedule_slots.capacity").
		Order("schedule_slots.date ASC, schedule_slots.start_time ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
