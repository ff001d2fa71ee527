package implementation

import (
	"context"
	"errors"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/mapper"
	"escapedesk-be/internal/model"
	"escapedesk-be/internal/repository/contract"
	"escapedesk-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CatalogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Venue Implementation

func (r *CatalogRepositoryImpl) CreateVenue(ctx context.Context, venue *entity.Venue) error {
	m := r.mapper.VenueToModel(venue)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*venue = *r.mapper.VenueToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) UpdateVenue(ctx context.Context, venue *entity.Venue) error {
	m := r.mapper.VenueToModel(venue)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*venue = *r.mapper.VenueToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Venue{}, id).Error
}

func (r *CatalogRepositoryImpl) FindOneVenue(ctx context.Context, specs ...specification.Specification) (*entity.Venue, error) {
	var m model.Venue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.VenueToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindAllVenues(ctx context.Context, specs ...specification.Specification) ([]*entity.Venue, error) {
	var models []*model.Venue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Venue, len(models))
	for i, m := range models {
		entities[i] = r.mapper.VenueToEntity(m)
	}
	return entities, nil
}

// Activity Implementation

func (r *CatalogRepositoryImpl) CreateActivity(ctx context.Context, activity *entity.Activity) error {
	m := r.mapper.ActivityToModel(activity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.ActivityToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) UpdateActivity(ctx context.Context, activity *entity.Activity) error {
	m := r.mapper.ActivityToModel(activity)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.ActivityToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Activity{}, id).Error
}

func (r *CatalogRepositoryImpl) FindOneActivity(ctx context.Context, specs ...specification.Specification) (*entity.Activity, error) {
	var m model.Activity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ActivityToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindAllActivities(ctx context.Context, specs ...specification.Specification) ([]*entity.Activity, error) {
	var models []*model.Activity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Activity, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ActivityToEntity(m)
	}
	return entities, nil
}

// Schedule Slot Implementation

func (r *CatalogRepositoryImpl) CreateSlot(ctx context.Context, slot *entity.ScheduleSlot) error {
	m := r.mapper.SlotToModel(slot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*slot = *r.mapper.SlotToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) UpdateSlot(ctx context.Context, slot *entity.ScheduleSlot) error {
	m := r.mapper.SlotToModel(slot)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*slot = *r.mapper.SlotToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ScheduleSlot{}, id).Error
}

func (r *CatalogRepositoryImpl) FindOneSlot(ctx context.Context, specs ...specification.Specification) (*entity.ScheduleSlot, error) {
	var m model.ScheduleSlot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SlotToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindAllSlots(ctx context.Context, specs ...specification.Specification) ([]*entity.ScheduleSlot, error) {
	var models []*model.ScheduleSlot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ScheduleSlot, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SlotToEntity(m)
	}
	return entities, nil
}
