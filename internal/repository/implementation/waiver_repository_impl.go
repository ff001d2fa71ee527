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

type WaiverRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WaiverMapper
}

func NewWaiverRepository(db *gorm.DB) contract.WaiverRepository {
	return &WaiverRepositoryImpl{
		db:     db,
		mapper: mapper.NewWaiverMapper(),
	}
}

func (r *WaiverRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Template Implementation

func (r *WaiverRepositoryImpl) CreateTemplate(ctx context.Context, template *entity.WaiverTemplate) error {
	m := r.mapper.TemplateToModel(template)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.TemplateToEntity(m)
	return nil
}

func (r *WaiverRepositoryImpl) UpdateTemplate(ctx context.Context, template *entity.WaiverTemplate) error {
	m := r.mapper.TemplateToModel(template)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.TemplateToEntity(m)
	return nil
}

func (r *WaiverRepositoryImpl) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.WaiverTemplate{}, id).Error
}

func (r *WaiverRepositoryImpl) FindOneTemplate(ctx context.Context, specs ...specification.Specification) (*entity.WaiverTemplate, error) {
	var m model.WaiverTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TemplateToEntity(&m), nil
}

func (r *WaiverRepositoryImpl) FindAllTemplates(ctx context.Context, specs ...specification.Specification) ([]*entity.WaiverTemplate, error) {
	var models []*model.WaiverTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.WaiverTemplate, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TemplateToEntity(m)
	}
	return entities, nil
}

func (r *WaiverRepositoryImpl) IncrementTemplateUsage(ctx context.Context, templateId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.WaiverTemplate{}).
		Where("id = ?", templateId).
		Update("usage_count", gorm.Expr("usage_count + 1")).Error
}

// Record Implementation

func (r *WaiverRepositoryImpl) CreateRecord(ctx context.Context, record *entity.WaiverRecord) error {
	m := r.mapper.RecordToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.RecordToEntity(m)
	return nil
}

func (r *WaiverRepositoryImpl) UpdateRecord(ctx context.Context, record *entity.WaiverRecord) error {
	m := r.mapper.RecordToModel(record)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.RecordToEntity(m)
	return nil
}

func (r *WaiverRepositoryImpl) FindOneRecord(ctx context.Context, specs ...specification.Specification) (*entity.WaiverRecord, error) {
	var m model.WaiverRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RecordToEntity(&m), nil
}

func (r *WaiverRepositoryImpl) FindAllRecords(ctx context.Context, specs ...specification.Specification) ([]*entity.WaiverRecord, error) {
	var models []*model.WaiverRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.WaiverRecord, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RecordToEntity(m)
	}
	return entities, nil
}

func (r *WaiverRepositoryImpl) ExpirePendingRecords(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.WaiverRecord{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", "pending", now).
		Update("status", "expired")
	return result.RowsAffected, result.Error
}

// Check-in Implementation

func (r *WaiverRepositoryImpl) AppendCheckIn(ctx context.Context, checkIn *entity.WaiverCheckIn) error {
	m := r.mapper.CheckInToModel(checkIn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*checkIn = *r.mapper.CheckInToEntity(m)
	return nil
}

func (r *WaiverRepositoryImpl) IncrementCheckInCount(ctx context.Context, recordId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.WaiverRecord{}).
		Where("id = ?", recordId).
		Update("check_in_count", gorm.Expr("check_in_count + 1")).Error
}

func (r *WaiverRepositoryImpl) FindCheckIns(ctx context.Context, recordId uuid.UUID) ([]*entity.WaiverCheckIn, error) {
	var models []*model.WaiverCheckIn
	err := r.db.WithContext(ctx).
		Where("record_id = ?", recordId).
		Order("checked_in_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.WaiverCheckIn, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CheckInToEntity(m)
	}
	return entities, nil
}
