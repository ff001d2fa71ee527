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

type RefundRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RefundMapper
}

func NewRefundRepository(db *gorm.DB) contract.RefundRepository {
	return &RefundRepositoryImpl{
		db:     db,
		mapper: mapper.NewRefundMapper(),
	}
}

func (r *RefundRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RefundRepositoryImpl) Create(ctx context.Context, refund *entity.Refund) error {
	m := r.mapper.ToModel(refund)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*refund = *r.mapper.ToEntity(m)
	return nil
}

func (r *RefundRepositoryImpl) Update(ctx context.Context, refund *entity.Refund) error {
	m := r.mapper.ToModel(refund)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*refund = *r.mapper.ToEntity(m)
	return nil
}

func (r *RefundRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Refund{}, id).Error
}

func (r *RefundRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Refund, error) {
	var m model.Refund
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RefundRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Refund, error) {
	var models []*model.Refund
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Refund, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
