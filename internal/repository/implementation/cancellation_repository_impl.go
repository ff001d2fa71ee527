package implementation

import (
	"context"
	"errors"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/mapper"
	"escapedesk-be/internal/model"
	"escapedesk-be/internal/repository/contract"
	"escapedesk-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CancellationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewCancellationRepository(db *gorm.DB) contract.CancellationRepository {
	return &CancellationRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *CancellationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CancellationRepositoryImpl) Create(ctx context.Context, req *entity.CancellationRequest) error {
	m := r.mapper.CancellationToModel(req)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.CancellationToEntity(m)
	return nil
}

func (r *CancellationRepositoryImpl) Update(ctx context.Context, req *entity.CancellationRequest) error {
	m := r.mapper.CancellationToModel(req)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.CancellationToEntity(m)
	return nil
}

func (r *CancellationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CancellationRequest, error) {
	var m model.CancellationRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CancellationToEntity(&m), nil
}

func (r *CancellationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CancellationRequest, error) {
	var models []*model.CancellationRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CancellationRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CancellationToEntity(m)
	}
	return entities, nil
}
