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

type MediaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MediaMapper
}

func NewMediaRepository(db *gorm.DB) contract.MediaRepository {
	return &MediaRepositoryImpl{
		db:     db,
		mapper: mapper.NewMediaMapper(),
	}
}

func (r *MediaRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MediaRepositoryImpl) Create(ctx context.Context, asset *entity.MediaAsset) error {
	m := r.mapper.ToModel(asset)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*asset = *r.mapper.ToEntity(m)
	return nil
}

func (r *MediaRepositoryImpl) Update(ctx context.Context, asset *entity.MediaAsset) error {
	m := r.mapper.ToModel(asset)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*asset = *r.mapper.ToEntity(m)
	return nil
}

func (r *MediaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MediaAsset{}, id).Error
}

func (r *MediaRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MediaAsset, error) {
	var m model.MediaAsset
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MediaRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MediaAsset, error) {
	var models []*model.MediaAsset
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MediaAsset, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
