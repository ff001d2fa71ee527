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

type StaffRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TenantMapper
}

func NewStaffRepository(db *gorm.DB) contract.StaffRepository {
	return &StaffRepositoryImpl{
		db:     db,
		mapper: mapper.NewTenantMapper(),
	}
}

func (r *StaffRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StaffRepositoryImpl) Create(ctx context.Context, user *entity.StaffUser) error {
	m := r.mapper.StaffToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.StaffToEntity(m)
	return nil
}

func (r *StaffRepositoryImpl) Update(ctx context.Context, user *entity.StaffUser) error {
	m := r.mapper.StaffToModel(user)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.StaffToEntity(m)
	return nil
}

func (r *StaffRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.StaffUser{}, id).Error
}

func (r *StaffRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StaffUser, error) {
	var m model.StaffUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.StaffToEntity(&m), nil
}

func (r *StaffRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StaffUser, error) {
	var models []*model.StaffUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.StaffUser, len(models))
	for i, m := range models {
		entities[i] = r.mapper.StaffToEntity(m)
	}
	return entities, nil
}

func (r *StaffRepositoryImpl) CreateRefreshToken(ctx context.Context, token *entity.StaffRefreshToken) error {
	m := r.mapper.RefreshTokenToModel(token)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*token = *r.mapper.RefreshTokenToEntity(m)
	return nil
}

func (r *StaffRepositoryImpl) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.StaffRefreshToken, error) {
	var m model.StaffRefreshToken
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RefreshTokenToEntity(&m), nil
}

func (r *StaffRepositoryImpl) RevokeRefreshToken(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.StaffRefreshToken{}).
		Where("id = ?", id).
		Update("revoked", true).Error
}

func (r *StaffRepositoryImpl) RevokeAllRefreshTokens(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.StaffRefreshToken{}).
		Where("user_id = ? AND revoked = false", userId).
		Update("revoked", true).Error
}
