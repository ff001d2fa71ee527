package mapper

import (
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/model"
)

type TenantMapper struct{}

func NewTenantMapper() *TenantMapper {
	return &TenantMapper{}
}

func (m *TenantMapper) ToEntity(t *model.Tenant) *entity.Tenant {
	if t == nil {
		return nil
	}
	return &entity.Tenant{
		Id:           t.Id,
		Name:         t.Name,
		Slug:         t.Slug,
		ContactEmail: t.ContactEmail,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (m *TenantMapper) ToModel(t *entity.Tenant) *model.Tenant {
	if t == nil {
		return nil
	}
	return &model.Tenant{
		Id:           t.Id,
		Name:         t.Name,
		Slug:         t.Slug,
		ContactEmail: t.ContactEmail,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (m *TenantMapper) StaffToEntity(u *model.StaffUser) *entity.StaffUser {
	if u == nil {
		return nil
	}
	return &entity.StaffUser{
		Id:           u.Id,
		TenantId:     u.TenantId,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         u.Role,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *TenantMapper) StaffToModel(u *entity.StaffUser) *model.StaffUser {
	if u == nil {
		return nil
	}
	return &model.StaffUser{
		Id:           u.Id,
		TenantId:     u.TenantId,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         u.Role,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *TenantMapper) RefreshTokenToEntity(t *model.StaffRefreshToken) *entity.StaffRefreshToken {
	if t == nil {
		return nil
	}
	return &entity.StaffRefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		IpAddress: t.IpAddress,
		UserAgent: t.UserAgent,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TenantMapper) RefreshTokenToModel(t *entity.StaffRefreshToken) *model.StaffRefreshToken {
	if t == nil {
		return nil
	}
	return &model.StaffRefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		IpAddress: t.IpAddress,
		UserAgent: t.UserAgent,
		CreatedAt: t.CreatedAt,
	}
}
