package mapper

import (
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/model"
)

type MediaMapper struct{}

func NewMediaMapper() *MediaMapper {
	return &MediaMapper{}
}

func (m *MediaMapper) ToEntity(a *model.MediaAsset) *entity.MediaAsset {
	if a == nil {
		return nil
	}
	return &entity.MediaAsset{
		Id:          a.Id,
		TenantId:    a.TenantId,
		ActivityId:  a.ActivityId,
		FileName:    a.FileName,
		StoredPath:  a.StoredPath,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		UploadedBy:  a.UploadedBy,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (m *MediaMapper) ToModel(a *entity.MediaAsset) *model.MediaAsset {
	if a == nil {
		return nil
	}
	return &model.MediaAsset{
		Id:          a.Id,
		TenantId:    a.TenantId,
		ActivityId:  a.ActivityId,
		FileName:    a.FileName,
		StoredPath:  a.StoredPath,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		UploadedBy:  a.UploadedBy,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
