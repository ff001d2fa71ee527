package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/pkg/apperrors"
	"escapedesk-be/internal/repository/specification"
	"escapedesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const maxMediaSizeBytes = 10 * 1024 * 1024

var allowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"video/mp4":  true,
}

type IMediaService interface {
	Upload(ctx context.Context, tenantId uuid.UUID, staffId *uuid.UUID, file *multipart.FileHeader, activityId *uuid.UUID) (*dto.MediaAssetResponse, error)
	Update(ctx context.Context, tenantId, assetId uuid.UUID, req *dto.UpdateMediaAssetRequest) (*dto.MediaAssetResponse, error)
	Delete(ctx context.Context, tenantId, assetId uuid.UUID) error
	List(ctx context.Context, tenantId uuid.UUID, activityId *uuid.UUID) ([]*dto.MediaAssetResponse, error)
}

type mediaService struct {
	uowFactory unitofwork.RepositoryFactory
	uploadDir  string
}

func NewMediaService(uowFactory unitofwork.RepositoryFactory, uploadDir string) IMediaService {
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	return &mediaService{
		uowFactory: uowFactory,
		uploadDir:  uploadDir,
	}
}

func (s *mediaService) Upload(ctx context.Context, tenantId uuid.UUID, staffId *uuid.UUID, file *multipart.FileHeader, activityId *uuid.UUID) (*dto.MediaAssetResponse, error) {
	if file.Size > maxMediaSizeBytes {
		return nil, apperrors.Validation("file too large (max 10MB)")
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedMediaTypes[contentType] {
		return nil, apperrors.Validation("unsupported content type " + contentType)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if activityId != nil {
		activity, err := uow.CatalogRepository().FindOneActivity(ctx,
			specification.ByID{ID: *activityId},
			specification.TenantOwnedBy{TenantID: tenantId},
		)
		if err != nil {
			return nil, err
		}
		if activity == nil {
			return nil, apperrors.NotFound("activity not found")
		}
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tenantDir := filepath.Join(s.uploadDir, tenantId.String())
	if err := os.MkdirAll(tenantDir, 0755); err != nil {
		return nil, err
	}

	assetId := uuid.New()
	ext := strings.ToLower(filepath.Ext(file.Filename))
	storedPath := filepath.Join(tenantDir, assetId.String()+ext)

	dst, err := os.Create(storedPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	asset := &entity.MediaAsset{
		Id:          assetId,
		TenantId:    tenantId,
		ActivityId:  activityId,
		FileName:    filepath.Base(file.Filename),
		StoredPath:  storedPath,
		ContentType: contentType,
		SizeBytes:   file.Size,
		UploadedBy:  staffId,
	}

	if err := uow.MediaRepository().Create(ctx, asset); err != nil {
		// Keep disk and DB in step when the insert fails.
		os.Remove(storedPath)
		return nil, err
	}

	return s.toMediaResponse(asset), nil
}

func (s *mediaService) Update(ctx context.Context, tenantId, assetId uuid.UUID, req *dto.UpdateMediaAssetRequest) (*dto.MediaAssetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	asset, err := s.assetOwnedBy(ctx, uow, tenantId, assetId)
	if err != nil {
		return nil, err
	}

	if req.FileName != nil {
		name := strings.TrimSpace(*req.FileName)
		if name == "" {
			return nil, apperrors.Validation("file_name must not be empty")
		}
		asset.FileName = name
	}
	if req.ActivityId != nil {
		activity, err := uow.CatalogRepository().FindOneActivity(ctx,
			specification.ByID{ID: *req.ActivityId},
			specification.TenantOwnedBy{TenantID: tenantId},
		)
		if err != nil {
			return nil, err
		}
		if activity == nil {
			return nil, apperrors.NotFound("activity not found")
		}
		asset.ActivityId = req.ActivityId
	}

	if err := uow.MediaRepository().Update(ctx, asset); err != nil {
		return nil, err
	}
	return s.toMediaResponse(asset), nil
}

func (s *mediaService) Delete(ctx context.Context, tenantId, assetId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	asset, err := s.assetOwnedBy(ctx, uow, tenantId, assetId)
	if err != nil {
		return err
	}

	if err := uow.MediaRepository().Delete(ctx, asset.Id); err != nil {
		return err
	}

	if err := os.Remove(asset.StoredPath); err != nil && !os.IsNotExist(err) {
		fmt.Printf("[WARN] Failed to remove media file %s: %v\n", asset.StoredPath, err)
	}
	return nil
}

func (s *mediaService) List(ctx context.Context, tenantId uuid.UUID, activityId *uuid.UUID) ([]*dto.MediaAssetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if activityId != nil {
		specs = append(specs, specification.Filter("activity_id", *activityId))
	}

	assets, err := uow.MediaRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	var res []*dto.MediaAssetResponse
	for _, a := range assets {
		res = append(res, s.toMediaResponse(a))
	}
	return res, nil
}

func (s *mediaService) assetOwnedBy(ctx context.Context, uow unitofwork.UnitOfWork, tenantId, assetId uuid.UUID) (*entity.MediaAsset, error) {
	asset, err := uow.MediaRepository().FindOne(ctx,
		specification.ByID{ID: assetId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, apperrors.NotFound("media asset not found")
	}
	return asset, nil
}

func (s *mediaService) toMediaResponse(a *entity.MediaAsset) *dto.MediaAssetResponse {
	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	rel := strings.TrimPrefix(filepath.ToSlash(a.StoredPath), "./")

	return &dto.MediaAssetResponse{
		Id:          a.Id,
		ActivityId:  a.ActivityId,
		FileName:    a.FileName,
		Url:         fmt.Sprintf("%s/%s", baseURL, rel),
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		CreatedAt:   a.CreatedAt,
	}
}
