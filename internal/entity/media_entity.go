package entity

import (
	"time"

	"github.com/google/uuid"
)

type MediaAsset struct {
	Id          uuid.UUID
	TenantId    uuid.UUID
	ActivityId  *uuid.UUID
	FileName    string
	StoredPath  string
	ContentType string
	SizeBytes   int64
	UploadedBy  *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
