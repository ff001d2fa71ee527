package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaAsset struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActivityId  *uuid.UUID `gorm:"type:uuid;index"`
	FileName    string     `gorm:"type:varchar(255);not null"`
	StoredPath  string     `gorm:"type:text;not null"`
	ContentType string     `gorm:"type:varchar(100);not null"`
	SizeBytes   int64      `gorm:"not null"`
	UploadedBy  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (MediaAsset) TableName() string {
	return "media_assets"
}
