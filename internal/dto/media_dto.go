package dto

import (
	"time"

	"github.com/google/uuid"
)

type MediaAssetResponse struct {
	Id          uuid.UUID  `json:"id"`
	ActivityId  *uuid.UUID `json:"activity_id,omitempty"`
	FileName    string     `json:"file_name"`
	Url         string     `json:"url"`
	ContentType string     `json:"content_type"`
	SizeBytes   int64      `json:"size_bytes"`
	CreatedAt   time.Time  `json:"created_at"`
}

type UpdateMediaAssetRequest struct {
	ActivityId *uuid.UUID `json:"activity_id,omitempty"`
	FileName   *string    `json:"file_name,omitempty"`
}
