package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByWaiverCode struct {
	Code string
}

func (s ByWaiverCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("waiver_code = ?", s.Code)
}

type ByTemplateID struct {
	TemplateID uuid.UUID
}

func (s ByTemplateID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("template_id = ?", s.TemplateID)
}

type ByParticipantEmail struct {
	Email string
}

func (s ByParticipantEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("participant_email = ?", s.Email)
}

// PendingExpiredBefore selects pending records whose expiry has passed.
type PendingExpiredBefore struct {
	Now time.Time
}

func (s PendingExpiredBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", "pending", s.Now)
}
