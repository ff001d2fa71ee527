package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByReference struct {
	Reference string
}

func (s ByReference) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reference = ?", s.Reference)
}

type ByCustomerEmail struct {
	Email string
}

func (s ByCustomerEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_email = ?", s.Email)
}

type ByCustomerPhone struct {
	Phone string
}

func (s ByCustomerPhone) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_phone = ?", s.Phone)
}

type ByActivityID struct {
	ActivityID uuid.UUID
}

func (s ByActivityID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("activity_id = ?", s.ActivityID)
}

type DateBetween struct {
	From time.Time
	To   time.Time
}

func (s DateBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ? AND date <= ?", s.From, s.To)
}

type DateFrom struct {
	Date time.Time
}

func (s DateFrom) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ?", s.Date)
}

type DateTo struct {
	Date time.Time
}

func (s DateTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date <= ?", s.Date)
}

// StatusIn filters by a set of lifecycle statuses.
type StatusIn struct {
	Statuses []string
}

func (s StatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}
