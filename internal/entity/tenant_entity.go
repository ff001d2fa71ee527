package entity

import (
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	Id           uuid.UUID
	Name         string
	Slug         string
	ContactEmail string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type StaffUser struct {
	Id           uuid.UUID
	TenantId     uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type StaffRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	IpAddress string
	UserAgent string
	CreatedAt time.Time
}
