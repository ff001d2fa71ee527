package entity

import (
	"strings"
	"time"
)

type PortalLookupMethod string

const (
	PortalLookupEmail     PortalLookupMethod = "email"
	PortalLookupReference PortalLookupMethod = "reference"
	PortalLookupPhone     PortalLookupMethod = "phone"
)

// PortalSessionTTL is the fixed lifetime of a customer portal session.
const PortalSessionTTL = 2 * time.Hour

type PortalSession struct {
	ID        string
	TenantId  string
	Method    PortalLookupMethod
	LookupKey string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// NormalizeEmail lowercases and trims a lookup email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeReference uppercases and trims a booking reference.
func NormalizeReference(ref string) string {
	return strings.ToUpper(strings.TrimSpace(ref))
}

// NormalizePhone strips everything but digits, keeping a leading plus.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
