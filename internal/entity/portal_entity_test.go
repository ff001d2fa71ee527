package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jamie@example.com", NormalizeEmail("  Jamie@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestNormalizeReference(t *testing.T) {
	assert.Equal(t, "BK-2025-A1B2C3", NormalizeReference(" bk-2025-a1b2c3 "))
	assert.Equal(t, "WV-2025-X9Y8Z7", NormalizeReference("wv-2025-x9y8z7"))
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+62 812-3456-7890", "+6281234567890"},
		{"(0812) 3456 7890", "081234567890"},
		{"0812.3456.7890", "081234567890"},
		{"  +62 812 3456 7890  ", "+6281234567890"},
		// plus only kept in the leading position
		{"0812+3456", "08123456"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}
