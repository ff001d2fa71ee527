package refcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	code := New("BK")
	assert.True(t, strings.HasPrefix(code, "BK-"))
	assert.Len(t, code, len("BK-")+codeLength)

	// only unambiguous charset characters after the prefix
	for _, r := range code[len("BK-"):] {
		assert.Contains(t, charset, string(r))
	}
	assert.NotContains(t, code[len("BK-"):], "0")
	assert.NotContains(t, code[len("BK-"):], "O")
	assert.NotContains(t, code[len("BK-"):], "1")
	assert.NotContains(t, code[len("BK-"):], "I")
}

func TestNewIsRandom(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := New("WV")
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
