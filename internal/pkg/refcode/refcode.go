package refcode

import (
	"crypto/rand"
	"fmt"
)

// Ambiguous characters (0/O, 1/I) are excluded so codes survive being read
// over the phone at a front desk.
const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 8

// New returns a human-readable code like "BK-7F2MQX9T".
func New(prefix string) string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; nothing
		// sensible to return.
		panic(fmt.Sprintf("refcode: %v", err))
	}
	for i, b := range buf {
		buf[i] = charset[int(b)%len(charset)]
	}
	return prefix + "-" + string(buf)
}
