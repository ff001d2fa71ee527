package nats

import (
	"testing"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
)

func TestEventStreamConfig(t *testing.T) {
	cfg := eventStreamConfig()

	assert.Equal(t, "EVENTS", cfg.Name)
	assert.Equal(t, []string{"events.>"}, cfg.Subjects)

	// Two durable consumers (notifications and the email bridge) both filter
	// on events.>. Work-queue retention rejects the second consumer and would
	// deliver each message to only one of them, so the stream must use limits
	// retention for every consumer to receive its own copy.
	assert.Equal(t, jetstream.LimitsPolicy, cfg.Retention)
	assert.NotEqual(t, jetstream.WorkQueuePolicy, cfg.Retention)
}
