package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"escapedesk-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName        = "EVENTS"
	headerEventType   = "Event-Type"
	headerOccurredAt  = "Occurred-At"
	subjectPrefix     = "events."
	streamEnsureLimit = 5 * time.Second
	streamMaxAge      = 72 * time.Hour
)

// eventStreamConfig describes the shared events stream. Retention must stay
// LimitsPolicy: both the notification worker and the email bridge hold
// durable consumers on events.>, and a work-queue stream rejects a second
// consumer with an overlapping filter subject and hands each message to only
// one consumer instead of fanning out.
func eventStreamConfig() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:      streamName,
		Subjects:  []string{subjectPrefix + ">"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    streamMaxAge,
	}
}

// Publisher sends domain events to the NATS bus.
type Publisher struct {
	nc *nats.Conn
	js jetstream.JetStream
}

// NewPublisher connects and ensures the events stream exists.
func NewPublisher(url string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), streamEnsureLimit)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, eventStreamConfig())
	if err != nil {
		// Not fatal: the stream may already exist or NATS may still be starting.
		log.Printf("Warn: Failed to ensure stream %q: %v", streamName, err)
	}

	return &Publisher{nc: nc, js: js}, nil
}

// Publish sends an event. The event type and occurrence time travel in
// message headers so consumers do not have to reverse them out of the
// subject.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := &nats.Msg{
		Subject: subjectPrefix + event.EventType(),
		Data:    data,
		Header: nats.Header{
			headerEventType:  []string{event.EventType()},
			headerOccurredAt: []string{event.Timestamp().Format(time.RFC3339Nano)},
		},
	}

	if _, err := p.js.PublishMsg(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event to subject %s: %w", msg.Subject, err)
	}

	return nil
}

// Close closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
