package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/pkg/mailer"
	"escapedesk-be/pkg/events"
	pktNats "escapedesk-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the email job queue and delivers through SMTP.
// Jobs are enqueued by the event bridge below, so a slow mail server
// never blocks a request handler.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var job dto.EmailJobMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		log.Printf("[ERROR] Failed to unmarshal email job: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing email job %q for %s", job.Kind, job.ToEmail)

	var err error
	switch job.Kind {
	case "booking_confirmation":
		err = cs.emailService.SendBookingConfirmation(job.ToEmail, job.Reference, job.ActivityName, job.Slot)
	case "booking_cancellation":
		err = cs.emailService.SendBookingCancellation(job.ToEmail, job.Reference, job.RefundNote)
	case "waiver_signing_link":
		err = cs.emailService.SendWaiverSigningLink(job.ToEmail, job.Participant, job.WaiverCode)
	case "waiver_confirmation":
		err = cs.emailService.SendWaiverConfirmation(job.ToEmail, job.Participant, job.WaiverCode)
	default:
		log.Printf("[WARN] Unknown email job kind %q, dropping", job.Kind)
		msg.Ack()
		return
	}

	if err != nil {
		log.Printf("[ERROR] Email job %q for %s failed: %v", job.Kind, job.ToEmail, err)
		msg.Nack() // Retriable: SMTP hiccup
		return
	}

	log.Printf("[SUCCESS] Email %q delivered to %s", job.Kind, job.ToEmail)
	msg.Ack()
}

// EmailEventBridge turns domain events from the bus into email jobs on
// the in-process queue.
type EmailEventBridge struct {
	subscriber *pktNats.Subscriber
	publisher  IPublisherService
}

func NewEmailEventBridge(subscriber *pktNats.Subscriber, publisher IPublisherService) *EmailEventBridge {
	return &EmailEventBridge{
		subscriber: subscriber,
		publisher:  publisher,
	}
}

func (b *EmailEventBridge) Start() error {
	return b.subscriber.Subscribe("events.>", "email-worker", b.handleEvent)
}

func (b *EmailEventBridge) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	str := func(key string) string {
		v, _ := payload[key].(string)
		return v
	}

	var job *dto.EmailJobMessage

	switch event.EventType() {
	case "BOOKING_CREATED":
		job = &dto.EmailJobMessage{
			Kind:         "booking_confirmation",
			ToEmail:      str("customer_email"),
			Reference:    str("reference"),
			ActivityName: str("activity_name"),
			Slot:         str("slot"),
		}
	case "BOOKING_CANCELLED":
		job = &dto.EmailJobMessage{
			Kind:       "booking_cancellation",
			ToEmail:    str("customer_email"),
			Reference:  str("reference"),
			RefundNote: str("refund_note"),
		}
	case "WAIVER_SIGNATURE_REQUESTED":
		job = &dto.EmailJobMessage{
			Kind:        "waiver_signing_link",
			ToEmail:     str("participant_email"),
			Participant: str("participant_name"),
			WaiverCode:  str("waiver_code"),
		}
	case "WAIVER_SIGNED":
		job = &dto.EmailJobMessage{
			Kind:        "waiver_confirmation",
			ToEmail:     str("participant_email"),
			Participant: str("participant_name"),
			WaiverCode:  str("waiver_code"),
		}
	default:
		return nil
	}

	if job.ToEmail == "" {
		return nil
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal email job: %w", err)
	}
	return b.publisher.Publish(ctx, data)
}
