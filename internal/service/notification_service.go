package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"escapedesk-be/internal/model"
	"escapedesk-be/internal/pkg/logger"
	"escapedesk-be/internal/repository"
	"escapedesk-be/pkg/events"
	pktNats "escapedesk-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery pushes real-time updates to connected dashboards.
// Implemented by the WebSocket hub.
type NotificationDelivery interface {
	Send(tenantID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	config, err := s.repo.GetNotificationTypeByCode(ctx, typeCode)
	if err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Failed loading config for code '%s'", typeCode), map[string]interface{}{"error": err.Error()})
		return nil
	}
	if config == nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("No active config for code: '%s'", typeCode), nil)
		return nil
	}

	// Platform-wide announcements are push-only; persisting a row per
	// tenant would not scale.
	if config.TargetType == "BROADCAST" {
		notif := s.buildNotification(uuid.Nil, config, event)
		if s.delivery != nil {
			s.delivery.Broadcast(notif)
		}
		return nil
	}

	tenantID, ok := tenantFromPayload(event)
	if !ok {
		s.logger.Warn("NotificationService", fmt.Sprintf("No tenant_id in payload for event %s", event.EventType()), nil)
		return nil
	}

	notif := s.buildNotification(tenantID, config, event)

	if err := s.repo.Create(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for tenant %s", tenantID), map[string]interface{}{"error": err})
		return err // NATS will retry
	}

	if s.delivery != nil {
		s.delivery.Send(tenantID, notif)
	}
	return nil
}

func tenantFromPayload(event events.Event) (uuid.UUID, bool) {
	raw, ok := event.Payload()["tenant_id"]
	if !ok {
		return uuid.Nil, false
	}
	switch v := raw.(type) {
	case string:
		id, err := uuid.Parse(v)
		return id, err == nil
	case uuid.UUID:
		return v, true
	default:
		id, err := uuid.Parse(fmt.Sprintf("%v", v))
		return id, err == nil
	}
}

func (s *NotificationService) buildNotification(tenantID uuid.UUID, config *model.NotificationType, event events.Event) model.Notification {
	// Simple template engine: {key} placeholders filled from the payload.
	msg := config.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		msg = strings.ReplaceAll(msg, placeholder, fmt.Sprintf("%v", v))
	}

	entityType := ""
	var entityID *uuid.UUID
	if et, ok := payload["entity_type"].(string); ok {
		entityType = et
	}
	if eidStr, ok := payload["entity_id"].(string); ok {
		if eid, err := uuid.Parse(eidStr); err == nil {
			entityID = &eid
		}
	}

	metaMap := make(map[string]interface{})
	for k, v := range payload {
		metaMap[k] = v
	}
	if entityType != "" && entityID != nil {
		metaMap["action_url"] = fmt.Sprintf("/%ss/%s", entityType, entityID.String())
	}
	metaJSON, _ := json.Marshal(metaMap)

	return model.Notification{
		ID:         uuid.New(),
		TenantID:   tenantID,
		TypeCode:   config.Code,
		Title:      config.DisplayName,
		Message:    msg,
		Metadata:   datatypes.JSON(metaJSON),
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
		IsRead:     false,
	}
}

// GetNotifications fetches a tenant's notification inbox.
func (s *NotificationService) GetNotifications(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*model.Notification, int64, error) {
	notifications, err := s.repo.ListByTenant(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, tenantID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, unread, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, tenantID, id)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, tenantID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, tenantID)
}
