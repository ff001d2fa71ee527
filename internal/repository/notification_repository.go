package repository

import (
	"context"

	"escapedesk-be/internal/model"

	"github.com/google/uuid"
)

// NotificationRepository persists dashboard notifications. Kept outside
// the unit of work: notification writes are fire-and-forget and never
// join a business transaction.
type NotificationRepository interface {
	GetNotificationTypeByCode(ctx context.Context, code string) (*model.NotificationType, error)
	Create(ctx context.Context, notification *model.Notification) error
	ListByTenant(ctx context.Context, tenantId uuid.UUID, limit, offset int) ([]*model.Notification, error)
	CountUnread(ctx context.Context, tenantId uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, tenantId, notificationId uuid.UUID) error
	MarkAllRead(ctx context.Context, tenantId uuid.UUID) error
}
