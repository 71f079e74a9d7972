package repositories

import (
	"context"

	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
)

// NotificationWriter defines write operations for the notification outbox
type NotificationWriter interface {
	// SaveNotification appends a notification to the outbox.
	SaveNotification(ctx context.Context, notification domain.Notification) error
}

// NotificationReader defines read operations for the notification outbox
type NotificationReader interface {
	// ListNotificationsForUser retrieves a user's pending notifications,
	// oldest first, and marks them delivered.
	ListNotificationsForUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
