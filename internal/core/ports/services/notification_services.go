package services

import (
	"context"

	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
)

// NotifierSvc is the user feedback surface: messages land in a pull-based
// outbox rather than being pushed to a UI.
type NotifierSvc interface {
	// Notify records a message for the user.
	Notify(ctx context.Context, userID string, kind domain.NotificationKind, message string) error
}

// NotificationReaderSvc defines read access to the outbox
type NotificationReaderSvc interface {
	// ListNotificationsForUser drains up to limit pending notifications.
	ListNotificationsForUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
}

// NotificationSvcFacade combines the notification service interfaces
type NotificationSvcFacade interface {
	NotifierSvc
	NotificationReaderSvc
}
