package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	portsrepo "github.com/vttkeeper/coin_purse_app/internal/core/ports/repositories"
	portssvc "github.com/vttkeeper/coin_purse_app/internal/core/ports/services"
)

// notificationService implements NotificationSvcFacade over the outbox table.
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) Notify(ctx context.Context, userID string, kind domain.NotificationKind, message string) error {
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Kind:           kind,
		Message:        message,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}

func (s *notificationService) ListNotificationsForUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsForUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return notifications, nil
}
