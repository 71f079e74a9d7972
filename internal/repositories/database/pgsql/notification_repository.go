package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	portsrepo "github.com/vttkeeper/coin_purse_app/internal/core/ports/repositories"
	"github.com/vttkeeper/coin_purse_app/internal/models"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// SaveNotification appends a notification to the outbox.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, user_id, kind, message, created_at, delivered)
		VALUES ($1, $2, $3, $4, $5, FALSE);
	`
	_, err := r.Pool.Exec(ctx, query,
		notification.NotificationID,
		notification.UserID,
		string(notification.Kind),
		notification.Message,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification for user %s: %w", notification.UserID, err)
	}
	return nil
}

// ListNotificationsForUser returns the user's undelivered notifications,
// oldest first, marking them delivered in the same transaction.
func (r *PgxNotificationRepository) ListNotificationsForUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE notifications
		SET delivered = TRUE
		WHERE notification_id IN (
			SELECT notification_id FROM notifications
			WHERE user_id = $1 AND delivered = FALSE
			ORDER BY created_at ASC
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING notification_id, user_id, kind, message, created_at;
	`
	rows, err := tx.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
	}

	var result []domain.Notification
	for rows.Next() {
		var m models.Notification
		if err := rows.Scan(&m.NotificationID, &m.UserID, &m.Kind, &m.Message, &m.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		result = append(result, domain.Notification{
			NotificationID: m.NotificationID,
			UserID:         m.UserID,
			Kind:           domain.NotificationKind(m.Kind),
			Message:        m.Message,
			CreatedAt:      m.CreatedAt,
		})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading notification rows: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return result, nil
}
