package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vttkeeper/coin_purse_app/internal/apperrors"
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	portsrepo "github.com/vttkeeper/coin_purse_app/internal/core/ports/repositories"
	"github.com/vttkeeper/coin_purse_app/internal/models"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// FindUserSettings retrieves a user's settings row.
func (r *PgxSettingsRepository) FindUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
		SELECT user_id, show_notifications, created_at, created_by, last_updated_at, last_updated_by
		FROM user_settings
		WHERE user_id = $1;
	`
	var m models.UserSettings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.ShowNotifications,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for user %s: %w", userID, err)
	}

	return &domain.UserSettings{
		UserID:            m.UserID,
		ShowNotifications: m.ShowNotifications,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

// SaveUserSettings upserts a user's settings row.
func (r *PgxSettingsRepository) SaveUserSettings(ctx context.Context, settings domain.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, show_notifications, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET show_notifications = EXCLUDED.show_notifications,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		settings.UserID,
		settings.ShowNotifications,
		settings.CreatedAt,
		settings.CreatedBy,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings for user %s: %w", settings.UserID, err)
	}
	return nil
}

// GetDeploymentFlag reads a deployment-scoped flag, defaulting to false when unset.
func (r *PgxSettingsRepository) GetDeploymentFlag(ctx context.Context, key string) (bool, error) {
	query := `SELECT flag_value FROM deployment_flags WHERE flag_key = $1;`

	var value bool
	err := r.Pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read deployment flag %s: %w", key, err)
	}
	return value, nil
}

// SetDeploymentFlag upserts a deployment-scoped flag.
func (r *PgxSettingsRepository) SetDeploymentFlag(ctx context.Context, key string, value bool) error {
	query := `
		INSERT INTO deployment_flags (flag_key, flag_value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (flag_key) DO UPDATE
		SET flag_value = EXCLUDED.flag_value, updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set deployment flag %s: %w", key, err)
	}
	return nil
}
