package repositories

import (
	"context"

	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
)

// SettingsReader defines read operations for user settings and deployment flags
type SettingsReader interface {
	// FindUserSettings retrieves a user's settings.
	// Returns apperrors.ErrNotFound when the user has none persisted yet.
	FindUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error)

	// GetDeploymentFlag reads a deployment-scoped boolean flag, defaulting
	// to false when the flag has never been set.
	GetDeploymentFlag(ctx context.Context, key string) (bool, error)
}

// SettingsWriter defines write operations for user settings and deployment flags
type SettingsWriter interface {
	// SaveUserSettings upserts a user's settings.
	SaveUserSettings(ctx context.Context, settings domain.UserSettings) error

	// SetDeploymentFlag upserts a deployment-scoped boolean flag.
	SetDeploymentFlag(ctx context.Context, key string, value bool) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
