package services

import (
	"context"

	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	"github.com/vttkeeper/coin_purse_app/internal/dto"
)

// SettingsSvcFacade defines operations on per-user settings and
// deployment-scoped flags.
type SettingsSvcFacade interface {
	// GetUserSettings retrieves a user's settings, falling back to the
	// configured defaults when the user has none persisted.
	GetUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error)

	// UpdateUserSettings applies a partial settings update.
	UpdateUserSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error)

	// MarkWelcomeShown flips the deployment-wide first-run flag. It returns
	// true exactly once per deployment, for the one-time welcome message.
	MarkWelcomeShown(ctx context.Context) (bool, error)
}
