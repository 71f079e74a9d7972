package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vttkeeper/coin_purse_app/internal/apperrors"
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	portsrepo "github.com/vttkeeper/coin_purse_app/internal/core/ports/repositories"
	portssvc "github.com/vttkeeper/coin_purse_app/internal/core/ports/services"
	"github.com/vttkeeper/coin_purse_app/internal/dto"
)

// welcomeShownFlag is the deployment-scoped first-run marker.
const welcomeShownFlag = "welcome_shown"

// settingsService implements SettingsSvcFacade. Users without a persisted
// row get the configured defaults; a row is only written on first update.
type settingsService struct {
	BaseService
	settingsRepo             portsrepo.SettingsRepositoryFacade
	showNotificationsDefault bool
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, showNotificationsDefault bool) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingsRepo:             settingsRepo,
		showNotificationsDefault: showNotificationsDefault,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	settings, err := s.settingsRepo.FindUserSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.UserSettings{
				UserID:            userID,
				ShowNotifications: s.showNotificationsDefault,
			}, nil
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateUserSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error) {
	settings, err := s.GetUserSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.ShowNotifications != nil {
		settings.ShowNotifications = *req.ShowNotifications
	}
	now := time.Now().UTC()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = now
		settings.CreatedBy = userID
	}
	settings.LastUpdatedAt = now
	settings.LastUpdatedBy = userID

	if err := s.settingsRepo.SaveUserSettings(ctx, *settings); err != nil {
		return nil, fmt.Errorf("failed to save user settings: %w", err)
	}
	return settings, nil
}

// MarkWelcomeShown returns true exactly once per deployment, the first time
// it is called, and persists the flag so restarts stay quiet.
func (s *settingsService) MarkWelcomeShown(ctx context.Context) (bool, error) {
	shown, err := s.settingsRepo.GetDeploymentFlag(ctx, welcomeShownFlag)
	if err != nil {
		return false, fmt.Errorf("failed to read welcome flag: %w", err)
	}
	if shown {
		return false, nil
	}
	if err := s.settingsRepo.SetDeploymentFlag(ctx, welcomeShownFlag, true); err != nil {
		return false, fmt.Errorf("failed to set welcome flag: %w", err)
	}
	return true, nil
}
