package services

import (
	portsrepo "github.com/vttkeeper/coin_purse_app/internal/core/ports/repositories"
	portssvc "github.com/vttkeeper/coin_purse_app/internal/core/ports/services"
	"github.com/vttkeeper/coin_purse_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Notification = NewNotificationService(repos.NotificationRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo, cfg.ShowNotificationsDefault)

	container.Actor = NewActorService(repos.ActorRepo)
	container.Purse = NewPurseService(
		repos.ActorRepo,
		container.Settings,
		container.Notification,
		cfg.QuietPeriod,
	)

	// Wire the purse normalizer into the actor change stream. Its own
	// corrective writes come back through the same stream tagged internal
	// and are ignored there.
	container.Actor.AddChangeListener(container.Purse.HandleChange)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ActorSvcFacade        = (*actorService)(nil)
	_ portssvc.PurseSvcFacade        = (*purseService)(nil)
	_ portssvc.SettingsSvcFacade     = (*settingsService)(nil)
	_ portssvc.NotificationSvcFacade = (*notificationService)(nil)
)
