package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/vttkeeper/coin_purse_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ActorRepo:        newPgxActorRepository(dbPool),
		SettingsRepo:     newPgxSettingsRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
