package repositories

import (
	"context"

	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
)

// ActorReader defines read operations for actor data
type ActorReader interface {
	// FindActorByID retrieves a specific actor by its identifier.
	// Returns apperrors.ErrNotFound when the actor does not exist.
	FindActorByID(ctx context.Context, actorID string) (*domain.Actor, error)
}

// ActorWriter defines write operations for actor data
type ActorWriter interface {
	// SaveActor persists a new actor.
	SaveActor(ctx context.Context, actor domain.Actor) error

	// UpdateActorMoney replaces the actor's money sub-record. The write
	// options travel with the change so downstream notification handling can
	// tell the service's own corrective writes from user edits.
	UpdateActorMoney(ctx context.Context, actorID string, money domain.Money, opts domain.WriteOptions) error
}

// ActorRepositoryFacade combines all actor-related repository interfaces
type ActorRepositoryFacade interface {
	ActorReader
	ActorWriter
}

// ActorRepositoryWithTx extends ActorRepositoryFacade with transaction capabilities
type ActorRepositoryWithTx interface {
	ActorRepositoryFacade
	TransactionManager
}
