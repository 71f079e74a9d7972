package services

import (
	"context"

	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	"github.com/vttkeeper/coin_purse_app/internal/dto"
)

// ActorReaderSvc defines read operations for actor data
type ActorReaderSvc interface {
	// GetActorByID retrieves an actor by ID.
	GetActorByID(ctx context.Context, actorID string) (*domain.Actor, error)
}

// ActorWriterSvc defines write operations for actor data
type ActorWriterSvc interface {
	// CreateActor registers a new tracked actor.
	CreateActor(ctx context.Context, req dto.CreateActorRequest, creatorUserID string) (*domain.Actor, error)

	// UpdateActorMoney replaces the actor's purse and dispatches a change
	// notification to every registered listener, carrying the write options.
	UpdateActorMoney(ctx context.Context, actorID string, money domain.Money, opts domain.WriteOptions) (*domain.Actor, error)
}

// ActorChangeSource lets other services observe actor mutations. This is the
// in-process stand-in for the host's update hook stream.
type ActorChangeSource interface {
	// AddChangeListener registers a listener invoked after every money write.
	AddChangeListener(listener func(ctx context.Context, n domain.ChangeNotification))
}

// ActorSvcFacade combines all actor-related service interfaces
type ActorSvcFacade interface {
	ActorReaderSvc
	ActorWriterSvc
	ActorChangeSource
}
