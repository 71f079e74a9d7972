package services

import (
	"context"

	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	"github.com/vttkeeper/coin_purse_app/internal/dto"
)

// PurseSchedulerSvc defines the debounced intake side of purse normalization
type PurseSchedulerSvc interface {
	// HandleChange filters an actor change notification and, when it is a
	// non-internal money change on a character, schedules a debounced
	// conversion for that actor.
	HandleChange(ctx context.Context, n domain.ChangeNotification)

	// Shutdown cancels every pending conversion timer.
	Shutdown()
}

// PurseConverterSvc defines the apply-step
type PurseConverterSvc interface {
	// PerformConversion normalizes the actor's purse. With manual=true the
	// conversion runs even when no optimization is needed and user feedback
	// is always surfaced.
	PerformConversion(ctx context.Context, actorID string, manual bool) (dto.ExchangeResponse, error)
}

// PurseSvcFacade combines all purse normalization service interfaces
type PurseSvcFacade interface {
	PurseSchedulerSvc
	PurseConverterSvc
}
