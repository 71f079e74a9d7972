package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vttkeeper/coin_purse_app/internal/apperrors"
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	portsrepo "github.com/vttkeeper/coin_purse_app/internal/core/ports/repositories"
	portssvc "github.com/vttkeeper/coin_purse_app/internal/core/ports/services"
	"github.com/vttkeeper/coin_purse_app/internal/dto"
	"github.com/vttkeeper/coin_purse_app/internal/utils"
)

// conversionTimeout bounds an apply-step fired from a debounce timer, which
// has no request context of its own.
const conversionTimeout = 5 * time.Second

// purseService implements PurseSvcFacade: it observes actor change
// notifications, debounces them per actor, and normalizes the purse once a
// quiet period elapses. Writes it issues are tagged internal so the change
// stream never re-schedules them.
type purseService struct {
	BaseService
	actorRepo portsrepo.ActorRepositoryFacade
	settings  portssvc.SettingsSvcFacade
	notifier  portssvc.NotifierSvc
	coalescer *Coalescer
	logger    *slog.Logger
}

// PurseServiceOption is a functional option for configuring the purse service
type PurseServiceOption func(*purseService)

// WithClock substitutes the scheduling clock, for deterministic tests.
func WithClock(clock Clock) PurseServiceOption {
	return func(s *purseService) {
		s.coalescer.clock = clock
	}
}

// WithPurseLogger sets the logger used by timer-fired conversions.
func WithPurseLogger(logger *slog.Logger) PurseServiceOption {
	return func(s *purseService) {
		s.logger = logger
	}
}

// NewPurseService creates a purse service debouncing conversions with the
// given quiet period.
func NewPurseService(
	actorRepo portsrepo.ActorRepositoryFacade,
	settings portssvc.SettingsSvcFacade,
	notifier portssvc.NotifierSvc,
	quietPeriod time.Duration,
	options ...PurseServiceOption,
) portssvc.PurseSvcFacade {
	svc := &purseService{
		actorRepo: actorRepo,
		settings:  settings,
		notifier:  notifier,
		logger:    slog.Default(),
	}
	svc.coalescer = NewCoalescer(quietPeriod, NewRealClock(), svc.fireConversion)

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.PurseSvcFacade = (*purseService)(nil)

// HandleChange filters one change notification and schedules a debounced
// conversion when it is relevant. Internal writes are this service's own
// corrective updates echoed back; scheduling on them would loop forever.
func (s *purseService) HandleChange(ctx context.Context, n domain.ChangeNotification) {
	if n.Options.Internal {
		return
	}
	if n.Kind != domain.ActorKindCharacter {
		return
	}
	if !n.TouchesMoney() {
		return
	}
	s.LogDebug(ctx, "Scheduling purse conversion", slog.String("actor_id", n.ActorID))
	s.coalescer.Schedule(n.ActorID)
}

// Shutdown cancels all pending conversion timers.
func (s *purseService) Shutdown() {
	s.coalescer.CancelAll()
}

// fireConversion is the coalescer callback for a debounced conversion.
func (s *purseService) fireConversion(actorID string) {
	ctx, cancel := context.WithTimeout(context.Background(), conversionTimeout)
	defer cancel()

	if _, err := s.PerformConversion(ctx, actorID, false); err != nil {
		s.logger.Error("Debounced purse conversion failed",
			slog.String("actor_id", actorID),
			slog.String("error", err.Error()))
	}
}

// PerformConversion is the apply-step: read the current purse, normalize it,
// and conditionally write it back. manual forces the conversion and the user
// feedback regardless of the notification setting.
func (s *purseService) PerformConversion(ctx context.Context, actorID string, manual bool) (dto.ExchangeResponse, error) {
	// Supersede any pending debounced conversion for this actor.
	s.coalescer.Remove(actorID)

	actor, err := s.actorRepo.FindActorByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Actor deleted between scheduling and firing. Not an error.
			s.LogDebug(ctx, "Actor gone before conversion", slog.String("actor_id", actorID))
			return dto.ExchangeResponse{Outcome: dto.OutcomeActorGone}, nil
		}
		return dto.ExchangeResponse{}, fmt.Errorf("failed to load actor for conversion: %w", err)
	}

	current := actor.Money
	if !manual && !current.NeedsOptimization() {
		return dto.ExchangeResponse{Outcome: dto.OutcomeAlreadyOptimized, Money: &current}, nil
	}

	optimized := current.Optimize()

	if optimized.ToBaseUnits() < 0 {
		// Insufficient funds: the deficit-causing edit already landed, so
		// clean up by resetting the purse to zero.
		zero := domain.Money{}
		if err := s.writeBack(ctx, actor, zero); err != nil {
			return dto.ExchangeResponse{}, err
		}
		s.notifyOwner(ctx, actor, manual, domain.NotificationWarning,
			fmt.Sprintf("Insufficient funds: purse of %s reset to zero", actor.Name))
		return dto.ExchangeResponse{Outcome: dto.OutcomeInsufficientFunds, Money: &zero}, nil
	}

	if optimized == current {
		// Only reachable with manual=true.
		s.notifyOwner(ctx, actor, manual, domain.NotificationInfo,
			fmt.Sprintf("Purse of %s is already optimized", actor.Name))
		return dto.ExchangeResponse{Outcome: dto.OutcomeAlreadyOptimized, Money: &current}, nil
	}

	if err := s.writeBack(ctx, actor, optimized); err != nil {
		return dto.ExchangeResponse{}, err
	}
	s.notifyOwner(ctx, actor, manual, domain.NotificationInfo,
		fmt.Sprintf("Optimized to %s for %s", utils.FormatPurse(optimized), actor.Name))

	return dto.ExchangeResponse{Outcome: dto.OutcomeOptimized, Money: &optimized}, nil
}

// writeBack persists the corrected purse, tagged internal for loop prevention.
func (s *purseService) writeBack(ctx context.Context, actor *domain.Actor, money domain.Money) error {
	opts := domain.WriteOptions{Internal: true, UserID: actor.OwnerUserID}
	if err := s.actorRepo.UpdateActorMoney(ctx, actor.ActorID, money, opts); err != nil {
		return fmt.Errorf("failed to write optimized purse: %w", err)
	}
	return nil
}

// notifyOwner surfaces user feedback, gated by the owner's notification
// setting unless the conversion was manually triggered.
func (s *purseService) notifyOwner(ctx context.Context, actor *domain.Actor, forced bool, kind domain.NotificationKind, message string) {
	if !forced {
		settings, err := s.settings.GetUserSettings(ctx, actor.OwnerUserID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load notification settings", slog.String("user_id", actor.OwnerUserID))
			return
		}
		if !settings.ShowNotifications {
			return
		}
	}
	if err := s.notifier.Notify(ctx, actor.OwnerUserID, kind, message); err != nil {
		// Feedback is best effort; the conversion itself already succeeded.
		s.LogError(ctx, err, "Failed to deliver purse notification", slog.String("user_id", actor.OwnerUserID))
	}
}
