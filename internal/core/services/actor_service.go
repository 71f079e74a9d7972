package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	portsrepo "github.com/vttkeeper/coin_purse_app/internal/core/ports/repositories"
	portssvc "github.com/vttkeeper/coin_purse_app/internal/core/ports/services"
	"github.com/vttkeeper/coin_purse_app/internal/dto"
)

// actorService implements ActorSvcFacade. Besides CRUD it plays the role of
// the host's update hook stream: every money write is fanned out to the
// registered change listeners with its write options attached.
type actorService struct {
	BaseService
	actorRepo portsrepo.ActorRepositoryFacade

	mu        sync.RWMutex
	listeners []func(ctx context.Context, n domain.ChangeNotification)
}

// NewActorService creates a new actor service.
func NewActorService(actorRepo portsrepo.ActorRepositoryFacade) portssvc.ActorSvcFacade {
	return &actorService{actorRepo: actorRepo}
}

var _ portssvc.ActorSvcFacade = (*actorService)(nil)

func (s *actorService) CreateActor(ctx context.Context, req dto.CreateActorRequest, creatorUserID string) (*domain.Actor, error) {
	now := time.Now().UTC()

	actor := domain.Actor{
		ActorID:     uuid.NewString(),
		Name:        req.Name,
		Kind:        req.Kind,
		OwnerUserID: req.OwnerUserID,
		Money:       req.Money.ToDomain(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.actorRepo.SaveActor(ctx, actor); err != nil {
		return nil, fmt.Errorf("failed to create actor in service: %w", err)
	}

	return &actor, nil
}

func (s *actorService) GetActorByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	actor, err := s.actorRepo.FindActorByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get actor by ID in service: %w", err)
	}
	return actor, nil
}

func (s *actorService) UpdateActorMoney(ctx context.Context, actorID string, money domain.Money, opts domain.WriteOptions) (*domain.Actor, error) {
	actor, err := s.actorRepo.FindActorByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load actor for money update: %w", err)
	}

	if err := s.actorRepo.UpdateActorMoney(ctx, actorID, money, opts); err != nil {
		return nil, fmt.Errorf("failed to update actor money: %w", err)
	}
	actor.Money = money

	s.dispatch(ctx, domain.ChangeNotification{
		ActorID:       actorID,
		Kind:          actor.Kind,
		ChangedFields: []string{"money"},
		Options:       opts,
	})

	return actor, nil
}

// AddChangeListener registers a listener for actor mutations. Listeners run
// synchronously on the writing goroutine, in registration order.
func (s *actorService) AddChangeListener(listener func(ctx context.Context, n domain.ChangeNotification)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *actorService) dispatch(ctx context.Context, n domain.ChangeNotification) {
	s.mu.RLock()
	listeners := s.listeners
	s.mu.RUnlock()

	for _, l := range listeners {
		l(ctx, n)
	}
}
