package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vttkeeper/coin_purse_app/internal/apperrors"
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	portsrepo "github.com/vttkeeper/coin_purse_app/internal/core/ports/repositories"
	"github.com/vttkeeper/coin_purse_app/internal/models"
)

type PgxActorRepository struct {
	BaseRepository
}

func newPgxActorRepository(db *pgxpool.Pool) portsrepo.ActorRepositoryFacade {
	return &PgxActorRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ActorRepositoryFacade = (*PgxActorRepository)(nil)

// Helper to convert domain.Actor to models.Actor
func toModelActor(d domain.Actor) models.Actor {
	return models.Actor{
		ActorID:     d.ActorID,
		Name:        d.Name,
		Kind:        string(d.Kind),
		OwnerUserID: d.OwnerUserID,
		Gold:        d.Money.Gold,
		Silver:      d.Money.Silver,
		Copper:      d.Money.Copper,
		Nickel:      d.Money.Nickel,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Actor to domain.Actor
func toDomainActor(m models.Actor) domain.Actor {
	return domain.Actor{
		ActorID:     m.ActorID,
		Name:        m.Name,
		Kind:        domain.ActorKind(m.Kind),
		OwnerUserID: m.OwnerUserID,
		Money: domain.Money{
			Gold:   m.Gold,
			Silver: m.Silver,
			Copper: m.Copper,
			Nickel: m.Nickel,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveActor inserts a new actor row.
func (r *PgxActorRepository) SaveActor(ctx context.Context, actor domain.Actor) error {
	m := toModelActor(actor)

	query := `
		INSERT INTO actors (actor_id, name, kind, owner_user_id, gold, silver, copper, nickel, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ActorID,
		m.Name,
		m.Kind,
		m.OwnerUserID,
		m.Gold,
		m.Silver,
		m.Copper,
		m.Nickel,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save actor %s: %w", actor.ActorID, err)
	}
	return nil
}

// FindActorByID retrieves an actor by its ID.
func (r *PgxActorRepository) FindActorByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	query := `
		SELECT actor_id, name, kind, owner_user_id, gold, silver, copper, nickel, created_at, created_by, last_updated_at, last_updated_by
		FROM actors
		WHERE actor_id = $1;
	`
	var m models.Actor
	err := r.Pool.QueryRow(ctx, query, actorID).Scan(
		&m.ActorID,
		&m.Name,
		&m.Kind,
		&m.OwnerUserID,
		&m.Gold,
		&m.Silver,
		&m.Copper,
		&m.Nickel,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find actor %s: %w", actorID, err)
	}

	actor := toDomainActor(m)
	return &actor, nil
}

// UpdateActorMoney replaces the purse columns of an actor. The write options
// only matter to in-process listeners; they are not persisted, the updating
// user lands in the audit columns.
func (r *PgxActorRepository) UpdateActorMoney(ctx context.Context, actorID string, money domain.Money, opts domain.WriteOptions) error {
	now := time.Now().UTC()

	query := `
		UPDATE actors
		SET gold = $2, silver = $3, copper = $4, nickel = $5, last_updated_at = $6, last_updated_by = $7
		WHERE actor_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		actorID,
		money.Gold,
		money.Silver,
		money.Copper,
		money.Nickel,
		now,
		opts.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update money for actor %s: %w", actorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
