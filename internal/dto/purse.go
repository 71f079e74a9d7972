package dto

import (
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
)

// UpdateMoneyRequest is an external edit of an actor's money sub-record.
// The whole purse is replaced; absent denominations default to 0.
type UpdateMoneyRequest struct {
	Money MoneyPayload `json:"money" binding:"required"`
}

// ExchangeRequest is the manual-trigger confirmation. Confirm must be true;
// it stands in for the host's "confirm exchange for {name}?" dialog.
type ExchangeRequest struct {
	Confirm bool `json:"confirm" binding:"required"`
}

// ExchangeOutcome names the result of an apply-step.
type ExchangeOutcome string

const (
	OutcomeOptimized         ExchangeOutcome = "optimized"
	OutcomeAlreadyOptimized  ExchangeOutcome = "already_optimized"
	OutcomeInsufficientFunds ExchangeOutcome = "insufficient_funds"
	OutcomeActorGone         ExchangeOutcome = "actor_gone"
)

// ExchangeResponse reports what the apply-step did.
type ExchangeResponse struct {
	Outcome ExchangeOutcome `json:"outcome"`
	Money   *domain.Money   `json:"money,omitempty"`
}

// ChangeWebhookRequest is the inbound change-notification payload delivered
// by an embedding host for edits that did not go through this API.
type ChangeWebhookRequest struct {
	ActorID       string           `json:"actorID" binding:"required"`
	Kind          domain.ActorKind `json:"kind" binding:"required"`
	ChangedFields []string         `json:"changedFields" binding:"required"`
	Internal      bool             `json:"internal"`
	UserID        string           `json:"userID"`
}

// ToDomain converts the webhook payload to a domain change notification.
func (r ChangeWebhookRequest) ToDomain() domain.ChangeNotification {
	return domain.ChangeNotification{
		ActorID:       r.ActorID,
		Kind:          r.Kind,
		ChangedFields: r.ChangedFields,
		Options: domain.WriteOptions{
			Internal: r.Internal,
			UserID:   r.UserID,
		},
	}
}
