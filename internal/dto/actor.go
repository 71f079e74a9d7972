package dto

import (
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
)

// CreateActorRequest defines the data needed to register a tracked actor.
type CreateActorRequest struct {
	Name        string           `json:"name" binding:"required"`
	Kind        domain.ActorKind `json:"kind" binding:"required,oneof=character npc vehicle"`
	OwnerUserID string           `json:"ownerUserID" binding:"required"`
	Money       *MoneyPayload    `json:"money"`
}

// MoneyPayload carries a purse over the wire. Pointer fields distinguish
// omitted denominations from explicit zeros; omitted means 0.
type MoneyPayload struct {
	Gold   *int64 `json:"gold"`
	Silver *int64 `json:"silver"`
	Copper *int64 `json:"copper"`
	Nickel *int64 `json:"nickel"`
}

// ToDomain converts the payload to a domain Money, defaulting absent fields to 0.
func (p *MoneyPayload) ToDomain() domain.Money {
	if p == nil {
		return domain.Money{}
	}
	var m domain.Money
	if p.Gold != nil {
		m.Gold = *p.Gold
	}
	if p.Silver != nil {
		m.Silver = *p.Silver
	}
	if p.Copper != nil {
		m.Copper = *p.Copper
	}
	if p.Nickel != nil {
		m.Nickel = *p.Nickel
	}
	return m
}

// ActorResponse is the API representation of an actor and its purse.
type ActorResponse struct {
	ActorID     string           `json:"actorID"`
	Name        string           `json:"name"`
	Kind        domain.ActorKind `json:"kind"`
	OwnerUserID string           `json:"ownerUserID"`
	Money       domain.Money     `json:"money"`
	TotalWorth  string           `json:"totalWorth"` // decimal gold value, display only
}

// ToActorResponse converts a domain.Actor to its response DTO.
func ToActorResponse(a *domain.Actor) ActorResponse {
	return ActorResponse{
		ActorID:     a.ActorID,
		Name:        a.Name,
		Kind:        a.Kind,
		OwnerUserID: a.OwnerUserID,
		Money:       a.Money,
		TotalWorth:  a.Money.TotalWorth().String(),
	}
}
