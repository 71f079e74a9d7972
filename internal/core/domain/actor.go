package domain

// ActorKind distinguishes the entity categories the host tracks. Only
// characters carry a purse that is subject to normalization.
type ActorKind string

const (
	ActorKindCharacter ActorKind = "character"
	ActorKindNPC       ActorKind = "npc"
	ActorKindVehicle   ActorKind = "vehicle"
)

// Actor is a tracked entity (a character sheet) owning a coin purse.
type Actor struct {
	ActorID     string    `json:"actorID"`
	Name        string    `json:"name"`
	Kind        ActorKind `json:"kind"`
	OwnerUserID string    `json:"ownerUserID"`
	Money       Money     `json:"money"`
	AuditFields
}

// WriteOptions tags a money write with its provenance. Internal marks the
// service's own corrective writes so the change-notification path can
// suppress re-scheduling (loop prevention).
type WriteOptions struct {
	Internal bool   `json:"internal"`
	UserID   string `json:"userID"`
}

// ChangeNotification describes one mutation of a tracked actor, as delivered
// by the host event stream or by this service's own write path.
type ChangeNotification struct {
	ActorID       string
	Kind          ActorKind
	ChangedFields []string
	Options       WriteOptions
}

// TouchesMoney reports whether the change includes the money sub-record.
func (n ChangeNotification) TouchesMoney() bool {
	for _, f := range n.ChangedFields {
		if f == "money" {
			return true
		}
	}
	return false
}
