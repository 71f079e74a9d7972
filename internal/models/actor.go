package models

// Actor is the database representation of a tracked actor and its purse.
// The purse is stored denormalized as four bigint columns.
type Actor struct {
	ActorID     string `db:"actor_id"`
	Name        string `db:"name"`
	Kind        string `db:"kind"`
	OwnerUserID string `db:"owner_user_id"`
	Gold        int64  `db:"gold"`
	Silver      int64  `db:"silver"`
	Copper      int64  `db:"copper"`
	Nickel      int64  `db:"nickel"`
	AuditFields
}
