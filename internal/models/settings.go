package models

import "time"

// UserSettings is the database representation of per-user preferences.
type UserSettings struct {
	UserID            string `db:"user_id"`
	ShowNotifications bool   `db:"show_notifications"`
	AuditFields
}

// DeploymentFlag is a deployment-scoped boolean marker row.
type DeploymentFlag struct {
	FlagKey   string    `db:"flag_key"`
	FlagValue bool      `db:"flag_value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Notification is the database representation of one outbox message.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	Kind           string    `db:"kind"`
	Message        string    `db:"message"`
	CreatedAt      time.Time `db:"created_at"`
	Delivered      bool      `db:"delivered"`
}
