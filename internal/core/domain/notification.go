package domain

import "time"

// NotificationKind is the severity of a user-facing message.
type NotificationKind string

const (
	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
)

// Notification is one user-facing message in the outbox, pulled by the
// frontend rather than pushed.
type Notification struct {
	NotificationID string           `json:"notificationID"`
	UserID         string           `json:"userID"`
	Kind           NotificationKind `json:"kind"`
	Message        string           `json:"message"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// UserSettings holds the per-user preferences this service persists.
type UserSettings struct {
	UserID            string `json:"userID"`
	ShowNotifications bool   `json:"showNotifications"`
	AuditFields
}
