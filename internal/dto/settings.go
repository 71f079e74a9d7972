package dto

import (
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
)

// UpdateSettingsRequest updates a user's preferences. Pointer distinguishes
// "leave unchanged" from an explicit false.
type UpdateSettingsRequest struct {
	ShowNotifications *bool `json:"showNotifications"`
}

// SettingsResponse is the API representation of user settings.
type SettingsResponse struct {
	UserID            string `json:"userID"`
	ShowNotifications bool   `json:"showNotifications"`
}

// ToSettingsResponse converts domain settings to the response DTO.
func ToSettingsResponse(s *domain.UserSettings) SettingsResponse {
	return SettingsResponse{
		UserID:            s.UserID,
		ShowNotifications: s.ShowNotifications,
	}
}

// ListNotificationsResponse wraps the pending notifications for a user.
type ListNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}
