package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vttkeeper/coin_purse_app/internal/apperrors"
	portssvc "github.com/vttkeeper/coin_purse_app/internal/core/ports/services"
	"github.com/vttkeeper/coin_purse_app/internal/dto"
	"github.com/vttkeeper/coin_purse_app/internal/middleware"
)

// settingsHandler handles user settings and notification outbox requests.
type settingsHandler struct {
	settingsService     portssvc.SettingsSvcFacade
	notificationService portssvc.NotificationSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvcFacade, ns portssvc.NotificationSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss, notificationService: ns}
}

// RegisterUserRoutes registers settings and notification routes.
func RegisterUserRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade, notificationService portssvc.NotificationSvcFacade) {
	h := newSettingsHandler(settingsService, notificationService)

	users := rg.Group("/users")
	{
		users.GET("/:userID/settings", h.getSettings)
		users.PUT("/:userID/settings", h.updateSettings)
		users.GET("/:userID/notifications", h.listNotifications)
	}
}

// requireSelf ensures users can only touch their own settings.
func requireSelf(c *gin.Context) (string, bool) {
	userID := c.Param("userID")
	authedUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	if authedUserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrForbidden.Error()})
		return "", false
	}
	return userID, true
}

// getSettings godoc
// @Summary Get user settings
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} dto.SettingsResponse
// @Security BearerAuth
// @Router /users/{userID}/settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireSelf(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.GetUserSettings(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get user settings", slog.String("user_id", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update user settings
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param settings body dto.UpdateSettingsRequest true "Settings patch"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /users/{userID}/settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireSelf(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateUserSettings(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to update user settings", slog.String("user_id", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// listNotifications godoc
// @Summary Drain pending notifications
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Param limit query int false "Max notifications" default(20)
// @Success 200 {object} dto.ListNotificationsResponse
// @Security BearerAuth
// @Router /users/{userID}/notifications [get]
func (h *settingsHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireSelf(c)
	if !ok {
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	notifications, err := h.notificationService.ListNotificationsForUser(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to list notifications", slog.String("user_id", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}

	c.JSON(http.StatusOK, dto.ListNotificationsResponse{Notifications: notifications})
}
