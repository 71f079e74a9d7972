package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	portssvc "github.com/vttkeeper/coin_purse_app/internal/core/ports/services"
	"github.com/vttkeeper/coin_purse_app/internal/dto"
	"github.com/vttkeeper/coin_purse_app/internal/middleware"
)

// purseHandler handles the manual exchange trigger and the inbound change
// webhook.
type purseHandler struct {
	purseService portssvc.PurseSvcFacade
}

// newPurseHandler creates a new purseHandler.
func newPurseHandler(ps portssvc.PurseSvcFacade) *purseHandler {
	return &purseHandler{purseService: ps}
}

// dtoWriteOptions builds the write options for a user-originated edit.
func dtoWriteOptions(userID string) domain.WriteOptions {
	return domain.WriteOptions{Internal: false, UserID: userID}
}

// RegisterChangeRoutes registers the inbound change-notification webhook,
// rate limited per client IP.
func RegisterChangeRoutes(rg *gin.RouterGroup, purseService portssvc.PurseSvcFacade, rateFormat string) {
	h := newPurseHandler(purseService)

	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		// Fall back to a sane limit rather than refusing to start
		rate, _ = limiter.NewRateFromFormatted("60-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	rg.POST("/changes", middleware.RateLimit(ipLimiter), h.handleChange)
}

// exchange godoc
// @Summary Manually normalize an actor's purse
// @Description Runs the currency exchange immediately; requires confirmation
// @Tags actors
// @Accept json
// @Produce json
// @Param actorID path string true "Actor ID"
// @Param confirm body dto.ExchangeRequest true "Confirmation"
// @Success 200 {object} dto.ExchangeResponse
// @Failure 400 {object} map[string]string "Not confirmed"
// @Security BearerAuth
// @Router /actors/{actorID}/money/exchange [post]
func (h *purseHandler) exchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID := c.Param("actorID")

	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exchange must be confirmed"})
		return
	}

	resp, err := h.purseService.PerformConversion(c.Request.Context(), actorID, true)
	if err != nil {
		logger.Error("Manual purse conversion failed", slog.String("actor_id", actorID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to perform exchange"})
		return
	}
	if resp.Outcome == dto.OutcomeActorGone {
		c.JSON(http.StatusNotFound, gin.H{"error": "Actor not found"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handleChange godoc
// @Summary Ingest a change notification
// @Description Accepts a host-originated actor change; relevant money changes schedule a debounced normalization
// @Tags changes
// @Accept json
// @Produce json
// @Param change body dto.ChangeWebhookRequest true "Change notification"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /changes [post]
func (h *purseHandler) handleChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ChangeWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for handleChange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.purseService.HandleChange(c.Request.Context(), req.ToDomain())

	// Accepted regardless of relevance; filtering is the service's business.
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
