package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vttkeeper/coin_purse_app/internal/apperrors"
	portssvc "github.com/vttkeeper/coin_purse_app/internal/core/ports/services"
	"github.com/vttkeeper/coin_purse_app/internal/dto"
	"github.com/vttkeeper/coin_purse_app/internal/middleware"
)

// actorHandler handles HTTP requests related to actors and their purses.
type actorHandler struct {
	actorService portssvc.ActorSvcFacade
}

// newActorHandler creates a new actorHandler.
func newActorHandler(as portssvc.ActorSvcFacade) *actorHandler {
	return &actorHandler{actorService: as}
}

// RegisterActorRoutes registers routes related to actors.
func RegisterActorRoutes(rg *gin.RouterGroup, actorService portssvc.ActorSvcFacade, purseService portssvc.PurseSvcFacade) {
	h := newActorHandler(actorService)
	p := newPurseHandler(purseService)

	actors := rg.Group("/actors")
	{
		actors.POST("", h.createActor)
		actors.GET("/:actorID", h.getActor)
		actors.PUT("/:actorID/money", h.updateMoney)
		actors.POST("/:actorID/money/exchange", p.exchange)
	}
}

// createActor godoc
// @Summary Register a tracked actor
// @Description Creates a new actor with an optional starting purse
// @Tags actors
// @Accept json
// @Produce json
// @Param actor body dto.CreateActorRequest true "Actor details"
// @Success 201 {object} dto.ActorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /actors [post]
func (h *actorHandler) createActor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createActor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	actor, err := h.actorService.CreateActor(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create actor in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create actor"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToActorResponse(actor))
}

// getActor godoc
// @Summary Fetch an actor
// @Description Returns the actor with its purse and decimal total worth
// @Tags actors
// @Produce json
// @Param actorID path string true "Actor ID"
// @Success 200 {object} dto.ActorResponse
// @Failure 404 {object} map[string]string "Actor not found"
// @Security BearerAuth
// @Router /actors/{actorID} [get]
func (h *actorHandler) getActor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID := c.Param("actorID")

	actor, err := h.actorService.GetActorByID(c.Request.Context(), actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Actor not found"})
			return
		}
		logger.Error("Failed to get actor", slog.String("actor_id", actorID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get actor"})
		return
	}

	c.JSON(http.StatusOK, dto.ToActorResponse(actor))
}

// updateMoney godoc
// @Summary Replace an actor's purse
// @Description External edit of the money sub-record; a debounced normalization follows
// @Tags actors
// @Accept json
// @Produce json
// @Param actorID path string true "Actor ID"
// @Param money body dto.UpdateMoneyRequest true "New purse"
// @Success 200 {object} dto.ActorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Actor not found"
// @Security BearerAuth
// @Router /actors/{actorID}/money [put]
func (h *actorHandler) updateMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID := c.Param("actorID")

	var req dto.UpdateMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateMoney", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	actor, err := h.actorService.UpdateActorMoney(c.Request.Context(), actorID, req.Money.ToDomain(), dtoWriteOptions(userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Actor not found"})
			return
		}
		logger.Error("Failed to update actor money", slog.String("actor_id", actorID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update actor money"})
		return
	}

	c.JSON(http.StatusOK, dto.ToActorResponse(actor))
}
