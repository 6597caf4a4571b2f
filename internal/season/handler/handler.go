// Package handler provides HTTP handlers for season endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	leagueModel "github.com/courtside/nba-pickem/internal/league/model"
	seasonModel "github.com/courtside/nba-pickem/internal/season/model"
	"github.com/courtside/nba-pickem/internal/season/service"
)

// Handler handles HTTP requests for season endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new season handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AvailableTeams handles GET /seasons/:season_id/available-teams.
func (h *Handler) AvailableTeams(c *gin.Context) {
	seasonID, err := uuid.Parse(c.Param("season_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "season_id must be a valid uuid", http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "user_id must be a valid uuid", http.StatusBadRequest)
		return
	}

	teams, err := h.service.AvailableTeams(c.Request.Context(), userID, seasonID)
	if err != nil {
		switch {
		case errors.Is(err, seasonModel.ErrSeasonNotFound):
			notFoundResponse(c, "season not found")
		case errors.Is(err, leagueModel.ErrUserNotFound):
			notFoundResponse(c, "user not found")
		default:
			h.logger.Errorw("error listing available teams", "season_id", seasonID, "user_id", userID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, teams)
}
