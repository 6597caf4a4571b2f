// Package handler provides HTTP handlers for game endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/courtside/nba-pickem/internal/game/service"
	teamModel "github.com/courtside/nba-pickem/internal/team/model"
	weekModel "github.com/courtside/nba-pickem/internal/week/model"
)

// Handler handles HTTP requests for game endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new game handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListTeamGames handles GET /games.
func (h *Handler) ListTeamGames(c *gin.Context) {
	teamID, err := uuid.Parse(c.Query("team_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "team_id must be a valid uuid", http.StatusBadRequest)
		return
	}

	weekID, err := uuid.Parse(c.Query("week_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "week_id must be a valid uuid", http.StatusBadRequest)
		return
	}

	games, err := h.service.ListTeamGames(c.Request.Context(), teamID, weekID)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, weekModel.ErrWeekNotFound):
			notFoundResponse(c, "week not found")
		default:
			h.logger.Errorw("error listing team games", "team_id", teamID, "week_id", weekID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, games)
}
