// Package handler provides HTTP handlers for standings endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	leagueModel "github.com/courtside/nba-pickem/internal/league/model"
	seasonModel "github.com/courtside/nba-pickem/internal/season/model"
	"github.com/courtside/nba-pickem/internal/standings/service"
	weekModel "github.com/courtside/nba-pickem/internal/week/model"
)

// Handler handles HTTP requests for standings endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new standings handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SeasonStandings handles GET /leagues/seasons/:season_id/standings.
func (h *Handler) SeasonStandings(c *gin.Context) {
	seasonID, err := uuid.Parse(c.Param("season_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "season_id must be a valid uuid", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SeasonStandings(c.Request.Context(), seasonID)
	if err != nil {
		h.respondError(c, err, "error getting standings")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// WeeklySelections handles GET /leagues/seasons/:season_id/weekly-selections/:week_id.
func (h *Handler) WeeklySelections(c *gin.Context) {
	seasonID, err := uuid.Parse(c.Param("season_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "season_id must be a valid uuid", http.StatusBadRequest)
		return
	}

	weekID, err := uuid.Parse(c.Param("week_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "week_id must be a valid uuid", http.StatusBadRequest)
		return
	}

	resp, err := h.service.WeeklySelections(c.Request.Context(), seasonID, weekID)
	if err != nil {
		h.respondError(c, err, "error getting weekly selections")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, seasonModel.ErrSeasonNotFound):
		notFoundResponse(c, "season not found")
	case errors.Is(err, leagueModel.ErrLeagueNotFound):
		notFoundResponse(c, "league not found")
	case errors.Is(err, weekModel.ErrWeekNotFound):
		notFoundResponse(c, "week not found")
	default:
		h.logger.Errorw(logMsg, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
