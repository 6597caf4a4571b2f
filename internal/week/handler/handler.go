// Package handler provides HTTP handlers for week endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	leagueModel "github.com/courtside/nba-pickem/internal/league/model"
	selectionModel "github.com/courtside/nba-pickem/internal/selection/model"
	seasonModel "github.com/courtside/nba-pickem/internal/season/model"
	weekModel "github.com/courtside/nba-pickem/internal/week/model"
	"github.com/courtside/nba-pickem/internal/week/service"
)

// Handler handles HTTP requests for week endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new week handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// NextWeek handles GET /weeks/next-week.
func (h *Handler) NextWeek(c *gin.Context) {
	userID, seasonID, ok := h.queryIDs(c)
	if !ok {
		return
	}

	resp, err := h.service.NextWeek(c.Request.Context(), userID, seasonID)
	if err != nil {
		h.respondError(c, err, "error resolving next week")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CurrentWeek handles GET /weeks/current-week.
func (h *Handler) CurrentWeek(c *gin.Context) {
	userID, seasonID, ok := h.queryIDs(c)
	if !ok {
		return
	}

	resp, err := h.service.CurrentWeek(c.Request.Context(), userID, seasonID)
	if err != nil {
		h.respondError(c, err, "error resolving current week")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// queryIDs extracts and validates the user_id and season_id query parameters.
func (h *Handler) queryIDs(c *gin.Context) (userID, seasonID uuid.UUID, ok bool) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "user_id must be a valid uuid", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	seasonID, err = uuid.Parse(c.Query("season_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "season_id must be a valid uuid", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, seasonID, true
}

func (h *Handler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, seasonModel.ErrSeasonNotFound):
		notFoundResponse(c, "season not found")
	case errors.Is(err, leagueModel.ErrUserNotFound):
		notFoundResponse(c, "user not found")
	case errors.Is(err, weekModel.ErrNoWeeksInSeason):
		notFoundResponse(c, "no weeks found for this season")
	case errors.Is(err, selectionModel.ErrNotLeagueMember):
		errorResponse(c, "NOT_LEAGUE_MEMBER", "user does not belong to this season's league", http.StatusForbidden)
	default:
		h.logger.Errorw(logMsg, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
