// Package handler provides HTTP handlers for selection endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	leagueModel "github.com/courtside/nba-pickem/internal/league/model"
	selectionModel "github.com/courtside/nba-pickem/internal/selection/model"
	"github.com/courtside/nba-pickem/internal/selection/service"
	seasonModel "github.com/courtside/nba-pickem/internal/season/model"
	teamModel "github.com/courtside/nba-pickem/internal/team/model"
	weekModel "github.com/courtside/nba-pickem/internal/week/model"
)

// Handler handles HTTP requests for selection endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new selection handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateSelection handles POST /team-selections. The lock check applies.
func (h *Handler) CreateSelection(c *gin.Context) {
	h.createSelection(c, false)
}

// CreateSelectionAdmin handles POST /admin/team-selections. The lock
// check is bypassed; every other rule still applies.
func (h *Handler) CreateSelectionAdmin(c *gin.Context) {
	h.createSelection(c, true)
}

func (h *Handler) createSelection(c *gin.Context, bypassLock bool) {
	var req selectionModel.CreateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateOrUpdate(c.Request.Context(), &req, bypassLock)
	if err != nil {
		switch {
		case errors.Is(err, weekModel.ErrWeekNotFound):
			notFoundResponse(c, "week not found")
		case errors.Is(err, seasonModel.ErrSeasonNotFound):
			notFoundResponse(c, "season not found")
		case errors.Is(err, leagueModel.ErrUserNotFound):
			notFoundResponse(c, "user not found")
		case errors.Is(err, teamModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, selectionModel.ErrNotLeagueMember):
			errorResponse(c, "NOT_LEAGUE_MEMBER", "user does not belong to this season's league", http.StatusForbidden)
		case errors.Is(err, selectionModel.ErrWeekLocked):
			errorResponse(c, "WEEK_LOCKED", "picks are locked for this week", http.StatusForbidden)
		case errors.Is(err, selectionModel.ErrTeamAlreadyPicked):
			errorResponse(c, "TEAM_ALREADY_PICKED", "team already selected this season", http.StatusConflict)
		case errors.Is(err, selectionModel.ErrSuperweekUsed):
			errorResponse(c, "SUPERWEEK_USED", "superweek already used this season", http.StatusConflict)
		default:
			h.logger.Errorw("error creating selection", "user_id", req.UserID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListSelections handles GET /team-selections.
func (h *Handler) ListSelections(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "user_id must be a valid uuid", http.StatusBadRequest)
		return
	}

	seasonID, err := uuid.Parse(c.Query("season_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "season_id must be a valid uuid", http.StatusBadRequest)
		return
	}

	selections, err := h.service.ListByUserAndSeason(c.Request.Context(), userID, seasonID)
	if err != nil {
		switch {
		case errors.Is(err, leagueModel.ErrUserNotFound):
			notFoundResponse(c, "user not found")
		case errors.Is(err, seasonModel.ErrSeasonNotFound):
			notFoundResponse(c, "season not found")
		default:
			h.logger.Errorw("error listing selections", "user_id", userID, "season_id", seasonID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"selections": selections,
	})
}
