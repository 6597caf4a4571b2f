// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	teamModel "github.com/courtside/nba-pickem/internal/team/model"
	"github.com/courtside/nba-pickem/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// NextWeekSchedule handles GET /api/teams/:team_id/next-week-schedule.
func (h *Handler) NextWeekSchedule(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "team_id must be a valid uuid", http.StatusBadRequest)
		return
	}

	schedule, err := h.service.NextWeekSchedule(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting next week schedule", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// WeekSchedule handles GET /api/teams/week-schedule.
func (h *Handler) WeekSchedule(c *gin.Context) {
	referenceDate := time.Now().UTC()
	if raw := c.Query("reference_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			errorResponse(c, "INVALID_REQUEST", "reference_date must be formatted as YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		referenceDate = parsed
	}

	schedule, err := h.service.WeekSchedule(c.Request.Context(), referenceDate)
	if err != nil {
		h.logger.Errorw("error getting week schedule", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, schedule)
}
