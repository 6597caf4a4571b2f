// Package handler provides HTTP handlers for admin scoring endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	gameModel "github.com/courtside/nba-pickem/internal/game/model"
	"github.com/courtside/nba-pickem/internal/scoring/service"
	seasonModel "github.com/courtside/nba-pickem/internal/season/model"
)

// Handler handles HTTP requests for admin scoring endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new scoring handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ApplyGameResult handles POST /admin/games/:nba_game_id/result.
func (h *Handler) ApplyGameResult(c *gin.Context) {
	nbaGameID := c.Param("nba_game_id")
	if nbaGameID == "" {
		errorResponse(c, "INVALID_REQUEST", "nba_game_id is required", http.StatusBadRequest)
		return
	}

	var req gameModel.GameResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "home_score and away_score are required", http.StatusBadRequest)
		return
	}

	report, err := h.service.ApplyGameResult(c.Request.Context(), nbaGameID, &req)
	if err != nil {
		if errors.Is(err, gameModel.ErrGameNotFound) {
			notFoundResponse(c, "game not found")
			return
		}
		h.logger.Errorw("error applying game result", "nba_game_id", nbaGameID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, report)
}

// RecalculateAll handles POST /admin/recalculate.
func (h *Handler) RecalculateAll(c *gin.Context) {
	report, err := h.service.RecalculateAll(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error recalculating points", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, report)
}

// RetabulateSeason handles POST /admin/seasons/:season_id/retabulate.
func (h *Handler) RetabulateSeason(c *gin.Context) {
	seasonID, err := uuid.Parse(c.Param("season_id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "season_id must be a valid uuid", http.StatusBadRequest)
		return
	}

	report, err := h.service.RetabulateSeason(c.Request.Context(), seasonID)
	if err != nil {
		if errors.Is(err, seasonModel.ErrSeasonNotFound) {
			notFoundResponse(c, "season not found")
			return
		}
		h.logger.Errorw("error retabulating season", "season_id", seasonID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ReassignGamesToWeeks handles POST /admin/weeks/reassign-games.
func (h *Handler) ReassignGamesToWeeks(c *gin.Context) {
	report, err := h.service.ReassignGamesToWeeks(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error reassigning games to weeks", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, report)
}
