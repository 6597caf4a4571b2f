// Package router provides scoring module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-pickem/internal/scoring/handler"
	"github.com/courtside/nba-pickem/internal/scoring/repository"
	"github.com/courtside/nba-pickem/internal/scoring/service"
)

// RegisterRoutes registers admin scoring routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/admin/games/:nba_game_id/result", h.ApplyGameResult)
	r.POST("/admin/recalculate", h.RecalculateAll)
	r.POST("/admin/seasons/:season_id/retabulate", h.RetabulateSeason)
	r.POST("/admin/weeks/reassign-games", h.ReassignGamesToWeeks)
}
