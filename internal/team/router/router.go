// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	gameRepo "github.com/courtside/nba-pickem/internal/game/repository"
	"github.com/courtside/nba-pickem/internal/lock"
	"github.com/courtside/nba-pickem/internal/team/handler"
	"github.com/courtside/nba-pickem/internal/team/repository"
	"github.com/courtside/nba-pickem/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, gameRepo.New(db, logger), lock.SystemClock(), logger)
	h := handler.New(svc, logger)

	r.GET("/api/teams/week-schedule", h.WeekSchedule)
	r.GET("/api/teams/:team_id/next-week-schedule", h.NextWeekSchedule)
}
