// Package router provides selection module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	gameRepo "github.com/courtside/nba-pickem/internal/game/repository"
	leagueRepo "github.com/courtside/nba-pickem/internal/league/repository"
	"github.com/courtside/nba-pickem/internal/lock"
	"github.com/courtside/nba-pickem/internal/selection/handler"
	"github.com/courtside/nba-pickem/internal/selection/repository"
	"github.com/courtside/nba-pickem/internal/selection/service"
	seasonRepo "github.com/courtside/nba-pickem/internal/season/repository"
	teamRepo "github.com/courtside/nba-pickem/internal/team/repository"
	weekRepo "github.com/courtside/nba-pickem/internal/week/repository"
)

// RegisterRoutes registers selection module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	locks := lock.NewEngine(gameRepo.New(db, logger), lock.SystemClock(), logger)
	svc := service.New(
		repo,
		weekRepo.New(db, logger),
		seasonRepo.New(db, logger),
		teamRepo.New(db, logger),
		leagueRepo.New(db, logger),
		locks,
		logger,
	)
	h := handler.New(svc, logger)

	r.POST("/team-selections", h.CreateSelection)
	r.GET("/team-selections", h.ListSelections)
	r.POST("/admin/team-selections", h.CreateSelectionAdmin)
}
