// Package router provides week module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	gameRepo "github.com/courtside/nba-pickem/internal/game/repository"
	leagueRepo "github.com/courtside/nba-pickem/internal/league/repository"
	"github.com/courtside/nba-pickem/internal/lock"
	selectionRepo "github.com/courtside/nba-pickem/internal/selection/repository"
	seasonRepo "github.com/courtside/nba-pickem/internal/season/repository"
	teamRepo "github.com/courtside/nba-pickem/internal/team/repository"
	"github.com/courtside/nba-pickem/internal/week/handler"
	"github.com/courtside/nba-pickem/internal/week/repository"
	"github.com/courtside/nba-pickem/internal/week/service"
)

// RegisterRoutes registers week module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	clock := lock.SystemClock()
	locks := lock.NewEngine(gameRepo.New(db, logger), clock, logger)
	svc := service.New(
		repository.New(db, logger),
		selectionRepo.New(db, logger),
		seasonRepo.New(db, logger),
		teamRepo.New(db, logger),
		leagueRepo.New(db, logger),
		locks,
		clock,
		logger,
	)
	h := handler.New(svc, logger)

	r.GET("/weeks/next-week", h.NextWeek)
	r.GET("/weeks/current-week", h.CurrentWeek)
}
