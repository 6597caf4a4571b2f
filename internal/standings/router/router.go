// Package router provides standings module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	leagueRepo "github.com/courtside/nba-pickem/internal/league/repository"
	seasonRepo "github.com/courtside/nba-pickem/internal/season/repository"
	"github.com/courtside/nba-pickem/internal/standings/handler"
	"github.com/courtside/nba-pickem/internal/standings/repository"
	"github.com/courtside/nba-pickem/internal/standings/service"
	teamRepo "github.com/courtside/nba-pickem/internal/team/repository"
	weekRepo "github.com/courtside/nba-pickem/internal/week/repository"
)

// RegisterRoutes registers standings module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(
		repository.New(db, logger),
		leagueRepo.New(db, logger),
		seasonRepo.New(db, logger),
		weekRepo.New(db, logger),
		teamRepo.New(db, logger),
		logger,
	)
	h := handler.New(svc, logger)

	r.GET("/leagues/seasons/:season_id/standings", h.SeasonStandings)
	r.GET("/leagues/seasons/:season_id/weekly-selections/:week_id", h.WeeklySelections)
}
