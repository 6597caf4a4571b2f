// Package router provides season module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	leagueRepo "github.com/courtside/nba-pickem/internal/league/repository"
	"github.com/courtside/nba-pickem/internal/season/handler"
	"github.com/courtside/nba-pickem/internal/season/repository"
	"github.com/courtside/nba-pickem/internal/season/service"
	teamRepo "github.com/courtside/nba-pickem/internal/team/repository"
)

// RegisterRoutes registers season module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(
		repository.New(db, logger),
		teamRepo.New(db, logger),
		leagueRepo.New(db, logger),
		logger,
	)
	h := handler.New(svc, logger)

	r.GET("/seasons/:season_id/available-teams", h.AvailableTeams)
}
