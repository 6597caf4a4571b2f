// Package router provides game module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-pickem/internal/game/handler"
	"github.com/courtside/nba-pickem/internal/game/repository"
	"github.com/courtside/nba-pickem/internal/game/service"
	teamRepo "github.com/courtside/nba-pickem/internal/team/repository"
	weekRepo "github.com/courtside/nba-pickem/internal/week/repository"
)

// RegisterRoutes registers game module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(
		repository.New(db, logger),
		teamRepo.New(db, logger),
		weekRepo.New(db, logger),
		logger,
	)
	h := handler.New(svc, logger)

	r.GET("/games", h.ListTeamGames)
}
