// Package main provides the entry point for the HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtside/nba-pickem/internal/config"
	"github.com/courtside/nba-pickem/internal/database"
	"github.com/courtside/nba-pickem/internal/database/migrate"
	gameRouter "github.com/courtside/nba-pickem/internal/game/router"
	"github.com/courtside/nba-pickem/internal/health"
	"github.com/courtside/nba-pickem/internal/middleware"
	scoringRouter "github.com/courtside/nba-pickem/internal/scoring/router"
	seasonRouter "github.com/courtside/nba-pickem/internal/season/router"
	selectionRouter "github.com/courtside/nba-pickem/internal/selection/router"
	standingsRouter "github.com/courtside/nba-pickem/internal/standings/router"
	teamRouter "github.com/courtside/nba-pickem/internal/team/router"
	"github.com/courtside/nba-pickem/internal/validation"
	weekRouter "github.com/courtside/nba-pickem/internal/week/router"
	"github.com/courtside/nba-pickem/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New()
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zlog.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Up(db); err != nil {
		zlog.Fatalw("failed to run migrations", "error", err)
	}

	if err := validation.Register(); err != nil {
		zlog.Fatalw("failed to register validators", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(zlog))
	r.Use(middleware.Recovery(zlog))

	r.GET("/health", health.New(db, zlog).Check)

	teamRouter.RegisterRoutes(r, db, zlog)
	weekRouter.RegisterRoutes(r, db, zlog)
	gameRouter.RegisterRoutes(r, db, zlog)
	seasonRouter.RegisterRoutes(r, db, zlog)
	selectionRouter.RegisterRoutes(r, db, zlog)
	scoringRouter.RegisterRoutes(r, db, zlog)
	standingsRouter.RegisterRoutes(r, db, zlog)

	addr := cfg.Server.GetAddress()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	zlog.Infow("starting server", "addr", addr, "gin_mode", cfg.GinMode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatalw("server stopped", "error", err)
	}
}
