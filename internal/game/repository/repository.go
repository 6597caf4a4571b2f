// Package repository provides data access layer for games.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-pickem/internal/game/model"
)

// Repository defines the interface for game data access operations.
type Repository interface {
	// GetByID finds a game by id.
	GetByID(ctx context.Context, gameID uuid.UUID) (*model.Game, error)

	// GetByNBAGameID finds a game by its external NBA game id.
	GetByNBAGameID(ctx context.Context, nbaGameID string) (*model.Game, error)

	// ListByTeamAndWeek returns a team's games assigned to a week,
	// ordered by start time.
	ListByTeamAndWeek(ctx context.Context, teamID, weekID uuid.UUID) ([]model.Game, error)

	// ListByTeamAndDateRange returns games in [from, to] where the team
	// plays home or away, ordered by date.
	ListByTeamAndDateRange(ctx context.Context, teamID uuid.UUID, from, to time.Time) ([]model.Game, error)

	// EarliestGameTime returns the earliest game_datetime among the
	// week's games that have one, or nil when none do.
	EarliestGameTime(ctx context.Context, weekID uuid.UUID) (*time.Time, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new game repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByID finds a game by id.
func (r *repository) GetByID(ctx context.Context, gameID uuid.UUID) (*model.Game, error) {
	var game model.Game
	err := r.db.WithContext(ctx).
		Where("id = ?", gameID).
		First(&game).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGameNotFound
		}
		r.logger.Errorw("GetByID database error", "game_id", gameID, "error", err)
		return nil, err
	}

	return &game, nil
}

// GetByNBAGameID finds a game by its external NBA game id.
func (r *repository) GetByNBAGameID(ctx context.Context, nbaGameID string) (*model.Game, error) {
	r.logger.Debugw("GetByNBAGameID called", "nba_game_id", nbaGameID)

	var game model.Game
	err := r.db.WithContext(ctx).
		Where("nba_game_id = ?", nbaGameID).
		First(&game).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGameNotFound
		}
		r.logger.Errorw("GetByNBAGameID database error", "nba_game_id", nbaGameID, "error", err)
		return nil, err
	}

	return &game, nil
}

// ListByTeamAndWeek returns a team's games assigned to a week.
func (r *repository) ListByTeamAndWeek(ctx context.Context, teamID, weekID uuid.UUID) ([]model.Game, error) {
	r.logger.Debugw("ListByTeamAndWeek called", "team_id", teamID, "week_id", weekID)

	var games []model.Game
	err := r.db.WithContext(ctx).
		Where("week_id = ?", weekID).
		Where("home_team_id = ? OR away_team_id = ?", teamID, teamID).
		Order("game_datetime ASC").
		Find(&games).Error

	if err != nil {
		r.logger.Errorw("ListByTeamAndWeek database error", "team_id", teamID, "week_id", weekID, "error", err)
		return nil, err
	}

	if games == nil {
		games = []model.Game{}
	}

	return games, nil
}

// ListByTeamAndDateRange returns games in [from, to] where the team plays.
func (r *repository) ListByTeamAndDateRange(ctx context.Context, teamID uuid.UUID, from, to time.Time) ([]model.Game, error) {
	r.logger.Debugw("ListByTeamAndDateRange called", "team_id", teamID, "from", from, "to", to)

	var games []model.Game
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Where("home_team_id = ? OR away_team_id = ?", teamID, teamID).
		Order("date ASC").
		Find(&games).Error

	if err != nil {
		r.logger.Errorw("ListByTeamAndDateRange database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if games == nil {
		games = []model.Game{}
	}

	return games, nil
}

// EarliestGameTime returns the earliest game_datetime for a week, or nil.
func (r *repository) EarliestGameTime(ctx context.Context, weekID uuid.UUID) (*time.Time, error) {
	r.logger.Debugw("EarliestGameTime called", "week_id", weekID)

	var game model.Game
	err := r.db.WithContext(ctx).
		Where("week_id = ?", weekID).
		Where("game_datetime IS NOT NULL").
		Order("game_datetime ASC").
		First(&game).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("EarliestGameTime database error", "week_id", weekID, "error", err)
		return nil, err
	}

	return game.GameDatetime, nil
}
