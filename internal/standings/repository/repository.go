// Package repository provides data access layer for league standings.
package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	selectionModel "github.com/courtside/nba-pickem/internal/selection/model"
	"github.com/courtside/nba-pickem/internal/standings/model"
)

// Repository defines the interface for standings data access operations.
type Repository interface {
	// SeasonStandings returns league members ranked by their summed
	// selection points for the season, points descending with email as
	// the tie-breaker. Members without selections rank with zero points.
	SeasonStandings(ctx context.Context, leagueID, seasonID uuid.UUID) ([]model.UserStanding, error)

	// SelectionsForWeek returns every selection made for a week of a season.
	SelectionsForWeek(ctx context.Context, seasonID, weekID uuid.UUID) ([]selectionModel.TeamSelection, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new standings repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// SeasonStandings returns league members ranked by season points.
func (r *repository) SeasonStandings(ctx context.Context, leagueID, seasonID uuid.UUID) ([]model.UserStanding, error) {
	r.logger.Debugw("SeasonStandings called", "league_id", leagueID, "season_id", seasonID)

	var rows []model.UserStanding
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id AS user_id, users.name, users.email, COALESCE(SUM(team_selections.total_points), 0) AS season_points").
		Joins("LEFT JOIN team_selections ON team_selections.user_id = users.id AND team_selections.season_id = ?", seasonID).
		Where("users.league_id = ?", leagueID).
		Group("users.id, users.name, users.email").
		Order("season_points DESC, users.email ASC").
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("SeasonStandings database error", "league_id", leagueID, "season_id", seasonID, "error", err)
		return nil, err
	}

	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows, nil
}

// SelectionsForWeek returns every selection made for a week of a season.
func (r *repository) SelectionsForWeek(ctx context.Context, seasonID, weekID uuid.UUID) ([]selectionModel.TeamSelection, error) {
	var selections []selectionModel.TeamSelection
	err := r.db.WithContext(ctx).
		Where("season_id = ? AND week_id = ?", seasonID, weekID).
		Find(&selections).Error

	if err != nil {
		r.logger.Errorw("SelectionsForWeek database error", "season_id", seasonID, "week_id", weekID, "error", err)
		return nil, err
	}

	return selections, nil
}
