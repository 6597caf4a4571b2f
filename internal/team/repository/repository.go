// Package repository provides data access layer for teams.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-pickem/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// GetByID finds a team by id.
	GetByID(ctx context.Context, teamID uuid.UUID) (*model.Team, error)

	// ListAll returns every team ordered by name.
	ListAll(ctx context.Context) ([]model.Team, error)

	// ListNotPickedInSeason returns teams the user has not selected in
	// the given season.
	ListNotPickedInSeason(ctx context.Context, userID, seasonID uuid.UUID) ([]model.Team, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, teamID uuid.UUID) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		r.logger.Errorw("GetByID database error", "team_id", teamID, "error", err)
		return nil, err
	}

	return &team, nil
}

// ListAll returns every team ordered by name.
func (r *repository) ListAll(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&teams).Error

	if err != nil {
		r.logger.Errorw("ListAll database error", "error", err)
		return nil, err
	}

	if teams == nil {
		teams = []model.Team{}
	}

	return teams, nil
}

// ListNotPickedInSeason returns teams the user has not selected in the season.
func (r *repository) ListNotPickedInSeason(ctx context.Context, userID, seasonID uuid.UUID) ([]model.Team, error) {
	r.logger.Debugw("ListNotPickedInSeason called", "user_id", userID, "season_id", seasonID)

	picked := r.db.Table("team_selections").
		Select("team_id").
		Where("user_id = ? AND season_id = ?", userID, seasonID)

	var teams []model.Team
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", picked).
		Order("name ASC").
		Find(&teams).Error

	if err != nil {
		r.logger.Errorw("ListNotPickedInSeason database error", "user_id", userID, "season_id", seasonID, "error", err)
		return nil, err
	}

	if teams == nil {
		teams = []model.Team{}
	}

	return teams, nil
}
