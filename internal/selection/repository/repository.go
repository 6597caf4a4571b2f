// Package repository provides data access layer for team selections.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-pickem/internal/selection/model"
)

// Repository defines the interface for selection data access operations.
type Repository interface {
	// GetByUserAndWeek returns the user's selection for a week, if any.
	GetByUserAndWeek(ctx context.Context, userID, weekID uuid.UUID) (*model.TeamSelection, error)

	// GetByUserTeamSeason returns the user's selection of a team in a season, if any.
	GetByUserTeamSeason(ctx context.Context, userID, teamID, seasonID uuid.UUID) (*model.TeamSelection, error)

	// HasUsedSuperweek reports whether the user already has a superweek
	// selection in the season.
	HasUsedSuperweek(ctx context.Context, userID, seasonID uuid.UUID) (bool, error)

	// ListByUserAndSeason returns the user's selections for a season
	// ordered by week number.
	ListByUserAndSeason(ctx context.Context, userID, seasonID uuid.UUID) ([]model.TeamSelection, error)

	// Create inserts a new selection.
	Create(ctx context.Context, selection *model.TeamSelection) error

	// Update persists changes to an existing selection.
	Update(ctx context.Context, selection *model.TeamSelection) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new selection repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByUserAndWeek returns the user's selection for a week, if any.
func (r *repository) GetByUserAndWeek(ctx context.Context, userID, weekID uuid.UUID) (*model.TeamSelection, error) {
	r.logger.Debugw("GetByUserAndWeek called", "user_id", userID, "week_id", weekID)

	var selection model.TeamSelection
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND week_id = ?", userID, weekID).
		First(&selection).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSelectionNotFound
		}
		r.logger.Errorw("GetByUserAndWeek database error", "user_id", userID, "week_id", weekID, "error", err)
		return nil, err
	}

	return &selection, nil
}

// GetByUserTeamSeason returns the user's selection of a team in a season, if any.
func (r *repository) GetByUserTeamSeason(ctx context.Context, userID, teamID, seasonID uuid.UUID) (*model.TeamSelection, error) {
	var selection model.TeamSelection
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND team_id = ? AND season_id = ?", userID, teamID, seasonID).
		First(&selection).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSelectionNotFound
		}
		r.logger.Errorw("GetByUserTeamSeason database error", "user_id", userID, "team_id", teamID, "error", err)
		return nil, err
	}

	return &selection, nil
}

// HasUsedSuperweek reports whether the user already has a superweek selection.
func (r *repository) HasUsedSuperweek(ctx context.Context, userID, seasonID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TeamSelection{}).
		Where("user_id = ? AND season_id = ? AND is_superweek = ?", userID, seasonID, true).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("HasUsedSuperweek database error", "user_id", userID, "season_id", seasonID, "error", err)
		return false, err
	}

	return count > 0, nil
}

// ListByUserAndSeason returns the user's selections ordered by week number.
func (r *repository) ListByUserAndSeason(ctx context.Context, userID, seasonID uuid.UUID) ([]model.TeamSelection, error) {
	r.logger.Debugw("ListByUserAndSeason called", "user_id", userID, "season_id", seasonID)

	var selections []model.TeamSelection
	err := r.db.WithContext(ctx).
		Joins("JOIN weeks ON weeks.id = team_selections.week_id").
		Where("team_selections.user_id = ? AND team_selections.season_id = ?", userID, seasonID).
		Order("weeks.number ASC").
		Find(&selections).Error

	if err != nil {
		r.logger.Errorw("ListByUserAndSeason database error", "user_id", userID, "season_id", seasonID, "error", err)
		return nil, err
	}

	if selections == nil {
		selections = []model.TeamSelection{}
	}

	return selections, nil
}

// Create inserts a new selection.
func (r *repository) Create(ctx context.Context, selection *model.TeamSelection) error {
	r.logger.Infow("Create selection", "user_id", selection.UserID, "week_id", selection.WeekID, "team_id", selection.TeamID)

	if err := r.db.WithContext(ctx).Create(selection).Error; err != nil {
		r.logger.Errorw("Create database error", "user_id", selection.UserID, "error", err)
		return err
	}
	return nil
}

// Update persists changes to an existing selection.
func (r *repository) Update(ctx context.Context, selection *model.TeamSelection) error {
	r.logger.Infow("Update selection", "selection_id", selection.ID, "team_id", selection.TeamID)

	if err := r.db.WithContext(ctx).Save(selection).Error; err != nil {
		r.logger.Errorw("Update database error", "selection_id", selection.ID, "error", err)
		return err
	}
	return nil
}
