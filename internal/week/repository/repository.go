// Package repository provides data access layer for weeks.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-pickem/internal/week/model"
)

// Repository defines the interface for week data access operations.
type Repository interface {
	// GetByID finds a week by id.
	GetByID(ctx context.Context, weekID uuid.UUID) (*model.Week, error)

	// ListBySeason returns all weeks of a season ordered by number.
	ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]model.Week, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new week repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByID finds a week by id.
func (r *repository) GetByID(ctx context.Context, weekID uuid.UUID) (*model.Week, error) {
	var week model.Week
	err := r.db.WithContext(ctx).
		Where("id = ?", weekID).
		First(&week).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrWeekNotFound
		}
		r.logger.Errorw("GetByID database error", "week_id", weekID, "error", err)
		return nil, err
	}

	return &week, nil
}

// ListBySeason returns all weeks of a season ordered by number.
func (r *repository) ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]model.Week, error) {
	r.logger.Debugw("ListBySeason called", "season_id", seasonID)

	var weeks []model.Week
	err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("number ASC").
		Find(&weeks).Error

	if err != nil {
		r.logger.Errorw("ListBySeason database error", "season_id", seasonID, "error", err)
		return nil, err
	}

	if weeks == nil {
		weeks = []model.Week{}
	}

	return weeks, nil
}
