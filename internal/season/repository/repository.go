// Package repository provides data access layer for seasons.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-pickem/internal/season/model"
)

// Repository defines the interface for season data access operations.
type Repository interface {
	// GetByID finds a season by id.
	GetByID(ctx context.Context, seasonID uuid.UUID) (*model.Season, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new season repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByID finds a season by id.
func (r *repository) GetByID(ctx context.Context, seasonID uuid.UUID) (*model.Season, error) {
	var season model.Season
	err := r.db.WithContext(ctx).
		Where("id = ?", seasonID).
		First(&season).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSeasonNotFound
		}
		r.logger.Errorw("GetByID database error", "season_id", seasonID, "error", err)
		return nil, err
	}

	return &season, nil
}
