// Package repository provides data access layer for leagues and users.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-pickem/internal/league/model"
)

// Repository defines the interface for league data access operations.
type Repository interface {
	// GetLeagueByID finds a league by id.
	GetLeagueByID(ctx context.Context, leagueID uuid.UUID) (*model.League, error)

	// GetUserByID finds a user by id.
	GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error)

	// ListUsersByLeague returns all users belonging to a league.
	ListUsersByLeague(ctx context.Context, leagueID uuid.UUID) ([]model.User, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new league repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetLeagueByID finds a league by id.
func (r *repository) GetLeagueByID(ctx context.Context, leagueID uuid.UUID) (*model.League, error) {
	r.logger.Debugw("GetLeagueByID called", "league_id", leagueID)

	var league model.League
	err := r.db.WithContext(ctx).
		Where("id = ?", leagueID).
		First(&league).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrLeagueNotFound
		}
		r.logger.Errorw("GetLeagueByID database error", "league_id", leagueID, "error", err)
		return nil, err
	}

	return &league, nil
}

// GetUserByID finds a user by id.
func (r *repository) GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	r.logger.Debugw("GetUserByID called", "user_id", userID)

	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetUserByID database error", "user_id", userID, "error", err)
		return nil, err
	}

	return &user, nil
}

// ListUsersByLeague returns all users belonging to a league.
func (r *repository) ListUsersByLeague(ctx context.Context, leagueID uuid.UUID) ([]model.User, error) {
	r.logger.Debugw("ListUsersByLeague called", "league_id", leagueID)

	var users []model.User
	err := r.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		Order("email ASC").
		Find(&users).Error

	if err != nil {
		r.logger.Errorw("ListUsersByLeague database error", "league_id", leagueID, "error", err)
		return nil, err
	}

	if users == nil {
		users = []model.User{}
	}

	return users, nil
}
