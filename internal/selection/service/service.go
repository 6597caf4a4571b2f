// Package service implements business logic for team selections.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	leagueRepo "github.com/courtside/nba-pickem/internal/league/repository"
	"github.com/courtside/nba-pickem/internal/selection/model"
	"github.com/courtside/nba-pickem/internal/selection/repository"
	seasonRepo "github.com/courtside/nba-pickem/internal/season/repository"
	teamRepo "github.com/courtside/nba-pickem/internal/team/repository"
	weekModel "github.com/courtside/nba-pickem/internal/week/model"
	weekRepo "github.com/courtside/nba-pickem/internal/week/repository"
)

// LockChecker reports whether picks for a week are locked. Implemented
// by the lock engine.
type LockChecker interface {
	IsWeekLocked(ctx context.Context, week *weekModel.Week) (bool, *time.Time, error)
}

// Service defines the interface for selection business logic.
type Service interface {
	// CreateOrUpdate records or replaces the user's pick for a week.
	// When bypassLock is set the lock check is skipped; every other
	// rule still applies.
	CreateOrUpdate(ctx context.Context, req *model.CreateSelectionRequest, bypassLock bool) (*model.SelectionResponse, error)

	// ListByUserAndSeason returns the user's picks for a season ordered
	// by week number.
	ListByUserAndSeason(ctx context.Context, userID, seasonID uuid.UUID) ([]model.SelectionResponse, error)
}

type service struct {
	repo    repository.Repository
	weeks   weekRepo.Repository
	seasons seasonRepo.Repository
	teams   teamRepo.Repository
	leagues leagueRepo.Repository
	locks   LockChecker
	logger  *zap.SugaredLogger
}

// New creates a new selection service instance.
func New(
	repo repository.Repository,
	weeks weekRepo.Repository,
	seasons seasonRepo.Repository,
	teams teamRepo.Repository,
	leagues leagueRepo.Repository,
	locks LockChecker,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:    repo,
		weeks:   weeks,
		seasons: seasons,
		teams:   teams,
		leagues: leagues,
		locks:   locks,
		logger:  logger,
	}
}

// CreateOrUpdate records or replaces the user's pick for a week.
//
// Rule order: referenced entities must exist, the user must belong to
// the season's league, the week must not be locked (unless bypassed),
// the team must not have been picked before in the season, and a
// second superweek in the same season is rejected.
func (s *service) CreateOrUpdate(ctx context.Context, req *model.CreateSelectionRequest, bypassLock bool) (*model.SelectionResponse, error) {
	week, err := s.weeks.GetByID(ctx, req.WeekID)
	if err != nil {
		return nil, err
	}

	season, err := s.seasons.GetByID(ctx, req.SeasonID)
	if err != nil {
		return nil, err
	}

	user, err := s.leagues.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user.LeagueID != season.LeagueID {
		return nil, model.ErrNotLeagueMember
	}

	if _, err := s.teams.GetByID(ctx, req.TeamID); err != nil {
		return nil, err
	}

	if !bypassLock {
		locked, _, err := s.locks.IsWeekLocked(ctx, week)
		if err != nil {
			return nil, err
		}
		if locked {
			return nil, model.ErrWeekLocked
		}
	}

	existing, err := s.repo.GetByUserAndWeek(ctx, req.UserID, req.WeekID)
	if err != nil && !errors.Is(err, model.ErrSelectionNotFound) {
		return nil, err
	}

	if existing != nil {
		return s.update(ctx, req, existing)
	}
	return s.create(ctx, req)
}

func (s *service) create(ctx context.Context, req *model.CreateSelectionRequest) (*model.SelectionResponse, error) {
	if err := s.checkTeamUnused(ctx, req, uuid.Nil); err != nil {
		return nil, err
	}

	if req.IsSuperweek {
		used, err := s.repo.HasUsedSuperweek(ctx, req.UserID, req.SeasonID)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, model.ErrSuperweekUsed
		}
	}

	selection := &model.TeamSelection{
		UserID:         req.UserID,
		TeamID:         req.TeamID,
		SeasonID:       req.SeasonID,
		WeekID:         req.WeekID,
		IsSuperweek:    req.IsSuperweek,
		IsShootTheMoon: req.IsShootTheMoon,
	}

	if err := s.repo.Create(ctx, selection); err != nil {
		return nil, err
	}

	s.logger.Infow("selection created",
		"user_id", req.UserID, "week_id", req.WeekID, "team_id", req.TeamID,
		"is_superweek", req.IsSuperweek, "is_shoot_the_moon", req.IsShootTheMoon)

	return model.NewSelectionResponse(selection), nil
}

func (s *service) update(ctx context.Context, req *model.CreateSelectionRequest, existing *model.TeamSelection) (*model.SelectionResponse, error) {
	if err := s.checkTeamUnused(ctx, req, existing.ID); err != nil {
		return nil, err
	}

	// Keeping an existing superweek on the same row is allowed; adding
	// a second one in the season is not.
	if req.IsSuperweek && !existing.IsSuperweek {
		used, err := s.repo.HasUsedSuperweek(ctx, req.UserID, req.SeasonID)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, model.ErrSuperweekUsed
		}
	}

	existing.TeamID = req.TeamID
	existing.IsSuperweek = req.IsSuperweek
	existing.IsShootTheMoon = req.IsShootTheMoon

	// Cached scores belong to the previous pick; the scoring engine
	// rebuilds them on the next result or recalculation.
	existing.TotalPoints = 0
	existing.Wins = 0
	existing.Losses = 0

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.Infow("selection updated",
		"selection_id", existing.ID, "user_id", req.UserID, "team_id", req.TeamID)

	return model.NewSelectionResponse(existing), nil
}

// checkTeamUnused enforces the one-pick-per-team-per-season rule,
// ignoring the row being replaced.
func (s *service) checkTeamUnused(ctx context.Context, req *model.CreateSelectionRequest, excludeID uuid.UUID) error {
	prior, err := s.repo.GetByUserTeamSeason(ctx, req.UserID, req.TeamID, req.SeasonID)
	if err != nil {
		if errors.Is(err, model.ErrSelectionNotFound) {
			return nil
		}
		return err
	}
	if prior.ID == excludeID {
		return nil
	}
	return model.ErrTeamAlreadyPicked
}

// ListByUserAndSeason returns the user's picks for a season.
func (s *service) ListByUserAndSeason(ctx context.Context, userID, seasonID uuid.UUID) ([]model.SelectionResponse, error) {
	if _, err := s.leagues.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.seasons.GetByID(ctx, seasonID); err != nil {
		return nil, err
	}

	selections, err := s.repo.ListByUserAndSeason(ctx, userID, seasonID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.SelectionResponse, 0, len(selections))
	for i := range selections {
		responses = append(responses, *model.NewSelectionResponse(&selections[i]))
	}
	return responses, nil
}
