// Package service implements business logic for week endpoints.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	leagueModel "github.com/courtside/nba-pickem/internal/league/model"
	leagueRepo "github.com/courtside/nba-pickem/internal/league/repository"
	"github.com/courtside/nba-pickem/internal/lock"
	selectionModel "github.com/courtside/nba-pickem/internal/selection/model"
	selectionRepo "github.com/courtside/nba-pickem/internal/selection/repository"
	seasonRepo "github.com/courtside/nba-pickem/internal/season/repository"
	teamRepo "github.com/courtside/nba-pickem/internal/team/repository"
	"github.com/courtside/nba-pickem/internal/week/model"
	"github.com/courtside/nba-pickem/internal/week/repository"
)

// LockChecker reports whether picks for a week are locked. Implemented
// by the lock engine.
type LockChecker interface {
	IsWeekLocked(ctx context.Context, week *model.Week) (bool, *time.Time, error)
}

// Service defines the interface for week business logic.
type Service interface {
	// NextWeek resolves the week a user would be picking for next,
	// with superweek availability and any existing selection.
	NextWeek(ctx context.Context, userID, seasonID uuid.UUID) (*model.NextWeekResponse, error)

	// CurrentWeek resolves the week containing today, with lock status
	// and any existing selection.
	CurrentWeek(ctx context.Context, userID, seasonID uuid.UUID) (*model.CurrentWeekResponse, error)
}

type service struct {
	repo       repository.Repository
	selections selectionRepo.Repository
	seasons    seasonRepo.Repository
	teams      teamRepo.Repository
	leagues    leagueRepo.Repository
	locks      LockChecker
	clock      lock.Clock
	logger     *zap.SugaredLogger
}

// New creates a new week service instance.
func New(
	repo repository.Repository,
	selections selectionRepo.Repository,
	seasons seasonRepo.Repository,
	teams teamRepo.Repository,
	leagues leagueRepo.Repository,
	locks LockChecker,
	clock lock.Clock,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:       repo,
		selections: selections,
		seasons:    seasons,
		teams:      teams,
		leagues:    leagues,
		locks:      locks,
		clock:      clock,
		logger:     logger,
	}
}

// NextWeek resolves the week a user would be picking for next.
//
// The target is the week starting on the coming Monday (today, if
// today is Monday); failing an exact match the closest upcoming week
// is used, and once the season is over its last week.
func (s *service) NextWeek(ctx context.Context, userID, seasonID uuid.UUID) (*model.NextWeekResponse, error) {
	user, weeks, err := s.memberWeeks(ctx, userID, seasonID)
	if err != nil {
		return nil, err
	}

	today := truncateToDay(s.clock.Now().UTC())
	nextMonday := today
	if wd := today.Weekday(); wd != time.Monday {
		daysUntil := (int(time.Monday) - int(wd) + 7) % 7
		nextMonday = today.AddDate(0, 0, daysUntil)
	}

	var next *model.Week
	for i := range weeks {
		if truncateToDay(weeks[i].StartDate).Equal(nextMonday) {
			next = &weeks[i]
			break
		}
	}
	if next == nil {
		for i := range weeks {
			if !truncateToDay(weeks[i].StartDate).Before(nextMonday) {
				next = &weeks[i]
				break
			}
		}
	}
	if next == nil {
		next = &weeks[len(weeks)-1]
	}

	usedSuperweek, err := s.selections.HasUsedSuperweek(ctx, user.ID, seasonID)
	if err != nil {
		return nil, err
	}

	info, err := s.selectionInfo(ctx, user.ID, next.ID)
	if err != nil {
		return nil, err
	}

	return &model.NextWeekResponse{
		ID:              next.ID,
		Number:          next.Number,
		StartDate:       next.StartDate,
		EndDate:         next.EndDate,
		LockTime:        next.LockTime,
		SeasonID:        next.SeasonID,
		CanUseSuperweek: !usedSuperweek,
		Selection:       info,
	}, nil
}

// CurrentWeek resolves the week containing today.
//
// When no week contains today the closest upcoming week is used, and
// once the season is over its last week.
func (s *service) CurrentWeek(ctx context.Context, userID, seasonID uuid.UUID) (*model.CurrentWeekResponse, error) {
	user, weeks, err := s.memberWeeks(ctx, userID, seasonID)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now().UTC()

	var current *model.Week
	for i := range weeks {
		if weeks[i].ContainsDate(today) {
			current = &weeks[i]
			break
		}
	}
	if current == nil {
		day := truncateToDay(today)
		for i := range weeks {
			if truncateToDay(weeks[i].StartDate).After(day) {
				current = &weeks[i]
				break
			}
		}
	}
	if current == nil {
		current = &weeks[len(weeks)-1]
	}

	locked, _, err := s.locks.IsWeekLocked(ctx, current)
	if err != nil {
		return nil, err
	}

	info, err := s.selectionInfo(ctx, user.ID, current.ID)
	if err != nil {
		return nil, err
	}

	return &model.CurrentWeekResponse{
		ID:        current.ID,
		Number:    current.Number,
		StartDate: current.StartDate,
		EndDate:   current.EndDate,
		LockTime:  current.LockTime,
		SeasonID:  current.SeasonID,
		IsLocked:  locked,
		Selection: info,
	}, nil
}

// memberWeeks verifies season existence and league membership, then
// returns the user and the season's weeks ordered by number.
func (s *service) memberWeeks(ctx context.Context, userID, seasonID uuid.UUID) (*leagueModel.User, []model.Week, error) {
	season, err := s.seasons.GetByID(ctx, seasonID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.leagues.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user.LeagueID != season.LeagueID {
		return nil, nil, selectionModel.ErrNotLeagueMember
	}

	weeks, err := s.repo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, nil, err
	}
	if len(weeks) == 0 {
		return nil, nil, model.ErrNoWeeksInSeason
	}

	return user, weeks, nil
}

// selectionInfo loads the user's pick for a week, nil when none exists.
func (s *service) selectionInfo(ctx context.Context, userID, weekID uuid.UUID) (*selectionModel.SelectionInfo, error) {
	selection, err := s.selections.GetByUserAndWeek(ctx, userID, weekID)
	if err != nil {
		if errors.Is(err, selectionModel.ErrSelectionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	info := &selectionModel.SelectionInfo{
		TeamID:         selection.TeamID,
		IsSuperweek:    selection.IsSuperweek,
		IsShootTheMoon: selection.IsShootTheMoon,
	}

	team, err := s.teams.GetByID(ctx, selection.TeamID)
	if err == nil {
		info.TeamName = team.Name
	}

	return info, nil
}

// truncateToDay drops the time-of-day component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
