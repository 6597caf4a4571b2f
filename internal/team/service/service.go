// Package service implements business logic for team schedule endpoints.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	gameRepo "github.com/courtside/nba-pickem/internal/game/repository"
	"github.com/courtside/nba-pickem/internal/lock"
	"github.com/courtside/nba-pickem/internal/team/model"
	"github.com/courtside/nba-pickem/internal/team/repository"
)

// Service defines the interface for team business logic.
type Service interface {
	// NextWeekSchedule returns a team's games for the coming Monday
	// through Sunday.
	NextWeekSchedule(ctx context.Context, teamID uuid.UUID) ([]model.ScheduleEntry, error)

	// WeekSchedule returns every team's games for the Monday-to-Sunday
	// week containing the reference date, keyed by team name.
	WeekSchedule(ctx context.Context, referenceDate time.Time) (map[string][]model.ScheduleEntry, error)
}

type service struct {
	repo   repository.Repository
	games  gameRepo.Repository
	clock  lock.Clock
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, games gameRepo.Repository, clock lock.Clock, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, games: games, clock: clock, logger: logger}
}

// NextWeekSchedule returns a team's games for the coming week.
//
// Unlike pick resolution, "next week" here always means the week
// starting after today: on a Monday it is the following Monday, since
// the current slate is already underway.
func (s *service) NextWeekSchedule(ctx context.Context, teamID uuid.UUID) ([]model.ScheduleEntry, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	today := truncateToDay(s.clock.Now().UTC())
	daysAhead := (int(time.Monday) - int(today.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	monday := today.AddDate(0, 0, daysAhead)
	sunday := monday.AddDate(0, 0, 6)

	return s.teamSchedule(ctx, team.ID, monday, sunday)
}

// WeekSchedule returns every team's games for one week, keyed by team
// name. Teams without games map to an empty slice.
func (s *service) WeekSchedule(ctx context.Context, referenceDate time.Time) (map[string][]model.ScheduleEntry, error) {
	day := truncateToDay(referenceDate)
	monday := day.AddDate(0, 0, -daysSinceMonday(day))
	sunday := monday.AddDate(0, 0, 6)

	teams, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	schedule := make(map[string][]model.ScheduleEntry, len(teams))
	for _, team := range teams {
		entries, err := s.teamSchedule(ctx, team.ID, monday, sunday)
		if err != nil {
			return nil, err
		}
		schedule[team.Name] = entries
	}

	return schedule, nil
}

// teamSchedule builds a team's schedule entries for a date range.
func (s *service) teamSchedule(ctx context.Context, teamID uuid.UUID, from, to time.Time) ([]model.ScheduleEntry, error) {
	games, err := s.games.ListByTeamAndDateRange(ctx, teamID, from, to)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ScheduleEntry, 0, len(games))
	for _, game := range games {
		isAway := game.AwayTeamID == teamID
		opponentID := game.AwayTeamID
		if isAway {
			opponentID = game.HomeTeamID
		}

		opponent, err := s.repo.GetByID(ctx, opponentID)
		if err != nil {
			if errors.Is(err, model.ErrTeamNotFound) {
				// A game referencing a missing team is skipped rather
				// than failing the whole schedule.
				s.logger.Warnw("game references unknown opponent, skipping",
					"game_id", game.ID, "opponent_id", opponentID)
				continue
			}
			return nil, err
		}

		entries = append(entries, model.ScheduleEntry{
			OpponentName:         opponent.Name,
			OpponentAbbreviation: opponent.Abbreviation,
			Date:                 game.Date,
			IsAway:               isAway,
		})
	}

	return entries, nil
}

// daysSinceMonday returns how many days t is past its week's Monday.
func daysSinceMonday(t time.Time) int {
	return (int(t.Weekday()) - int(time.Monday) + 7) % 7
}

// truncateToDay drops the time-of-day component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
