// Package service implements business logic for standings endpoints.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	leagueRepo "github.com/courtside/nba-pickem/internal/league/repository"
	seasonRepo "github.com/courtside/nba-pickem/internal/season/repository"
	"github.com/courtside/nba-pickem/internal/standings/model"
	"github.com/courtside/nba-pickem/internal/standings/repository"
	teamModel "github.com/courtside/nba-pickem/internal/team/model"
	teamRepo "github.com/courtside/nba-pickem/internal/team/repository"
	weekRepo "github.com/courtside/nba-pickem/internal/week/repository"
)

// Service defines the interface for standings business logic.
type Service interface {
	// SeasonStandings returns the season's ranked leaderboard.
	SeasonStandings(ctx context.Context, seasonID uuid.UUID) (*model.StandingsResponse, error)

	// WeeklySelections returns every league member's pick status for a
	// week, including members who have not picked.
	WeeklySelections(ctx context.Context, seasonID, weekID uuid.UUID) (*model.WeeklySelectionsResponse, error)
}

type service struct {
	repo    repository.Repository
	leagues leagueRepo.Repository
	seasons seasonRepo.Repository
	weeks   weekRepo.Repository
	teams   teamRepo.Repository
	logger  *zap.SugaredLogger
}

// New creates a new standings service instance.
func New(
	repo repository.Repository,
	leagues leagueRepo.Repository,
	seasons seasonRepo.Repository,
	weeks weekRepo.Repository,
	teams teamRepo.Repository,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:    repo,
		leagues: leagues,
		seasons: seasons,
		weeks:   weeks,
		teams:   teams,
		logger:  logger,
	}
}

// SeasonStandings returns the season's ranked leaderboard.
//
// Points are summed per season from selections, not read from the
// users' cached cross-season totals.
func (s *service) SeasonStandings(ctx context.Context, seasonID uuid.UUID) (*model.StandingsResponse, error) {
	season, err := s.seasons.GetByID(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	league, err := s.leagues.GetLeagueByID(ctx, season.LeagueID)
	if err != nil {
		return nil, err
	}

	standings, err := s.repo.SeasonStandings(ctx, league.ID, seasonID)
	if err != nil {
		return nil, err
	}

	return &model.StandingsResponse{
		LeagueID:   league.ID,
		LeagueName: league.Name,
		SeasonID:   season.ID,
		SeasonYear: season.Year,
		Standings:  standings,
	}, nil
}

// WeeklySelections returns every league member's pick status for a week.
func (s *service) WeeklySelections(ctx context.Context, seasonID, weekID uuid.UUID) (*model.WeeklySelectionsResponse, error) {
	season, err := s.seasons.GetByID(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	league, err := s.leagues.GetLeagueByID(ctx, season.LeagueID)
	if err != nil {
		return nil, err
	}

	week, err := s.weeks.GetByID(ctx, weekID)
	if err != nil {
		return nil, err
	}

	users, err := s.leagues.ListUsersByLeague(ctx, league.ID)
	if err != nil {
		return nil, err
	}

	selections, err := s.repo.SelectionsForWeek(ctx, seasonID, weekID)
	if err != nil {
		return nil, err
	}

	byUser := make(map[uuid.UUID]int, len(selections))
	for i := range selections {
		byUser[selections[i].UserID] = i
	}

	rows := make([]model.UserWeeklySelection, 0, len(users))
	for _, user := range users {
		row := model.UserWeeklySelection{
			UserID: user.ID,
			Email:  user.Email,
		}

		if i, ok := byUser[user.ID]; ok {
			selection := &selections[i]
			row.HasSelected = true
			row.TeamID = &selection.TeamID
			row.IsSuperweek = selection.IsSuperweek
			row.IsShootTheMoon = selection.IsShootTheMoon
			row.TotalPoints = selection.TotalPoints

			team, err := s.teams.GetByID(ctx, selection.TeamID)
			if err == nil {
				row.TeamName = &team.Name
			} else if !errors.Is(err, teamModel.ErrTeamNotFound) {
				return nil, err
			}
		}

		rows = append(rows, row)
	}

	return &model.WeeklySelectionsResponse{
		LeagueID:   league.ID,
		LeagueName: league.Name,
		SeasonID:   season.ID,
		SeasonYear: season.Year,
		WeekID:     week.ID,
		WeekNumber: week.Number,
		Selections: rows,
	}, nil
}
