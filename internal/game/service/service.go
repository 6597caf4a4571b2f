// Package service implements business logic for game endpoints.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/courtside/nba-pickem/internal/game/model"
	"github.com/courtside/nba-pickem/internal/game/repository"
	teamRepo "github.com/courtside/nba-pickem/internal/team/repository"
	weekRepo "github.com/courtside/nba-pickem/internal/week/repository"
)

// Service defines the interface for game business logic.
type Service interface {
	// ListTeamGames returns a team's games in a week with team names
	// resolved, ordered by start time.
	ListTeamGames(ctx context.Context, teamID, weekID uuid.UUID) ([]model.TeamGameResponse, error)
}

type service struct {
	repo   repository.Repository
	teams  teamRepo.Repository
	weeks  weekRepo.Repository
	logger *zap.SugaredLogger
}

// New creates a new game service instance.
func New(repo repository.Repository, teams teamRepo.Repository, weeks weekRepo.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, teams: teams, weeks: weeks, logger: logger}
}

// ListTeamGames returns a team's games in a week with team names resolved.
func (s *service) ListTeamGames(ctx context.Context, teamID, weekID uuid.UUID) ([]model.TeamGameResponse, error) {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	if _, err := s.weeks.GetByID(ctx, weekID); err != nil {
		return nil, err
	}

	games, err := s.repo.ListByTeamAndWeek(ctx, teamID, weekID)
	if err != nil {
		return nil, err
	}

	// Team names resolved through a small cache; a week's slate only
	// touches a handful of teams.
	names := make(map[uuid.UUID]string)
	lookup := func(id uuid.UUID) string {
		if name, ok := names[id]; ok {
			return name
		}
		team, err := s.teams.GetByID(ctx, id)
		if err != nil {
			names[id] = ""
			return ""
		}
		names[id] = team.Name
		return team.Name
	}

	responses := make([]model.TeamGameResponse, 0, len(games))
	for _, game := range games {
		resp := model.TeamGameResponse{
			ID:            game.ID,
			WeekID:        game.WeekID,
			Date:          game.Date,
			GameDatetime:  game.GameDatetime,
			HomeTeamID:    game.HomeTeamID,
			HomeTeamName:  lookup(game.HomeTeamID),
			HomeTeamScore: game.HomeTeamScore,
			AwayTeamID:    game.AwayTeamID,
			AwayTeamName:  lookup(game.AwayTeamID),
			AwayTeamScore: game.AwayTeamScore,
			WinnerID:      game.WinnerID,
			NBAGameID:     game.NBAGameID,
		}
		if game.WinnerID != nil {
			name := lookup(*game.WinnerID)
			resp.WinnerName = &name
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
