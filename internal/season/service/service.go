// Package service implements business logic for season endpoints.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	leagueRepo "github.com/courtside/nba-pickem/internal/league/repository"
	"github.com/courtside/nba-pickem/internal/season/repository"
	teamModel "github.com/courtside/nba-pickem/internal/team/model"
	teamRepo "github.com/courtside/nba-pickem/internal/team/repository"
)

// Service defines the interface for season business logic.
type Service interface {
	// AvailableTeams returns the teams the user has not yet picked in
	// the season.
	AvailableTeams(ctx context.Context, userID, seasonID uuid.UUID) ([]teamModel.Team, error)
}

type service struct {
	repo    repository.Repository
	teams   teamRepo.Repository
	leagues leagueRepo.Repository
	logger  *zap.SugaredLogger
}

// New creates a new season service instance.
func New(repo repository.Repository, teams teamRepo.Repository, leagues leagueRepo.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, teams: teams, leagues: leagues, logger: logger}
}

// AvailableTeams returns the teams the user has not yet picked in the season.
func (s *service) AvailableTeams(ctx context.Context, userID, seasonID uuid.UUID) ([]teamModel.Team, error) {
	if _, err := s.repo.GetByID(ctx, seasonID); err != nil {
		return nil, err
	}
	if _, err := s.leagues.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.teams.ListNotPickedInSeason(ctx, userID, seasonID)
}
