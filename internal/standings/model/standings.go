// Package model provides DTOs for league standings endpoints.
package model

import (
	"github.com/google/uuid"
)

// UserStanding is one ranked row in the season standings.
type UserStanding struct {
	Rank         int       `json:"rank"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	SeasonPoints int       `json:"season_points"`
}

// StandingsResponse is returned by GET /leagues/seasons/:season_id/standings.
type StandingsResponse struct {
	LeagueID   uuid.UUID      `json:"league_id"`
	LeagueName string         `json:"league_name"`
	SeasonID   uuid.UUID      `json:"season_id"`
	SeasonYear int            `json:"season_year"`
	Standings  []UserStanding `json:"standings"`
}

// UserWeeklySelection is one league member's pick status for a week.
// Users who have not picked appear with HasSelected false and zeroed
// pick fields.
type UserWeeklySelection struct {
	UserID         uuid.UUID  `json:"user_id"`
	Email          string     `json:"email"`
	HasSelected    bool       `json:"has_selected"`
	TeamID         *uuid.UUID `json:"team_id"`
	TeamName       *string    `json:"team_name"`
	IsSuperweek    bool       `json:"is_superweek"`
	IsShootTheMoon bool       `json:"is_shoot_the_moon"`
	TotalPoints    int        `json:"total_points"`
}

// WeeklySelectionsResponse is returned by
// GET /leagues/seasons/:season_id/weekly-selections/:week_id.
type WeeklySelectionsResponse struct {
	LeagueID   uuid.UUID             `json:"league_id"`
	LeagueName string                `json:"league_name"`
	SeasonID   uuid.UUID             `json:"season_id"`
	SeasonYear int                   `json:"season_year"`
	WeekID     uuid.UUID             `json:"week_id"`
	WeekNumber int                   `json:"week_number"`
	Selections []UserWeeklySelection `json:"selections"`
}
