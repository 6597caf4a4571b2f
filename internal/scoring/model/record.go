// Package model provides scoring engine result types.
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Record is a team's win-loss tally for one week, derived from the
// week's date range rather than the games' stored week assignment.
type Record struct {
	Wins        int  `json:"wins"`
	Losses      int  `json:"losses"`
	Pending     int  `json:"games_pending"`
	TotalGames  int  `json:"total_games"`
	AllComplete bool `json:"all_games_complete"`
}

// String renders the record as "W-L".
func (r Record) String() string {
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

// GameResultReport summarizes one ApplyGameResult run.
type GameResultReport struct {
	NBAGameID     string     `json:"game_id"`
	WinnerID      *uuid.UUID `json:"winner_id"`
	WeekNumber    *int       `json:"week_number,omitempty"`
	AffectedUsers int        `json:"affected_users"`
	PointsAwarded int        `json:"points_awarded"`
	// Error carries informational degradation notices (for example a
	// game date outside every week); it never indicates a failed write.
	Error string `json:"error,omitempty"`
}

// RecalculateReport summarizes a from-scratch points rebuild.
type RecalculateReport struct {
	SelectionsProcessed int `json:"selections_processed"`
	UsersAffected       int `json:"users_affected"`
	TotalPointsAwarded  int `json:"total_points_awarded"`
}

// SelectionChange records one selection whose points changed during a
// season retabulation.
type SelectionChange struct {
	UserID         uuid.UUID `json:"user_id"`
	TeamID         uuid.UUID `json:"team_id"`
	WeekNumber     *int      `json:"week_number"`
	OldPoints      int       `json:"old_points"`
	NewPoints      int       `json:"new_points"`
	Difference     int       `json:"difference"`
	IsSuperweek    bool      `json:"is_superweek"`
	IsShootTheMoon bool      `json:"is_shoot_the_moon"`
	Record         string    `json:"record"`
}

// RetabulateReport summarizes a season retabulation.
type RetabulateReport struct {
	SeasonID           uuid.UUID         `json:"season_id"`
	SeasonYear         int               `json:"season_year"`
	SelectionsFound    int               `json:"selections_found"`
	SelectionsUpdated  int               `json:"selections_updated"`
	UsersAffected      int               `json:"users_affected"`
	TotalPointsAwarded int               `json:"total_points_awarded"`
	Changes            []SelectionChange `json:"changes"`
}

// ReassignReport summarizes a week-membership reconciliation pass.
type ReassignReport struct {
	WeeksProcessed int `json:"weeks_processed"`
	WeeksUpdated   int `json:"weeks_updated"`
	GamesAssigned  int `json:"games_assigned"`
}
