// Package model provides domain models and DTOs for games.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Game represents a single NBA game. Winner and scores stay null until
// the game is final; a tie is representable as final scores with no
// winner. WeekID is a cache of week membership assigned at ingestion —
// the scoring engine re-derives membership from the game date.
type Game struct {
	ID            uuid.UUID  `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	HomeTeamID    uuid.UUID  `gorm:"column:home_team_id;type:uuid;not null" json:"home_team_id"`
	AwayTeamID    uuid.UUID  `gorm:"column:away_team_id;type:uuid;not null" json:"away_team_id"`
	WinnerID      *uuid.UUID `gorm:"column:winner_id;type:uuid" json:"winner_id"`
	WeekID        *uuid.UUID `gorm:"column:week_id;type:uuid" json:"week_id"`
	Date          time.Time  `gorm:"column:date;type:date;not null" json:"date"`
	NBAGameID     *string    `gorm:"column:nba_game_id;type:varchar(32);uniqueIndex" json:"nba_game_id"`
	GameDatetime  *time.Time `gorm:"column:game_datetime" json:"game_datetime"`
	HomeTeamScore *int       `gorm:"column:home_team_score" json:"home_team_score"`
	AwayTeamScore *int       `gorm:"column:away_team_score" json:"away_team_score"`
	SeasonYear    *string    `gorm:"column:season_year;type:varchar(10)" json:"season_year"`
}

// TableName specifies the table name for GORM.
func (Game) TableName() string {
	return "games"
}

// BeforeCreate assigns a UUID when none is set.
func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Involves reports whether the given team plays in this game.
func (g *Game) Involves(teamID uuid.UUID) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

// TeamGameResponse represents one game in GET /games responses.
type TeamGameResponse struct {
	ID            uuid.UUID  `json:"id"`
	WeekID        *uuid.UUID `json:"week_id"`
	Date          time.Time  `json:"date"`
	GameDatetime  *time.Time `json:"game_datetime"`
	HomeTeamID    uuid.UUID  `json:"home_team_id"`
	HomeTeamName  string     `json:"home_team_name"`
	HomeTeamScore *int       `json:"home_team_score"`
	AwayTeamID    uuid.UUID  `json:"away_team_id"`
	AwayTeamName  string     `json:"away_team_name"`
	AwayTeamScore *int       `json:"away_team_score"`
	WinnerID      *uuid.UUID `json:"winner_id"`
	WinnerName    *string    `json:"winner_name"`
	NBAGameID     *string    `json:"nba_game_id"`
}

// GameResultRequest is the payload for POST /admin/games/:nba_game_id/result.
// SeasonYear optionally corrects the game's season label ("2024-25").
type GameResultRequest struct {
	HomeScore  *int    `json:"home_score" binding:"required"`
	AwayScore  *int    `json:"away_score" binding:"required"`
	SeasonYear *string `json:"season_year" binding:"omitempty,seasonyear"`
}
