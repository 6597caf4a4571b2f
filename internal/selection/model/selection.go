// Package model provides domain models and DTOs for team selections.
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamSelection is a user's pick of one team for one week of a season.
// TotalPoints, Wins and Losses are derived caches recomputed by the
// scoring engine from game results; they are never trusted between
// recomputations.
type TeamSelection struct {
	ID             uuid.UUID `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_user_week;uniqueIndex:uq_user_team_season" json:"user_id"`
	TeamID         uuid.UUID `gorm:"column:team_id;type:uuid;not null;uniqueIndex:uq_user_team_season" json:"team_id"`
	SeasonID       uuid.UUID `gorm:"column:season_id;type:uuid;not null;uniqueIndex:uq_user_team_season" json:"season_id"`
	WeekID         uuid.UUID `gorm:"column:week_id;type:uuid;not null;uniqueIndex:uq_user_week" json:"week_id"`
	TotalPoints    int       `gorm:"column:total_points;not null;default:0" json:"total_points"`
	Wins           int       `gorm:"column:wins;not null;default:0" json:"wins"`
	Losses         int       `gorm:"column:losses;not null;default:0" json:"losses"`
	IsSuperweek    bool      `gorm:"column:is_superweek;not null;default:false" json:"is_superweek"`
	IsShootTheMoon bool      `gorm:"column:is_shoot_the_moon;not null;default:false" json:"is_shoot_the_moon"`
}

// TableName specifies the table name for GORM.
func (TeamSelection) TableName() string {
	return "team_selections"
}

// BeforeCreate assigns a UUID when none is set.
func (s *TeamSelection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SelectionInfo is the typed record describing a user's pick for a week.
// A nil *SelectionInfo means no selection exists.
type SelectionInfo struct {
	TeamID         uuid.UUID `json:"team_id"`
	TeamName       string    `json:"team_name"`
	IsSuperweek    bool      `json:"is_superweek"`
	IsShootTheMoon bool      `json:"is_shoot_the_moon"`
}

// CreateSelectionRequest is the payload for POST /team-selections.
type CreateSelectionRequest struct {
	UserID         uuid.UUID `json:"user_id" binding:"required"`
	SeasonID       uuid.UUID `json:"season_id" binding:"required"`
	WeekID         uuid.UUID `json:"week_id" binding:"required"`
	TeamID         uuid.UUID `json:"team_id" binding:"required"`
	IsSuperweek    bool      `json:"is_superweek"`
	IsShootTheMoon bool      `json:"is_shoot_the_moon"`
}

// SelectionResponse is returned for created or updated selections.
type SelectionResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	TeamID         uuid.UUID `json:"team_id"`
	SeasonID       uuid.UUID `json:"season_id"`
	WeekID         uuid.UUID `json:"week_id"`
	TotalPoints    int       `json:"total_points"`
	Wins           int       `json:"wins"`
	Losses         int       `json:"losses"`
	IsSuperweek    bool      `json:"is_superweek"`
	IsShootTheMoon bool      `json:"is_shoot_the_moon"`
}

// NewSelectionResponse maps a TeamSelection to its response form.
func NewSelectionResponse(s *TeamSelection) *SelectionResponse {
	return &SelectionResponse{
		ID:             s.ID,
		UserID:         s.UserID,
		TeamID:         s.TeamID,
		SeasonID:       s.SeasonID,
		WeekID:         s.WeekID,
		TotalPoints:    s.TotalPoints,
		Wins:           s.Wins,
		Losses:         s.Losses,
		IsSuperweek:    s.IsSuperweek,
		IsShootTheMoon: s.IsShootTheMoon,
	}
}
