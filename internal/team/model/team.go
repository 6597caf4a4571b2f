// Package model provides domain models and DTOs for NBA teams.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team represents an NBA team. Identity only; no mutable state.
type Team struct {
	ID           uuid.UUID `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(255);uniqueIndex;not null" json:"name"`
	Abbreviation string    `gorm:"column:abbreviation;type:varchar(10);uniqueIndex;not null" json:"abbreviation"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns a UUID when none is set.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ScheduleEntry represents one game in a team's weekly schedule.
type ScheduleEntry struct {
	OpponentName         string    `json:"opponent_name"`
	OpponentAbbreviation string    `json:"opponent_abbreviation"`
	Date                 time.Time `json:"date"`
	IsAway               bool      `json:"is_away"`
}
