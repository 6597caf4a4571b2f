// Package model provides domain models for seasons.
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Season represents one NBA season within a league.
type Season struct {
	ID       uuid.UUID `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Year     int       `gorm:"column:year;not null" json:"year"`
	LeagueID uuid.UUID `gorm:"column:league_id;type:uuid;not null" json:"league_id"`
}

// TableName specifies the table name for GORM.
func (Season) TableName() string {
	return "seasons"
}

// BeforeCreate assigns a UUID when none is set.
func (s *Season) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
