// Package model provides domain models for leagues and their members.
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// League represents a pick'em league.
type League struct {
	ID   uuid.UUID `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Name string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
}

// TableName specifies the table name for GORM.
func (League) TableName() string {
	return "leagues"
}

// BeforeCreate assigns a UUID when none is set.
func (l *League) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// User represents a league member.
// TotalPoints is a derived cache: the sum of total_points across the
// user's selections in every season. It is recomputed by the scoring
// engine, never mutated directly.
type User struct {
	ID          uuid.UUID `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	TotalPoints int       `gorm:"column:total_points;not null;default:0" json:"total_points"`
	LeagueID    uuid.UUID `gorm:"column:league_id;type:uuid;not null" json:"league_id"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
