// Package model provides domain models and DTOs for season weeks.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	selectionModel "github.com/courtside/nba-pickem/internal/selection/model"
)

// Week represents one Monday-to-Sunday picking window within a season.
// LockTime is a fallback used when none of the week's games carries a
// start timestamp; the lock engine prefers the earliest game start.
type Week struct {
	ID        uuid.UUID  `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Number    int        `gorm:"column:number;not null" json:"number"`
	StartDate time.Time  `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate   time.Time  `gorm:"column:end_date;type:date;not null" json:"end_date"`
	LockTime  *time.Time `gorm:"column:lock_time" json:"lock_time"`
	SeasonID  uuid.UUID  `gorm:"column:season_id;type:uuid;not null" json:"season_id"`
}

// TableName specifies the table name for GORM.
func (Week) TableName() string {
	return "weeks"
}

// BeforeCreate assigns a UUID when none is set.
func (w *Week) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// ContainsDate reports whether the given date falls inside the week's
// inclusive calendar range. Only the calendar day is compared.
func (w *Week) ContainsDate(d time.Time) bool {
	day := d.Truncate(24 * time.Hour)
	return !day.Before(w.StartDate.Truncate(24*time.Hour)) && !day.After(w.EndDate.Truncate(24*time.Hour))
}

// NextWeekResponse is returned by GET /weeks/next-week.
type NextWeekResponse struct {
	ID              uuid.UUID                     `json:"id"`
	Number          int                           `json:"number"`
	StartDate       time.Time                     `json:"start_date"`
	EndDate         time.Time                     `json:"end_date"`
	LockTime        *time.Time                    `json:"lock_time"`
	SeasonID        uuid.UUID                     `json:"season_id"`
	CanUseSuperweek bool                          `json:"can_use_superweek"`
	Selection       *selectionModel.SelectionInfo `json:"selection"`
}

// CurrentWeekResponse is returned by GET /weeks/current-week.
type CurrentWeekResponse struct {
	ID        uuid.UUID                     `json:"id"`
	Number    int                           `json:"number"`
	StartDate time.Time                     `json:"start_date"`
	EndDate   time.Time                     `json:"end_date"`
	LockTime  *time.Time                    `json:"lock_time"`
	SeasonID  uuid.UUID                     `json:"season_id"`
	IsLocked  bool                          `json:"is_locked"`
	Selection *selectionModel.SelectionInfo `json:"selection"`
}
