package model

import "errors"

var (
	// ErrSelectionNotFound indicates that the requested selection does not exist.
	ErrSelectionNotFound = errors.New("selection not found")
	// ErrWeekLocked indicates that picks for the week are locked.
	ErrWeekLocked = errors.New("picks are locked for this week")
	// ErrTeamAlreadyPicked indicates the user already picked this team in the season.
	ErrTeamAlreadyPicked = errors.New("team already selected this season")
	// ErrSuperweekUsed indicates the user already used their superweek this season.
	ErrSuperweekUsed = errors.New("superweek already used this season")
	// ErrNotLeagueMember indicates the user does not belong to the season's league.
	ErrNotLeagueMember = errors.New("user does not belong to this season's league")
)
