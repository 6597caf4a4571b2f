package model

import "errors"

var (
	// ErrWeekNotFound indicates that the requested week does not exist.
	ErrWeekNotFound = errors.New("week not found")
	// ErrNoWeeksInSeason indicates that the season has no weeks configured.
	ErrNoWeeksInSeason = errors.New("no weeks found for this season")
)
