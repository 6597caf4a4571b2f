package model

import "errors"

var (
	// ErrLeagueNotFound indicates that the requested league does not exist.
	ErrLeagueNotFound = errors.New("league not found")
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
)
