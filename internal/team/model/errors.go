package model

import "errors"

// ErrTeamNotFound indicates that the requested team does not exist.
var ErrTeamNotFound = errors.New("team not found")
