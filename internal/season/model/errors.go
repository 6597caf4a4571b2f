package model

import "errors"

// ErrSeasonNotFound indicates that the requested season does not exist.
var ErrSeasonNotFound = errors.New("season not found")
