package model

import "errors"

// ErrGameNotFound indicates that the requested game does not exist.
var ErrGameNotFound = errors.New("game not found")
