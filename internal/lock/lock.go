// Package lock implements the pick-lock engine: it decides whether a
// week still accepts new or changed selections.
package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	weekModel "github.com/courtside/nba-pickem/internal/week/model"
)

// GameLookup supplies game start times for a week. Implemented by the
// game repository.
type GameLookup interface {
	// EarliestGameTime returns the earliest game_datetime among the
	// week's games that have one, or nil when no game carries a
	// start timestamp.
	EarliestGameTime(ctx context.Context, weekID uuid.UUID) (*time.Time, error)
}

// Engine decides whether a week is locked for pick submission.
type Engine struct {
	games  GameLookup
	clock  Clock
	logger *zap.SugaredLogger
}

// NewEngine creates a new lock engine instance.
func NewEngine(games GameLookup, clock Clock, logger *zap.SugaredLogger) *Engine {
	return &Engine{games: games, clock: clock, logger: logger}
}

// IsWeekLocked reports whether picks for the week are locked and the
// lock time the decision was based on.
//
// The lock time is the earliest start timestamp among the week's games;
// when no game carries one, the week's stored lock_time is used; when
// that is also absent the week is never locked. The check is a pure
// query consulted on every selection write — game times can be
// corrected up until lock, so the result is never cached.
func (e *Engine) IsWeekLocked(ctx context.Context, week *weekModel.Week) (bool, *time.Time, error) {
	gameTime, err := e.games.EarliestGameTime(ctx, week.ID)
	if err != nil {
		return false, nil, err
	}

	lockTime := gameTime
	if lockTime == nil {
		if week.LockTime == nil {
			e.logger.Debugw("week has no lock basis, treating as unlocked", "week_id", week.ID)
			return false, nil, nil
		}
		lockTime = week.LockTime
	}

	// All comparisons happen in UTC; the store connection runs with
	// TimeZone=UTC so zone-less values come back as UTC readings.
	utcLock := lockTime.UTC()

	// Equality counts as locked.
	locked := !e.clock.Now().UTC().Before(utcLock)

	return locked, &utcLock, nil
}
