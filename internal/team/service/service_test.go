package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gameModel "github.com/courtside/nba-pickem/internal/game/model"
	gameRepo "github.com/courtside/nba-pickem/internal/game/repository"
	"github.com/courtside/nba-pickem/internal/team/model"
	"github.com/courtside/nba-pickem/internal/team/repository"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.Team{}, &gameModel.Game{})
	require.NoError(t, err)

	return db
}

func addTeam(t *testing.T, db *gorm.DB, name, abbr string) *model.Team {
	team := &model.Team{Name: name, Abbreviation: abbr}
	require.NoError(t, db.Create(team).Error)
	return team
}

func addGame(t *testing.T, db *gorm.DB, home, away *model.Team, day time.Time) *gameModel.Game {
	game := &gameModel.Game{HomeTeamID: home.ID, AwayTeamID: away.ID, Date: day}
	require.NoError(t, db.Create(game).Error)
	return game
}

func newService(db *gorm.DB, now time.Time) Service {
	logger := zap.NewNop().Sugar()
	return New(repository.New(db, logger), gameRepo.New(db, logger), fakeClock{now: now}, logger)
}

func TestService_NextWeekSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the coming week's games", func(t *testing.T) {
		db := setupTestDB(t)
		bos := addTeam(t, db, "Boston Celtics", "BOS")
		den := addTeam(t, db, "Denver Nuggets", "DEN")
		mia := addTeam(t, db, "Miami Heat", "MIA")

		// Wednesday 2026-01-07; next week runs Jan 12 through Jan 18.
		addGame(t, db, bos, den, time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC))
		addGame(t, db, mia, bos, time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC))
		// This week's game must not appear.
		addGame(t, db, bos, mia, time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC))

		svc := newService(db, time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC))
		schedule, err := svc.NextWeekSchedule(ctx, bos.ID)

		require.NoError(t, err)
		require.Len(t, schedule, 2)
		assert.Equal(t, "Denver Nuggets", schedule[0].OpponentName)
		assert.False(t, schedule[0].IsAway)
		assert.Equal(t, "Miami Heat", schedule[1].OpponentName)
		assert.Equal(t, "MIA", schedule[1].OpponentAbbreviation)
		assert.True(t, schedule[1].IsAway)
	})

	t.Run("monday skips to the following week", func(t *testing.T) {
		db := setupTestDB(t)
		bos := addTeam(t, db, "Boston Celtics", "BOS")
		den := addTeam(t, db, "Denver Nuggets", "DEN")

		addGame(t, db, bos, den, time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC))

		// On Monday Jan 12 the coming week starts Jan 19, not today.
		svc := newService(db, time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC))
		schedule, err := svc.NextWeekSchedule(ctx, bos.ID)

		require.NoError(t, err)
		assert.Empty(t, schedule)
	})

	t.Run("unknown team", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newService(db, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC))

		schedule, err := svc.NextWeekSchedule(ctx, uuid.New())

		assert.Nil(t, schedule)
		assert.ErrorIs(t, err, model.ErrTeamNotFound)
	})
}

func TestService_WeekSchedule(t *testing.T) {
	ctx := context.Background()

	db := setupTestDB(t)
	bos := addTeam(t, db, "Boston Celtics", "BOS")
	den := addTeam(t, db, "Denver Nuggets", "DEN")
	addTeam(t, db, "Miami Heat", "MIA")

	addGame(t, db, bos, den, time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC))

	svc := newService(db, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC))
	// Reference date mid-week; the week runs Jan 12 through Jan 18.
	schedule, err := svc.WeekSchedule(ctx, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, schedule, 3)

	require.Len(t, schedule["Boston Celtics"], 1)
	assert.Equal(t, "Denver Nuggets", schedule["Boston Celtics"][0].OpponentName)
	assert.False(t, schedule["Boston Celtics"][0].IsAway)

	require.Len(t, schedule["Denver Nuggets"], 1)
	assert.True(t, schedule["Denver Nuggets"][0].IsAway)

	// Idle teams still appear with empty schedules.
	assert.Empty(t, schedule["Miami Heat"])
}
