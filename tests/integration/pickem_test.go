//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	gameModel "github.com/courtside/nba-pickem/internal/game/model"
	gameRouter "github.com/courtside/nba-pickem/internal/game/router"
	leagueModel "github.com/courtside/nba-pickem/internal/league/model"
	scoringModel "github.com/courtside/nba-pickem/internal/scoring/model"
	scoringRouter "github.com/courtside/nba-pickem/internal/scoring/router"
	seasonModel "github.com/courtside/nba-pickem/internal/season/model"
	seasonRouter "github.com/courtside/nba-pickem/internal/season/router"
	selectionModel "github.com/courtside/nba-pickem/internal/selection/model"
	selectionRouter "github.com/courtside/nba-pickem/internal/selection/router"
	standingsModel "github.com/courtside/nba-pickem/internal/standings/model"
	standingsRouter "github.com/courtside/nba-pickem/internal/standings/router"
	teamModel "github.com/courtside/nba-pickem/internal/team/model"
	teamRouter "github.com/courtside/nba-pickem/internal/team/router"
	"github.com/courtside/nba-pickem/internal/validation"
	weekModel "github.com/courtside/nba-pickem/internal/week/model"
	weekRouter "github.com/courtside/nba-pickem/internal/week/router"
)

// ErrorResponse mirrors the error envelope returned by all handlers.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestMain(m *testing.M) {
	if err := validation.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&leagueModel.League{},
		&leagueModel.User{},
		&seasonModel.Season{},
		&teamModel.Team{},
		&weekModel.Week{},
		&gameModel.Game{},
		&selectionModel.TeamSelection{},
	)
	require.NoError(t, err)

	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := zap.NewNop().Sugar()
	teamRouter.RegisterRoutes(r, db, logger)
	weekRouter.RegisterRoutes(r, db, logger)
	gameRouter.RegisterRoutes(r, db, logger)
	seasonRouter.RegisterRoutes(r, db, logger)
	selectionRouter.RegisterRoutes(r, db, logger)
	scoringRouter.RegisterRoutes(r, db, logger)
	standingsRouter.RegisterRoutes(r, db, logger)
	return r
}

type pickemFixture struct {
	db      *gorm.DB
	router  *gin.Engine
	league  *leagueModel.League
	season  *seasonModel.Season
	weekOne *weekModel.Week
	weekTwo *weekModel.Week
	celtics *teamModel.Team
	nuggets *teamModel.Team
	alice   *leagueModel.User
	bob     *leagueModel.User
}

// newPickemFixture seeds one league with a two-week season far enough in
// the future that the weeks are not locked.
func newPickemFixture(t *testing.T) *pickemFixture {
	db := setupDB(t)
	f := &pickemFixture{
		db:     db,
		router: setupRouter(db),
		league: &leagueModel.League{Name: "Courtside League"},
	}
	require.NoError(t, db.Create(f.league).Error)

	f.season = &seasonModel.Season{Year: 2030, LeagueID: f.league.ID}
	require.NoError(t, db.Create(f.season).Error)

	f.weekOne = &weekModel.Week{
		Number:    1,
		StartDate: time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2030, 1, 13, 0, 0, 0, 0, time.UTC),
		SeasonID:  f.season.ID,
	}
	f.weekTwo = &weekModel.Week{
		Number:    2,
		StartDate: time.Date(2030, 1, 14, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2030, 1, 20, 0, 0, 0, 0, time.UTC),
		SeasonID:  f.season.ID,
	}
	require.NoError(t, db.Create(f.weekOne).Error)
	require.NoError(t, db.Create(f.weekTwo).Error)

	f.celtics = &teamModel.Team{Name: "Boston Celtics", Abbreviation: "BOS"}
	f.nuggets = &teamModel.Team{Name: "Denver Nuggets", Abbreviation: "DEN"}
	require.NoError(t, db.Create(f.celtics).Error)
	require.NoError(t, db.Create(f.nuggets).Error)

	f.alice = &leagueModel.User{Name: "Alice", Email: "alice@example.com", LeagueID: f.league.ID}
	f.bob = &leagueModel.User{Name: "Bob", Email: "bob@example.com", LeagueID: f.league.ID}
	require.NoError(t, db.Create(f.alice).Error)
	require.NoError(t, db.Create(f.bob).Error)

	return f
}

func (f *pickemFixture) addGame(t *testing.T, nbaGameID string, home, away *teamModel.Team, week *weekModel.Week, day time.Time) *gameModel.Game {
	start := day.Add(23 * time.Hour)
	game := &gameModel.Game{
		HomeTeamID:   home.ID,
		AwayTeamID:   away.ID,
		WeekID:       &week.ID,
		Date:         day,
		NBAGameID:    &nbaGameID,
		GameDatetime: &start,
	}
	require.NoError(t, f.db.Create(game).Error)
	return game
}

func (f *pickemFixture) postJSON(t *testing.T, path string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)
	return w
}

func (f *pickemFixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	f.router.ServeHTTP(w, req)
	return w
}

func TestSelectionAndScoringFlow(t *testing.T) {
	f := newPickemFixture(t)
	f.addGame(t, "0022900001", f.celtics, f.nuggets, f.weekOne, time.Date(2030, 1, 8, 0, 0, 0, 0, time.UTC))

	// Alice picks the Celtics for week one.
	w := f.postJSON(t, "/team-selections", selectionModel.CreateSelectionRequest{
		UserID:   f.alice.ID,
		SeasonID: f.season.ID,
		WeekID:   f.weekOne.ID,
		TeamID:   f.celtics.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The picked team disappears from her available list.
	w = f.get(t, "/seasons/"+f.season.ID.String()+"/available-teams?user_id="+f.alice.ID.String())
	require.Equal(t, http.StatusOK, w.Code)
	var available []teamModel.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &available))
	require.Len(t, available, 1)
	assert.Equal(t, f.nuggets.ID, available[0].ID)

	// Picking the Celtics again in week two is rejected.
	w = f.postJSON(t, "/team-selections", selectionModel.CreateSelectionRequest{
		UserID:   f.alice.ID,
		SeasonID: f.season.ID,
		WeekID:   f.weekTwo.ID,
		TeamID:   f.celtics.ID,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "TEAM_ALREADY_PICKED", errResp.Error.Code)

	// The Celtics win; the result feed lands.
	w = f.postJSON(t, "/admin/games/0022900001/result", map[string]interface{}{
		"home_score":  110,
		"away_score":  98,
		"season_year": "2029-30",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var report scoringModel.GameResultReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.NotNil(t, report.WinnerID)
	assert.Equal(t, f.celtics.ID, *report.WinnerID)
	assert.Equal(t, 1, report.AffectedUsers)
	assert.Empty(t, report.Error)

	// Her selection now carries the win.
	w = f.get(t, "/team-selections?user_id="+f.alice.ID.String()+"&season_id="+f.season.ID.String())
	require.Equal(t, http.StatusOK, w.Code)
	var list map[string][]selectionModel.SelectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list["selections"], 1)
	assert.Equal(t, 1, list["selections"][0].TotalPoints)
	assert.Equal(t, 1, list["selections"][0].Wins)
	assert.Equal(t, 0, list["selections"][0].Losses)

	// Standings rank Alice above Bob, who has not picked.
	w = f.get(t, "/leagues/seasons/"+f.season.ID.String()+"/standings")
	require.Equal(t, http.StatusOK, w.Code)
	var standings standingsModel.StandingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &standings))
	require.Len(t, standings.Standings, 2)
	assert.Equal(t, f.alice.ID, standings.Standings[0].UserID)
	assert.Equal(t, 1, standings.Standings[0].SeasonPoints)
	assert.Equal(t, f.bob.ID, standings.Standings[1].UserID)
	assert.Equal(t, 0, standings.Standings[1].SeasonPoints)

	// The weekly grid shows Bob without a pick.
	w = f.get(t, "/leagues/seasons/"+f.season.ID.String()+"/weekly-selections/"+f.weekOne.ID.String())
	require.Equal(t, http.StatusOK, w.Code)
	var weekly standingsModel.WeeklySelectionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &weekly))
	require.Len(t, weekly.Selections, 2)
	assert.True(t, weekly.Selections[0].HasSelected)
	assert.False(t, weekly.Selections[1].HasSelected)

	// A full recalculation leaves the totals unchanged.
	w = f.postJSON(t, "/admin/recalculate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var recalc scoringModel.RecalculateReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recalc))
	assert.Equal(t, 1, recalc.SelectionsProcessed)
	assert.Equal(t, 1, recalc.TotalPointsAwarded)
}

func TestLockedWeekRejectsSelections(t *testing.T) {
	f := newPickemFixture(t)

	// A week already in the past: its earliest game start has gone by.
	lockedWeek := &weekModel.Week{
		Number:    3,
		StartDate: time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2020, 1, 12, 0, 0, 0, 0, time.UTC),
		SeasonID:  f.season.ID,
	}
	require.NoError(t, f.db.Create(lockedWeek).Error)
	f.addGame(t, "0021900050", f.nuggets, f.celtics, lockedWeek, time.Date(2020, 1, 7, 0, 0, 0, 0, time.UTC))

	req := selectionModel.CreateSelectionRequest{
		UserID:   f.bob.ID,
		SeasonID: f.season.ID,
		WeekID:   lockedWeek.ID,
		TeamID:   f.nuggets.ID,
	}

	w := f.postJSON(t, "/team-selections", req)
	require.Equal(t, http.StatusForbidden, w.Code)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "WEEK_LOCKED", errResp.Error.Code)

	// The admin route bypasses the lock but nothing else.
	w = f.postJSON(t, "/admin/team-selections", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.postJSON(t, "/admin/team-selections", selectionModel.CreateSelectionRequest{
		UserID:   f.bob.ID,
		SeasonID: f.season.ID,
		WeekID:   f.weekOne.ID,
		TeamID:   f.nuggets.ID,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "TEAM_ALREADY_PICKED", errResp.Error.Code)
}

func TestOutsiderCannotPick(t *testing.T) {
	f := newPickemFixture(t)

	other := &leagueModel.League{Name: "Other League"}
	require.NoError(t, f.db.Create(other).Error)
	outsider := &leagueModel.User{Name: "Eve", Email: "eve@example.com", LeagueID: other.ID}
	require.NoError(t, f.db.Create(outsider).Error)

	w := f.postJSON(t, "/team-selections", selectionModel.CreateSelectionRequest{
		UserID:   outsider.ID,
		SeasonID: f.season.ID,
		WeekID:   f.weekOne.ID,
		TeamID:   f.celtics.ID,
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "NOT_LEAGUE_MEMBER", errResp.Error.Code)
}
