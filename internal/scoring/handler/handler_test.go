package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	gameModel "github.com/courtside/nba-pickem/internal/game/model"
	"github.com/courtside/nba-pickem/internal/scoring/model"
	"github.com/courtside/nba-pickem/internal/scoring/service"
	selectionModel "github.com/courtside/nba-pickem/internal/selection/model"
	"github.com/courtside/nba-pickem/internal/validation"
	weekModel "github.com/courtside/nba-pickem/internal/week/model"
)

func TestMain(m *testing.M) {
	if err := validation.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type mockService struct {
	mock.Mock
}

func (m *mockService) TeamWeekRecord(ctx context.Context, teamID uuid.UUID, week *weekModel.Week) (model.Record, error) {
	args := m.Called(ctx, teamID, week)
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *mockService) CalculateSelectionPoints(ctx context.Context, selection *selectionModel.TeamSelection) (int, model.Record, error) {
	args := m.Called(ctx, selection)
	return args.Int(0), args.Get(1).(model.Record), args.Error(2)
}

func (m *mockService) ApplyGameResult(ctx context.Context, nbaGameID string, req *gameModel.GameResultRequest) (*model.GameResultReport, error) {
	args := m.Called(ctx, nbaGameID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GameResultReport), args.Error(1)
}

func (m *mockService) RecalculateAll(ctx context.Context) (*model.RecalculateReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RecalculateReport), args.Error(1)
}

func (m *mockService) RetabulateSeason(ctx context.Context, seasonID uuid.UUID) (*model.RetabulateReport, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RetabulateReport), args.Error(1)
}

func (m *mockService) ReassignGamesToWeeks(ctx context.Context) (*model.ReassignReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReassignReport), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_ApplyGameResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/admin/games/:nba_game_id/result", handler.ApplyGameResult)

		winnerID := uuid.New()
		report := &model.GameResultReport{
			NBAGameID:     "0022500123",
			WinnerID:      &winnerID,
			AffectedUsers: 2,
			PointsAwarded: 3,
		}
		mockSvc.On("ApplyGameResult", mock.Anything, "0022500123", mock.Anything).Return(report, nil)

		body, _ := json.Marshal(map[string]int{"home_score": 110, "away_score": 98})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/games/0022500123/result", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response model.GameResultReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "0022500123", response.NBAGameID)
		assert.Equal(t, 2, response.AffectedUsers)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown game returns 404", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/admin/games/:nba_game_id/result", handler.ApplyGameResult)

		mockSvc.On("ApplyGameResult", mock.Anything, "nope", mock.Anything).Return(nil, gameModel.ErrGameNotFound)

		body, _ := json.Marshal(map[string]int{"home_score": 100, "away_score": 100})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/games/nope/result", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing scores rejected", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/admin/games/:nba_game_id/result", handler.ApplyGameResult)

		body, _ := json.Marshal(map[string]int{"home_score": 110})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/games/0022500123/result", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "ApplyGameResult")
	})
}

func TestHandler_RecalculateAll(t *testing.T) {
	mockSvc := new(mockService)
	handler := New(mockSvc, zap.NewNop().Sugar())
	router := setupRouter()
	router.POST("/admin/recalculate", handler.RecalculateAll)

	report := &model.RecalculateReport{SelectionsProcessed: 10, UsersAffected: 4, TotalPointsAwarded: 23}
	mockSvc.On("RecalculateAll", mock.Anything).Return(report, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/recalculate", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response model.RecalculateReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 10, response.SelectionsProcessed)
	mockSvc.AssertExpectations(t)
}

func TestHandler_RetabulateSeason(t *testing.T) {
	t.Run("invalid season id", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/admin/seasons/:season_id/retabulate", handler.RetabulateSeason)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/seasons/not-a-uuid/retabulate", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "RetabulateSeason")
	})

	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/admin/seasons/:season_id/retabulate", handler.RetabulateSeason)

		seasonID := uuid.New()
		report := &model.RetabulateReport{SeasonID: seasonID, SeasonYear: 2026, Changes: []model.SelectionChange{}}
		mockSvc.On("RetabulateSeason", mock.Anything, seasonID).Return(report, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/seasons/"+seasonID.String()+"/retabulate", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})
}
