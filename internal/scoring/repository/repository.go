// Package repository provides the scoring engine's data access layer.
// It spans games, weeks, selections and users because a single game
// result fans out into recomputation across all of them.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	gameModel "github.com/courtside/nba-pickem/internal/game/model"
	leagueModel "github.com/courtside/nba-pickem/internal/league/model"
	seasonModel "github.com/courtside/nba-pickem/internal/season/model"
	selectionModel "github.com/courtside/nba-pickem/internal/selection/model"
	weekModel "github.com/courtside/nba-pickem/internal/week/model"
)

// Repository defines the scoring engine's store operations.
type Repository interface {
	// GetWeekByID finds a week by id.
	GetWeekByID(ctx context.Context, weekID uuid.UUID) (*weekModel.Week, error)

	// WeekForDate resolves the week whose date range contains the given
	// date, or nil when no week does.
	WeekForDate(ctx context.Context, date time.Time) (*weekModel.Week, error)

	// ListWeeks returns every week ordered by number.
	ListWeeks(ctx context.Context) ([]weekModel.Week, error)

	// GetGameByNBAGameID finds a game by its external id.
	GetGameByNBAGameID(ctx context.Context, nbaGameID string) (*gameModel.Game, error)

	// GamesForTeamInRange returns games in [from, to] where the team
	// plays home or away.
	GamesForTeamInRange(ctx context.Context, teamID uuid.UUID, from, to time.Time) ([]gameModel.Game, error)

	// GamesStartingBetween returns games whose start timestamp falls in
	// [from, to].
	GamesStartingBetween(ctx context.Context, from, to time.Time) ([]gameModel.Game, error)

	// SaveGameResult persists a game's scores and winner.
	SaveGameResult(ctx context.Context, game *gameModel.Game) error

	// AssignGamesToWeek sets week_id for the given games.
	AssignGamesToWeek(ctx context.Context, gameIDs []uuid.UUID, weekID uuid.UUID) error

	// SetWeekLockTime updates a week's fallback lock time.
	SetWeekLockTime(ctx context.Context, weekID uuid.UUID, lockTime time.Time) error

	// GetSeasonByID finds a season by id.
	GetSeasonByID(ctx context.Context, seasonID uuid.UUID) (*seasonModel.Season, error)

	// SelectionsByWeek returns every selection for a week.
	SelectionsByWeek(ctx context.Context, weekID uuid.UUID) ([]selectionModel.TeamSelection, error)

	// SelectionsBySeason returns every selection for a season.
	SelectionsBySeason(ctx context.Context, seasonID uuid.UUID) ([]selectionModel.TeamSelection, error)

	// AllSelections returns every selection in the dataset.
	AllSelections(ctx context.Context) ([]selectionModel.TeamSelection, error)

	// UpdateSelectionScore persists a selection's recomputed points and record.
	UpdateSelectionScore(ctx context.Context, selectionID uuid.UUID, points, wins, losses int) error

	// ResetAllPoints zeroes all selection and user points.
	ResetAllPoints(ctx context.Context) error

	// AllUsers returns every user.
	AllUsers(ctx context.Context) ([]leagueModel.User, error)

	// SumSelectionPoints sums the user's selection points across all seasons.
	SumSelectionPoints(ctx context.Context, userID uuid.UUID) (int, error)

	// SetUserTotalPoints persists a user's recomputed aggregate.
	SetUserTotalPoints(ctx context.Context, userID uuid.UUID, total int) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new scoring repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetWeekByID finds a week by id.
func (r *repository) GetWeekByID(ctx context.Context, weekID uuid.UUID) (*weekModel.Week, error) {
	var week weekModel.Week
	err := r.db.WithContext(ctx).
		Where("id = ?", weekID).
		First(&week).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, weekModel.ErrWeekNotFound
		}
		r.logger.Errorw("GetWeekByID database error", "week_id", weekID, "error", err)
		return nil, err
	}

	return &week, nil
}

// WeekForDate resolves the week containing the given date, or nil.
func (r *repository) WeekForDate(ctx context.Context, date time.Time) (*weekModel.Week, error) {
	var week weekModel.Week
	err := r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", date, date).
		First(&week).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("WeekForDate database error", "date", date, "error", err)
		return nil, err
	}

	return &week, nil
}

// ListWeeks returns every week ordered by number.
func (r *repository) ListWeeks(ctx context.Context) ([]weekModel.Week, error) {
	var weeks []weekModel.Week
	err := r.db.WithContext(ctx).
		Order("number ASC").
		Find(&weeks).Error

	if err != nil {
		r.logger.Errorw("ListWeeks database error", "error", err)
		return nil, err
	}

	return weeks, nil
}

// GetGameByNBAGameID finds a game by its external id.
func (r *repository) GetGameByNBAGameID(ctx context.Context, nbaGameID string) (*gameModel.Game, error) {
	var game gameModel.Game
	err := r.db.WithContext(ctx).
		Where("nba_game_id = ?", nbaGameID).
		First(&game).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gameModel.ErrGameNotFound
		}
		r.logger.Errorw("GetGameByNBAGameID database error", "nba_game_id", nbaGameID, "error", err)
		return nil, err
	}

	return &game, nil
}

// GamesForTeamInRange returns games in [from, to] where the team plays.
func (r *repository) GamesForTeamInRange(ctx context.Context, teamID uuid.UUID, from, to time.Time) ([]gameModel.Game, error) {
	var games []gameModel.Game
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Where("home_team_id = ? OR away_team_id = ?", teamID, teamID).
		Find(&games).Error

	if err != nil {
		r.logger.Errorw("GamesForTeamInRange database error", "team_id", teamID, "error", err)
		return nil, err
	}

	return games, nil
}

// GamesStartingBetween returns games whose start timestamp falls in [from, to].
func (r *repository) GamesStartingBetween(ctx context.Context, from, to time.Time) ([]gameModel.Game, error) {
	var games []gameModel.Game
	err := r.db.WithContext(ctx).
		Where("game_datetime >= ? AND game_datetime <= ?", from, to).
		Find(&games).Error

	if err != nil {
		r.logger.Errorw("GamesStartingBetween database error", "error", err)
		return nil, err
	}

	return games, nil
}

// SaveGameResult persists a game's scores and winner.
func (r *repository) SaveGameResult(ctx context.Context, game *gameModel.Game) error {
	err := r.db.WithContext(ctx).
		Model(&gameModel.Game{}).
		Where("id = ?", game.ID).
		Updates(map[string]interface{}{
			"home_team_score": game.HomeTeamScore,
			"away_team_score": game.AwayTeamScore,
			"winner_id":       game.WinnerID,
			"season_year":     game.SeasonYear,
		}).Error

	if err != nil {
		r.logger.Errorw("SaveGameResult database error", "game_id", game.ID, "error", err)
		return err
	}
	return nil
}

// AssignGamesToWeek sets week_id for the given games.
func (r *repository) AssignGamesToWeek(ctx context.Context, gameIDs []uuid.UUID, weekID uuid.UUID) error {
	if len(gameIDs) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&gameModel.Game{}).
		Where("id IN ?", gameIDs).
		Update("week_id", weekID).Error

	if err != nil {
		r.logger.Errorw("AssignGamesToWeek database error", "week_id", weekID, "error", err)
		return err
	}
	return nil
}

// SetWeekLockTime updates a week's fallback lock time.
func (r *repository) SetWeekLockTime(ctx context.Context, weekID uuid.UUID, lockTime time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&weekModel.Week{}).
		Where("id = ?", weekID).
		Update("lock_time", lockTime).Error

	if err != nil {
		r.logger.Errorw("SetWeekLockTime database error", "week_id", weekID, "error", err)
		return err
	}
	return nil
}

// GetSeasonByID finds a season by id.
func (r *repository) GetSeasonByID(ctx context.Context, seasonID uuid.UUID) (*seasonModel.Season, error) {
	var season seasonModel.Season
	err := r.db.WithContext(ctx).
		Where("id = ?", seasonID).
		First(&season).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, seasonModel.ErrSeasonNotFound
		}
		r.logger.Errorw("GetSeasonByID database error", "season_id", seasonID, "error", err)
		return nil, err
	}

	return &season, nil
}

// SelectionsByWeek returns every selection for a week.
func (r *repository) SelectionsByWeek(ctx context.Context, weekID uuid.UUID) ([]selectionModel.TeamSelection, error) {
	var selections []selectionModel.TeamSelection
	err := r.db.WithContext(ctx).
		Where("week_id = ?", weekID).
		Find(&selections).Error

	if err != nil {
		r.logger.Errorw("SelectionsByWeek database error", "week_id", weekID, "error", err)
		return nil, err
	}

	return selections, nil
}

// SelectionsBySeason returns every selection for a season.
func (r *repository) SelectionsBySeason(ctx context.Context, seasonID uuid.UUID) ([]selectionModel.TeamSelection, error) {
	var selections []selectionModel.TeamSelection
	err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Find(&selections).Error

	if err != nil {
		r.logger.Errorw("SelectionsBySeason database error", "season_id", seasonID, "error", err)
		return nil, err
	}

	return selections, nil
}

// AllSelections returns every selection in the dataset.
func (r *repository) AllSelections(ctx context.Context) ([]selectionModel.TeamSelection, error) {
	var selections []selectionModel.TeamSelection
	err := r.db.WithContext(ctx).Find(&selections).Error

	if err != nil {
		r.logger.Errorw("AllSelections database error", "error", err)
		return nil, err
	}

	return selections, nil
}

// UpdateSelectionScore persists a selection's recomputed points and record.
func (r *repository) UpdateSelectionScore(ctx context.Context, selectionID uuid.UUID, points, wins, losses int) error {
	err := r.db.WithContext(ctx).
		Model(&selectionModel.TeamSelection{}).
		Where("id = ?", selectionID).
		Updates(map[string]interface{}{
			"total_points": points,
			"wins":         wins,
			"losses":       losses,
		}).Error

	if err != nil {
		r.logger.Errorw("UpdateSelectionScore database error", "selection_id", selectionID, "error", err)
		return err
	}
	return nil
}

// ResetAllPoints zeroes all selection and user points.
func (r *repository) ResetAllPoints(ctx context.Context) error {
	if err := r.db.WithContext(ctx).
		Model(&selectionModel.TeamSelection{}).
		Where("1 = 1").
		Updates(map[string]interface{}{"total_points": 0, "wins": 0, "losses": 0}).Error; err != nil {
		r.logger.Errorw("ResetAllPoints selections database error", "error", err)
		return err
	}

	if err := r.db.WithContext(ctx).
		Model(&leagueModel.User{}).
		Where("1 = 1").
		Update("total_points", 0).Error; err != nil {
		r.logger.Errorw("ResetAllPoints users database error", "error", err)
		return err
	}

	return nil
}

// AllUsers returns every user.
func (r *repository) AllUsers(ctx context.Context) ([]leagueModel.User, error) {
	var users []leagueModel.User
	err := r.db.WithContext(ctx).Find(&users).Error

	if err != nil {
		r.logger.Errorw("AllUsers database error", "error", err)
		return nil, err
	}

	return users, nil
}

// SumSelectionPoints sums the user's selection points across all seasons.
func (r *repository) SumSelectionPoints(ctx context.Context, userID uuid.UUID) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&selectionModel.TeamSelection{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_points), 0)").
		Scan(&total).Error

	if err != nil {
		r.logger.Errorw("SumSelectionPoints database error", "user_id", userID, "error", err)
		return 0, err
	}

	return int(total), nil
}

// SetUserTotalPoints persists a user's recomputed aggregate.
func (r *repository) SetUserTotalPoints(ctx context.Context, userID uuid.UUID, total int) error {
	err := r.db.WithContext(ctx).
		Model(&leagueModel.User{}).
		Where("id = ?", userID).
		Update("total_points", total).Error

	if err != nil {
		r.logger.Errorw("SetUserTotalPoints database error", "user_id", userID, "error", err)
		return err
	}
	return nil
}
