// Package service implements the scoring engine: selection point
// calculation and the recomputation passes triggered by game results.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	gameModel "github.com/courtside/nba-pickem/internal/game/model"
	"github.com/courtside/nba-pickem/internal/scoring/model"
	"github.com/courtside/nba-pickem/internal/scoring/repository"
	selectionModel "github.com/courtside/nba-pickem/internal/selection/model"
	weekModel "github.com/courtside/nba-pickem/internal/week/model"
)

// Week boundaries follow the US eastern scoreboard day.
var easternOffset = time.FixedZone("EST", -5*60*60)

// Service defines the scoring engine operations.
type Service interface {
	// TeamWeekRecord computes a team's win-loss record for a week by
	// scanning the week's date range.
	TeamWeekRecord(ctx context.Context, teamID uuid.UUID, week *weekModel.Week) (model.Record, error)

	// CalculateSelectionPoints computes a selection's points from the
	// current game state.
	CalculateSelectionPoints(ctx context.Context, selection *selectionModel.TeamSelection) (int, model.Record, error)

	// ApplyGameResult records a final score and recomputes every
	// selection in the game's week.
	ApplyGameResult(ctx context.Context, nbaGameID string, req *gameModel.GameResultRequest) (*model.GameResultReport, error)

	// RecalculateAll rebuilds every selection's and user's points from scratch.
	RecalculateAll(ctx context.Context) (*model.RecalculateReport, error)

	// RetabulateSeason recomputes one season's selections and reports changes.
	RetabulateSeason(ctx context.Context, seasonID uuid.UUID) (*model.RetabulateReport, error)

	// ReassignGamesToWeeks reconciles game week membership from dates
	// and refreshes week lock times.
	ReassignGamesToWeeks(ctx context.Context) (*model.ReassignReport, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new scoring service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// TeamWeekRecord computes a team's win-loss record for a week.
//
// Games are matched by the week's date range, not by their stored
// week_id: ingestion keeps the foreign key in sync, but the scoring
// path re-derives membership from dates and flags any divergence.
func (s *service) TeamWeekRecord(ctx context.Context, teamID uuid.UUID, week *weekModel.Week) (model.Record, error) {
	games, err := s.repo.GamesForTeamInRange(ctx, teamID, week.StartDate, week.EndDate)
	if err != nil {
		return model.Record{}, err
	}

	var record model.Record
	for _, game := range games {
		if game.WeekID != nil && *game.WeekID != week.ID {
			s.logger.Warnw("game week assignment diverges from date range",
				"game_id", game.ID, "assigned_week_id", *game.WeekID, "date_week_id", week.ID)
		}

		switch {
		case game.WinnerID == nil:
			record.Pending++
		case *game.WinnerID == teamID:
			record.Wins++
		default:
			record.Losses++
		}
	}

	record.TotalGames = len(games)
	record.AllComplete = record.Pending == 0

	return record, nil
}

// CalculateSelectionPoints computes a selection's points.
//
// Rules:
//   - regular pick: 1 point per win, scored as games complete
//   - superweek: 2 points per win, scored as games complete
//   - shoot the moon: 2 points per loss, but only once every game of
//     the week is final and the team lost them all; otherwise 0
//
// Shoot the moon is checked first and wins if both flags are somehow set.
// A selection whose week cannot be resolved scores zero rather than failing.
func (s *service) CalculateSelectionPoints(ctx context.Context, selection *selectionModel.TeamSelection) (int, model.Record, error) {
	week, err := s.repo.GetWeekByID(ctx, selection.WeekID)
	if err != nil {
		if errors.Is(err, weekModel.ErrWeekNotFound) {
			s.logger.Warnw("selection has no resolvable week, scoring zero", "selection_id", selection.ID)
			return 0, model.Record{}, nil
		}
		return 0, model.Record{}, err
	}

	record, err := s.TeamWeekRecord(ctx, selection.TeamID, week)
	if err != nil {
		return 0, model.Record{}, err
	}

	return scorePoints(selection, record), record, nil
}

// scorePoints applies the scoring rules to a computed record.
func scorePoints(selection *selectionModel.TeamSelection, record model.Record) int {
	if selection.IsShootTheMoon {
		// No partial credit: the bet only resolves when the whole
		// week's slate is final.
		if record.AllComplete && record.Wins == 0 && record.Losses > 0 {
			return record.Losses * 2
		}
		return 0
	}

	if selection.IsSuperweek {
		return record.Wins * 2
	}
	return record.Wins
}

// ApplyGameResult records a final score and propagates recomputation.
//
// Every selection in the week is recomputed, not just the two teams
// that played: completing one game can flip the all-complete gate for
// shoot-the-moon selections on unrelated teams. Affected users then get
// their aggregate re-summed across all seasons.
func (s *service) ApplyGameResult(ctx context.Context, nbaGameID string, req *gameModel.GameResultRequest) (*model.GameResultReport, error) {
	game, err := s.repo.GetGameByNBAGameID(ctx, nbaGameID)
	if err != nil {
		return nil, err
	}

	homeScore := *req.HomeScore
	awayScore := *req.AwayScore

	var winnerID *uuid.UUID
	switch {
	case homeScore > awayScore:
		winnerID = &game.HomeTeamID
	case awayScore > homeScore:
		winnerID = &game.AwayTeamID
	default:
		// Tie: near-impossible in the NBA but representable.
		winnerID = nil
	}

	game.HomeTeamScore = &homeScore
	game.AwayTeamScore = &awayScore
	game.WinnerID = winnerID
	if req.SeasonYear != nil {
		game.SeasonYear = req.SeasonYear
	}

	if err := s.repo.SaveGameResult(ctx, game); err != nil {
		return nil, err
	}

	report := &model.GameResultReport{
		NBAGameID: nbaGameID,
		WinnerID:  winnerID,
	}

	// The week is resolved from the game date, not the stored week_id.
	week, err := s.repo.WeekForDate(ctx, game.Date)
	if err != nil {
		return nil, err
	}
	if week == nil {
		// Scores stay saved; there is just nothing to recompute.
		s.logger.Warnw("game result outside every week, skipping recomputation",
			"nba_game_id", nbaGameID, "date", game.Date)
		report.Error = "could not determine week for game date"
		return report, nil
	}
	report.WeekNumber = &week.Number

	selections, err := s.repo.SelectionsByWeek(ctx, week.ID)
	if err != nil {
		return nil, err
	}

	affectedUsers := make(map[uuid.UUID]struct{})
	for i := range selections {
		selection := &selections[i]

		points, record, err := s.CalculateSelectionPoints(ctx, selection)
		if err != nil {
			return nil, err
		}

		if err := s.repo.UpdateSelectionScore(ctx, selection.ID, points, record.Wins, record.Losses); err != nil {
			return nil, err
		}

		report.PointsAwarded += points
		affectedUsers[selection.UserID] = struct{}{}
	}

	if err := s.resumUserTotals(ctx, affectedUsers); err != nil {
		return nil, err
	}
	report.AffectedUsers = len(affectedUsers)

	s.logger.Infow("ApplyGameResult completed",
		"nba_game_id", nbaGameID,
		"week_number", week.Number,
		"affected_users", report.AffectedUsers,
		"points_awarded", report.PointsAwarded)

	return report, nil
}

// RecalculateAll rebuilds every selection's and user's points from
// scratch. Running it twice in a row yields identical totals.
func (s *service) RecalculateAll(ctx context.Context) (*model.RecalculateReport, error) {
	if err := s.repo.ResetAllPoints(ctx); err != nil {
		return nil, err
	}

	selections, err := s.repo.AllSelections(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.RecalculateReport{}
	usersAffected := make(map[uuid.UUID]struct{})

	for i := range selections {
		selection := &selections[i]

		points, record, err := s.CalculateSelectionPoints(ctx, selection)
		if err != nil {
			return nil, err
		}

		if err := s.repo.UpdateSelectionScore(ctx, selection.ID, points, record.Wins, record.Losses); err != nil {
			return nil, err
		}

		report.SelectionsProcessed++
		report.TotalPointsAwarded += points
		usersAffected[selection.UserID] = struct{}{}
	}
	report.UsersAffected = len(usersAffected)

	// Every user gets re-summed, including those with no selections.
	users, err := s.repo.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		total, err := s.repo.SumSelectionPoints(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if err := s.repo.SetUserTotalPoints(ctx, user.ID, total); err != nil {
			return nil, err
		}
	}

	s.logger.Infow("RecalculateAll completed",
		"selections_processed", report.SelectionsProcessed,
		"users_affected", report.UsersAffected,
		"total_points_awarded", report.TotalPointsAwarded)

	return report, nil
}

// RetabulateSeason recomputes one season's selections and reports changes.
//
// Touched users get their aggregate re-summed across all seasons, so
// retabulating one season can still shift a multi-season user's
// displayed total; that is a property of the aggregate, not a bug.
func (s *service) RetabulateSeason(ctx context.Context, seasonID uuid.UUID) (*model.RetabulateReport, error) {
	season, err := s.repo.GetSeasonByID(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	report := &model.RetabulateReport{
		SeasonID:   season.ID,
		SeasonYear: season.Year,
		Changes:    []model.SelectionChange{},
	}

	selections, err := s.repo.SelectionsBySeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	report.SelectionsFound = len(selections)
	if len(selections) == 0 {
		return report, nil
	}

	usersAffected := make(map[uuid.UUID]struct{})

	for i := range selections {
		selection := &selections[i]
		oldPoints := selection.TotalPoints

		newPoints, record, err := s.CalculateSelectionPoints(ctx, selection)
		if err != nil {
			return nil, err
		}

		if oldPoints != newPoints {
			change := model.SelectionChange{
				UserID:         selection.UserID,
				TeamID:         selection.TeamID,
				OldPoints:      oldPoints,
				NewPoints:      newPoints,
				Difference:     newPoints - oldPoints,
				IsSuperweek:    selection.IsSuperweek,
				IsShootTheMoon: selection.IsShootTheMoon,
				Record:         record.String(),
			}
			if week, weekErr := s.repo.GetWeekByID(ctx, selection.WeekID); weekErr == nil {
				change.WeekNumber = &week.Number
			}
			report.Changes = append(report.Changes, change)
			report.SelectionsUpdated++
		}

		if err := s.repo.UpdateSelectionScore(ctx, selection.ID, newPoints, record.Wins, record.Losses); err != nil {
			return nil, err
		}

		report.TotalPointsAwarded += newPoints
		usersAffected[selection.UserID] = struct{}{}
	}

	if err := s.resumUserTotals(ctx, usersAffected); err != nil {
		return nil, err
	}
	report.UsersAffected = len(usersAffected)

	s.logger.Infow("RetabulateSeason completed",
		"season_id", seasonID,
		"selections_found", report.SelectionsFound,
		"selections_updated", report.SelectionsUpdated,
		"users_affected", report.UsersAffected)

	return report, nil
}

// ReassignGamesToWeeks reconciles game week membership from dates.
//
// Each week spans Monday 00:00 to Sunday 23:59:59 eastern time; games
// whose start timestamp falls inside that window (converted to UTC)
// get their week_id refreshed, and the week's fallback lock time is
// set to the earliest game start.
func (s *service) ReassignGamesToWeeks(ctx context.Context) (*model.ReassignReport, error) {
	weeks, err := s.repo.ListWeeks(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.ReassignReport{WeeksProcessed: len(weeks)}

	for i := range weeks {
		week := &weeks[i]

		start := time.Date(week.StartDate.Year(), week.StartDate.Month(), week.StartDate.Day(),
			0, 0, 0, 0, easternOffset).UTC()
		end := time.Date(week.EndDate.Year(), week.EndDate.Month(), week.EndDate.Day(),
			23, 59, 59, 0, easternOffset).UTC()

		games, err := s.repo.GamesStartingBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}
		if len(games) == 0 {
			continue
		}

		gameIDs := make([]uuid.UUID, 0, len(games))
		var earliest *time.Time
		for _, game := range games {
			gameIDs = append(gameIDs, game.ID)
			if game.GameDatetime != nil && (earliest == nil || game.GameDatetime.Before(*earliest)) {
				t := *game.GameDatetime
				earliest = &t
			}
		}

		if err := s.repo.AssignGamesToWeek(ctx, gameIDs, week.ID); err != nil {
			return nil, err
		}
		report.GamesAssigned += len(gameIDs)

		if earliest != nil {
			if err := s.repo.SetWeekLockTime(ctx, week.ID, *earliest); err != nil {
				return nil, err
			}
			report.WeeksUpdated++
		}
	}

	s.logger.Infow("ReassignGamesToWeeks completed",
		"weeks_processed", report.WeeksProcessed,
		"weeks_updated", report.WeeksUpdated,
		"games_assigned", report.GamesAssigned)

	return report, nil
}

// resumUserTotals re-derives each user's aggregate as a full sum over
// their selections, never as a delta.
func (s *service) resumUserTotals(ctx context.Context, userIDs map[uuid.UUID]struct{}) error {
	for userID := range userIDs {
		total, err := s.repo.SumSelectionPoints(ctx, userID)
		if err != nil {
			return err
		}
		if err := s.repo.SetUserTotalPoints(ctx, userID, total); err != nil {
			return err
		}
	}
	return nil
}
