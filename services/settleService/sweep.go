package settleService

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"parlayLeague/common/logger"
	"parlayLeague/metrics"
	"parlayLeague/models"
	"parlayLeague/services/common"
	"parlayLeague/services/oddsService"
)

// SweepReport says what a settle sweep accomplished.
type SweepReport struct {
	GamesSettled      int `json:"games_settled"`
	MatchupsFinalized int `json:"matchups_finalized"`
}

// Sweep settles every started, unsettled game whose result the provider can
// report, then finalizes every matchup still open. week == 0 means all weeks.
// Safe to re-run: settled games are never revisited.
func Sweep(db *gorm.DB, provider oddsService.Provider, now time.Time, week int) (*SweepReport, error) {
	started := time.Now()
	defer metrics.RecordSweep("settle", started)

	query := db.Where("settled = ? AND start_time <= ?", false, now)
	if week > 0 {
		query = query.Where("week = ?", week)
	}
	var games []models.Game
	if err := query.Find(&games).Error; err != nil {
		return nil, err
	}

	report := &SweepReport{}
	for i := range games {
		game := &games[i]
		result, err := provider.GameResult(game.ID)
		if err != nil {
			logger.Warn("result fetch failed",
				zap.String("game_id", game.ID), zap.Error(err))
			continue
		}
		if result == "" {
			continue // still in play
		}
		err = common.RunInTx(db, func(tx *gorm.DB) error {
			return settleGameInTx(tx, game, result, now)
		})
		if err != nil {
			logger.Error("settle failed",
				zap.String("game_id", game.ID), zap.Error(err))
			continue
		}
		report.GamesSettled++
	}

	// Finalization revisits every week that still has an open matchup, not
	// just the weeks this pass settled. A matchup can be blocked on a wager
	// from a later week's game, or a prior finalize attempt can have failed;
	// either way a later sweep must pick it up.
	var openWeeks []int
	weekQuery := db.Model(&models.Matchup{}).Where("finalized = ?", false).Distinct()
	if week > 0 {
		weekQuery = weekQuery.Where("week = ?", week)
	}
	if err := weekQuery.Pluck("week", &openWeeks).Error; err != nil {
		return report, err
	}

	for _, wk := range openWeeks {
		finalized, err := FinalizeWeek(db, wk)
		if err != nil {
			logger.Error("matchup finalize failed", zap.Int("week", wk), zap.Error(err))
			continue
		}
		report.MatchupsFinalized += finalized
	}
	return report, nil
}
