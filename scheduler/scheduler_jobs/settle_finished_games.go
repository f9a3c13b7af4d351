package scheduler_jobs

import (
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"parlayLeague/common/logger"
	"parlayLeague/services/oddsService"
	"parlayLeague/services/settleService"
)

// SettleFinishedGames pulls results for started games, settles the wagers on
// them, and finalizes any matchups whose weeks are complete.
func SettleFinishedGames(db *gorm.DB, provider oddsService.Provider) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered in SettleFinishedGames", zap.Any("panic", r))
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in SettleFinishedGames: %v", r)
		}
	}()

	report, err := settleService.Sweep(db, provider, time.Now(), 0)
	if err != nil {
		return err
	}
	if report.GamesSettled > 0 || report.MatchupsFinalized > 0 {
		logger.Info("settle sweep",
			zap.Int("games_settled", report.GamesSettled),
			zap.Int("matchups_finalized", report.MatchupsFinalized))
	}
	return nil
}
