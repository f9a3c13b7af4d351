package scheduler_jobs

import (
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"parlayLeague/common/logger"
	"parlayLeague/services/oddsService"
)

// RefreshOddsBoard syncs the current week's games and prices from the
// provider. Locked options keep their frozen prices.
func RefreshOddsBoard(db *gorm.DB, provider oddsService.Provider) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered in RefreshOddsBoard", zap.Any("panic", r))
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in RefreshOddsBoard: %v", r)
		}
	}()

	week := oddsService.CurrentWeek(time.Now())
	quotes, err := oddsService.SyncWeek(db, provider, week)
	if err != nil {
		return err
	}
	logger.Info("odds board refreshed", zap.Int("week", week), zap.Int("games", len(quotes)))
	return nil
}
