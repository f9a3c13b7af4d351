package scheduler_jobs

import (
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"parlayLeague/common/logger"
	"parlayLeague/services/lockService"
)

// LockStartedGames closes betting on every game whose start time has passed.
func LockStartedGames(db *gorm.DB) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered in LockStartedGames", zap.Any("panic", r))
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in LockStartedGames: %v", r)
		}
	}()

	result, err := lockService.Sweep(db, time.Now())
	if err != nil {
		return err
	}
	if result.OptionsLocked > 0 {
		logger.Info("lock sweep",
			zap.Int("options_locked", result.OptionsLocked),
			zap.Int("bets_locked", result.BetsLocked),
			zap.Int("parlays_locked", result.ParlaysLocked))
	}
	return nil
}
