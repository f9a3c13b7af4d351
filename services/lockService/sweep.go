package lockService

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"parlayLeague/common/logger"
	"parlayLeague/metrics"
	"parlayLeague/models"
	"parlayLeague/services/common"
)

// SweepResult reports what a lock sweep touched.
type SweepResult struct {
	OptionsLocked int `json:"options_locked"`
	BetsLocked    int `json:"bets_locked"`
	ParlaysLocked int `json:"parlays_locked"`
}

// Sweep flips every betting option whose game has started to locked, and
// moves pending bets/parlays referencing those options to the locked status.
// Only unlocked rows are touched, so re-running on the same state is a no-op.
func Sweep(db *gorm.DB, now time.Time) (*SweepResult, error) {
	started := time.Now()
	defer metrics.RecordSweep("lock", started)

	var result SweepResult
	err := common.RunInTx(db, func(tx *gorm.DB) error {
		var optionIDs []uint
		if err := tx.Model(&models.BettingOption{}).
			Joins("JOIN games ON games.id = betting_options.game_id").
			Where("betting_options.is_locked = ? AND games.start_time <= ?", false, now).
			Pluck("betting_options.id", &optionIDs).Error; err != nil {
			return err
		}
		if len(optionIDs) == 0 {
			return nil
		}

		locked := tx.Model(&models.BettingOption{}).
			Where("id IN ? AND is_locked = ?", optionIDs, false).
			Updates(map[string]interface{}{"is_locked": true, "locked_at": now})
		if locked.Error != nil {
			return locked.Error
		}
		result.OptionsLocked = int(locked.RowsAffected)

		bets := tx.Model(&models.Bet{}).
			Where("betting_option_id IN ? AND status = ?", optionIDs, models.BetStatusPending).
			Updates(map[string]interface{}{"status": models.BetStatusLocked, "locked_at": now})
		if bets.Error != nil {
			return bets.Error
		}
		result.BetsLocked = int(bets.RowsAffected)

		// A parlay locks as soon as any of its legs locks.
		var parlayIDs []uint
		if err := tx.Model(&models.ParlayLeg{}).
			Distinct("parlay_bet_id").
			Where("betting_option_id IN ?", optionIDs).
			Pluck("parlay_bet_id", &parlayIDs).Error; err != nil {
			return err
		}
		if len(parlayIDs) > 0 {
			parlays := tx.Model(&models.ParlayBet{}).
				Where("id IN ? AND status = ?", parlayIDs, models.ParlayStatusPending).
				Updates(map[string]interface{}{"status": models.ParlayStatusLocked, "locked_at": now})
			if parlays.Error != nil {
				return parlays.Error
			}
			result.ParlaysLocked = int(parlays.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.OptionsLocked > 0 {
		metrics.RecordOptionsLocked(result.OptionsLocked)
		logger.Info("lock sweep",
			zap.Int("options", result.OptionsLocked),
			zap.Int("bets", result.BetsLocked),
			zap.Int("parlays", result.ParlaysLocked))
	}
	return &result, nil
}
