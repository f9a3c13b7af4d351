package settleService

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"parlayLeague/common/apperrors"
	"parlayLeague/common/logger"
	"parlayLeague/metrics"
	"parlayLeague/models"
	"parlayLeague/services/common"
)

// OptionResult maps a game result onto one of its h2h options.
func OptionResult(option *models.BettingOption, game *models.Game, gameResult string) string {
	if gameResult == models.GameResultVoid {
		return models.LegResultVoid
	}
	won := (gameResult == models.GameResultHomeWin && option.OutcomeName == game.HomeTeam) ||
		(gameResult == models.GameResultAwayWin && option.OutcomeName == game.AwayTeam)
	if won {
		return models.LegResultWon
	}
	return models.LegResultLost
}

// SettleGame applies a known result to every wager on a game. Already-settled
// rows are skipped, so re-running on identical inputs yields identical bet
// and leg values. The explicit entry point rejects a second settlement of the
// same game with ErrAlreadySettled; the sweep never calls it for settled
// games.
func SettleGame(db *gorm.DB, gameID, gameResult string) error {
	switch gameResult {
	case models.GameResultHomeWin, models.GameResultAwayWin, models.GameResultVoid:
	default:
		return fmt.Errorf("unknown game result %q", gameResult)
	}

	return common.RunInTx(db, func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, "id = ?", gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("game %s: %w", gameID, apperrors.ErrNotFound)
			}
			return err
		}
		if game.Settled {
			return fmt.Errorf("game %s: %w", gameID, apperrors.ErrAlreadySettled)
		}
		return settleGameInTx(tx, &game, gameResult, time.Now())
	})
}

func settleGameInTx(tx *gorm.DB, game *models.Game, gameResult string, now time.Time) error {
	var options []models.BettingOption
	if err := tx.Where("game_id = ?", game.ID).Find(&options).Error; err != nil {
		return err
	}

	optionResults := make(map[uint]string, len(options))
	for i := range options {
		optionResults[options[i].ID] = OptionResult(&options[i], game, gameResult)
	}

	if err := settleSingles(tx, game, optionResults, now); err != nil {
		return err
	}
	if err := settleParlayLegs(tx, game, optionResults, now); err != nil {
		return err
	}

	game.Result = &gameResult
	game.Settled = true
	return tx.Save(game).Error
}

// settleSingles resolves pending/locked moneyline bets on the game's options.
// won: payout = stake × snapshot decimal odds; lost: 0; void: stake back.
func settleSingles(tx *gorm.DB, game *models.Game, optionResults map[uint]string, now time.Time) error {
	var bets []models.Bet
	if err := tx.Where("betting_option_id IN ? AND status IN ?",
		keysOf(optionResults),
		[]string{models.BetStatusPending, models.BetStatusLocked}).
		Find(&bets).Error; err != nil {
		return err
	}

	for i := range bets {
		bet := &bets[i]
		result := optionResults[bet.BettingOptionID]
		switch result {
		case models.LegResultWon:
			bet.Status = models.BetStatusWon
			bet.Payout = common.Payout(bet.Amount, bet.DecimalOdds)
		case models.LegResultLost:
			bet.Status = models.BetStatusLost
			bet.Payout = 0
		case models.LegResultVoid:
			bet.Status = models.BetStatusVoid
			bet.Payout = bet.Amount
		}
		bet.SettledAt = &now
		if err := tx.Save(bet).Error; err != nil {
			return err
		}
		metrics.RecordSettlement("single", bet.Status)
	}
	return nil
}

// settleParlayLegs writes per-leg results, then rolls up any parlay whose
// legs are now all decided.
func settleParlayLegs(tx *gorm.DB, game *models.Game, optionResults map[uint]string, now time.Time) error {
	var legs []models.ParlayLeg
	if err := tx.Where("betting_option_id IN ? AND result = ?",
		keysOf(optionResults), models.LegResultPending).
		Find(&legs).Error; err != nil {
		return err
	}

	touched := make(map[uint]bool)
	for i := range legs {
		leg := &legs[i]
		leg.Result = optionResults[leg.BettingOptionID]
		if err := tx.Save(leg).Error; err != nil {
			return err
		}
		touched[leg.ParlayBetID] = true
	}

	for parlayID := range touched {
		if err := rollUpParlay(tx, parlayID, now); err != nil {
			return err
		}
	}
	return nil
}

func rollUpParlay(tx *gorm.DB, parlayID uint, now time.Time) error {
	var parlay models.ParlayBet
	if err := tx.Preload("Legs").First(&parlay, parlayID).Error; err != nil {
		return err
	}
	if parlay.IsSettled() {
		return nil
	}

	outcome, effectiveOdds := EvaluateParlay(parlay.Legs)
	switch outcome {
	case OutcomePending:
		return nil
	case OutcomeLost:
		parlay.Status = models.ParlayStatusLost
		parlay.Payout = 0
	case OutcomeAllVoid:
		parlay.Status = models.ParlayStatusCancelled
		parlay.Payout = parlay.Amount
	case OutcomePartiallyVoid, OutcomeResolved:
		parlay.Status = models.ParlayStatusWon
		parlay.Payout = common.Payout(parlay.Amount, effectiveOdds)
	}
	parlay.SettledAt = &now
	if err := tx.Save(&parlay).Error; err != nil {
		return err
	}
	metrics.RecordSettlement("parlay", parlay.Status)
	logger.Debug("parlay settled",
		zap.Uint("parlay_id", parlay.ID),
		zap.String("status", parlay.Status),
		zap.Float64("payout", parlay.Payout))
	return nil
}

func keysOf(m map[uint]string) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
