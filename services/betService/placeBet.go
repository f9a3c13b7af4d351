package betService

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parlayLeague/common/apperrors"
	"parlayLeague/metrics"
	"parlayLeague/models"
	"parlayLeague/services/common"
)

type PlaceBetInput struct {
	UserID          uint
	MatchupID       uint
	BettingOptionID uint
	Amount          float64
}

// PlaceBet validates and creates a single moneyline bet. All checks run
// inside one transaction with the user row locked, so two racing placements
// by the same user serialize and cannot jointly exceed the weekly allowance.
// The lock state of the option is re-read inside the same transaction to
// close the race against the lock sweep.
func PlaceBet(db *gorm.DB, in PlaceBetInput, now time.Time) (*models.Bet, error) {
	if in.Amount <= 0 || in.Amount > common.WeeklyAllowance {
		metrics.RecordBetRejected("bad_amount")
		return nil, fmt.Errorf("%w: amount must be between 0 and %.0f",
			apperrors.ErrInsufficientBalance, common.WeeklyAllowance)
	}

	var bet *models.Bet
	err := common.RunInTx(db, func(tx *gorm.DB) error {
		matchup, err := lockUserAndLoadMatchup(tx, in.UserID, in.MatchupID)
		if err != nil {
			return err
		}

		option, err := loadPlacableOption(tx, in.BettingOptionID, now)
		if err != nil {
			return err
		}

		remaining, err := RemainingBalance(tx, in.UserID, matchup.Week)
		if err != nil {
			return err
		}
		if decimal.NewFromFloat(in.Amount).GreaterThan(decimal.NewFromFloat(remaining)) {
			return fmt.Errorf("%w: %.2f remaining", apperrors.ErrInsufficientBalance, remaining)
		}

		bet = &models.Bet{
			UserID:          in.UserID,
			MatchupID:       matchup.ID,
			BettingOptionID: option.ID,
			Week:            matchup.Week,
			Amount:          common.Round2(in.Amount),
			AmericanOdds:    option.AmericanOdds,
			DecimalOdds:     option.DecimalOdds,
			Bookmaker:       option.Bookmaker,
			PotentialPayout: common.Payout(in.Amount, option.DecimalOdds),
			Status:          models.BetStatusPending,
		}
		return tx.Create(bet).Error
	})
	if err != nil {
		recordRejection(err)
		return nil, err
	}
	metrics.RecordBetPlaced("single")
	return bet, nil
}

// lockUserAndLoadMatchup takes the per-user row lock that serializes
// concurrent placements, then checks the matchup belongs to the caller.
func lockUserAndLoadMatchup(tx *gorm.DB, userID, matchupID uint) (*models.Matchup, error) {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound)
		}
		return nil, err
	}

	var matchup models.Matchup
	if err := tx.First(&matchup, matchupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("matchup %d: %w", matchupID, apperrors.ErrNotFound)
		}
		return nil, err
	}
	if !matchup.HasParticipant(userID) {
		return nil, apperrors.ErrInvalidMatchup
	}

	var membership models.LeagueMember
	if err := tx.Where("league_id = ? AND user_id = ?", matchup.LeagueID, userID).
		First(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidMatchup
		}
		return nil, err
	}
	return &matchup, nil
}

// loadPlacableOption re-reads the option inside the transaction and rejects
// locked or started markets.
func loadPlacableOption(tx *gorm.DB, optionID uint, now time.Time) (*models.BettingOption, error) {
	var option models.BettingOption
	if err := tx.Preload("Game").First(&option, optionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("betting option %d: %w", optionID, apperrors.ErrNotFound)
		}
		return nil, err
	}
	if option.IsLocked || option.Game.HasStarted(now) {
		return nil, fmt.Errorf("%s: %w", option.Game.ID, apperrors.ErrMarketLocked)
	}
	return &option, nil
}

func recordRejection(err error) {
	switch {
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		metrics.RecordBetRejected("insufficient_balance")
	case errors.Is(err, apperrors.ErrMarketLocked):
		metrics.RecordBetRejected("market_locked")
	case errors.Is(err, apperrors.ErrInvalidMatchup):
		metrics.RecordBetRejected("invalid_matchup")
	case errors.Is(err, apperrors.ErrDuplicateLeg):
		metrics.RecordBetRejected("duplicate_leg")
	case errors.Is(err, apperrors.ErrTooFewLegs), errors.Is(err, apperrors.ErrTooManyLegs):
		metrics.RecordBetRejected("leg_count")
	case errors.Is(err, apperrors.ErrNotFound):
		metrics.RecordBetRejected("not_found")
	default:
		metrics.RecordBetRejected("other")
	}
}
