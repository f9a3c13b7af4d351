package betService

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"parlayLeague/common/apperrors"
	"parlayLeague/metrics"
	"parlayLeague/models"
	"parlayLeague/services/common"
	"parlayLeague/services/oddsService"
)

const (
	minParlayLegs = 2
	maxParlayLegs = 10
)

type PlaceParlayInput struct {
	UserID           uint
	MatchupID        uint
	BettingOptionIDs []uint
	Amount           float64
}

// PlaceParlay validates and creates a multi-leg wager. Legs must be on
// distinct games — correlated legs on the same event are disallowed. The
// combined price is the product of the legs' snapshotted decimal odds.
func PlaceParlay(db *gorm.DB, in PlaceParlayInput, now time.Time) (*models.ParlayBet, error) {
	if len(in.BettingOptionIDs) < minParlayLegs {
		metrics.RecordBetRejected("leg_count")
		return nil, apperrors.ErrTooFewLegs
	}
	if len(in.BettingOptionIDs) > maxParlayLegs {
		metrics.RecordBetRejected("leg_count")
		return nil, apperrors.ErrTooManyLegs
	}
	if in.Amount <= 0 || in.Amount > common.WeeklyAllowance {
		metrics.RecordBetRejected("bad_amount")
		return nil, fmt.Errorf("%w: amount must be between 0 and %.0f",
			apperrors.ErrInsufficientBalance, common.WeeklyAllowance)
	}

	var parlay *models.ParlayBet
	err := common.RunInTx(db, func(tx *gorm.DB) error {
		matchup, err := lockUserAndLoadMatchup(tx, in.UserID, in.MatchupID)
		if err != nil {
			return err
		}

		seenGames := make(map[string]bool, len(in.BettingOptionIDs))
		legs := make([]models.ParlayLeg, 0, len(in.BettingOptionIDs))
		legOdds := make([]float64, 0, len(in.BettingOptionIDs))
		for _, optionID := range in.BettingOptionIDs {
			option, err := loadPlacableOption(tx, optionID, now)
			if err != nil {
				return err
			}
			if seenGames[option.GameID] {
				return fmt.Errorf("game %s: %w", option.GameID, apperrors.ErrDuplicateLeg)
			}
			seenGames[option.GameID] = true
			legs = append(legs, models.ParlayLeg{
				BettingOptionID: option.ID,
				AmericanOdds:    option.AmericanOdds,
				DecimalOdds:     option.DecimalOdds,
				Bookmaker:       option.Bookmaker,
				Result:          models.LegResultPending,
			})
			legOdds = append(legOdds, option.DecimalOdds)
		}

		remaining, err := RemainingBalance(tx, in.UserID, matchup.Week)
		if err != nil {
			return err
		}
		if decimal.NewFromFloat(in.Amount).GreaterThan(decimal.NewFromFloat(remaining)) {
			return fmt.Errorf("%w: %.2f remaining", apperrors.ErrInsufficientBalance, remaining)
		}

		combined := oddsService.CombinedDecimalOdds(legOdds)
		parlay = &models.ParlayBet{
			UserID:          in.UserID,
			MatchupID:       matchup.ID,
			Week:            matchup.Week,
			Amount:          common.Round2(in.Amount),
			CombinedOdds:    combined,
			PotentialPayout: common.Payout(in.Amount, combined),
			Status:          models.ParlayStatusPending,
			Legs:            legs,
		}
		return tx.Create(parlay).Error
	})
	if err != nil {
		recordRejection(err)
		return nil, err
	}
	metrics.RecordBetPlaced("parlay")
	return parlay, nil
}
