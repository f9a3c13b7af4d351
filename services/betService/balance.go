package betService

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"parlayLeague/models"
	"parlayLeague/services/common"
)

// WeeklyStaked sums the user's live stakes for a week: single bets that are
// not void plus parlays that are not cancelled. Always derived from the bet
// rows, never a stored counter, so partial failures cannot drift it.
func WeeklyStaked(db *gorm.DB, userID uint, week int) (float64, error) {
	var bets []models.Bet
	if err := db.Where("user_id = ? AND week = ? AND status <> ?",
		userID, week, models.BetStatusVoid).Find(&bets).Error; err != nil {
		return 0, err
	}
	var parlays []models.ParlayBet
	if err := db.Where("user_id = ? AND week = ? AND status <> ?",
		userID, week, models.ParlayStatusCancelled).Find(&parlays).Error; err != nil {
		return 0, err
	}

	total := decimal.Zero
	for _, b := range bets {
		total = total.Add(decimal.NewFromFloat(b.Amount))
	}
	for _, p := range parlays {
		total = total.Add(decimal.NewFromFloat(p.Amount))
	}
	return total.Round(2).InexactFloat64(), nil
}

// RemainingBalance is the weekly allowance minus live stakes.
func RemainingBalance(db *gorm.DB, userID uint, week int) (float64, error) {
	staked, err := WeeklyStaked(db, userID, week)
	if err != nil {
		return 0, err
	}
	return decimal.NewFromFloat(common.WeeklyAllowance).
		Sub(decimal.NewFromFloat(staked)).
		Round(2).InexactFloat64(), nil
}
