package settleService

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"parlayLeague/common/logger"
	"parlayLeague/models"
	"parlayLeague/services/common"
)

// EndingBalance derives a user's weekly ending balance purely from settled
// wagers: allowance + Σ(won payout − stake) − Σ(lost stakes). Void wagers and
// anything unsettled contribute nothing.
func EndingBalance(bets []models.Bet, parlays []models.ParlayBet) float64 {
	balance := decimal.NewFromFloat(common.WeeklyAllowance)
	for _, b := range bets {
		switch b.Status {
		case models.BetStatusWon:
			balance = balance.Add(decimal.NewFromFloat(b.Payout)).
				Sub(decimal.NewFromFloat(b.Amount))
		case models.BetStatusLost:
			balance = balance.Sub(decimal.NewFromFloat(b.Amount))
		}
	}
	for _, p := range parlays {
		switch p.Status {
		case models.ParlayStatusWon:
			balance = balance.Add(decimal.NewFromFloat(p.Payout)).
				Sub(decimal.NewFromFloat(p.Amount))
		case models.ParlayStatusLost:
			balance = balance.Sub(decimal.NewFromFloat(p.Amount))
		}
	}
	return balance.Round(2).InexactFloat64()
}

// FinalizeWeek closes out every open matchup of a week whose wagers are all
// settled and whose week is over (every cached game for the week settled).
// Winner is the higher ending balance; an equal balance is a push — both
// members record a push and no winner is set. Standings update exactly once,
// guarded by the finalized flag. Returns how many matchups were finalized.
func FinalizeWeek(db *gorm.DB, week int) (int, error) {
	var unfinishedGames int64
	if err := db.Model(&models.Game{}).
		Where("week = ? AND settled = ?", week, false).
		Count(&unfinishedGames).Error; err != nil {
		return 0, err
	}
	if unfinishedGames > 0 {
		return 0, nil
	}

	var matchups []models.Matchup
	if err := db.Where("week = ? AND finalized = ?", week, false).
		Find(&matchups).Error; err != nil {
		return 0, err
	}

	finalized := 0
	for i := range matchups {
		done, err := finalizeMatchup(db, &matchups[i])
		if err != nil {
			return finalized, err
		}
		if done {
			finalized++
		}
	}
	return finalized, nil
}

func finalizeMatchup(db *gorm.DB, matchup *models.Matchup) (bool, error) {
	var finalized bool
	err := common.RunInTx(db, func(tx *gorm.DB) error {
		finalized = false

		// Re-read under the transaction; another finalize may have won.
		var current models.Matchup
		if err := tx.First(&current, matchup.ID).Error; err != nil {
			return err
		}
		if current.Finalized {
			return nil
		}

		bets1, parlays1, err := settledWagers(tx, current.User1ID, current.ID)
		if err != nil {
			return err
		}
		bets2, parlays2, err := settledWagers(tx, current.User2ID, current.ID)
		if err != nil {
			return err
		}
		if hasUnsettled(bets1, parlays1) || hasUnsettled(bets2, parlays2) {
			return nil
		}

		balance1 := EndingBalance(bets1, parlays1)
		balance2 := EndingBalance(bets2, parlays2)

		var winnerID *uint
		switch {
		case balance1 > balance2:
			winnerID = &current.User1ID
		case balance2 > balance1:
			winnerID = &current.User2ID
		}

		if err := updateStandings(tx, &current, winnerID, balance1, balance2); err != nil {
			return err
		}

		current.WinnerID = winnerID
		current.Finalized = true
		if err := tx.Save(&current).Error; err != nil {
			return err
		}
		finalized = true

		logger.Info("matchup finalized",
			zap.Uint("matchup_id", current.ID),
			zap.Int("week", current.Week),
			zap.Float64("user1_balance", balance1),
			zap.Float64("user2_balance", balance2))
		return nil
	})
	return finalized, err
}

func settledWagers(tx *gorm.DB, userID, matchupID uint) ([]models.Bet, []models.ParlayBet, error) {
	var bets []models.Bet
	if err := tx.Where("user_id = ? AND matchup_id = ?", userID, matchupID).
		Find(&bets).Error; err != nil {
		return nil, nil, err
	}
	var parlays []models.ParlayBet
	if err := tx.Where("user_id = ? AND matchup_id = ?", userID, matchupID).
		Find(&parlays).Error; err != nil {
		return nil, nil, err
	}
	return bets, parlays, nil
}

func hasUnsettled(bets []models.Bet, parlays []models.ParlayBet) bool {
	for _, b := range bets {
		if !b.IsSettled() {
			return true
		}
	}
	for _, p := range parlays {
		if !p.IsSettled() {
			return true
		}
	}
	return false
}

func updateStandings(tx *gorm.DB, matchup *models.Matchup, winnerID *uint, balance1, balance2 float64) error {
	var member1, member2 models.LeagueMember
	if err := tx.Where("league_id = ? AND user_id = ?", matchup.LeagueID, matchup.User1ID).
		First(&member1).Error; err != nil {
		return err
	}
	if err := tx.Where("league_id = ? AND user_id = ?", matchup.LeagueID, matchup.User2ID).
		First(&member2).Error; err != nil {
		return err
	}

	switch {
	case winnerID == nil:
		member1.Pushes++
		member2.Pushes++
	case *winnerID == matchup.User1ID:
		member1.Wins++
		member2.Losses++
	default:
		member2.Wins++
		member1.Losses++
	}

	member1.PointsFor = common.Round2(member1.PointsFor + balance1)
	member1.PointsAgainst = common.Round2(member1.PointsAgainst + balance2)
	member2.PointsFor = common.Round2(member2.PointsFor + balance2)
	member2.PointsAgainst = common.Round2(member2.PointsAgainst + balance1)

	if err := tx.Save(&member1).Error; err != nil {
		return err
	}
	return tx.Save(&member2).Error
}
