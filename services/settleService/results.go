package settleService

import (
	"gorm.io/gorm"

	"parlayLeague/models"
)

// MatchupResult is one matchup with derived balances and both sides' wagers.
type MatchupResult struct {
	Matchup      models.Matchup     `json:"matchup"`
	User1Balance float64            `json:"user1_balance"`
	User2Balance float64            `json:"user2_balance"`
	User1Bets    []models.Bet       `json:"user1_bets"`
	User2Bets    []models.Bet       `json:"user2_bets"`
	User1Parlays []models.ParlayBet `json:"user1_parlays"`
	User2Parlays []models.ParlayBet `json:"user2_parlays"`
}

// WeekResults returns the viewer's leagues' matchups for a week with derived
// balances. Balances here may still move while wagers are unsettled; the
// authoritative numbers land in standings at finalization.
func WeekResults(db *gorm.DB, viewerID uint, week int) ([]MatchupResult, error) {
	var leagueIDs []uint
	if err := db.Model(&models.LeagueMember{}).
		Where("user_id = ?", viewerID).
		Pluck("league_id", &leagueIDs).Error; err != nil {
		return nil, err
	}
	if len(leagueIDs) == 0 {
		return []MatchupResult{}, nil
	}

	var matchups []models.Matchup
	if err := db.Preload("User1").Preload("User2").
		Where("league_id IN ? AND week = ?", leagueIDs, week).
		Find(&matchups).Error; err != nil {
		return nil, err
	}

	results := make([]MatchupResult, 0, len(matchups))
	for i := range matchups {
		m := matchups[i]
		bets1, parlays1, err := settledWagers(db, m.User1ID, m.ID)
		if err != nil {
			return nil, err
		}
		bets2, parlays2, err := settledWagers(db, m.User2ID, m.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, MatchupResult{
			Matchup:      m,
			User1Balance: EndingBalance(bets1, parlays1),
			User2Balance: EndingBalance(bets2, parlays2),
			User1Bets:    bets1,
			User2Bets:    bets2,
			User1Parlays: parlays1,
			User2Parlays: parlays2,
		})
	}
	return results, nil
}
