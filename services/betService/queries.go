package betService

import (
	"errors"

	"gorm.io/gorm"

	"parlayLeague/common/apperrors"
	"parlayLeague/models"
)

// WeekSummary is a user's betting position for one week.
type WeekSummary struct {
	Week      int                `json:"week"`
	Bets      []models.Bet       `json:"bets"`
	Parlays   []models.ParlayBet `json:"parlays"`
	Staked    float64            `json:"total_bet_amount"`
	Remaining float64            `json:"remaining_balance"`
}

func UserWeek(db *gorm.DB, userID uint, week int) (*WeekSummary, error) {
	var bets []models.Bet
	if err := db.Preload("BettingOption").Preload("BettingOption.Game").
		Where("user_id = ? AND week = ?", userID, week).Find(&bets).Error; err != nil {
		return nil, err
	}
	var parlays []models.ParlayBet
	if err := db.Preload("Legs").Preload("Legs.BettingOption").Preload("Legs.BettingOption.Game").
		Where("user_id = ? AND week = ?", userID, week).Find(&parlays).Error; err != nil {
		return nil, err
	}
	staked, err := WeeklyStaked(db, userID, week)
	if err != nil {
		return nil, err
	}
	remaining, err := RemainingBalance(db, userID, week)
	if err != nil {
		return nil, err
	}
	return &WeekSummary{Week: week, Bets: bets, Parlays: parlays, Staked: staked, Remaining: remaining}, nil
}

// MatchupBoard shows both participants' wagers on a matchup. Only
// participants may see it.
type MatchupBoard struct {
	Matchup models.Matchup `json:"matchup"`
	User1   WeekSummary    `json:"user1"`
	User2   WeekSummary    `json:"user2"`
}

func BetsForMatchup(db *gorm.DB, viewerID, matchupID uint) (*MatchupBoard, error) {
	var matchup models.Matchup
	if err := db.First(&matchup, matchupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if !matchup.HasParticipant(viewerID) {
		return nil, apperrors.ErrInvalidMatchup
	}

	side1, err := UserWeek(db, matchup.User1ID, matchup.Week)
	if err != nil {
		return nil, err
	}
	side2, err := UserWeek(db, matchup.User2ID, matchup.Week)
	if err != nil {
		return nil, err
	}
	return &MatchupBoard{Matchup: matchup, User1: *side1, User2: *side2}, nil
}
