package leagueService

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"parlayLeague/common/apperrors"
	"parlayLeague/models"
	"parlayLeague/services/common"
)

const byeSlot = 0 // placeholder member id for odd-sized leagues

// Pairing is one scheduled head-to-head.
type Pairing struct {
	User1 uint
	User2 uint
}

// RoundRobin rotates members through weekly pairings, fixing the first seat
// and cycling the rest. Odd member counts get a bye slot; pairings touching
// the bye are dropped.
func RoundRobin(memberIDs []uint, weeks int) [][]Pairing {
	if len(memberIDs) < 2 {
		return nil
	}
	seats := append([]uint(nil), memberIDs...)
	if len(seats)%2 == 1 {
		seats = append(seats, byeSlot)
	}

	n := len(seats)
	rounds := make([][]Pairing, 0, weeks)
	for round := 0; round < n-1 && len(rounds) < weeks; round++ {
		var pairings []Pairing
		for i := 0; i < n/2; i++ {
			a, b := seats[i], seats[n-1-i]
			if a == byeSlot || b == byeSlot {
				continue
			}
			pairings = append(pairings, Pairing{User1: a, User2: b})
		}
		rounds = append(rounds, pairings)

		// rotate all seats but the first
		rotating := seats[1:]
		last := rotating[len(rotating)-1]
		copy(rotating[1:], rotating[:len(rotating)-1])
		rotating[0] = last
	}

	// Repeat the cycle until the requested number of weeks is filled.
	cycle := len(rounds)
	for len(rounds) < weeks && cycle > 0 {
		rounds = append(rounds, rounds[len(rounds)-cycle])
	}
	return rounds
}

// GenerateSchedule creates the league's weekly matchups, commissioner only,
// once per league.
func GenerateSchedule(db *gorm.DB, leagueID, requesterID uint, weeks int) ([]models.Matchup, error) {
	if weeks <= 0 {
		weeks = 14
	}

	var created []models.Matchup
	err := common.RunInTx(db, func(tx *gorm.DB) error {
		var league models.League
		if err := tx.First(&league, leagueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if league.CommissionerID != requesterID {
			return fmt.Errorf("only the commissioner can generate the schedule: %w", apperrors.ErrInvalidMatchup)
		}
		if league.ScheduleWeeks > 0 {
			return fmt.Errorf("schedule already generated: %w", apperrors.ErrConflict)
		}

		var memberIDs []uint
		if err := tx.Model(&models.LeagueMember{}).
			Where("league_id = ?", leagueID).
			Order("id").
			Pluck("user_id", &memberIDs).Error; err != nil {
			return err
		}
		if len(memberIDs) < 2 {
			return errors.New("league needs at least 2 members to schedule")
		}

		for weekIdx, pairings := range RoundRobin(memberIDs, weeks) {
			for _, pairing := range pairings {
				matchup := models.Matchup{
					LeagueID: leagueID,
					Week:     weekIdx + 1,
					User1ID:  pairing.User1,
					User2ID:  pairing.User2,
				}
				if err := tx.Create(&matchup).Error; err != nil {
					return err
				}
				created = append(created, matchup)
			}
		}

		league.ScheduleWeeks = weeks
		return tx.Save(&league).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// WeekMatchups lists a league's matchups for one week, members only.
func WeekMatchups(db *gorm.DB, leagueID, viewerID uint, week int) ([]models.Matchup, error) {
	if err := requireMembership(db, leagueID, viewerID); err != nil {
		return nil, err
	}
	var matchups []models.Matchup
	err := db.Preload("User1").Preload("User2").
		Where("league_id = ? AND week = ?", leagueID, week).
		Find(&matchups).Error
	return matchups, err
}
