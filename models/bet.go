package models

import (
	"time"

	"gorm.io/gorm"
)

// Bet statuses. Locked means the game started; the bet is frozen but not yet
// settled.
const (
	BetStatusPending = "pending"
	BetStatusLocked  = "locked"
	BetStatusWon     = "won"
	BetStatusLost    = "lost"
	BetStatusVoid    = "void"
)

// Bet is a single-leg moneyline wager. The odds trio is snapshotted at
// placement and is authoritative for payout math no matter how the live line
// moves afterwards.
type Bet struct {
	gorm.Model
	ID              uint          `gorm:"primaryKey"`
	UserID          uint          `gorm:"index:user_week_idx;not null"`
	User            User          `gorm:"foreignKey:UserID"`
	MatchupID       uint          `gorm:"index;not null"`
	Matchup         Matchup       `gorm:"foreignKey:MatchupID"`
	BettingOptionID uint          `gorm:"index;not null"`
	BettingOption   BettingOption `gorm:"foreignKey:BettingOptionID"`
	Week            int           `gorm:"index:user_week_idx;not null"`
	Amount          float64       `gorm:"type:decimal(10,2);not null"`
	AmericanOdds    int
	DecimalOdds     float64 `gorm:"type:decimal(10,4);not null"`
	Bookmaker       string  `gorm:"size:50"`
	PotentialPayout float64 `gorm:"type:decimal(10,2)"`
	Payout          float64 `gorm:"type:decimal(10,2);default:0"` // set at settlement
	Status          string  `gorm:"size:20;default:pending;index"`
	LockedAt        *time.Time
	SettledAt       *time.Time
}

func (b *Bet) IsSettled() bool {
	return b.Status == BetStatusWon || b.Status == BetStatusLost || b.Status == BetStatusVoid
}

// CountsAgainstBalance reports whether the stake still consumes weekly
// allowance. Void bets return the stake, so they stop counting.
func (b *Bet) CountsAgainstBalance() bool {
	return b.Status != BetStatusVoid
}
