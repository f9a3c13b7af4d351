package models

import (
	"time"

	"gorm.io/gorm"
)

// Parlay statuses. A parlay wins only if every non-void leg wins; any lost
// leg loses the whole ticket; a fully-void ticket is cancelled and the stake
// returned.
const (
	ParlayStatusPending   = "pending"
	ParlayStatusLocked    = "locked"
	ParlayStatusWon       = "won"
	ParlayStatusLost      = "lost"
	ParlayStatusCancelled = "cancelled"
)

// Leg results, independent of the parent status until settlement rolls them
// up.
const (
	LegResultPending = "pending"
	LegResultWon     = "won"
	LegResultLost    = "lost"
	LegResultVoid    = "void"
)

type ParlayBet struct {
	gorm.Model
	ID              uint    `gorm:"primaryKey"`
	UserID          uint    `gorm:"index:parlay_user_week_idx;not null"`
	User            User    `gorm:"foreignKey:UserID"`
	MatchupID       uint    `gorm:"index;not null"`
	Matchup         Matchup `gorm:"foreignKey:MatchupID"`
	Week            int     `gorm:"index:parlay_user_week_idx;not null"`
	Amount          float64 `gorm:"type:decimal(10,2);not null"`
	CombinedOdds    float64 `gorm:"type:decimal(10,4);not null"` // product of leg decimal odds at placement
	PotentialPayout float64 `gorm:"type:decimal(10,2)"`
	Payout          float64 `gorm:"type:decimal(10,2);default:0"`
	Status          string  `gorm:"size:20;default:pending;index"`
	LockedAt        *time.Time
	SettledAt       *time.Time
	Legs            []ParlayLeg `gorm:"foreignKey:ParlayBetID;constraint:OnDelete:CASCADE"`
}

type ParlayLeg struct {
	gorm.Model
	ID              uint          `gorm:"primaryKey"`
	ParlayBetID     uint          `gorm:"index;not null"`
	BettingOptionID uint          `gorm:"index;not null"`
	BettingOption   BettingOption `gorm:"foreignKey:BettingOptionID"`
	AmericanOdds    int
	DecimalOdds     float64 `gorm:"type:decimal(10,4);not null"`
	Bookmaker       string  `gorm:"size:50"`
	Result          string  `gorm:"size:20;default:pending"`
}

func (p *ParlayBet) IsSettled() bool {
	return p.Status == ParlayStatusWon || p.Status == ParlayStatusLost || p.Status == ParlayStatusCancelled
}

// CountsAgainstBalance mirrors Bet: cancelled parlays return the stake.
func (p *ParlayBet) CountsAgainstBalance() bool {
	return p.Status != ParlayStatusCancelled
}
