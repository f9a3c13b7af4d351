package models

import (
	"time"

	"gorm.io/gorm"
)

// Game results as reported by the odds provider.
const (
	GameResultHomeWin = "home_win"
	GameResultAwayWin = "away_win"
	GameResultVoid    = "void" // cancelled or otherwise no-actioned
)

// Game is an external sporting event cached locally. The primary key is the
// provider's event id.
type Game struct {
	ID        string `gorm:"primaryKey;size:50"`
	HomeTeam  string `gorm:"size:50;not null"`
	AwayTeam  string `gorm:"size:50;not null"`
	StartTime time.Time
	Week      int     `gorm:"index"`
	Result    *string `gorm:"size:20"` // nil until the result is ingested
	Settled   bool    `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *Game) HasStarted(now time.Time) bool {
	return !now.Before(g.StartTime)
}

// BettingOption is one bettable line on a game. Once locked it can never
// accept another bet.
type BettingOption struct {
	gorm.Model
	ID           uint   `gorm:"primaryKey"`
	GameID       string `gorm:"index;size:50;not null"`
	Game         Game   `gorm:"foreignKey:GameID"`
	MarketType   string `gorm:"size:20;not null"` // h2h only for now
	OutcomeName  string `gorm:"size:50;not null"` // team the option is on
	Bookmaker    string `gorm:"size:50"`
	AmericanOdds int
	DecimalOdds  float64 `gorm:"type:decimal(10,4)"`
	IsLocked     bool    `gorm:"default:false"`
	LockedAt     *time.Time
}

const MarketH2H = "h2h"
