package models

import "gorm.io/gorm"

// Matchup pairs two league members for one week. WinnerID stays nil on a
// push. Finalized guards the one-shot standings update.
type Matchup struct {
	gorm.Model
	ID        uint   `gorm:"primaryKey"`
	LeagueID  uint   `gorm:"index:league_week_idx;not null"`
	League    League `gorm:"foreignKey:LeagueID"`
	Week      int    `gorm:"index:league_week_idx;not null"`
	User1ID   uint   `gorm:"not null"`
	User1     User   `gorm:"foreignKey:User1ID"`
	User2ID   uint   `gorm:"not null"`
	User2     User   `gorm:"foreignKey:User2ID"`
	WinnerID  *uint
	Finalized bool `gorm:"default:false"`
}

func (m *Matchup) HasParticipant(userID uint) bool {
	return m.User1ID == userID || m.User2ID == userID
}
