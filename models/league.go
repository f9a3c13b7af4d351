package models

import "gorm.io/gorm"

type League struct {
	gorm.Model
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:100;not null"`
	CommissionerID uint   `gorm:"not null"`
	Commissioner   User   `gorm:"foreignKey:CommissionerID"`
	InviteCode     string `gorm:"uniqueIndex;size:8;not null"`
	ScheduleWeeks  int    `gorm:"default:0"` // 0 until a schedule is generated
}

// LeagueMember is one user's seat in a league, carrying their cumulative
// record. points_for/points_against accumulate weekly ending balances.
type LeagueMember struct {
	gorm.Model
	ID            uint    `gorm:"primaryKey"`
	LeagueID      uint    `gorm:"uniqueIndex:league_user_idx;not null"`
	League        League  `gorm:"foreignKey:LeagueID"`
	UserID        uint    `gorm:"uniqueIndex:league_user_idx;not null"`
	User          User    `gorm:"foreignKey:UserID"`
	Wins          int     `gorm:"default:0"`
	Losses        int     `gorm:"default:0"`
	Pushes        int     `gorm:"default:0"`
	PointsFor     float64 `gorm:"type:decimal(10,2);default:0"`
	PointsAgainst float64 `gorm:"type:decimal(10,2);default:0"`
}
