package leagueService

import (
	"sort"

	"gorm.io/gorm"

	"parlayLeague/models"
)

// StandingsRow is one member's cumulative record.
type StandingsRow struct {
	Rank          int     `json:"rank"`
	UserID        uint    `json:"user_id"`
	Username      string  `json:"username"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Pushes        int     `json:"pushes"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
}

// Standings orders members by wins, then points for. Members only.
func Standings(db *gorm.DB, leagueID, viewerID uint) ([]StandingsRow, error) {
	if err := requireMembership(db, leagueID, viewerID); err != nil {
		return nil, err
	}

	var members []models.LeagueMember
	if err := db.Preload("User").Where("league_id = ?", leagueID).Find(&members).Error; err != nil {
		return nil, err
	}

	rows := make([]StandingsRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, StandingsRow{
			UserID:        m.UserID,
			Username:      m.User.Username,
			Wins:          m.Wins,
			Losses:        m.Losses,
			Pushes:        m.Pushes,
			PointsFor:     m.PointsFor,
			PointsAgainst: m.PointsAgainst,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].PointsFor > rows[j].PointsFor
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows, nil
}
