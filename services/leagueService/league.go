package leagueService

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"gorm.io/gorm"

	"parlayLeague/common/apperrors"
	"parlayLeague/models"
	"parlayLeague/services/common"
)

const inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const inviteCodeLength = 8

// CreateLeague creates a league with a fresh invite code; the creator becomes
// commissioner and first member.
func CreateLeague(db *gorm.DB, name string, commissionerID uint) (*models.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("league name cannot be empty")
	}

	var league *models.League
	err := common.RunInTx(db, func(tx *gorm.DB) error {
		code, err := generateInviteCode(tx)
		if err != nil {
			return err
		}
		league = &models.League{
			Name:           name,
			CommissionerID: commissionerID,
			InviteCode:     code,
		}
		if err := tx.Create(league).Error; err != nil {
			return err
		}
		member := models.LeagueMember{LeagueID: league.ID, UserID: commissionerID}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return league, nil
}

// JoinLeague adds the user to the league matching the invite code.
func JoinLeague(db *gorm.DB, inviteCode string, userID uint) (*models.League, error) {
	inviteCode = strings.ToUpper(strings.TrimSpace(inviteCode))

	var league models.League
	if err := db.Where("invite_code = ?", inviteCode).First(&league).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invite code: %w", apperrors.ErrNotFound)
		}
		return nil, err
	}

	var existing models.LeagueMember
	err := db.Where("league_id = ? AND user_id = ?", league.ID, userID).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("already a member: %w", apperrors.ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	member := models.LeagueMember{LeagueID: league.ID, UserID: userID}
	if err := db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &league, nil
}

// UserLeagues lists every league the user belongs to.
func UserLeagues(db *gorm.DB, userID uint) ([]models.League, error) {
	var leagues []models.League
	err := db.Joins("JOIN league_members ON league_members.league_id = leagues.id").
		Where("league_members.user_id = ? AND league_members.deleted_at IS NULL", userID).
		Find(&leagues).Error
	return leagues, err
}

// LeagueDetail loads a league with members, visible to members only.
type LeagueDetail struct {
	League  models.League         `json:"league"`
	Members []models.LeagueMember `json:"members"`
}

func GetLeague(db *gorm.DB, leagueID, viewerID uint) (*LeagueDetail, error) {
	if err := requireMembership(db, leagueID, viewerID); err != nil {
		return nil, err
	}
	var league models.League
	if err := db.First(&league, leagueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	var members []models.LeagueMember
	if err := db.Preload("User").Where("league_id = ?", leagueID).Find(&members).Error; err != nil {
		return nil, err
	}
	return &LeagueDetail{League: league, Members: members}, nil
}

func requireMembership(db *gorm.DB, leagueID, userID uint) error {
	var member models.LeagueMember
	err := db.Where("league_id = ? AND user_id = ?", leagueID, userID).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrInvalidMatchup
	}
	return err
}

// generateInviteCode draws 8 chars of A-Z0-9 and retries on the rare
// collision.
func generateInviteCode(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		b := make([]byte, inviteCodeLength)
		for i := range b {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(inviteCodeAlphabet))))
			if err != nil {
				return "", err
			}
			b[i] = inviteCodeAlphabet[n.Int64()]
		}
		code := string(b)
		var count int64
		if err := tx.Model(&models.League{}).Where("invite_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique invite code")
}
