package userService

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"parlayLeague/auth"
	"parlayLeague/common/apperrors"
	"parlayLeague/models"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrBadCredential = errors.New("invalid credentials")
)

// Register validates input, hashes the password and creates the user.
func Register(db *gorm.DB, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(username) < 3 {
		return nil, errors.New("username must be at least 3 characters")
	}
	if !emailPattern.MatchString(email) {
		return nil, errors.New("invalid email format")
	}
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters long")
	}

	if taken, err := exists(db, "username = ?", username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := exists(db, "email = ?", email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email+password. Failures are indistinguishable to the
// caller.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredential
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrBadCredential
	}
	return &user, nil
}

func GetUser(db *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes username and/or email with uniqueness checks against
// other accounts.
func UpdateProfile(db *gorm.DB, userID uint, username, email *string) (*models.User, error) {
	user, err := GetUser(db, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if username != nil {
		name := strings.TrimSpace(*username)
		if len(name) < 3 {
			return nil, errors.New("username must be at least 3 characters")
		}
		if taken, err := exists(db, "username = ? AND id <> ?", name, userID); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrUsernameTaken
		}
		user.Username = name
		updated = true
	}
	if email != nil {
		addr := strings.ToLower(strings.TrimSpace(*email))
		if !emailPattern.MatchString(addr) {
			return nil, errors.New("invalid email format")
		}
		if taken, err := exists(db, "email = ? AND id <> ?", addr, userID); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrEmailTaken
		}
		user.Email = addr
		updated = true
	}
	if !updated {
		return nil, errors.New("no valid fields to update")
	}
	if err := db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func exists(db *gorm.DB, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := db.Model(&models.User{}).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
