package userService

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"parlayLeague/common/apperrors"
	"parlayLeague/models"
)

var testDBCount int64

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	n := atomic.AddInt64(&testDBCount, 1)
	dsn := fmt.Sprintf("file:userservice_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestRegister(t *testing.T) {
	db := testDB(t)

	user, err := Register(db, "alice", "Alice@Example.COM", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email = %q, expected lowercased", user.Email)
	}
	if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
		t.Error("password stored unhashed")
	}
}

func TestRegisterValidation(t *testing.T) {
	db := testDB(t)

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"short username", "al", "al@example.com", "hunter22"},
		{"bad email", "alice", "not-an-email", "hunter22"},
		{"short password", "alice", "alice@example.com", "12345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Register(db, tt.username, tt.email, tt.password); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRegisterUniqueness(t *testing.T) {
	db := testDB(t)
	if _, err := Register(db, "alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := Register(db, "alice", "other@example.com", "hunter22")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
	_, err = Register(db, "alice2", "alice@example.com", "hunter22")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	db := testDB(t)
	if _, err := Register(db, "alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := Authenticate(db, "ALICE@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("username = %q", user.Username)
	}

	if _, err := Authenticate(db, "alice@example.com", "wrong"); !errors.Is(err, ErrBadCredential) {
		t.Errorf("wrong password: expected ErrBadCredential, got %v", err)
	}
	if _, err := Authenticate(db, "nobody@example.com", "hunter22"); !errors.Is(err, ErrBadCredential) {
		t.Errorf("unknown email: expected ErrBadCredential, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	db := testDB(t)
	alice, _ := Register(db, "alice", "alice@example.com", "hunter22")
	if _, err := Register(db, "bob", "bob@example.com", "hunter22"); err != nil {
		t.Fatalf("Register bob: %v", err)
	}

	newName := "alice_v2"
	updated, err := UpdateProfile(db, alice.ID, &newName, nil)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Username != "alice_v2" {
		t.Errorf("username = %q", updated.Username)
	}

	taken := "bob"
	if _, err := UpdateProfile(db, alice.ID, &taken, nil); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}

	takenMail := "bob@example.com"
	if _, err := UpdateProfile(db, alice.ID, nil, &takenMail); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}

	if _, err := UpdateProfile(db, alice.ID, nil, nil); err == nil {
		t.Error("expected error with nothing to update")
	}

	if _, err := UpdateProfile(db, 9999, &newName, nil); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
