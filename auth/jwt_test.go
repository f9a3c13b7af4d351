package auth

import (
	"errors"
	"testing"

	"parlayLeague/config"
)

func setupTestAuth() {
	Setup(config.Auth{
		JWTSecret:      "test-secret",
		Issuer:         "parlayleague-test",
		AccessTTLSecs:  3600,
		RefreshTTLSecs: 7200,
	})
}

func TestTokenRoundTrip(t *testing.T) {
	setupTestAuth()

	token, err := GenerateAccessToken(42, "alice")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Errorf("claims = %d/%q, expected 42/alice", claims.UserID, claims.Username)
	}
	if claims.TokenType != "access" {
		t.Errorf("token type = %q, expected access", claims.TokenType)
	}
	if claims.Issuer != "parlayleague-test" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestRefreshTokenType(t *testing.T) {
	setupTestAuth()

	token, err := GenerateRefreshToken(42, "alice")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("token type = %q, expected refresh", claims.TokenType)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setupTestAuth()
	token, err := GenerateAccessToken(42, "alice")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	Setup(config.Auth{JWTSecret: "different-secret", AccessTTLSecs: 3600})
	defer setupTestAuth()

	if _, err := ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	Setup(config.Auth{JWTSecret: "test-secret", AccessTTLSecs: -60})
	defer setupTestAuth()

	token, err := GenerateAccessToken(42, "alice")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setupTestAuth()
	if _, err := ParseToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "hunter23") {
		t.Error("wrong password accepted")
	}
}
