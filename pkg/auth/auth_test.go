package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("panda1234")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "panda1234" {
		t.Fatal("password stored in plaintext")
	}
	if err := CheckPassword(hashed, "panda1234"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := CheckPassword(hashed, "wrong-password"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	Init("test-secret", time.Hour)

	token, err := GenerateToken(42, "판다")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Nickname != "판다" {
		t.Errorf("Nickname = %q, want 판다", claims.Nickname)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	Init("first-secret", time.Hour)
	token, err := GenerateToken(1, "panda")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	Init("second-secret", time.Hour)
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret accepted")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	Init("test-secret", time.Nanosecond)
	token, err := GenerateToken(1, "panda")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, err = ValidateToken(token)
	if err == nil {
		t.Fatal("expired token accepted")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected token expired error, got %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	Init("test-secret", time.Hour)
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
