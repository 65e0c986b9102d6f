package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m, err := NewTokenManager("test-secret", 7*24*time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager returned error: %v", err)
	}

	token, err := m.GenerateToken(42, "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "a@x.com" {
		t.Errorf("claims = %d/%s, want 42/a@x.com", claims.UserID, claims.Email)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer, _ := NewTokenManager("secret-one", time.Hour)
	verifier, _ := NewTokenManager("secret-two", time.Hour)

	token, err := issuer.GenerateToken(1, "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("ParseToken should reject a token signed with another secret")
	}
}

func TestParseExpiredToken(t *testing.T) {
	m, _ := NewTokenManager("test-secret", time.Hour)
	m.expiry = -time.Minute // issue an already-expired token

	token, err := m.GenerateToken(1, "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := m.ParseToken(token); err == nil {
		t.Fatal("ParseToken should reject an expired token")
	}
}

func TestParseGarbageToken(t *testing.T) {
	m, _ := NewTokenManager("test-secret", time.Hour)
	if _, err := m.ParseToken("not.a.token"); err == nil {
		t.Fatal("ParseToken should reject malformed input")
	}
}

func TestNewTokenManagerEmptySecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour); err == nil {
		t.Fatal("NewTokenManager should reject an empty secret")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if !CheckPasswordHash("123456", hash) {
		t.Error("correct password should verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password should not verify")
	}
}
