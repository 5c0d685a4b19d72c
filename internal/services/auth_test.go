package services

import (
	"testing"
	"time"
)

func testTokenService() TokenService {
	return TokenService{
		Secret:     []byte("test-secret"),
		Issuer:     "learnhub-test",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func TestAccessTokenRoundtrip(t *testing.T) {
	ts := testTokenService()
	signed, exp, err := ts.CreateAccessToken("user-1", "a@example.com", []string{"ADMIN", "STUDENT"})
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	if exp <= time.Now().Unix() {
		t.Fatalf("expiry not in the future: %d", exp)
	}
	token, claims, err := ts.ParseToken(signed)
	if err != nil || !token.Valid {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims["sub"] != "user-1" || claims["typ"] != "access" || claims["email"] != "a@example.com" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	ts := testTokenService()
	signed, err := ts.CreateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("CreateRefreshToken: %v", err)
	}
	token, claims, err := ts.ParseToken(signed)
	if err != nil || !token.Valid {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims["typ"] != "refresh" {
		t.Fatalf("expected refresh type, got %v", claims["typ"])
	}
}

func TestParseTokenRejectsWrongIssuer(t *testing.T) {
	ts := testTokenService()
	signed, _, err := ts.CreateAccessToken("user-1", "", nil)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	other := ts
	other.Issuer = "someone-else"
	token, _, err := other.ParseToken(signed)
	if err == nil && token.Valid {
		t.Fatal("token with wrong issuer accepted")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	ts := testTokenService()
	signed, _, err := ts.CreateAccessToken("user-1", "", nil)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	other := ts
	other.Secret = []byte("different-secret")
	token, _, err := other.ParseToken(signed)
	if err == nil && token.Valid {
		t.Fatal("token with wrong secret accepted")
	}
}
