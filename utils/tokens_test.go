package utils

import (
	"testing"
	"time"
)

func TestNewManager(t *testing.T) {
	if _, err := NewManager("", time.Hour, time.Hour); err == nil {
		t.Fatal("expected an error for an empty signing key")
	}
	if _, err := NewManager("key", time.Hour, time.Hour); err != nil {
		t.Fatal(err)
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m, err := NewManager("test-key", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	token, err := m.NewAccessToken(42, "user")
	if err != nil {
		t.Fatal(err)
	}

	userID, role, err := m.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if userID != 42 || role != "user" {
		t.Fatalf("expected 42/user, got %d/%q", userID, role)
	}
}

func TestParseRejectsForeignKey(t *testing.T) {
	issuer, _ := NewManager("key-one", time.Hour, time.Hour)
	verifier, _ := NewManager("key-two", time.Hour, time.Hour)

	token, err := issuer.NewAccessToken(1, "user")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected verification to fail with a different key")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m, _ := NewManager("test-key", -time.Hour, time.Hour)

	token, err := m.NewAccessToken(1, "user")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.Parse(token); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}

func TestNewRefreshToken(t *testing.T) {
	m, _ := NewManager("test-key", time.Hour, time.Hour)

	a, err := m.NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}

	if len(a) != 64 {
		t.Fatalf("expected a 64-char hex token, got %d chars", len(a))
	}
	if a == b {
		t.Fatal("two refresh tokens must not collide")
	}
}
