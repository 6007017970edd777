// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http/httptest"
	"testing"
)

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty session ids, got %q and %q", a, b)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := CheckPassword(hash, "admin123"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err != ErrInvalidCredentials {
		t.Errorf("CheckPassword with wrong password = %v, want ErrInvalidCredentials", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	const secret = "test-session-secret"

	token, err := IssueToken(7, secret)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	adminID, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if adminID != 7 {
		t.Errorf("admin id = %d, want 7", adminID)
	}
}

func TestValidateTokenRejections(t *testing.T) {
	const secret = "test-session-secret"
	token, _ := IssueToken(1, secret)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", token, "other-secret"},
		{"garbage token", "not-a-token", secret},
		{"empty token", "", secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token, tt.secret); err != ErrInvalidToken {
				t.Errorf("ValidateToken = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestAdminFromRequest(t *testing.T) {
	const secret = "test-session-secret"
	token, _ := IssueToken(42, secret)

	tests := []struct {
		name    string
		header  string
		wantID  int
		wantErr bool
	}{
		{"valid bearer token", "Bearer " + token, 42, false},
		{"missing header", "", 0, true},
		{"no bearer prefix", token, 0, true},
		{"tampered token", "Bearer " + token + "x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/polls", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			id, err := AdminFromRequest(r, secret)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("AdminFromRequest: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("admin id = %d, want %d", id, tt.wantID)
			}
		})
	}
}
