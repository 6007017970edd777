// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid session token")
)

// Session tokens expire after 24 hours; the admin logs in again.
const tokenTTL = 24 * time.Hour

// NewSessionID creates the opaque per-submission session identifier
// stored on response rows. It identifies a browser session, not a
// person; it carries no authorization.
func NewSessionID() string {
	return uuid.NewString()
}

// HashPassword creates a bcrypt hash for storage. Used at provisioning
// and seed time only; admins are not created through the API.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a candidate password against a stored bcrypt
// hash in constant time.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

type sessionClaims struct {
	AdminID int `json:"admin_id"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed session token for an admin.
func IssueToken(adminID int, secret string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks a session token's signature and expiry and
// returns the admin id it was issued for.
func ValidateToken(tokenString, secret string) (int, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.AdminID, nil
}

// AdminFromRequest extracts and validates the bearer token on an admin
// request, returning the acting admin's id.
func AdminFromRequest(r *http.Request, secret string) (int, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return 0, ErrInvalidToken
	}
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return 0, ErrInvalidToken
	}
	return ValidateToken(tokenString, secret)
}
