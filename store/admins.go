// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/hazem-e99/SurveyProject/auth"
	"github.com/hazem-e99/SurveyProject/models"
)

// Authenticate looks up an admin by email and verifies the password.
// An unknown email and a wrong password both return
// auth.ErrInvalidCredentials so the two cases are indistinguishable.
func (s *Store) Authenticate(email, password string) (*models.Admin, error) {
	var a models.Admin
	err := s.db.QueryRow(`SELECT id, username, email, password_hash, full_name, created_at
		FROM admin WHERE email = $1`, email).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.FullName, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, auth.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("looking up admin: %w", err)
	}
	if err := auth.CheckPassword(a.PasswordHash, password); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAdmin returns one admin by id.
func (s *Store) GetAdmin(id int) (*models.Admin, error) {
	var a models.Admin
	err := s.db.QueryRow(`SELECT id, username, email, password_hash, full_name, created_at
		FROM admin WHERE id = $1`, id).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.FullName, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting admin %d: %w", id, err)
	}
	return &a, nil
}
