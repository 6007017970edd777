// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"strings"
)

var (
	// ErrNotFound means an operation targeted a record absent from the store.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden means the acting admin does not own the targeted poll.
	ErrForbidden = errors.New("poll belongs to another admin")
)

// ValidationError reports why a mutation was rejected before any write.
// QuestionIDs names the failing questions of a submission; Fields names
// the failing fields of a definition change.
type ValidationError struct {
	Message     string
	QuestionIDs []int
	Fields      []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if len(e.Fields) > 0 {
		b.WriteString(" (fields: ")
		b.WriteString(strings.Join(e.Fields, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// Store owns the record collections. Every mutating method runs in a
// single transaction: callers never observe a half-written submission
// or a half-cascaded delete, and persistence failures propagate.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
