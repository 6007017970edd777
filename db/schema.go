// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The SQL avoids
// dialect-specific features (SERIAL, NOW(), JSONB) so the same schema
// runs on sqlite and postgres; localized text columns store the
// three-locale JSON object as TEXT.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := seedCounters(db); err != nil {
		return err
	}

	return nil
}

// Collection names for id_counter. Ids are issued by NextID inside the
// mutating transaction and are never reused, even after deletes.
const (
	CollAdmins      = "admins"
	CollPolls       = "polls"
	CollQuestions   = "questions"
	CollMCQOptions  = "mcq_options"
	CollResponses   = "responses"
	CollMCQAnswers  = "mcq_answers"
	CollTextAnswers = "text_answers"
	CollSections    = "sections"
)

var collections = []string{
	CollAdmins, CollPolls, CollQuestions, CollMCQOptions,
	CollResponses, CollMCQAnswers, CollTextAnswers, CollSections,
}

func seedCounters(db *sql.DB) error {
	for _, name := range collections {
		// Portable insert-if-absent (no ON CONFLICT / OR IGNORE).
		_, err := db.Exec(`
			INSERT INTO id_counter (collection, last_id)
			SELECT $1, 0
			WHERE NOT EXISTS (SELECT 1 FROM id_counter WHERE collection = $2)
		`, name, name)
		if err != nil {
			return fmt.Errorf("failed to seed id counter %s: %w", name, err)
		}
	}
	return nil
}

// NextID issues the next identifier for a collection. The counter row is
// updated inside the caller's transaction, so the id allocation commits
// or rolls back atomically with the record that uses it.
func NextID(tx *sql.Tx, collection string) (int, error) {
	res, err := tx.Exec(`
		UPDATE id_counter SET last_id = last_id + 1 WHERE collection = $1
	`, collection)
	if err != nil {
		return 0, fmt.Errorf("failed to advance id counter %s: %w", collection, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return 0, fmt.Errorf("unknown id collection %q", collection)
	}

	var id int
	err = tx.QueryRow(`
		SELECT last_id FROM id_counter WHERE collection = $1
	`, collection).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to read id counter %s: %w", collection, err)
	}

	return id, nil
}

const schema = `
-- Administrators (provisioned at seed time, never created via the API)
CREATE TABLE IF NOT EXISTS admin (
    id INTEGER PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    full_name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    admin_id INTEGER NOT NULL REFERENCES admin(id),
    status TEXT NOT NULL CHECK (status IN ('draft', 'active', 'inactive', 'completed')),
    start_date TIMESTAMP NOT NULL,
    end_date TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_poll_status ON poll(status);
CREATE INDEX IF NOT EXISTS idx_poll_admin_id ON poll(admin_id);

-- Questions
CREATE TABLE IF NOT EXISTS question (
    id INTEGER PRIMARY KEY,
    poll_id INTEGER NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    question_text TEXT NOT NULL,
    question_type TEXT NOT NULL CHECK (question_type IN ('mcq', 'text')),
    order_number INTEGER NOT NULL,
    is_required BOOLEAN NOT NULL,
    allow_multiple_selections BOOLEAN NOT NULL,
    max_selections INTEGER,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_poll_id ON question(poll_id);

-- MCQ options
CREATE TABLE IF NOT EXISTS mcq_option (
    id INTEGER PRIMARY KEY,
    question_id INTEGER NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    option_text TEXT NOT NULL,
    order_number INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_mcq_option_question_id ON mcq_option(question_id);

-- Responses (one per end-user submission, never updated)
CREATE TABLE IF NOT EXISTS response (
    id INTEGER PRIMARY KEY,
    poll_id INTEGER NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    session_id TEXT NOT NULL,
    ip_address TEXT,
    user_agent TEXT,
    submitted_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_response_poll_id ON response(poll_id);

-- Answer rows: one physical shape per question type
CREATE TABLE IF NOT EXISTS mcq_answer (
    id INTEGER PRIMARY KEY,
    response_id INTEGER NOT NULL REFERENCES response(id) ON DELETE CASCADE,
    question_id INTEGER NOT NULL REFERENCES question(id),
    option_id INTEGER NOT NULL REFERENCES mcq_option(id),
    answered_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_mcq_answer_response_id ON mcq_answer(response_id);
CREATE INDEX IF NOT EXISTS idx_mcq_answer_question_id ON mcq_answer(question_id);

CREATE TABLE IF NOT EXISTS text_answer (
    id INTEGER PRIMARY KEY,
    response_id INTEGER NOT NULL REFERENCES response(id) ON DELETE CASCADE,
    question_id INTEGER NOT NULL REFERENCES question(id),
    answer_text TEXT NOT NULL,
    answered_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_text_answer_response_id ON text_answer(response_id);
CREATE INDEX IF NOT EXISTS idx_text_answer_question_id ON text_answer(question_id);

-- Public-site content sections
CREATE TABLE IF NOT EXISTS section (
    id INTEGER PRIMARY KEY,
    page TEXT NOT NULL,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    media TEXT,
    order_number INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_section_page ON section(page);

-- Per-collection id counters, persisted alongside the data they number
CREATE TABLE IF NOT EXISTS id_counter (
    collection TEXT PRIMARY KEY,
    last_id INTEGER NOT NULL
);
`
