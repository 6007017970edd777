// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hazem-e99/SurveyProject/auth"
	"github.com/hazem-e99/SurveyProject/cliparse"
	"github.com/hazem-e99/SurveyProject/db"
	"github.com/hazem-e99/SurveyProject/i18n"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full
// schema and id counters. Each test gets its own database; nothing to
// clean up beyond closing it.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
		DefaultLang:   i18n.LangEN,
	}
}

// nextID allocates a record id the same way the store does, keeping the
// persisted counters consistent with fixture rows.
func nextID(t *testing.T, conn *sql.DB, collection string) int {
	t.Helper()

	tx, err := conn.Begin()
	if err != nil {
		t.Fatalf("Failed to begin fixture transaction: %v", err)
	}
	defer tx.Rollback()

	id, err := db.NextID(tx, collection)
	if err != nil {
		t.Fatalf("Failed to allocate fixture id: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit fixture id: %v", err)
	}
	return id
}

// CreateTestAdmin inserts an admin with the given password and returns
// its id together with a valid session token.
func CreateTestAdmin(t *testing.T, conn *sql.DB, cfg cliparse.Config, email, password string) (adminID int, token string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	adminID = nextID(t, conn, db.CollAdmins)
	_, err = conn.Exec(`
		INSERT INTO admin (id, username, email, password_hash, full_name, created_at)
		VALUES ($1, $2, $3, $4, 'Test Admin', $5)
	`, adminID, email, email, hash, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}

	token, err = auth.IssueToken(adminID, cfg.SessionSecret)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return adminID, token
}

// CreateTestPoll inserts a poll owned by adminID. status should be
// "draft", "active", "inactive", or "completed"; active polls get an
// open response window around now.
func CreateTestPoll(t *testing.T, conn *sql.DB, adminID int, status string) int {
	t.Helper()

	now := time.Now().UTC()
	pollID := nextID(t, conn, db.CollPolls)
	_, err := conn.Exec(`
		INSERT INTO poll (id, title, description, admin_id, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, pollID,
		i18n.Text{EN: "Test Poll", AR: "استبيان تجريبي", KU: "ڕاپرسی تاقیکردنەوە"},
		i18n.Text{EN: "A test poll"},
		adminID, status, now.Add(-24*time.Hour), now.Add(24*time.Hour), now, now)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return pollID
}

// AddTestMCQQuestion inserts an mcq question with English option labels
// and returns the question id and the option ids in label order.
func AddTestMCQQuestion(t *testing.T, conn *sql.DB, pollID int, required, multi bool, maxSelections *int, labels ...string) (int, []int) {
	t.Helper()

	now := time.Now().UTC()
	questionID := nextID(t, conn, db.CollQuestions)
	_, err := conn.Exec(`
		INSERT INTO question (id, poll_id, question_text, question_type, order_number, is_required, allow_multiple_selections, max_selections, created_at, updated_at)
		VALUES ($1, $2, $3, 'mcq', $4, $5, $6, $7, $8, $9)
	`, questionID, pollID, i18n.Text{EN: "Test Question"}, questionID, required, multi, maxSelections, now, now)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	optionIDs := make([]int, 0, len(labels))
	for i, label := range labels {
		optionID := nextID(t, conn, db.CollMCQOptions)
		_, err := conn.Exec(`
			INSERT INTO mcq_option (id, question_id, option_text, order_number, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, optionID, questionID, i18n.Text{EN: label}, i+1, now)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
		optionIDs = append(optionIDs, optionID)
	}
	return questionID, optionIDs
}

// AddTestTextQuestion inserts a text question and returns its id.
func AddTestTextQuestion(t *testing.T, conn *sql.DB, pollID int, required bool) int {
	t.Helper()

	now := time.Now().UTC()
	questionID := nextID(t, conn, db.CollQuestions)
	_, err := conn.Exec(`
		INSERT INTO question (id, poll_id, question_text, question_type, order_number, is_required, allow_multiple_selections, max_selections, created_at, updated_at)
		VALUES ($1, $2, $3, 'text', $4, $5, FALSE, NULL, $6, $7)
	`, questionID, pollID, i18n.Text{EN: "Tell us more"}, questionID, required, now, now)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return questionID
}

// SubmitTestResponse inserts a response with the given answers.
// selections maps mcq question ids to selected option ids; texts maps
// text question ids to answer text. Returns the response id.
func SubmitTestResponse(t *testing.T, conn *sql.DB, pollID int, selections map[int][]int, texts map[int]string) int {
	t.Helper()

	now := time.Now().UTC()
	responseID := nextID(t, conn, db.CollResponses)
	_, err := conn.Exec(`
		INSERT INTO response (id, poll_id, session_id, ip_address, user_agent, submitted_at)
		VALUES ($1, $2, $3, '127.0.0.1', 'testutil', $4)
	`, responseID, pollID, auth.NewSessionID(), now)
	if err != nil {
		t.Fatalf("Failed to create test response: %v", err)
	}

	for questionID, optionIDs := range selections {
		for _, optionID := range optionIDs {
			id := nextID(t, conn, db.CollMCQAnswers)
			_, err := conn.Exec(`
				INSERT INTO mcq_answer (id, response_id, question_id, option_id, answered_at)
				VALUES ($1, $2, $3, $4, $5)
			`, id, responseID, questionID, optionID, now)
			if err != nil {
				t.Fatalf("Failed to create test mcq answer: %v", err)
			}
		}
	}
	for questionID, text := range texts {
		id := nextID(t, conn, db.CollTextAnswers)
		_, err := conn.Exec(`
			INSERT INTO text_answer (id, response_id, question_id, answer_text, answered_at)
			VALUES ($1, $2, $3, $4, $5)
		`, id, responseID, questionID, text, now)
		if err != nil {
			t.Fatalf("Failed to create test text answer: %v", err)
		}
	}
	return responseID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeader builds the Authorization header map for a session token.
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
