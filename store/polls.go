// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hazem-e99/SurveyProject/db"
	"github.com/hazem-e99/SurveyProject/models"
)

const pollColumns = `id, admin_id, title, description, status, start_date, end_date, created_at, updated_at`

func scanPoll(row interface{ Scan(...any) error }) (*models.Poll, error) {
	var p models.Poll
	err := row.Scan(&p.ID, &p.AdminID, &p.Title, &p.Description, &p.Status,
		&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) queryPolls(query string, args ...any) ([]models.Poll, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		p, err := scanPoll(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning poll: %w", err)
		}
		polls = append(polls, *p)
	}
	return polls, rows.Err()
}

// ListPolls returns every poll, newest first.
func (s *Store) ListPolls() ([]models.Poll, error) {
	return s.queryPolls(`SELECT ` + pollColumns + ` FROM poll ORDER BY created_at DESC, id DESC`)
}

// ListActivePolls returns the polls currently open to respondents,
// newest first. It backs the public survey listing, so drafts and
// completed polls stay hidden.
func (s *Store) ListActivePolls() ([]models.Poll, error) {
	return s.queryPolls(`SELECT `+pollColumns+` FROM poll WHERE status = $1 ORDER BY created_at DESC, id DESC`,
		models.StatusActive)
}

// GetPoll returns a single poll record without its questions.
func (s *Store) GetPoll(id int) (*models.Poll, error) {
	p, err := scanPoll(s.db.QueryRow(`SELECT `+pollColumns+` FROM poll WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting poll %d: %w", id, err)
	}
	return p, nil
}

// GetPollWithQuestions returns the full survey definition: the poll plus
// its questions in order, each mcq question carrying its ordered options.
func (s *Store) GetPollWithQuestions(id int) (*models.PollWithQuestions, error) {
	p, err := s.GetPoll(id)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionsForPoll(id)
	if err != nil {
		return nil, err
	}
	return &models.PollWithQuestions{Poll: *p, Questions: questions}, nil
}

// CreatePoll inserts a new poll owned by adminID. The title must carry
// text in at least one locale and the status must be a known value.
func (s *Store) CreatePoll(adminID int, req *models.CreatePollRequest) (*models.Poll, error) {
	fields := []string{}
	if !req.Title.HasAny() {
		fields = append(fields, "title")
	}
	if !models.ValidStatus(req.Status) {
		fields = append(fields, "status")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Message: "invalid poll", Fields: fields}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := db.NextID(tx, db.CollPolls)
	if err != nil {
		return nil, fmt.Errorf("allocating poll id: %w", err)
	}

	now := time.Now().UTC()
	p := &models.Poll{
		ID:          id,
		AdminID:     adminID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err = tx.Exec(`INSERT INTO poll (id, admin_id, title, description, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.AdminID, p.Title, p.Description, p.Status, p.StartDate, p.EndDate, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting poll: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing poll: %w", err)
	}
	return p, nil
}

// UpdatePoll merges the supplied fields into an existing poll. Only the
// owning admin may update a poll; absent fields keep their stored value.
func (s *Store) UpdatePoll(id, adminID int, req *models.UpdatePollRequest) (*models.Poll, error) {
	p, err := s.GetPoll(id)
	if err != nil {
		return nil, err
	}
	if p.AdminID != adminID {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		if !req.Title.HasAny() {
			return nil, &ValidationError{Message: "invalid poll", Fields: []string{"title"}}
		}
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, &ValidationError{Message: "invalid poll", Fields: []string{"status"}}
		}
		p.Status = *req.Status
	}
	if req.StartDate != nil {
		p.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		p.EndDate = *req.EndDate
	}
	p.UpdatedAt = time.Now().UTC()

	_, err = s.db.Exec(`UPDATE poll SET title = $1, description = $2, status = $3,
		start_date = $4, end_date = $5, updated_at = $6 WHERE id = $7`,
		p.Title, p.Description, p.Status, p.StartDate, p.EndDate, p.UpdatedAt, p.ID)
	if err != nil {
		return nil, fmt.Errorf("updating poll %d: %w", id, err)
	}
	return p, nil
}

// DeletePoll removes a poll together with its questions, options,
// responses, and answer rows. The cascade runs inside one transaction
// so an aborted delete leaves no orphans.
func (s *Store) DeletePoll(id, adminID int) error {
	p, err := s.GetPoll(id)
	if err != nil {
		return err
	}
	if p.AdminID != adminID {
		return ErrForbidden
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		`DELETE FROM mcq_answer WHERE response_id IN (SELECT id FROM response WHERE poll_id = $1)`,
		`DELETE FROM text_answer WHERE response_id IN (SELECT id FROM response WHERE poll_id = $1)`,
		`DELETE FROM response WHERE poll_id = $1`,
		`DELETE FROM mcq_option WHERE question_id IN (SELECT id FROM question WHERE poll_id = $1)`,
		`DELETE FROM question WHERE poll_id = $1`,
		`DELETE FROM poll WHERE id = $1`,
	}
	for _, q := range stmts {
		if _, err := tx.Exec(q, id); err != nil {
			return fmt.Errorf("cascading poll delete %d: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing poll delete: %w", err)
	}
	return nil
}
