// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hazem-e99/SurveyProject/db"
	"github.com/hazem-e99/SurveyProject/i18n"
	"github.com/hazem-e99/SurveyProject/models"
)

const questionColumns = `id, poll_id, question_text, question_type, order_number, is_required, allow_multiple_selections, max_selections, created_at, updated_at`

func scanQuestion(row interface{ Scan(...any) error }) (*models.Question, error) {
	var q models.Question
	var maxSel sql.NullInt64
	err := row.Scan(&q.ID, &q.PollID, &q.QuestionText, &q.QuestionType, &q.OrderNumber,
		&q.IsRequired, &q.AllowMultipleSelections, &maxSel, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if maxSel.Valid {
		n := int(maxSel.Int64)
		q.MaxSelections = &n
	}
	return &q, nil
}

// questionsForPoll loads the ordered questions of a poll, attaching the
// ordered option set to every mcq question.
func (s *Store) questionsForPoll(pollID int) ([]models.QuestionWithOptions, error) {
	rows, err := s.db.Query(`SELECT `+questionColumns+` FROM question
		WHERE poll_id = $1 ORDER BY order_number ASC, id ASC`, pollID)
	if err != nil {
		return nil, fmt.Errorf("listing questions for poll %d: %w", pollID, err)
	}
	defer rows.Close()

	questions := []models.QuestionWithOptions{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning question: %w", err)
		}
		questions = append(questions, models.QuestionWithOptions{Question: *q})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range questions {
		if questions[i].QuestionType != models.TypeMCQ {
			questions[i].Options = []models.Option{}
			continue
		}
		opts, err := s.optionsForQuestion(questions[i].ID)
		if err != nil {
			return nil, err
		}
		questions[i].Options = opts
	}
	return questions, nil
}

func (s *Store) optionsForQuestion(questionID int) ([]models.Option, error) {
	rows, err := s.db.Query(`SELECT id, question_id, option_text, order_number, created_at
		FROM mcq_option WHERE question_id = $1 ORDER BY order_number ASC, id ASC`, questionID)
	if err != nil {
		return nil, fmt.Errorf("listing options for question %d: %w", questionID, err)
	}
	defer rows.Close()

	opts := []models.Option{}
	for rows.Next() {
		var o models.Option
		if err := rows.Scan(&o.ID, &o.QuestionID, &o.OptionText, &o.OrderNumber, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning option: %w", err)
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}

// getQuestion loads one question and the poll that owns it.
func (s *Store) getQuestion(id int) (*models.Question, *models.Poll, error) {
	q, err := scanQuestion(s.db.QueryRow(`SELECT `+questionColumns+` FROM question WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("getting question %d: %w", id, err)
	}
	p, err := s.GetPoll(q.PollID)
	if err != nil {
		return nil, nil, err
	}
	return q, p, nil
}

// validateOptionSet requires at least two options that carry text in
// some locale. Blank entries are dropped rather than rejected, matching
// how the admin form submits unused option slots.
func validateOptionSet(options []i18n.Text) []string {
	labeled := 0
	for _, o := range options {
		if o.HasAny() {
			labeled++
		}
	}
	if labeled < 2 {
		return []string{"options"}
	}
	return nil
}

// CreateQuestion appends a question to a poll. MCQ questions need at
// least two options; option order numbers are assigned sequentially
// from 1.
func (s *Store) CreateQuestion(pollID, adminID int, req *models.CreateQuestionRequest) (*models.QuestionWithOptions, error) {
	p, err := s.GetPoll(pollID)
	if err != nil {
		return nil, err
	}
	if p.AdminID != adminID {
		return nil, ErrForbidden
	}

	fields := []string{}
	if !req.QuestionText.HasAny() {
		fields = append(fields, "question_text")
	}
	switch req.QuestionType {
	case models.TypeMCQ:
		fields = append(fields, validateOptionSet(req.Options)...)
	case models.TypeText:
	default:
		fields = append(fields, "question_type")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Message: "invalid question", Fields: fields}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := db.NextID(tx, db.CollQuestions)
	if err != nil {
		return nil, fmt.Errorf("allocating question id: %w", err)
	}

	now := time.Now().UTC()
	q := models.Question{
		ID:                      id,
		PollID:                  pollID,
		QuestionText:            req.QuestionText,
		QuestionType:            req.QuestionType,
		OrderNumber:             req.OrderNumber,
		IsRequired:              req.IsRequired,
		AllowMultipleSelections: req.AllowMultipleSelections,
		MaxSelections:           req.MaxSelections,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	// A single-select question carries no selection cap.
	if !q.AllowMultipleSelections {
		q.MaxSelections = nil
	}
	_, err = tx.Exec(`INSERT INTO question (id, poll_id, question_text, question_type, order_number, is_required, allow_multiple_selections, max_selections, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		q.ID, q.PollID, q.QuestionText, q.QuestionType, q.OrderNumber,
		q.IsRequired, q.AllowMultipleSelections, q.MaxSelections, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting question: %w", err)
	}

	opts := []models.Option{}
	if q.QuestionType == models.TypeMCQ {
		opts, err = insertOptions(tx, q.ID, req.Options, now)
		if err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing question: %w", err)
	}
	return &models.QuestionWithOptions{Question: q, Options: opts}, nil
}

func insertOptions(tx *sql.Tx, questionID int, texts []i18n.Text, now time.Time) ([]models.Option, error) {
	opts := []models.Option{}
	order := 0
	for _, text := range texts {
		if !text.HasAny() {
			continue
		}
		id, err := db.NextID(tx, db.CollMCQOptions)
		if err != nil {
			return nil, fmt.Errorf("allocating option id: %w", err)
		}
		order++
		o := models.Option{ID: id, QuestionID: questionID, OptionText: text, OrderNumber: order, CreatedAt: now}
		_, err = tx.Exec(`INSERT INTO mcq_option (id, question_id, option_text, order_number, created_at)
			VALUES ($1, $2, $3, $4, $5)`, o.ID, o.QuestionID, o.OptionText, o.OrderNumber, o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("inserting option: %w", err)
		}
		opts = append(opts, o)
	}
	return opts, nil
}

// UpdateQuestion merges the supplied fields into a question. A non-nil
// Options slice replaces the whole option set, which is refused once any
// answer references the old set: stored option ids would dangle.
func (s *Store) UpdateQuestion(id, adminID int, req *models.UpdateQuestionRequest) (*models.QuestionWithOptions, error) {
	q, p, err := s.getQuestion(id)
	if err != nil {
		return nil, err
	}
	if p.AdminID != adminID {
		return nil, ErrForbidden
	}

	if req.QuestionText != nil {
		if !req.QuestionText.HasAny() {
			return nil, &ValidationError{Message: "invalid question", Fields: []string{"question_text"}}
		}
		q.QuestionText = *req.QuestionText
	}
	if req.OrderNumber != nil {
		q.OrderNumber = *req.OrderNumber
	}
	if req.IsRequired != nil {
		q.IsRequired = *req.IsRequired
	}
	if req.AllowMultipleSelections != nil {
		q.AllowMultipleSelections = *req.AllowMultipleSelections
	}
	if req.MaxSelections != nil {
		if *req.MaxSelections > 0 {
			q.MaxSelections = req.MaxSelections
		} else {
			q.MaxSelections = nil
		}
	}
	// A single-select question carries no selection cap.
	if !q.AllowMultipleSelections {
		q.MaxSelections = nil
	}
	q.UpdatedAt = time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`UPDATE question SET question_text = $1, order_number = $2, is_required = $3,
		allow_multiple_selections = $4, max_selections = $5, updated_at = $6 WHERE id = $7`,
		q.QuestionText, q.OrderNumber, q.IsRequired, q.AllowMultipleSelections,
		q.MaxSelections, q.UpdatedAt, q.ID)
	if err != nil {
		return nil, fmt.Errorf("updating question %d: %w", id, err)
	}

	var opts []models.Option
	if req.Options != nil && q.QuestionType == models.TypeMCQ {
		var answered int
		err := tx.QueryRow(`SELECT COUNT(*) FROM mcq_answer WHERE question_id = $1`, q.ID).Scan(&answered)
		if err != nil {
			return nil, fmt.Errorf("counting answers for question %d: %w", q.ID, err)
		}
		if answered > 0 {
			return nil, &ValidationError{Message: "option set cannot change after responses exist", Fields: []string{"options"}}
		}
		if fields := validateOptionSet(req.Options); len(fields) > 0 {
			return nil, &ValidationError{Message: "invalid question", Fields: fields}
		}
		if _, err := tx.Exec(`DELETE FROM mcq_option WHERE question_id = $1`, q.ID); err != nil {
			return nil, fmt.Errorf("clearing options for question %d: %w", q.ID, err)
		}
		opts, err = insertOptions(tx, q.ID, req.Options, q.UpdatedAt)
		if err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing question update: %w", err)
	}

	if opts == nil {
		opts, err = s.optionsForQuestion(q.ID)
		if err != nil {
			return nil, err
		}
	}
	return &models.QuestionWithOptions{Question: *q, Options: opts}, nil
}

// DeleteQuestion removes a question, its options, and any answer rows
// that reference it. Responses themselves survive minus that answer.
func (s *Store) DeleteQuestion(id, adminID int) error {
	_, p, err := s.getQuestion(id)
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
		`DELETE FROM mcq_answer WHERE question_id = $1`,
		`DELETE FROM text_answer WHERE question_id = $1`,
		`DELETE FROM mcq_option WHERE question_id = $1`,
		`DELETE FROM question WHERE id = $1`,
	}
	for _, q := range stmts {
		if _, err := tx.Exec(q, id); err != nil {
			return fmt.Errorf("cascading question delete %d: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing question delete: %w", err)
	}
	return nil
}
