// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/hazem-e99/SurveyProject/auth"
	"github.com/hazem-e99/SurveyProject/db"
	"github.com/hazem-e99/SurveyProject/i18n"
	"github.com/hazem-e99/SurveyProject/models"
)

// SubmitResponse validates a submission against the poll definition and,
// only if every check passes, writes the response row and all of its
// answer rows in one transaction. A rejected submission writes nothing.
func (s *Store) SubmitResponse(pollID int, req *models.SubmitRequest, ip, userAgent string) (*models.SubmitResponseResult, error) {
	p, err := s.GetPoll(pollID)
	if err != nil {
		return nil, err
	}
	if p.Status != models.StatusActive {
		return nil, &ValidationError{Message: "poll is not active"}
	}
	now := time.Now().UTC()
	if now.Before(p.StartDate) || now.After(p.EndDate) {
		return nil, &ValidationError{Message: "poll is outside its response window"}
	}

	questions, err := s.questionsForPoll(pollID)
	if err != nil {
		return nil, err
	}
	known := map[int]bool{}
	for _, q := range questions {
		known[q.ID] = true
	}
	byQuestion := map[int]models.AnswerValue{}
	failing := []int{}
	for _, a := range req.Answers {
		if !known[a.QuestionID] {
			failing = append(failing, a.QuestionID)
			continue
		}
		byQuestion[a.QuestionID] = a.Value
	}

	for _, q := range questions {
		v, answered := byQuestion[q.ID]
		if !answered || v.IsEmpty {
			if q.IsRequired {
				failing = append(failing, q.ID)
			}
			continue
		}
		switch q.QuestionType {
		case models.TypeText:
			if len(v.OptionIDs) > 0 {
				failing = append(failing, q.ID)
			}
		case models.TypeMCQ:
			if v.Text != "" || len(v.OptionIDs) == 0 {
				failing = append(failing, q.ID)
				continue
			}
			if !q.AllowMultipleSelections && len(v.OptionIDs) != 1 {
				failing = append(failing, q.ID)
				continue
			}
			if q.AllowMultipleSelections && q.MaxSelections != nil && len(v.OptionIDs) > *q.MaxSelections {
				failing = append(failing, q.ID)
				continue
			}
			valid := map[int]bool{}
			for _, o := range q.Options {
				valid[o.ID] = true
			}
			for _, optID := range v.OptionIDs {
				if !valid[optID] {
					failing = append(failing, q.ID)
					break
				}
			}
		}
	}
	if len(failing) > 0 {
		return nil, &ValidationError{Message: "invalid answers", QuestionIDs: failing}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	responseID, err := db.NextID(tx, db.CollResponses)
	if err != nil {
		return nil, fmt.Errorf("allocating response id: %w", err)
	}
	sessionID := auth.NewSessionID()
	_, err = tx.Exec(`INSERT INTO response (id, poll_id, session_id, ip_address, user_agent, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		responseID, pollID, sessionID, ip, userAgent, now)
	if err != nil {
		return nil, fmt.Errorf("inserting response: %w", err)
	}

	// One answer row per supplied answer; omitted questions leave no row.
	for _, q := range questions {
		v, answered := byQuestion[q.ID]
		if !answered || v.IsEmpty {
			continue
		}
		switch q.QuestionType {
		case models.TypeText:
			id, err := db.NextID(tx, db.CollTextAnswers)
			if err != nil {
				return nil, fmt.Errorf("allocating text answer id: %w", err)
			}
			_, err = tx.Exec(`INSERT INTO text_answer (id, response_id, question_id, answer_text, answered_at)
				VALUES ($1, $2, $3, $4, $5)`, id, responseID, q.ID, v.Text, now)
			if err != nil {
				return nil, fmt.Errorf("inserting text answer: %w", err)
			}
		case models.TypeMCQ:
			for _, optID := range v.OptionIDs {
				id, err := db.NextID(tx, db.CollMCQAnswers)
				if err != nil {
					return nil, fmt.Errorf("allocating mcq answer id: %w", err)
				}
				_, err = tx.Exec(`INSERT INTO mcq_answer (id, response_id, question_id, option_id, answered_at)
					VALUES ($1, $2, $3, $4, $5)`, id, responseID, q.ID, optID, now)
				if err != nil {
					return nil, fmt.Errorf("inserting mcq answer: %w", err)
				}
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing response: %w", err)
	}
	return &models.SubmitResponseResult{ResponseID: responseID, SessionID: sessionID, SubmittedAt: now}, nil
}

// CountResponses returns how many responses a poll has received.
func (s *Store) CountResponses(pollID int) (int, error) {
	if _, err := s.GetPoll(pollID); err != nil {
		return 0, err
	}
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM response WHERE poll_id = $1`, pollID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting responses for poll %d: %w", pollID, err)
	}
	return n, nil
}

// ListResponses returns every response to a poll in submission order,
// each with its answers laid out in question order. MCQ selections are
// resolved to option labels in lang and joined with ", "; text answers
// pass through verbatim.
func (s *Store) ListResponses(pollID int, lang string) ([]models.ResponseDetail, error) {
	if _, err := s.GetPoll(pollID); err != nil {
		return nil, err
	}
	questions, err := s.questionsForPoll(pollID)
	if err != nil {
		return nil, err
	}
	optionLabels := map[int]i18n.Text{}
	for _, q := range questions {
		for _, o := range q.Options {
			optionLabels[o.ID] = o.OptionText
		}
	}

	rows, err := s.db.Query(`SELECT id, poll_id, session_id, ip_address, user_agent, submitted_at
		FROM response WHERE poll_id = $1 ORDER BY submitted_at ASC, id ASC`, pollID)
	if err != nil {
		return nil, fmt.Errorf("listing responses for poll %d: %w", pollID, err)
	}
	defer rows.Close()

	details := []models.ResponseDetail{}
	index := map[int]int{}
	for rows.Next() {
		var r models.Response
		err := rows.Scan(&r.ID, &r.PollID, &r.SessionID, &r.IPAddress, &r.UserAgent, &r.SubmittedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning response: %w", err)
		}
		index[r.ID] = len(details)
		details = append(details, models.ResponseDetail{Response: r, Answers: []models.ResponseAnswer{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	mcqRows, err := s.db.Query(`SELECT a.response_id, a.question_id, a.option_id
		FROM mcq_answer a JOIN response r ON r.id = a.response_id
		WHERE r.poll_id = $1 ORDER BY a.id ASC`, pollID)
	if err != nil {
		return nil, fmt.Errorf("listing mcq answers for poll %d: %w", pollID, err)
	}
	defer mcqRows.Close()
	mcqLabels := map[int]map[int][]string{}
	for mcqRows.Next() {
		var responseID, questionID, optionID int
		if err := mcqRows.Scan(&responseID, &questionID, &optionID); err != nil {
			return nil, fmt.Errorf("scanning mcq answer: %w", err)
		}
		if mcqLabels[responseID] == nil {
			mcqLabels[responseID] = map[int][]string{}
		}
		mcqLabels[responseID][questionID] = append(mcqLabels[responseID][questionID],
			optionLabels[optionID].Resolve(lang))
	}
	if err := mcqRows.Err(); err != nil {
		return nil, err
	}

	textRows, err := s.db.Query(`SELECT a.response_id, a.question_id, a.answer_text
		FROM text_answer a JOIN response r ON r.id = a.response_id
		WHERE r.poll_id = $1 ORDER BY a.id ASC`, pollID)
	if err != nil {
		return nil, fmt.Errorf("listing text answers for poll %d: %w", pollID, err)
	}
	defer textRows.Close()
	texts := map[int]map[int]string{}
	for textRows.Next() {
		var responseID, questionID int
		var text string
		if err := textRows.Scan(&responseID, &questionID, &text); err != nil {
			return nil, fmt.Errorf("scanning text answer: %w", err)
		}
		if texts[responseID] == nil {
			texts[responseID] = map[int]string{}
		}
		texts[responseID][questionID] = text
	}
	if err := textRows.Err(); err != nil {
		return nil, err
	}

	for responseID, idx := range index {
		for _, q := range questions {
			answer := ""
			switch q.QuestionType {
			case models.TypeMCQ:
				answer = strings.Join(mcqLabels[responseID][q.ID], ", ")
			case models.TypeText:
				answer = texts[responseID][q.ID]
			}
			details[idx].Answers = append(details[idx].Answers, models.ResponseAnswer{
				QuestionID:   q.ID,
				QuestionText: q.QuestionText,
				QuestionType: q.QuestionType,
				Answer:       answer,
			})
		}
	}
	return details, nil
}
