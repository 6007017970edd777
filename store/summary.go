// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/hazem-e99/SurveyProject/models"
)

// Summarize aggregates every response to a poll into per-question
// statistics keyed by question id.
//
// MCQ questions tally selections per option label resolved in lang;
// options whose label is empty in every locale are skipped. The total
// is the number of responses the poll received, not the number of
// selections, so a multi-select percentage reads as "share of
// respondents who picked this". Text questions collect the non-empty
// answers in submission order and their count is the total.
func (s *Store) Summarize(pollID int, lang string) (map[int]models.Summary, error) {
	if _, err := s.GetPoll(pollID); err != nil {
		return nil, err
	}
	questions, err := s.questionsForPoll(pollID)
	if err != nil {
		return nil, err
	}
	total, err := s.CountResponses(pollID)
	if err != nil {
		return nil, err
	}

	summaries := map[int]models.Summary{}
	for _, q := range questions {
		switch q.QuestionType {
		case models.TypeMCQ:
			sum, err := s.summarizeMCQ(q, lang, total)
			if err != nil {
				return nil, err
			}
			summaries[q.ID] = *sum
		case models.TypeText:
			sum, err := s.summarizeText(q)
			if err != nil {
				return nil, err
			}
			summaries[q.ID] = *sum
		}
	}
	return summaries, nil
}

func (s *Store) summarizeMCQ(q models.QuestionWithOptions, lang string, total int) (*models.Summary, error) {
	counts := map[string]int{}
	labelByOption := map[int]string{}
	for _, o := range q.Options {
		label := o.OptionText.Resolve(lang)
		if label == "" {
			continue
		}
		labelByOption[o.ID] = label
		counts[label] = 0
	}

	rows, err := s.db.Query(`SELECT option_id FROM mcq_answer WHERE question_id = $1`, q.ID)
	if err != nil {
		return nil, fmt.Errorf("tallying question %d: %w", q.ID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var optionID int
		if err := rows.Scan(&optionID); err != nil {
			return nil, fmt.Errorf("scanning tally for question %d: %w", q.ID, err)
		}
		label, ok := labelByOption[optionID]
		if !ok {
			continue
		}
		counts[label]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	percentages := map[string]string{}
	for label, count := range counts {
		pct := 0.0
		if total > 0 {
			// Round to one decimal before formatting; FtoaWithDigits
			// truncates.
			pct = math.Round(float64(count)/float64(total)*1000) / 10
		}
		percentages[label] = humanize.FtoaWithDigits(pct, 1) + "%"
	}
	return &models.Summary{
		Question:    q.QuestionText,
		Type:        q.QuestionType,
		Answers:     counts,
		Percentages: percentages,
		Total:       total,
	}, nil
}

func (s *Store) summarizeText(q models.QuestionWithOptions) (*models.Summary, error) {
	rows, err := s.db.Query(`SELECT a.answer_text FROM text_answer a
		JOIN response r ON r.id = a.response_id
		WHERE a.question_id = $1 AND a.answer_text <> ''
		ORDER BY r.submitted_at ASC, a.id ASC`, q.ID)
	if err != nil {
		return nil, fmt.Errorf("collecting text answers for question %d: %w", q.ID, err)
	}
	defer rows.Close()

	answers := []string{}
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scanning text answer for question %d: %w", q.ID, err)
		}
		answers = append(answers, text)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &models.Summary{
		Question: q.QuestionText,
		Type:     q.QuestionType,
		Answers:  answers,
		Total:    len(answers),
	}, nil
}
