// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hazem-e99/SurveyProject/i18n"
)

// Poll status constants
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusCompleted = "completed"
)

// Question type constants
const (
	TypeMCQ  = "mcq"
	TypeText = "text"
)

// ValidStatus reports whether s is one of the poll statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusActive, StatusInactive, StatusCompleted:
		return true
	}
	return false
}

// Domain types

type Admin struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	FullName     string    `json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type Poll struct {
	ID          int       `json:"id"`
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	AdminID     int       `json:"admin_id"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Question struct {
	ID                      int       `json:"id"`
	PollID                  int       `json:"poll_id"`
	QuestionText            i18n.Text `json:"question_text"`
	QuestionType            string    `json:"question_type"`
	OrderNumber             int       `json:"order_number"`
	IsRequired              bool      `json:"is_required"`
	AllowMultipleSelections bool      `json:"allow_multiple_selections"`
	MaxSelections           *int      `json:"max_selections"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

type Option struct {
	ID          int       `json:"id"`
	QuestionID  int       `json:"question_id"`
	OptionText  i18n.Text `json:"option_text"`
	OrderNumber int       `json:"order_number"`
	CreatedAt   time.Time `json:"created_at"`
}

type QuestionWithOptions struct {
	Question
	Options []Option `json:"options"`
}

type PollWithQuestions struct {
	Poll
	Questions []QuestionWithOptions `json:"questions"`
}

type Response struct {
	ID          int       `json:"id"`
	PollID      int       `json:"poll_id"`
	SessionID   string    `json:"session_id"`
	IPAddress   string    `json:"-"` // Never expose in JSON
	UserAgent   string    `json:"-"` // Never expose in JSON
	SubmittedAt time.Time `json:"submitted_at"`
}

type MCQAnswer struct {
	ID         int       `json:"id"`
	ResponseID int       `json:"response_id"`
	QuestionID int       `json:"question_id"`
	OptionID   int       `json:"option_id"`
	AnsweredAt time.Time `json:"answered_at"`
}

type TextAnswer struct {
	ID         int       `json:"id"`
	ResponseID int       `json:"response_id"`
	QuestionID int       `json:"question_id"`
	AnswerText string    `json:"answer_text"`
	AnsweredAt time.Time `json:"answered_at"`
}

type Section struct {
	ID          int       `json:"id"`
	Page        string    `json:"page"`
	Title       i18n.Text `json:"title"`
	Content     i18n.Text `json:"content"`
	Media       *string   `json:"media"`
	OrderNumber int       `json:"order"`
}

// Request types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// UpdatePollRequest carries a partial update; nil fields keep the
// stored value.
type UpdatePollRequest struct {
	Title       *i18n.Text `json:"title"`
	Description *i18n.Text `json:"description"`
	Status      *string    `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type CreateQuestionRequest struct {
	QuestionText            i18n.Text   `json:"question_text"`
	QuestionType            string      `json:"question_type"`
	OrderNumber             int         `json:"order_number"`
	IsRequired              bool        `json:"is_required"`
	AllowMultipleSelections bool        `json:"allow_multiple_selections"`
	MaxSelections           *int        `json:"max_selections"`
	Options                 []i18n.Text `json:"options"`
}

// UpdateQuestionRequest carries a partial update. A non-nil Options
// slice replaces the question's entire option set. A MaxSelections of
// zero or less clears the stored cap; turning multi-select off clears
// it as well.
type UpdateQuestionRequest struct {
	QuestionText            *i18n.Text  `json:"question_text"`
	OrderNumber             *int        `json:"order_number"`
	IsRequired              *bool       `json:"is_required"`
	AllowMultipleSelections *bool       `json:"allow_multiple_selections"`
	MaxSelections           *int        `json:"max_selections"`
	Options                 []i18n.Text `json:"options"`
}

type SubmitRequest struct {
	Answers []AnswerInput `json:"answers"`
}

// AnswerInput is one answer in a submission. Value is a single option id
// or an array of option ids for mcq questions, or a string for text
// questions, matching the wire shape the survey form sends.
type AnswerInput struct {
	QuestionID int         `json:"question_id"`
	Type       string      `json:"type"`
	Value      AnswerValue `json:"value"`
}

// AnswerValue decodes the three accepted shapes of an answer value.
type AnswerValue struct {
	OptionIDs []int  // set for mcq values (single ids normalize to length 1)
	Text      string // set for text values
	IsArray   bool   // the client sent an array
	IsEmpty   bool   // null, "", or []
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := string(data)
	if trimmed == "null" {
		*v = AnswerValue{IsEmpty: true}
		return nil
	}
	switch data[0] {
	case '[':
		var ids []int
		if err := json.Unmarshal(data, &ids); err != nil {
			return fmt.Errorf("answer value: %w", err)
		}
		*v = AnswerValue{OptionIDs: ids, IsArray: true, IsEmpty: len(ids) == 0}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("answer value: %w", err)
		}
		*v = AnswerValue{Text: s, IsEmpty: s == ""}
		return nil
	default:
		var id int
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("answer value: %w", err)
		}
		*v = AnswerValue{OptionIDs: []int{id}}
		return nil
	}
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.IsArray:
		return json.Marshal(v.OptionIDs)
	case len(v.OptionIDs) == 1:
		return json.Marshal(v.OptionIDs[0])
	case v.Text != "":
		return json.Marshal(v.Text)
	default:
		return []byte("null"), nil
	}
}

type CreateSectionRequest struct {
	Page        string    `json:"page"`
	Title       i18n.Text `json:"title"`
	Content     i18n.Text `json:"content"`
	Media       *string   `json:"media"`
	OrderNumber int       `json:"order"`
}

type UpdateSectionRequest struct {
	Page        *string    `json:"page"`
	Title       *i18n.Text `json:"title"`
	Content     *i18n.Text `json:"content"`
	Media       *string    `json:"media"`
	OrderNumber *int       `json:"order"`
}

// Response types

type LoginResponse struct {
	Admin Admin  `json:"admin"`
	Token string `json:"token"`
}

type SubmitResponseResult struct {
	ResponseID  int       `json:"response_id"`
	SessionID   string    `json:"session_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ResponseDetail is one submission joined back to its questions for the
// admin cards and table views. Answers follow question display order.
type ResponseDetail struct {
	Response
	Answers []ResponseAnswer `json:"answers"`
}

// ResponseAnswer is one question's answer within a ResponseDetail.
// For mcq questions Answer holds the locale-resolved option labels
// joined with ", "; for text questions it holds the raw answer text.
type ResponseAnswer struct {
	QuestionID   int       `json:"question_id"`
	QuestionText i18n.Text `json:"question_text"`
	QuestionType string    `json:"question_type"`
	Answer       string    `json:"answer"`
}

// Summary is the aggregation result for one question. For mcq questions
// Answers maps the locale-resolved option label to its selection count
// and Percentages holds the matching one-decimal share; for text
// questions Answers is the ordered list of non-empty submissions.
type Summary struct {
	Question    i18n.Text         `json:"question"`
	Type        string            `json:"type"`
	Answers     any               `json:"answers"`
	Percentages map[string]string `json:"percentages,omitempty"`
	Total       int               `json:"total"`
}

type CountResponse struct {
	Count int `json:"count"`
}

// Error response

type ErrorResponse struct {
	Error       string   `json:"error"`
	Message     string   `json:"message,omitempty"`
	QuestionIDs []int    `json:"question_ids,omitempty"`
	Fields      []string `json:"fields,omitempty"`
}
