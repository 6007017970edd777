// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Records as they live in the store:

  - Admin: provisioned administrator identity
  - Poll: survey definition with localized title/description and schedule
  - Question: one prompt within a poll (mcq or text)
  - Option: one selectable choice of an mcq question
  - Response: one end-user submission
  - MCQAnswer / TextAnswer: answer rows, one physical shape per question type
  - Section: keyed public-site content block

Localized fields use i18n.Text, never plain strings.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: email, password
  - CreatePollRequest / UpdatePollRequest (partial, pointer fields)
  - CreateQuestionRequest / UpdateQuestionRequest (options replace the set)
  - SubmitRequest: answers with polymorphic values (AnswerValue)
  - CreateSectionRequest / UpdateSectionRequest

AnswerValue accepts the three wire shapes the survey form sends: a single
option id, an array of option ids, or a text string.

# Response Types

  - LoginResponse: admin, token
  - PollWithQuestions: poll plus ordered questions and options
  - SubmitResponseResult: response_id, session_id, submitted_at
  - ResponseDetail: one submission joined back to its questions
  - Summary: per-question tally or text-answer collection
  - ErrorResponse: error, message, question_ids, fields

# Constants

Poll status values:

	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusCompleted = "completed"

Question types:

	TypeMCQ  = "mcq"
	TypeText = "text"
*/
package models
