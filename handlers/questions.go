// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hazem-e99/SurveyProject/cliparse"
	"github.com/hazem-e99/SurveyProject/middleware"
	"github.com/hazem-e99/SurveyProject/models"
	"github.com/hazem-e99/SurveyProject/store"
)

type QuestionHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewQuestionHandler(s *store.Store, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{store: s, cfg: cfg}
}

// CreateQuestion handles POST /polls/{id}/questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromRequest(w, r, h.cfg.SessionSecret)
	if !ok {
		return
	}
	pollID, ok := idFromPath(w, r)
	if !ok {
		return
	}

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	question, err := h.store.CreateQuestion(pollID, adminID, &req)
	if err != nil {
		writeStoreError(w, err, "failed to create question")
		return
	}

	slog.Info("question created", "question_id", question.ID, "poll_id", pollID, "admin_id", adminID)
	middleware.JSONResponse(w, http.StatusCreated, question)
}

// UpdateQuestion handles PUT /questions/{id}
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromRequest(w, r, h.cfg.SessionSecret)
	if !ok {
		return
	}
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	question, err := h.store.UpdateQuestion(id, adminID, &req)
	if err != nil {
		writeStoreError(w, err, "failed to update question")
		return
	}

	slog.Info("question updated", "question_id", question.ID, "admin_id", adminID)
	middleware.JSONResponse(w, http.StatusOK, question)
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromRequest(w, r, h.cfg.SessionSecret)
	if !ok {
		return
	}
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteQuestion(id, adminID); err != nil {
		writeStoreError(w, err, "failed to delete question")
		return
	}

	slog.Info("question deleted", "question_id", id, "admin_id", adminID)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
