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

// SurveyHandler serves the public survey endpoints: fetching a survey
// for rendering and accepting response submissions. No session token
// is involved.
type SurveyHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewSurveyHandler(s *store.Store, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{store: s, cfg: cfg}
}

// ListSurveys handles GET /surveys, the listing respondents browse.
// Only active polls appear.
func (h *SurveyHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListActivePolls()
	if err != nil {
		writeStoreError(w, err, "failed to list surveys")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, polls)
}

// GetSurvey handles GET /survey/{id}
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	poll, err := h.store.GetPollWithQuestions(id)
	if err != nil {
		writeStoreError(w, err, "failed to load survey")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// Submit handles POST /survey/{id}/responses
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := h.store.SubmitResponse(id, &req, middleware.GetClientIP(r), r.UserAgent())
	if err != nil {
		writeStoreError(w, err, "failed to submit response")
		return
	}

	slog.Info("response submitted", "poll_id", id, "response_id", result.ResponseID)
	middleware.JSONResponse(w, http.StatusCreated, result)
}
