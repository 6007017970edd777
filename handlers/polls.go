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

type PollHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewPollHandler(s *store.Store, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: s, cfg: cfg}
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListPolls()
	if err != nil {
		writeStoreError(w, err, "failed to list polls")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, polls)
}

// GetPoll handles GET /polls/{id}, returning the poll with its ordered
// questions and options.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	poll, err := h.store.GetPollWithQuestions(id)
	if err != nil {
		writeStoreError(w, err, "failed to load poll")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromRequest(w, r, h.cfg.SessionSecret)
	if !ok {
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.store.CreatePoll(adminID, &req)
	if err != nil {
		writeStoreError(w, err, "failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "admin_id", adminID)
	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// UpdatePoll handles PUT /polls/{id}
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromRequest(w, r, h.cfg.SessionSecret)
	if !ok {
		return
	}
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	var req models.UpdatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.store.UpdatePoll(id, adminID, &req)
	if err != nil {
		writeStoreError(w, err, "failed to update poll")
		return
	}

	slog.Info("poll updated", "poll_id", poll.ID, "admin_id", adminID)
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// DeletePoll handles DELETE /polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromRequest(w, r, h.cfg.SessionSecret)
	if !ok {
		return
	}
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	if err := h.store.DeletePoll(id, adminID); err != nil {
		writeStoreError(w, err, "failed to delete poll")
		return
	}

	slog.Info("poll deleted", "poll_id", id, "admin_id", adminID)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
