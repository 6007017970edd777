// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/hazem-e99/SurveyProject/cliparse"
	"github.com/hazem-e99/SurveyProject/middleware"
	"github.com/hazem-e99/SurveyProject/models"
	"github.com/hazem-e99/SurveyProject/store"
)

// ResponseHandler serves the admin views over collected responses:
// the per-response detail list, the response count, and the aggregated
// summary. The lang query parameter picks the locale option labels are
// resolved in.
type ResponseHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewResponseHandler(s *store.Store, cfg cliparse.Config) *ResponseHandler {
	return &ResponseHandler{store: s, cfg: cfg}
}

// ListResponses handles GET /polls/{id}/responses
func (h *ResponseHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	lang := middleware.Lang(r, h.cfg.DefaultLang)

	details, err := h.store.ListResponses(id, lang)
	if err != nil {
		writeStoreError(w, err, "failed to list responses")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, details)
}

// CountResponses handles GET /polls/{id}/responses/count
func (h *ResponseHandler) CountResponses(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	count, err := h.store.CountResponses(id)
	if err != nil {
		writeStoreError(w, err, "failed to count responses")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.CountResponse{Count: count})
}

// Summary handles GET /polls/{id}/summary
func (h *ResponseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	lang := middleware.Lang(r, h.cfg.DefaultLang)

	summaries, err := h.store.Summarize(id, lang)
	if err != nil {
		writeStoreError(w, err, "failed to summarize poll")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, summaries)
}
