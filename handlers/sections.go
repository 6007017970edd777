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

// SectionHandler serves the public-site content sections. Reading is
// public; mutations sit behind the admin session guard.
type SectionHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewSectionHandler(s *store.Store, cfg cliparse.Config) *SectionHandler {
	return &SectionHandler{store: s, cfg: cfg}
}

// ListSections handles GET /sections, optionally filtered with ?page=
func (h *SectionHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")

	var (
		sections []models.Section
		err      error
	)
	if page != "" {
		sections, err = h.store.ListSectionsByPage(page)
	} else {
		sections, err = h.store.ListSections()
	}
	if err != nil {
		writeStoreError(w, err, "failed to list sections")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sections)
}

// GetSection handles GET /sections/{id}
func (h *SectionHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	section, err := h.store.GetSection(id)
	if err != nil {
		writeStoreError(w, err, "failed to load section")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, section)
}

// CreateSection handles POST /sections
func (h *SectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	section, err := h.store.CreateSection(&req)
	if err != nil {
		writeStoreError(w, err, "failed to create section")
		return
	}

	slog.Info("section created", "section_id", section.ID, "page", section.Page)
	middleware.JSONResponse(w, http.StatusCreated, section)
}

// UpdateSection handles PUT /sections/{id}
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	var req models.UpdateSectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	section, err := h.store.UpdateSection(id, &req)
	if err != nil {
		writeStoreError(w, err, "failed to update section")
		return
	}

	slog.Info("section updated", "section_id", section.ID)
	middleware.JSONResponse(w, http.StatusOK, section)
}

// DeleteSection handles DELETE /sections/{id}
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteSection(id); err != nil {
		writeStoreError(w, err, "failed to delete section")
		return
	}

	slog.Info("section deleted", "section_id", id)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
