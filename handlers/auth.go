// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hazem-e99/SurveyProject/auth"
	"github.com/hazem-e99/SurveyProject/cliparse"
	"github.com/hazem-e99/SurveyProject/middleware"
	"github.com/hazem-e99/SurveyProject/models"
	"github.com/hazem-e99/SurveyProject/store"
)

type AuthHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAuthHandler(s *store.Store, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: s, cfg: cfg}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	admin, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		slog.Error("login failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := auth.IssueToken(admin.ID, h.cfg.SessionSecret)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("admin logged in", "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Admin: *admin,
		Token: token,
	})
}

// Session handles GET /auth/session. It returns the admin the current
// token belongs to, letting the dashboard restore a session on reload.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromRequest(w, r, h.cfg.SessionSecret)
	if !ok {
		return
	}
	admin, err := h.store.GetAdmin(adminID)
	if err != nil {
		writeStoreError(w, err, "failed to load session admin")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, admin)
}

// Logout handles POST /auth/logout. Session tokens are stateless, so
// the server side only acknowledges; the client discards the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if adminID, err := auth.AdminFromRequest(r, h.cfg.SessionSecret); err == nil {
		slog.Info("admin logged out", "admin_id", adminID)
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "logged_out"})
}
