// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hazem-e99/SurveyProject/auth"
	"github.com/hazem-e99/SurveyProject/middleware"
	"github.com/hazem-e99/SurveyProject/store"
)

// idFromPath parses the {id} path segment. Returns 0 and writes a 400
// when the segment is not a number.
func idFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be a positive number")
		return 0, false
	}
	return id, true
}

// adminFromRequest recovers the acting admin id from the session token.
// RequireAdmin already vetted the token, so a failure here is a 401
// only in the unusual case of a handler mounted without the guard.
func adminFromRequest(w http.ResponseWriter, r *http.Request, secret string) (int, bool) {
	adminID, err := auth.AdminFromRequest(r, secret)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid or missing session token")
		return 0, false
	}
	return adminID, true
}

// writeStoreError maps store errors onto HTTP status codes.
func writeStoreError(w http.ResponseWriter, err error, logMsg string) {
	var ve *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "Poll belongs to another admin")
	case errors.As(err, &ve):
		middleware.ValidationErrorResponse(w, ve.Message, ve.QuestionIDs, ve.Fields)
	default:
		slog.Error(logMsg, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
