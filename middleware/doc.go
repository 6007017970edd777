// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

# Middleware

  - WithLogging: structured request/completion logging via slog
  - RequireAdmin: bearer-token gate for admin routes
  - CORS: cross-origin headers for the browser frontend

# Helpers

  - JSONResponse / ErrorResponse / ValidationErrorResponse: JSON writers
  - ParseJSONBody: request body decoding
  - GetClientIP: client address behind proxies
  - Lang: viewer locale from the lang query parameter

ValidationErrorResponse carries the failing question ids and field names
so the survey form and the builder can mark individual inputs.
*/
package middleware
