// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package handlers implements the HTTP endpoints: admin authentication,
// poll and question authoring, the public survey endpoints, the admin
// response views, and the public content sections.
//
// Handlers decode and sanity-check the request, delegate to the store,
// and translate store errors into HTTP status codes. Admin endpoints
// are mounted behind middleware.RequireAdmin and recover the acting
// admin from the bearer token themselves.
package handlers
