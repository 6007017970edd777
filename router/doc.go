// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires the HTTP endpoints onto a ServeMux with method
// patterns. Admin routes are wrapped in the session token guard; the
// survey and section read routes stay public.
package router
