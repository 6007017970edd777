// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the survey API server.

The server backs a three-locale (Arabic, English, Kurdish) survey
platform: admins author polls with multiple-choice and free-text
questions, anonymous visitors submit responses, and the admin dashboard
reads per-response detail and aggregated summaries. It also serves the
localized content sections of the public site.

# Starting the Server

Configuration comes from environment variables, a .env file, or CLI
flags:

	SESSION_SECRET=... go run .

Or with flags:

	go run . -p 4520 -t sqlite -d survey.db -session-secret ...

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): secret for signing admin session tokens

Optional settings:

  - PORT (-p): server port (default: 4520)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - DATABASE_URL (-d): sqlite file path or postgres DSN (default: survey.db)
  - DEFAULT_LANG (-lang): fallback locale, one of ar/en/ku (default: en)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, polls, questions, survey, responses, sections)
  - router: Route definitions using Go 1.22+ routing
  - middleware: session guard, CORS, logging, JSON helpers
  - store: survey services over the SQL record collections
  - models: domain and request/response types
  - i18n: the three-locale text type and fallback resolution
  - auth: password hashing and session tokens
  - db: drivers, schema creation, id counters, seed data
  - cliparse: configuration parsing

On first run against an empty database the server seeds a default admin
(admin@survey.com / admin123), two demo polls, and the public site
sections.

See package documentation for each component.
*/
package main
