// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

Flags take precedence; environment variables fill anything left unset:

	-p  / PORT            server port (default 4520)
	-d  / DATABASE_URL    postgres DSN or sqlite file path (required)
	-t  / DATABASE_TYPE   "sqlite" (default) or "postgres"
	-lang / DEFAULT_LANG  ar, en, or ku (default en)
	-session-secret / SESSION_SECRET  admin session signing secret (required)

Secrets should come from the environment in production; the flags exist
for development convenience. A .env file is loaded by main via godotenv
before parsing.
*/
package cliparse
