// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. dbType is "sqlite" or
// "postgres"; url is a file path for sqlite or a DSN for postgres.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "sqlite":
		dsn := url
		if !strings.HasPrefix(dsn, "file:") {
			dsn = "file:" + dsn
		}
		// Referential integrity is enforced per connection in sqlite.
		if strings.Contains(dsn, "?") {
			dsn += "&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		} else {
			dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		}
		conn, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		// The sqlite file accepts one writer at a time.
		conn.SetMaxOpenConns(1)
		return conn, nil
	case "postgres":
		conn, err := sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("open postgres database: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}
