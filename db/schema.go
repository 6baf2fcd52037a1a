// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open opens a database connection for the given type ("sqlite" or "postgres").
// An empty dbType defaults to sqlite.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "postgres":
		return sql.Open("postgres", url)
	case "sqlite", "":
		return sql.Open("sqlite", url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are assigned in Go (UTC) so the DDL stays portable between
// sqlite and postgres.
const schema = `
-- Love notes
CREATE TABLE IF NOT EXISTS note (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL DEFAULT ''
);

-- Photos
CREATE TABLE IF NOT EXISTS photo (
    id TEXT PRIMARY KEY,
    url TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_photo_created_at ON photo(created_at);

-- Reminders
CREATE TABLE IF NOT EXISTS reminder (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    due_at TIMESTAMP NOT NULL,
    notified BOOLEAN NOT NULL DEFAULT FALSE,
    recurrence TEXT NOT NULL DEFAULT 'None'
        CHECK (recurrence IN ('None', 'Daily', 'Weekly', 'Monthly', 'Yearly')),
    delivery_token TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_reminder_due ON reminder(due_at, notified);
`
