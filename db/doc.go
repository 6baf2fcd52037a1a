// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "sqlite" (modernc.org/sqlite, cgo-free, the default)
and "postgres" (lib/pq).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - note: Love notes (id, text)
  - photo: Photo records pointing at blob URLs
  - reminder: Dated events with notified flag and recurrence

# Indexes

  - photo.created_at (newest-first listing)
  - reminder.(due_at, notified) (scheduler due scan)

The DDL is portable between sqlite and postgres; timestamps are assigned
in Go as UTC rather than with database-side defaults.
*/
package db
