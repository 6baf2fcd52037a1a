// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Lovenest API server.

Lovenest is a small personal backend for two people: love notes, shared
photos, and dated reminders with push notifications. Note and photo
mutations are broadcast to all connected clients over a websocket
channel; a background scheduler scans reminders and fires push
notifications when they come due.

# Starting the Server

The server requires a database URL, via environment or CLI flags
(a .env file is loaded if present):

	DATABASE_URL=lovenest.sqlite3 go run main.go

Or with flags:

	go run main.go -p 5000 -d lovenest.sqlite3 -t sqlite

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - UPLOAD_DIR (-uploads): Photo storage directory (default: uploads)
  - PUBLIC_BASE_URL (-base-url): Prefix for photo URLs
  - REMINDER_SCAN_INTERVAL (-scan): Scheduler tick period (default: 1m)
  - PUSH_GATEWAY_URL (-push-url): Push delivery endpoint
  - MIME_ALLOWLIST (-mime): Restrict upload content types

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (notes, photos, reminders)
  - router: Route definitions using Go 1.22+ routing
  - channel: Websocket broadcast hub (noteAdded, photoUploaded, ...)
  - scheduler: Periodic due-reminder scan and push dispatch
  - store: SQL persistence for all entities
  - blob: Uploaded photo storage behind a Store interface
  - push: Push gateway client
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
