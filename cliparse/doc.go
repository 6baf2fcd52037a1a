// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p         Server port
	-d         Database URL
	-t         Database type (sqlite or postgres)
	-uploads   Directory for uploaded photos
	-base-url  Public base URL for photo links
	-scan      Reminder scan interval (Go duration)
	-push-url  Push gateway URL
	-mime      Comma-separated MIME allowlist for uploads

# Environment Variables

Flags fall back to environment variables:

	PORT                   → -p         (default: 5000)
	DATABASE_URL           → -d         (required)
	DATABASE_TYPE          → -t         (default: sqlite)
	UPLOAD_DIR             → -uploads   (default: uploads)
	PUBLIC_BASE_URL        → -base-url  (default: http://localhost:<port>)
	REMINDER_SCAN_INTERVAL → -scan      (default: 1m)
	PUSH_GATEWAY_URL       → -push-url  (default: Expo push endpoint)
	MIME_ALLOWLIST         → -mime      (default: empty, allow all)

CLI flags take precedence over environment variables. An empty MIME
allowlist accepts any upload content type; set it to
"image/jpeg,image/png" to restrict uploads to those types.
*/
package cliparse
