// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Lovenest API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, blobs, hub, cfg)

# Endpoints

Health:

	GET /health

Love notes (realtime events: noteAdded, noteDeleted):

	GET    /api/lovenotes      - List all notes
	POST   /api/lovenotes      - Create note
	DELETE /api/lovenotes/{id} - Delete note

Photos (realtime events: photoUploaded, photoDeleted):

	POST   /api/photos/uploadPhoto - Upload (multipart field "photo")
	GET    /api/photos             - List, newest first
	DELETE /api/photos/{id}        - Delete record and blob

Reminders (no realtime events; the scheduler reads the store):

	POST   /api/reminders      - Create reminder
	GET    /api/reminders      - List all reminders
	PUT    /api/reminders/{id} - Replace reminder (re-arm with notified=false)
	DELETE /api/reminders/{id} - Delete reminder

Realtime and static:

	GET /ws        - Websocket broadcast channel
	GET /uploads/  - Uploaded photo binaries

# Handler Initialization

The router creates handler instances with dependency injection:

	noteHandler := handlers.NewNoteHandler(st, hub)
	photoHandler := handlers.NewPhotoHandler(st, blobs, hub, cfg.MIMEAllowlist)
	reminderHandler := handlers.NewReminderHandler(st)
*/
package router
