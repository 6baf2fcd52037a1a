// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Lovenest API.

# Handler Types

Each handler is a struct with its collaborators injected at construction:

  - NoteHandler: love note list/create/delete
  - PhotoHandler: photo upload, newest-first listing, delete
  - ReminderHandler: reminder CRUD (no events)

	noteHandler := handlers.NewNoteHandler(st, hub)
	photoHandler := handlers.NewPhotoHandler(st, blobs, hub, cfg.MIMEAllowlist)

# Write-Then-Publish

Note and photo mutations publish a broadcast event after - and only
after - the store write succeeds:

	POST   /api/lovenotes        → noteAdded (full note)
	DELETE /api/lovenotes/{id}   → noteDeleted (id)
	POST   /api/photos/uploadPhoto → photoUploaded (full photo)
	DELETE /api/photos/{id}      → photoDeleted (id)

A failed mutation publishes nothing. Photo delete publishes even when
the blob removal fails: the store record is the source of truth.

# Photo Upload Ordering

Upload runs blob save, then store insert, then publish. If the insert
fails after the blob landed, the handler makes a best-effort attempt to
remove the orphaned blob.

# Error Mapping

Validation problems → 400, unknown ids (store.ErrNotFound) → 404, any
store or blob transport failure → 500 with a generic message. Internal
error detail goes to the log, never to the response body.
*/
package handlers
