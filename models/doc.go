// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateNoteRequest: text
  - ReminderRequest: title, description, due_at, notified, recurrence, delivery_token

ReminderRequest serves both POST /api/reminders and PUT /api/reminders/{id};
a PUT replaces every field of the stored reminder, which is also how a
client re-arms an already-notified reminder (notified: false).

# Response Types

  - DeleteResponse: message, id
  - UploadPhotoResponse: message, id, url, created_at
  - ErrorResponse: error, message

# Domain Types

  - Note: a love note (id, text)
  - Photo: an uploaded photo (id, url, created_at)
  - Reminder: a titled, dated event with optional recurrence and push delivery

Reminder.DeliveryToken is never serialized in responses.

# Constants

Recurrence values (stored metadata; the scheduler does not reschedule
occurrences):

	RecurrenceNone    = "None"
	RecurrenceDaily   = "Daily"
	RecurrenceWeekly  = "Weekly"
	RecurrenceMonthly = "Monthly"
	RecurrenceYearly  = "Yearly"

Broadcast event names, published on the websocket channel:

	EventNoteAdded     = "noteAdded"     (payload: full Note)
	EventNoteDeleted   = "noteDeleted"   (payload: note id)
	EventPhotoUploaded = "photoUploaded" (payload: full Photo)
	EventPhotoDeleted  = "photoDeleted"  (payload: photo id)
*/
package models
