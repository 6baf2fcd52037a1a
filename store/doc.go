// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides SQL-backed persistence for notes, photos, and
reminders.

# Usage

	st := store.New(conn)
	note, err := st.InsertNote("hi")

Record ids are opaque UUID strings assigned on insert. All timestamps
are normalized to UTC before they hit the database.

# Errors

Operations that reference an id return ErrNotFound when the record does
not exist; everything else is a wrapped transport error:

	if errors.Is(err, store.ErrNotFound) {
		// 404
	}

# Scheduler Queries

DueReminders(now) returns every reminder with due_at <= now that has
not been notified; MarkNotified(id) flips the flag and is safe to call
more than once. Each operation touches exactly one record - the store
relies on the database's per-statement atomicity and uses no
transactions.
*/
package store
