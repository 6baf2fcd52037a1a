// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/lovenest/models"
	"github.com/danielhkuo/lovenest/store"
	"github.com/danielhkuo/lovenest/testutil"
)

func TestNoteLifecycle(t *testing.T) {
	st := store.New(testutil.SetupTestDB(t))

	note, err := st.InsertNote("hello")
	if err != nil {
		t.Fatalf("InsertNote failed: %v", err)
	}
	if note.ID == "" {
		t.Fatal("Expected assigned id")
	}

	notes, err := st.Notes()
	if err != nil {
		t.Fatalf("Notes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Text != "hello" {
		t.Errorf("Unexpected notes %+v", notes)
	}

	if err := st.DeleteNote(note.ID); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	if err := st.DeleteNote(note.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on double delete, got %v", err)
	}
}

func TestDeletePhotoReturnsRecord(t *testing.T) {
	st := store.New(testutil.SetupTestDB(t))

	created, err := st.InsertPhoto("http://x/uploads/a.png", time.Now().UTC())
	if err != nil {
		t.Fatalf("InsertPhoto failed: %v", err)
	}

	deleted, err := st.DeletePhoto(created.ID)
	if err != nil {
		t.Fatalf("DeletePhoto failed: %v", err)
	}
	if deleted.URL != created.URL {
		t.Errorf("Expected url %s, got %s", created.URL, deleted.URL)
	}

	if _, err := st.DeletePhoto(created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestPhotosNewestFirst(t *testing.T) {
	st := store.New(testutil.SetupTestDB(t))

	now := time.Now().UTC()
	for _, age := range []time.Duration{3 * time.Hour, time.Hour, 2 * time.Hour} {
		if _, err := st.InsertPhoto("http://x/uploads/p.png", now.Add(-age)); err != nil {
			t.Fatalf("InsertPhoto failed: %v", err)
		}
	}

	photos, err := st.PhotosNewestFirst()
	if err != nil {
		t.Fatalf("PhotosNewestFirst failed: %v", err)
	}
	if len(photos) != 3 {
		t.Fatalf("Expected 3 photos, got %d", len(photos))
	}
	for i := 1; i < len(photos); i++ {
		if photos[i-1].CreatedAt.Before(photos[i].CreatedAt) {
			t.Errorf("Photos out of order at index %d: %v before %v", i, photos[i-1].CreatedAt, photos[i].CreatedAt)
		}
	}
}

func TestDueReminders(t *testing.T) {
	st := store.New(testutil.SetupTestDB(t))
	now := time.Now().UTC()

	due, err := st.InsertReminder(models.Reminder{
		Title:         "Due",
		DueAt:         now.Add(-time.Minute),
		Recurrence:    models.RecurrenceNone,
		DeliveryToken: "tok",
	})
	if err != nil {
		t.Fatalf("InsertReminder failed: %v", err)
	}

	if _, err := st.InsertReminder(models.Reminder{
		Title:      "Future",
		DueAt:      now.Add(time.Hour),
		Recurrence: models.RecurrenceNone,
	}); err != nil {
		t.Fatalf("InsertReminder failed: %v", err)
	}

	sent, err := st.InsertReminder(models.Reminder{
		Title:      "Sent",
		DueAt:      now.Add(-time.Hour),
		Recurrence: models.RecurrenceNone,
	})
	if err != nil {
		t.Fatalf("InsertReminder failed: %v", err)
	}
	if err := st.MarkNotified(sent.ID); err != nil {
		t.Fatalf("MarkNotified failed: %v", err)
	}

	got, err := st.DueReminders(now)
	if err != nil {
		t.Fatalf("DueReminders failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != due.ID {
		t.Errorf("Expected only the due reminder, got %+v", got)
	}
	if got[0].DeliveryToken != "tok" {
		t.Errorf("Expected delivery token preserved, got %q", got[0].DeliveryToken)
	}
}

func TestUpdateReminderReplacesFields(t *testing.T) {
	st := store.New(testutil.SetupTestDB(t))

	created, err := st.InsertReminder(models.Reminder{
		Title:      "Before",
		DueAt:      time.Now().UTC(),
		Recurrence: models.RecurrenceNone,
	})
	if err != nil {
		t.Fatalf("InsertReminder failed: %v", err)
	}
	if err := st.MarkNotified(created.ID); err != nil {
		t.Fatalf("MarkNotified failed: %v", err)
	}

	newDue := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	updated, err := st.UpdateReminder(created.ID, models.Reminder{
		Title:         "After",
		Description:   "changed",
		DueAt:         newDue,
		Notified:      false,
		Recurrence:    models.RecurrenceDaily,
		DeliveryToken: "tok-2",
	})
	if err != nil {
		t.Fatalf("UpdateReminder failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("Expected id preserved, got %s", updated.ID)
	}

	stored, err := st.Reminder(created.ID)
	if err != nil {
		t.Fatalf("Reminder failed: %v", err)
	}
	if stored.Title != "After" || stored.Notified || stored.Recurrence != models.RecurrenceDaily {
		t.Errorf("Update not applied: %+v", stored)
	}
	if !stored.DueAt.Equal(newDue) {
		t.Errorf("Expected due_at %v, got %v", newDue, stored.DueAt)
	}

	if _, err := st.UpdateReminder("nope", models.Reminder{Title: "x", DueAt: newDue, Recurrence: models.RecurrenceNone}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestMarkNotifiedUnknownID(t *testing.T) {
	st := store.New(testutil.SetupTestDB(t))
	if err := st.MarkNotified("nope"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
