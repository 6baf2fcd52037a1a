// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/lovenest/models"
	"github.com/danielhkuo/lovenest/testutil"
)

func TestCreateNote(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedText   string
		expectEvent    bool
	}{
		{
			name:           "valid note",
			requestBody:    models.CreateNoteRequest{Text: "hi"},
			expectedStatus: http.StatusCreated,
			expectedText:   "hi",
			expectEvent:    true,
		},
		{
			name:           "missing text accepted as empty",
			requestBody:    map[string]string{},
			expectedStatus: http.StatusCreated,
			expectedText:   "",
			expectEvent:    true,
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testutil.NewTestStore(t)
			pub := &testutil.FakePublisher{}
			handler := NewNoteHandler(st, pub)

			var req *http.Request
			if str, ok := tt.requestBody.(string); ok {
				req = httptest.NewRequest("POST", "/api/lovenotes", strings.NewReader(str))
			} else {
				req = testutil.MakeRequest("POST", "/api/lovenotes", tt.requestBody, nil)
			}
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus != http.StatusCreated {
				if len(pub.Recorded()) != 0 {
					t.Errorf("Expected no events for failed create, got %d", len(pub.Recorded()))
				}
				return
			}

			var note models.Note
			testutil.AssertJSON(t, w, &note)
			if note.ID == "" {
				t.Error("Expected non-empty note id")
			}
			if note.Text != tt.expectedText {
				t.Errorf("Expected text %q, got %q", tt.expectedText, note.Text)
			}

			// Verify the note was persisted
			notes, err := st.Notes()
			if err != nil {
				t.Fatalf("Failed to list notes: %v", err)
			}
			if len(notes) != 1 || notes[0].ID != note.ID {
				t.Errorf("Expected exactly the created note in store, got %+v", notes)
			}

			// Exactly one noteAdded with the persisted record
			events := pub.Recorded()
			if !tt.expectEvent {
				return
			}
			if len(events) != 1 {
				t.Fatalf("Expected 1 event, got %d", len(events))
			}
			if events[0].Event != models.EventNoteAdded {
				t.Errorf("Expected event %q, got %q", models.EventNoteAdded, events[0].Event)
			}
			payload, ok := events[0].Payload.(models.Note)
			if !ok {
				t.Fatalf("Expected Note payload, got %T", events[0].Payload)
			}
			if payload.ID != note.ID || payload.Text != note.Text {
				t.Errorf("Event payload %+v does not match response %+v", payload, note)
			}
		})
	}
}

func TestListNotes(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewNoteHandler(st, &testutil.FakePublisher{})

	a := testutil.CreateTestNote(t, st, "first")
	b := testutil.CreateTestNote(t, st, "second")
	c := testutil.CreateTestNote(t, st, "third")
	if err := st.DeleteNote(b.ID); err != nil {
		t.Fatalf("Failed to delete note: %v", err)
	}

	req := testutil.MakeRequest("GET", "/api/lovenotes", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var notes []models.Note
	testutil.AssertJSON(t, w, &notes)

	// Exactly the non-deleted notes, order-insensitive
	got := map[string]string{}
	for _, n := range notes {
		got[n.ID] = n.Text
	}
	want := map[string]string{a.ID: "first", c.ID: "third"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d notes, got %d: %+v", len(want), len(got), notes)
	}
	for id, text := range want {
		if got[id] != text {
			t.Errorf("Expected note %s with text %q, got %q", id, text, got[id])
		}
	}
}

func TestDeleteNote(t *testing.T) {
	t.Run("existing note", func(t *testing.T) {
		st := testutil.NewTestStore(t)
		pub := &testutil.FakePublisher{}
		handler := NewNoteHandler(st, pub)

		note := testutil.CreateTestNote(t, st, "bye")

		req := testutil.MakeRequest("DELETE", "/api/lovenotes/"+note.ID, nil, nil)
		req.SetPathValue("id", note.ID)
		w := httptest.NewRecorder()
		handler.Delete(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.DeleteResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.ID != note.ID {
			t.Errorf("Expected id %s, got %s", note.ID, resp.ID)
		}

		notes, _ := st.Notes()
		if len(notes) != 0 {
			t.Errorf("Expected empty store, got %+v", notes)
		}

		events := pub.Recorded()
		if len(events) != 1 || events[0].Event != models.EventNoteDeleted {
			t.Fatalf("Expected one noteDeleted event, got %+v", events)
		}
		if events[0].Payload != note.ID {
			t.Errorf("Expected payload %q, got %v", note.ID, events[0].Payload)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		st := testutil.NewTestStore(t)
		pub := &testutil.FakePublisher{}
		handler := NewNoteHandler(st, pub)

		req := testutil.MakeRequest("DELETE", "/api/lovenotes/nope", nil, nil)
		req.SetPathValue("id", "nope")
		w := httptest.NewRecorder()
		handler.Delete(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
		if len(pub.Recorded()) != 0 {
			t.Errorf("Expected no events for missing note, got %+v", pub.Recorded())
		}
	})
}
