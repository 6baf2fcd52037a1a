// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/lovenest/db"
	"github.com/danielhkuo/lovenest/models"
	"github.com/danielhkuo/lovenest/store"
)

// SetupTestDB creates a fresh sqlite database with the full schema in a
// per-test temp dir, so tests need no running database server.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.sqlite3"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewTestStore returns a Store over a fresh test database.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t))
}

// CreateTestNote inserts a note and returns it
func CreateTestNote(t *testing.T, st *store.Store, text string) models.Note {
	t.Helper()
	note, err := st.InsertNote(text)
	if err != nil {
		t.Fatalf("Failed to create test note: %v", err)
	}
	return note
}

// CreateTestPhoto inserts a photo record and returns it
func CreateTestPhoto(t *testing.T, st *store.Store, url string, createdAt time.Time) models.Photo {
	t.Helper()
	photo, err := st.InsertPhoto(url, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test photo: %v", err)
	}
	return photo
}

// CreateTestReminder inserts a reminder and returns it
func CreateTestReminder(t *testing.T, st *store.Store, r models.Reminder) models.Reminder {
	t.Helper()
	if r.Recurrence == "" {
		r.Recurrence = models.RecurrenceNone
	}
	reminder, err := st.InsertReminder(r)
	if err != nil {
		t.Fatalf("Failed to create test reminder: %v", err)
	}
	return reminder
}

// PublishedEvent is one recorded Publish call.
type PublishedEvent struct {
	Event   string
	Payload any
}

// FakePublisher records broadcast events instead of fanning them out.
type FakePublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
}

func (p *FakePublisher) Publish(event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, PublishedEvent{Event: event, Payload: payload})
}

// Recorded returns a snapshot of the events published so far.
func (p *FakePublisher) Recorded() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PublishedEvent(nil), p.Events...)
}

// FakeBlobStore keeps blobs in memory and can be told to fail.
type FakeBlobStore struct {
	mu        sync.Mutex
	n         int
	Saved     map[string][]byte
	Deleted   []string
	SaveErr   error
	DeleteErr error
}

func (b *FakeBlobStore) Save(data []byte, filename, mimeType string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.SaveErr != nil {
		return "", b.SaveErr
	}
	if b.Saved == nil {
		b.Saved = make(map[string][]byte)
	}
	b.n++
	url := fmt.Sprintf("http://blobs.test/uploads/blob-%d%s", b.n, filepath.Ext(filename))
	b.Saved[url] = data
	return url, nil
}

func (b *FakeBlobStore) Delete(url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Deleted = append(b.Deleted, url)
	if b.DeleteErr != nil {
		return b.DeleteErr
	}
	delete(b.Saved, url)
	return nil
}

// DispatchCall is one recorded push delivery.
type DispatchCall struct {
	Token string
	Title string
	Body  string
}

// FakeDispatcher records dispatches; Err fails every call, FailTokens
// fails only the listed tokens.
type FakeDispatcher struct {
	mu         sync.Mutex
	Calls      []DispatchCall
	Err        error
	FailTokens map[string]bool
}

func (d *FakeDispatcher) Dispatch(token, title, body string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Calls = append(d.Calls, DispatchCall{Token: token, Title: title, Body: body})
	if d.Err != nil {
		return d.Err
	}
	if d.FailTokens[token] {
		return fmt.Errorf("dispatch failed for token %s", token)
	}
	return nil
}

// CallCount returns the number of dispatches recorded so far.
func (d *FakeDispatcher) CallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.Calls)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeUploadRequest builds a multipart upload request with one file field
func MakeUploadRequest(t *testing.T, path, field, filename, mimeType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	hdr.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("Failed to create multipart field: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("Failed to write multipart data: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
