// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/lovenest/models"
)

// ErrNotFound is returned when a referenced id does not exist.
// Callers distinguish it from transport failures with errors.Is.
var ErrNotFound = errors.New("store: record not found")

// Store wraps the database connection with per-entity CRUD operations.
// Every operation touches a single record; no multi-record transactions
// are used.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Notes

func (s *Store) InsertNote(text string) (models.Note, error) {
	note := models.Note{ID: uuid.NewString(), Text: text}
	_, err := s.db.Exec(`INSERT INTO note (id, text) VALUES ($1, $2)`, note.ID, note.Text)
	if err != nil {
		return models.Note{}, fmt.Errorf("insert note: %w", err)
	}
	return note, nil
}

func (s *Store) Notes() ([]models.Note, error) {
	rows, err := s.db.Query(`SELECT id, text FROM note`)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Text); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *Store) DeleteNote(id string) error {
	res, err := s.db.Exec(`DELETE FROM note WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Photos

func (s *Store) InsertPhoto(url string, createdAt time.Time) (models.Photo, error) {
	photo := models.Photo{ID: uuid.NewString(), URL: url, CreatedAt: createdAt.UTC()}
	_, err := s.db.Exec(
		`INSERT INTO photo (id, url, created_at) VALUES ($1, $2, $3)`,
		photo.ID, photo.URL, photo.CreatedAt,
	)
	if err != nil {
		return models.Photo{}, fmt.Errorf("insert photo: %w", err)
	}
	return photo, nil
}

// PhotosNewestFirst lists all photos sorted by created_at descending.
func (s *Store) PhotosNewestFirst() ([]models.Photo, error) {
	rows, err := s.db.Query(`SELECT id, url, created_at FROM photo ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	defer rows.Close()

	photos := []models.Photo{}
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.URL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// DeletePhoto removes the record and returns it, so the caller can clean
// up the blob referenced by the URL afterwards.
func (s *Store) DeletePhoto(id string) (models.Photo, error) {
	var p models.Photo
	err := s.db.QueryRow(`SELECT id, url, created_at FROM photo WHERE id = $1`, id).
		Scan(&p.ID, &p.URL, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Photo{}, ErrNotFound
	}
	if err != nil {
		return models.Photo{}, fmt.Errorf("query photo: %w", err)
	}

	if _, err := s.db.Exec(`DELETE FROM photo WHERE id = $1`, id); err != nil {
		return models.Photo{}, fmt.Errorf("delete photo: %w", err)
	}
	return p, nil
}

// Reminders

func (s *Store) InsertReminder(r models.Reminder) (models.Reminder, error) {
	r.ID = uuid.NewString()
	r.DueAt = r.DueAt.UTC()
	_, err := s.db.Exec(`
		INSERT INTO reminder (id, title, description, due_at, notified, recurrence, delivery_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.ID, r.Title, r.Description, r.DueAt, r.Notified, r.Recurrence, r.DeliveryToken)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("insert reminder: %w", err)
	}
	return r, nil
}

func (s *Store) Reminders() ([]models.Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, due_at, notified, recurrence, delivery_token
		FROM reminder
	`)
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	defer rows.Close()
	return scanReminders(rows)
}

func (s *Store) Reminder(id string) (models.Reminder, error) {
	var r models.Reminder
	err := s.db.QueryRow(`
		SELECT id, title, description, due_at, notified, recurrence, delivery_token
		FROM reminder WHERE id = $1
	`, id).Scan(&r.ID, &r.Title, &r.Description, &r.DueAt, &r.Notified, &r.Recurrence, &r.DeliveryToken)
	if err == sql.ErrNoRows {
		return models.Reminder{}, ErrNotFound
	}
	if err != nil {
		return models.Reminder{}, fmt.Errorf("query reminder: %w", err)
	}
	return r, nil
}

// UpdateReminder replaces every field of the stored reminder. Setting
// notified back to false re-arms it for the next scheduler scan.
func (s *Store) UpdateReminder(id string, r models.Reminder) (models.Reminder, error) {
	r.ID = id
	r.DueAt = r.DueAt.UTC()
	res, err := s.db.Exec(`
		UPDATE reminder
		SET title = $1, description = $2, due_at = $3, notified = $4, recurrence = $5, delivery_token = $6
		WHERE id = $7
	`, r.Title, r.Description, r.DueAt, r.Notified, r.Recurrence, r.DeliveryToken, id)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("update reminder: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Reminder{}, ErrNotFound
	}
	return r, nil
}

func (s *Store) DeleteReminder(id string) error {
	res, err := s.db.Exec(`DELETE FROM reminder WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DueReminders returns reminders with due_at <= now that have not been
// notified yet.
func (s *Store) DueReminders(now time.Time) ([]models.Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, due_at, notified, recurrence, delivery_token
		FROM reminder
		WHERE due_at <= $1 AND notified = FALSE
	`, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("query due reminders: %w", err)
	}
	defer rows.Close()
	return scanReminders(rows)
}

// MarkNotified flips the notified flag to true. Calling it again for the
// same id is a no-op, which keeps the scheduler idempotent per occurrence.
func (s *Store) MarkNotified(id string) error {
	res, err := s.db.Exec(`UPDATE reminder SET notified = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark reminder notified: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanReminders(rows *sql.Rows) ([]models.Reminder, error) {
	reminders := []models.Reminder{}
	for rows.Next() {
		var r models.Reminder
		err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.DueAt, &r.Notified, &r.Recurrence, &r.DeliveryToken)
		if err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}
