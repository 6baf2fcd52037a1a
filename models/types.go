// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Recurrence constants
const (
	RecurrenceNone    = "None"
	RecurrenceDaily   = "Daily"
	RecurrenceWeekly  = "Weekly"
	RecurrenceMonthly = "Monthly"
	RecurrenceYearly  = "Yearly"
)

// ValidRecurrence reports whether r is one of the recurrence constants.
func ValidRecurrence(r string) bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// Broadcast event names
const (
	EventNoteAdded     = "noteAdded"
	EventNoteDeleted   = "noteDeleted"
	EventPhotoUploaded = "photoUploaded"
	EventPhotoDeleted  = "photoDeleted"
)

// Request types

type CreateNoteRequest struct {
	Text string `json:"text"`
}

// ReminderRequest is used for both POST (create) and PUT (full replacement).
// A PUT may set notified back to false to re-arm a reminder.
type ReminderRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DueAt         time.Time `json:"due_at"`
	Notified      bool      `json:"notified"`
	Recurrence    string    `json:"recurrence"`
	DeliveryToken string    `json:"delivery_token"`
}

// Response types

type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type UploadPhotoResponse struct {
	Message   string    `json:"message"`
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// Domain types

type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Photo struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type Reminder struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DueAt         time.Time `json:"due_at"`
	Notified      bool      `json:"notified"`
	Recurrence    string    `json:"recurrence"`
	DeliveryToken string    `json:"-"` // Never expose in JSON
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
