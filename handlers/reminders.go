// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lovenest/middleware"
	"github.com/danielhkuo/lovenest/models"
	"github.com/danielhkuo/lovenest/store"
)

// ReminderHandler serves plain CRUD. Reminders are not part of the
// realtime channel; the scheduler picks them up from the store.
type ReminderHandler struct {
	store *store.Store
}

func NewReminderHandler(st *store.Store) *ReminderHandler {
	return &ReminderHandler{store: st}
}

// Create handles POST /api/reminders
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := parseReminderRequest(w, r)
	if !ok {
		return
	}

	reminder, err := h.store.InsertReminder(models.Reminder{
		Title:         req.Title,
		Description:   req.Description,
		DueAt:         req.DueAt,
		Notified:      req.Notified,
		Recurrence:    req.Recurrence,
		DeliveryToken: req.DeliveryToken,
	})
	if err != nil {
		slog.Error("failed to insert reminder", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create reminder")
		return
	}

	slog.Info("reminder created", "reminder_id", reminder.ID, "due_at", reminder.DueAt)

	middleware.JSONResponse(w, http.StatusCreated, reminder)
}

// List handles GET /api/reminders
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.store.Reminders()
	if err != nil {
		slog.Error("failed to fetch reminders", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch reminders")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, reminders)
}

// Update handles PUT /api/reminders/{id}
//
// The stored reminder is replaced wholesale. Sending notified=false
// re-arms an already-fired reminder for the next scheduler scan.
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	req, ok := parseReminderRequest(w, r)
	if !ok {
		return
	}

	reminder, err := h.store.UpdateReminder(id, models.Reminder{
		Title:         req.Title,
		Description:   req.Description,
		DueAt:         req.DueAt,
		Notified:      req.Notified,
		Recurrence:    req.Recurrence,
		DeliveryToken: req.DeliveryToken,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Reminder not found")
			return
		}
		slog.Error("failed to update reminder", "reminder_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update reminder")
		return
	}

	slog.Info("reminder updated", "reminder_id", id, "notified", reminder.Notified)

	middleware.JSONResponse(w, http.StatusOK, reminder)
}

// Delete handles DELETE /api/reminders/{id}
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.store.DeleteReminder(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Reminder not found")
			return
		}
		slog.Error("failed to delete reminder", "reminder_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete reminder")
		return
	}

	slog.Info("reminder deleted", "reminder_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		Message: "Reminder deleted",
		ID:      id,
	})
}

// parseReminderRequest decodes and validates the shared create/update
// body, writing the error response itself when validation fails.
func parseReminderRequest(w http.ResponseWriter, r *http.Request) (models.ReminderRequest, bool) {
	var req models.ReminderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return models.ReminderRequest{}, false
	}

	if req.DueAt.IsZero() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "due_at is required")
		return models.ReminderRequest{}, false
	}
	if req.Recurrence == "" {
		req.Recurrence = models.RecurrenceNone
	}
	if !models.ValidRecurrence(req.Recurrence) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid recurrence")
		return models.ReminderRequest{}, false
	}

	return req, true
}
