// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lovenest/channel"
	"github.com/danielhkuo/lovenest/middleware"
	"github.com/danielhkuo/lovenest/models"
	"github.com/danielhkuo/lovenest/store"
)

type NoteHandler struct {
	store *store.Store
	hub   channel.Publisher
}

func NewNoteHandler(st *store.Store, hub channel.Publisher) *NoteHandler {
	return &NoteHandler{store: st, hub: hub}
}

// List handles GET /api/lovenotes
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.store.Notes()
	if err != nil {
		slog.Error("failed to fetch notes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, notes)
}

// Create handles POST /api/lovenotes
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// An absent or empty text is accepted; the note is simply blank.
	note, err := h.store.InsertNote(req.Text)
	if err != nil {
		slog.Error("failed to insert note", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create note")
		return
	}

	slog.Info("note created", "note_id", note.ID)

	// Publish only after the store write succeeded, so a subscriber that
	// reacts by re-fetching is guaranteed to see the note.
	h.hub.Publish(models.EventNoteAdded, note)

	middleware.JSONResponse(w, http.StatusCreated, note)
}

// Delete handles DELETE /api/lovenotes/{id}
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.store.DeleteNote(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Note not found")
			return
		}
		slog.Error("failed to delete note", "note_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete the note")
		return
	}

	slog.Info("note deleted", "note_id", id)

	h.hub.Publish(models.EventNoteDeleted, id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		Message: "Note deleted successfully",
		ID:      id,
	})
}
