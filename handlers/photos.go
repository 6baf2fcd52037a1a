// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/lovenest/blob"
	"github.com/danielhkuo/lovenest/channel"
	"github.com/danielhkuo/lovenest/middleware"
	"github.com/danielhkuo/lovenest/models"
	"github.com/danielhkuo/lovenest/store"
)

type PhotoHandler struct {
	store *store.Store
	blobs blob.Store
	hub   channel.Publisher

	// allowedMIME restricts upload content types; empty allows anything.
	allowedMIME []string
}

func NewPhotoHandler(st *store.Store, blobs blob.Store, hub channel.Publisher, allowedMIME []string) *PhotoHandler {
	return &PhotoHandler{store: st, blobs: blobs, hub: hub, allowedMIME: allowedMIME}
}

// Upload handles POST /api/photos/uploadPhoto
//
// Side effects run in a fixed order: blob save, store insert, publish.
// A blob failure means no record and no event; an insert failure after a
// successful save triggers a best-effort cleanup of the orphaned blob.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !h.mimeAllowed(mimeType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unsupported file type")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read upload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Photo upload failed")
		return
	}

	url, err := h.blobs.Save(data, header.Filename, mimeType)
	if err != nil {
		slog.Error("failed to store photo blob", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Photo upload failed")
		return
	}

	photo, err := h.store.InsertPhoto(url, time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert photo", "url", url, "error", err)
		if derr := h.blobs.Delete(url); derr != nil {
			slog.Error("failed to clean up orphaned blob", "url", url, "error", derr)
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Photo upload failed")
		return
	}

	slog.Info("photo uploaded", "photo_id", photo.ID, "url", photo.URL)

	h.hub.Publish(models.EventPhotoUploaded, photo)

	middleware.JSONResponse(w, http.StatusCreated, models.UploadPhotoResponse{
		Message:   "Photo uploaded successfully",
		ID:        photo.ID,
		URL:       photo.URL,
		CreatedAt: photo.CreatedAt,
	})
}

// List handles GET /api/photos
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	photos, err := h.store.PhotosNewestFirst()
	if err != nil {
		slog.Error("failed to fetch photos", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, photos)
}

// Delete handles DELETE /api/photos/{id}
//
// The store record is authoritative: once it is gone the delete has
// succeeded and the event fires, even if removing the blob failed.
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	photo, err := h.store.DeletePhoto(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Photo not found")
			return
		}
		slog.Error("failed to delete photo", "photo_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete the photo")
		return
	}

	if err := h.blobs.Delete(photo.URL); err != nil {
		slog.Error("failed to delete photo blob", "photo_id", id, "url", photo.URL, "error", err)
	}

	slog.Info("photo deleted", "photo_id", id)

	h.hub.Publish(models.EventPhotoDeleted, id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		Message: "Photo deleted successfully",
		ID:      id,
	})
}

func (h *PhotoHandler) mimeAllowed(mimeType string) bool {
	if len(h.allowedMIME) == 0 {
		return true
	}
	for _, m := range h.allowedMIME {
		if m == mimeType {
			return true
		}
	}
	return false
}
