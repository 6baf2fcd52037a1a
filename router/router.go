// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/lovenest/blob"
	"github.com/danielhkuo/lovenest/channel"
	"github.com/danielhkuo/lovenest/cliparse"
	"github.com/danielhkuo/lovenest/handlers"
	"github.com/danielhkuo/lovenest/middleware"
	"github.com/danielhkuo/lovenest/store"
)

func NewRouter(st *store.Store, blobs blob.Store, hub *channel.Hub, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	noteHandler := handlers.NewNoteHandler(st, hub)
	photoHandler := handlers.NewPhotoHandler(st, blobs, hub, cfg.MIMEAllowlist)
	reminderHandler := handlers.NewReminderHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Love notes
	mux.HandleFunc("GET /api/lovenotes", middleware.WithLogging(noteHandler.List))
	mux.HandleFunc("POST /api/lovenotes", middleware.WithLogging(noteHandler.Create))
	mux.HandleFunc("DELETE /api/lovenotes/{id}", middleware.WithLogging(noteHandler.Delete))

	// Photos
	mux.HandleFunc("POST /api/photos/uploadPhoto", middleware.WithLogging(photoHandler.Upload))
	mux.HandleFunc("GET /api/photos", middleware.WithLogging(photoHandler.List))
	mux.HandleFunc("DELETE /api/photos/{id}", middleware.WithLogging(photoHandler.Delete))

	// Reminders
	mux.HandleFunc("POST /api/reminders", middleware.WithLogging(reminderHandler.Create))
	mux.HandleFunc("GET /api/reminders", middleware.WithLogging(reminderHandler.List))
	mux.HandleFunc("PUT /api/reminders/{id}", middleware.WithLogging(reminderHandler.Update))
	mux.HandleFunc("DELETE /api/reminders/{id}", middleware.WithLogging(reminderHandler.Delete))

	// Realtime channel
	mux.HandleFunc("GET /ws", hub.ServeWS)

	// Uploaded photo binaries
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Root endpoint; {$} keeps it from swallowing unknown paths
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lovenest API v1"))
	})

	return mux
}
