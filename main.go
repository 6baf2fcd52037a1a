package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/lovenest/blob"
	"github.com/danielhkuo/lovenest/channel"
	"github.com/danielhkuo/lovenest/cliparse"
	"github.com/danielhkuo/lovenest/db"
	"github.com/danielhkuo/lovenest/middleware"
	"github.com/danielhkuo/lovenest/push"
	"github.com/danielhkuo/lovenest/router"
	"github.com/danielhkuo/lovenest/scheduler"
	"github.com/danielhkuo/lovenest/store"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	st := store.New(dbConn)

	// Ensure the uploads directory exists
	blobs, err := blob.NewLocal(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		slog.Error("upload dir setup failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := new(sync.WaitGroup)

	// Broadcast hub
	hub := channel.NewHub()
	wg.Add(1)
	go func() {
		defer wg.Done()
		hub.Run(ctx)
	}()

	// Reminder scheduler
	sched := scheduler.New(st, push.NewGateway(cfg.PushGatewayURL), cfg.ScanInterval)
	wg.Add(1)
	go func() {
		defer wg.Done()
		sched.Run(ctx)
	}()

	// Create router
	mux := router.NewRouter(st, blobs, hub, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	wg.Wait()
}
