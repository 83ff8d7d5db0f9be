// Package main is the entry point for the ConsultPress content API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consultpress/internal/cache"
	"consultpress/internal/config"
	"consultpress/internal/database"
	"consultpress/internal/handlers"
	"consultpress/internal/middleware"
	"consultpress/internal/models"
	"consultpress/internal/router"
	"consultpress/internal/storage"
	"consultpress/internal/store"
)

const (
	// contactFormLimit caps contact-form submissions per client IP.
	contactFormLimit  = 5
	contactFormWindow = time.Minute
)

func main() {
	// Structured logger — outputs text to stdout at debug level.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// The contact-form rate limiter counts in Valkey so the limit holds
	// across replicas; without Valkey a per-process in-memory limiter
	// stands in.
	var limiter middleware.Allower
	if cfg.ValkeyHost != "" {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		limiter = cache.NewLimiter(valkeyClient, contactFormLimit, contactFormWindow)
		slog.Info("valkey rate limiter enabled", "host", cfg.ValkeyHost)
	} else {
		rl := middleware.NewRateLimiter(contactFormLimit, contactFormWindow)
		defer rl.Stop()
		limiter = rl
		slog.Warn("valkey not configured — using in-memory rate limiter")
	}

	// Uploaded images go to S3-compatible object storage when configured,
	// otherwise to local disk served under the upload URL path.
	var files storage.Store
	var uploads *storage.Local
	if cfg.UseS3() {
		s3Store, err := storage.NewS3(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		files = s3Store
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		uploads = storage.NewLocal(cfg.UploadDir, cfg.UploadURLPath)
		files = uploads
		slog.Info("local storage enabled", "dir", cfg.UploadDir)
	}

	// One handler per catalog resource, all sharing the same CRUD shape.
	resources := make([]*handlers.Resource, 0, len(models.Catalog))
	for _, spec := range models.Catalog {
		resources = append(resources, handlers.NewResource(store.NewResourceStore(db, spec), files))
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(resources, limiter, uploads)

	// Create the HTTP server with sensible timeouts. ReadTimeout covers
	// multipart image uploads on slow links.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
