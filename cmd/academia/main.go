// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Command academia runs the GIReach Academia CMS and portal API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/auth"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/cache"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/config"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/handler/api"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/scheduler"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/service"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch config.ParseLogLevel(cfg.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("starting",
		"version", appVersion,
		"commit", appGitCommit,
		"backend", cfg.Backend().Kind,
		"env", cfg.Env,
	)

	ctx := context.Background()

	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("closing storage", "error", err)
		}
	}()

	if cfg.DoSeed {
		if err := store.Seed(ctx, st, logger); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
	}

	c, err := cache.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("closing cache", "error", err)
		}
	}()

	media, err := service.NewMediaService(st, cfg.UploadsDir, logger)
	if err != nil {
		return fmt.Errorf("initializing media service: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	h := api.NewHandler(st, tokens, media, c, logger)
	router := api.NewRouter(h, api.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		UploadsDir:     cfg.UploadsDir,
	})

	sched := scheduler.New(st, logger)
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("listening", "addr", cfg.ServerAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
