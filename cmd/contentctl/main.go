// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Command contentctl is the operator's client for the content API. It wires
// the content sync engine to a file mirror, so edits keep working against a
// flaky or offline API: pull seeds the mirror, push saves a page remote-first,
// reset restores the shipped defaults.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/config"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/contentstore"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// commandTimeout bounds every remote operation issued by one invocation.
const commandTimeout = 30 * time.Second

type cliConfig struct {
	APIBaseURL string `env:"ACADEMIA_API_URL" envDefault:"http://localhost:8080"`
	APIToken   string `env:"ACADEMIA_API_TOKEN"`
	MirrorDir  string `env:"ACADEMIA_MIRROR_DIR" envDefault:"./content-mirror"`
	LogLevel   string `env:"ACADEMIA_LOG_LEVEL" envDefault:"info"`
}

const usage = `usage: contentctl <command> [args]

commands:
  pull                 fetch all pages, seeding missing defaults and the local mirror
  show <pageID>        print one page as JSON
  push <pageID> <file> save a page from a JSON file (remote first, then mirror)
  invalidate [pageID ...]  clear cached pages (all when no IDs are given)
  reset                push the shipped defaults and overwrite the local view
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	// Load .env if present (development)
	_ = godotenv.Load()

	cfg := &cliConfig{}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
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
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	mirror, err := contentstore.NewFileMirror(cfg.MirrorDir)
	if err != nil {
		return fmt.Errorf("opening mirror: %w", err)
	}

	cs := contentstore.New(contentstore.Options{
		APIBaseURL:       cfg.APIBaseURL,
		TokenSource:      func() string { return cfg.APIToken },
		Mirror:           mirror,
		Logger:           logger,
		GlobalEventDelay: contentstore.DefaultGlobalEventDelay,
	})
	cs.Events().OnPageUpdated(func(pageID string) {
		logger.Info("page updated", "page", pageID)
	})

	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return fmt.Errorf("missing command")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch cmd := args[0]; cmd {
	case "pull":
		return pull(ctx, cs, out)
	case "show":
		if len(args) != 2 {
			return fmt.Errorf("usage: contentctl show <pageID>")
		}
		return show(ctx, cs, args[1], out)
	case "push":
		if len(args) != 3 {
			return fmt.Errorf("usage: contentctl push <pageID> <file>")
		}
		return push(ctx, cs, args[1], args[2], out)
	case "invalidate":
		if err := cs.InvalidateCache(ctx, args[1:]...); err != nil {
			return fmt.Errorf("invalidating: %w", err)
		}
		fmt.Fprintln(out, "cache invalidated")
		return nil
	case "reset":
		if err := cs.ResetToDefault(ctx); err != nil {
			return fmt.Errorf("resetting: %w", err)
		}
		fmt.Fprintln(out, "content reset to defaults")
		return nil
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// pull runs the full initialization sequence and reports the outcome,
// including pages that could not be seeded remotely.
func pull(ctx context.Context, cs *contentstore.ContentStore, out io.Writer) error {
	report, err := cs.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}

	fmt.Fprintf(out, "pulled %d pages\n", report.Pages)
	if report.FromDefaults {
		fmt.Fprintln(out, "api unreachable: initialized from shipped defaults")
	}
	for _, sf := range report.SeedFailures {
		fmt.Fprintf(out, "seed failed for %s: %v\n", sf.PageID, sf.Err)
	}
	return nil
}

func show(ctx context.Context, cs *contentstore.ContentStore, pageID string, out io.Writer) error {
	pc, err := cs.PageContent(ctx, pageID)
	if err != nil {
		return fmt.Errorf("reading page %s: %w", pageID, err)
	}
	if pc == nil {
		return fmt.Errorf("page %s not found", pageID)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(pc)
}

func push(ctx context.Context, cs *contentstore.ContentStore, pageID, file string, out io.Writer) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	var pc model.PageContent
	if err := json.Unmarshal(data, &pc); err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}

	if err := cs.SavePageContent(ctx, pageID, &pc); err != nil {
		return fmt.Errorf("saving page %s: %w", pageID, err)
	}
	fmt.Fprintf(out, "saved %s\n", pageID)
	return nil
}
