// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared helpers for tests.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/store/filestore"
)

// NewLogger returns a logger that discards all output.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OpenFileStore opens a file-backed store in a temp directory, cleaned up
// with the test.
func OpenFileStore(t *testing.T) *filestore.Store {
	t.Helper()

	st, err := filestore.Open(t.TempDir(), NewLogger())
	if err != nil {
		t.Fatalf("opening file store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}
