// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the caching layer used by the content store and
// the HTTP handlers. Implementations are thread-safe and store []byte so
// the same interface serves the in-memory and Redis backends.
package cache

import (
	"context"
	"time"
)

// Cache is the contract shared by the memory and Redis backends.
type Cache interface {
	// Get retrieves a value. Returns ErrCacheMiss when the key is absent
	// or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A zero TTL uses the backend's
	// default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Stats reports hit/miss counters for caches that track them.
type Stats struct {
	Hits   int64
	Misses int64
	Sets   int64
	Size   int64
}

// Error is a sentinel error type for cache operations.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrCacheMiss indicates the key was not found or has expired.
	ErrCacheMiss Error = "cache miss"
	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)
