// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// TypedCache wraps a byte cache with JSON encoding for one value type.
type TypedCache[T any] struct {
	cache  Cache
	prefix string
}

// NewTypedCache creates a typed view over the given cache. The prefix
// namespaces keys so different types never collide.
func NewTypedCache[T any](c Cache, prefix string) *TypedCache[T] {
	return &TypedCache[T]{cache: c, prefix: prefix}
}

// Get retrieves and decodes a value. Returns ErrCacheMiss when absent.
func (t *TypedCache[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T

	data, err := t.cache.Get(ctx, t.prefix+key)
	if err != nil {
		return zero, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		// A decode failure means the entry is stale or corrupt; drop it.
		_ = t.cache.Delete(ctx, t.prefix+key)
		return zero, fmt.Errorf("decoding cached value for %s: %w", key, err)
	}
	return value, nil
}

// Set encodes and stores a value.
func (t *TypedCache[T]) Set(ctx context.Context, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value for %s: %w", key, err)
	}
	return t.cache.Set(ctx, t.prefix+key, data, ttl)
}

// Delete removes a value.
func (t *TypedCache[T]) Delete(ctx context.Context, key string) error {
	return t.cache.Delete(ctx, t.prefix+key)
}
