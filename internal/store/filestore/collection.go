// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// collection is one entity family persisted as a single JSON file keyed by
// record ID. Every mutation rewrites the whole file synchronously, so a
// mutation that returns nil is durable.
type collection[T any] struct {
	mu    sync.RWMutex
	path  string
	items map[string]T
}

// openCollection loads the collection file if it exists. A missing file is
// an empty collection, not an error.
func openCollection[T any](path string) (*collection[T], error) {
	c := &collection[T]{
		path:  path,
		items: make(map[string]T),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(data) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c.items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// get returns the record for id. The second return is false when the record
// does not exist.
func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	return v, ok
}

// list returns all records in unspecified order.
func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, v := range c.items {
		out = append(out, v)
	}
	return out
}

// put inserts or replaces the record for id and persists the file.
func (c *collection[T]) put(id string, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev, had := c.items[id]
	c.items[id] = v
	if err := c.persistLocked(); err != nil {
		// Roll back the in-memory map so it reflects what is on disk.
		if had {
			c.items[id] = prev
		} else {
			delete(c.items, id)
		}
		return err
	}
	return nil
}

// delete removes the record for id, if present, and persists the file.
// Deleting a missing record is a no-op.
func (c *collection[T]) delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev, had := c.items[id]
	if !had {
		return nil
	}
	delete(c.items, id)
	if err := c.persistLocked(); err != nil {
		c.items[id] = prev
		return err
	}
	return nil
}

// persistLocked writes the collection to disk via a temp file and rename so
// a crash mid-write never leaves a truncated file. Callers must hold mu.
func (c *collection[T]) persistLocked() error {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.path, err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", c.path, err)
	}
	return nil
}

// ensureDir creates the data directory if needed.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	return nil
}

func fileIn(dir, name string) string {
	return filepath.Join(dir, name)
}
