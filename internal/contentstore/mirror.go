// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package contentstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// Mirror is the persistent backup behind the in-memory cache. Reads from an
// absent key return (nil, nil).
type Mirror interface {
	Load(pageID string) (*model.PageContent, error)
	Store(pc *model.PageContent) error
	Remove(pageID string) error
	Clear() error
}

// FileMirror keeps one JSON file per page under a namespace directory.
type FileMirror struct {
	mu  sync.Mutex
	dir string
}

// NewFileMirror creates the mirror directory if needed.
func NewFileMirror(dir string) (*FileMirror, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating mirror dir %s: %w", dir, err)
	}
	return &FileMirror{dir: dir}, nil
}

func (m *FileMirror) path(pageID string) string {
	return filepath.Join(m.dir, pageID+".json")
}

// Load reads one mirrored page. A missing or unreadable file is absent.
func (m *FileMirror) Load(pageID string) (*model.PageContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path(pageID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading mirror for %s: %w", pageID, err)
	}

	var pc model.PageContent
	if err := json.Unmarshal(data, &pc); err != nil {
		return nil, fmt.Errorf("parsing mirror for %s: %w", pageID, err)
	}
	return &pc, nil
}

// Store writes one page to the mirror. The write goes through a temp file
// and a rename so a crash mid-write never leaves a truncated mirror.
func (m *FileMirror) Store(pc *model.PageContent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(pc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding mirror for %s: %w", pc.ID, err)
	}
	tmp := m.path(pc.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing mirror for %s: %w", pc.ID, err)
	}
	if err := os.Rename(tmp, m.path(pc.ID)); err != nil {
		return fmt.Errorf("writing mirror for %s: %w", pc.ID, err)
	}
	return nil
}

// Remove deletes one mirrored page. Removing a missing page is a no-op.
func (m *FileMirror) Remove(pageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := os.Remove(m.path(pageID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing mirror for %s: %w", pageID, err)
	}
	return nil
}

// Clear deletes every mirrored page in the namespace.
func (m *FileMirror) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return fmt.Errorf("listing mirror dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(m.dir, e.Name())); err != nil {
			return fmt.Errorf("clearing mirror: %w", err)
		}
	}
	return nil
}

// MemoryMirror is an in-process Mirror for tests and ephemeral deployments.
type MemoryMirror struct {
	mu    sync.Mutex
	pages map[string]*model.PageContent
}

// NewMemoryMirror creates an empty in-memory mirror.
func NewMemoryMirror() *MemoryMirror {
	return &MemoryMirror{pages: make(map[string]*model.PageContent)}
}

// Load returns the mirrored page, or (nil, nil) when absent.
func (m *MemoryMirror) Load(pageID string) (*model.PageContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pc, ok := m.pages[pageID]
	if !ok {
		return nil, nil
	}
	return pc.Clone(), nil
}

// Store saves a copy of the page.
func (m *MemoryMirror) Store(pc *model.PageContent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[pc.ID] = pc.Clone()
	return nil
}

// Remove deletes the page.
func (m *MemoryMirror) Remove(pageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pages, pageID)
	return nil
}

// Clear deletes every page.
func (m *MemoryMirror) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages = make(map[string]*model.PageContent)
	return nil
}
