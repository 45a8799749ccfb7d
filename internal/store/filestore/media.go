// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package filestore

import (
	"context"
	"fmt"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// CreateMedia stores a new media library entry.
func (s *Store) CreateMedia(ctx context.Context, m *model.Media) error {
	if _, exists := s.media.get(m.ID); exists {
		return fmt.Errorf("media %s already exists", m.ID)
	}
	return s.media.put(m.ID, *m)
}

// GetMedia returns the media entry with the given ID, or (nil, nil) when absent.
func (s *Store) GetMedia(ctx context.Context, id string) (*model.Media, error) {
	m, ok := s.media.get(id)
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// ListMedia returns all media entries, newest first.
func (s *Store) ListMedia(ctx context.Context) ([]model.Media, error) {
	media := s.media.list()
	sortByCreated(media,
		func(m model.Media) int64 { return -m.CreatedAt.UnixNano() },
		func(m model.Media) string { return m.ID })
	return media, nil
}

// UpdateMedia replaces the stored media entry.
func (s *Store) UpdateMedia(ctx context.Context, m *model.Media) error {
	if _, ok := s.media.get(m.ID); !ok {
		return fmt.Errorf("media %s: %w", m.ID, model.ErrNotFound)
	}
	return s.media.put(m.ID, *m)
}

// DeleteMedia removes the media entry. Deleting a missing entry is a no-op.
func (s *Store) DeleteMedia(ctx context.Context, id string) error {
	return s.media.delete(id)
}
