// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package filestore

import (
	"context"
	"fmt"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// CreateWebinar stores a new webinar.
func (s *Store) CreateWebinar(ctx context.Context, w *model.Webinar) error {
	if _, exists := s.webinars.get(w.ID); exists {
		return fmt.Errorf("webinar %s already exists", w.ID)
	}
	return s.webinars.put(w.ID, *w)
}

// GetWebinar returns the webinar with the given ID, or (nil, nil) when absent.
func (s *Store) GetWebinar(ctx context.Context, id string) (*model.Webinar, error) {
	w, ok := s.webinars.get(id)
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// ListWebinars returns all webinars ordered by scheduled time.
func (s *Store) ListWebinars(ctx context.Context) ([]model.Webinar, error) {
	webinars := s.webinars.list()
	sortByCreated(webinars,
		func(w model.Webinar) int64 { return w.ScheduledAt.UnixNano() },
		func(w model.Webinar) string { return w.ID })
	return webinars, nil
}

// UpdateWebinar replaces the stored webinar.
func (s *Store) UpdateWebinar(ctx context.Context, w *model.Webinar) error {
	if _, ok := s.webinars.get(w.ID); !ok {
		return fmt.Errorf("webinar %s: %w", w.ID, model.ErrNotFound)
	}
	return s.webinars.put(w.ID, *w)
}

// DeleteWebinar removes the webinar. Deleting a missing webinar is a no-op.
func (s *Store) DeleteWebinar(ctx context.Context, id string) error {
	return s.webinars.delete(id)
}
