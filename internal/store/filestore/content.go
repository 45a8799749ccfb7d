// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package filestore

import (
	"context"
	"encoding/json"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// GetPageContent returns the page with the given ID, or (nil, nil) when the
// page has never been saved.
func (s *Store) GetPageContent(ctx context.Context, pageID string) (*model.PageContent, error) {
	pc, ok := s.contents.get(pageID)
	if !ok {
		return nil, nil
	}
	return pc.Clone(), nil
}

// ListPageContents returns every stored page, ordered by page ID.
func (s *Store) ListPageContents(ctx context.Context) ([]model.PageContent, error) {
	pages := s.contents.list()
	sortByCreated(pages,
		func(model.PageContent) int64 { return 0 },
		func(pc model.PageContent) string { return pc.ID })
	for i := range pages {
		pages[i] = *pages[i].Clone()
	}
	return pages, nil
}

// SavePageContent inserts or replaces the page.
func (s *Store) SavePageContent(ctx context.Context, pc *model.PageContent) error {
	return s.contents.put(pc.ID, *pc.Clone())
}

// DeletePageContent removes the page. Deleting a missing page is a no-op.
func (s *Store) DeletePageContent(ctx context.Context, pageID string) error {
	return s.contents.delete(pageID)
}

func cloneSetting(v model.Setting) *model.Setting {
	if v.Value != nil {
		v.Value = append(json.RawMessage(nil), v.Value...)
	}
	return &v
}

// GetSetting returns the setting for key, or (nil, nil) when absent.
func (s *Store) GetSetting(ctx context.Context, key string) (*model.Setting, error) {
	v, ok := s.settings.get(key)
	if !ok {
		return nil, nil
	}
	return cloneSetting(v), nil
}

// ListSettings returns all settings ordered by key.
func (s *Store) ListSettings(ctx context.Context) ([]model.Setting, error) {
	settings := s.settings.list()
	sortByCreated(settings,
		func(model.Setting) int64 { return 0 },
		func(v model.Setting) string { return v.Key })
	for i := range settings {
		settings[i] = *cloneSetting(settings[i])
	}
	return settings, nil
}

// PutSetting inserts or replaces the setting keyed by Setting.Key.
func (s *Store) PutSetting(ctx context.Context, v *model.Setting) error {
	return s.settings.put(v.Key, *cloneSetting(*v))
}

// DeleteSetting removes the setting. Deleting a missing key is a no-op.
func (s *Store) DeleteSetting(ctx context.Context, key string) error {
	return s.settings.delete(key)
}
