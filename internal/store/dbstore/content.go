// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package dbstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

func scanPageContent(row interface{ Scan(...any) error }) (*model.PageContent, error) {
	var (
		pc       model.PageContent
		sections []byte
	)
	if err := row.Scan(&pc.ID, &pc.Name, &sections, &pc.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sections, &pc.Sections); err != nil {
		return nil, fmt.Errorf("decoding sections for page %s: %w", pc.ID, err)
	}
	return &pc, nil
}

// GetPageContent returns the page with the given ID, or (nil, nil) when the
// page has never been saved.
func (s *Store) GetPageContent(ctx context.Context, pageID string) (*model.PageContent, error) {
	pc, err := scanPageContent(s.db.QueryRowContext(ctx,
		`SELECT id, name, sections, updated_at FROM page_contents WHERE id = $1`, pageID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting page %s: %w", pageID, err)
	}
	return pc, nil
}

// ListPageContents returns every stored page, ordered by page ID.
func (s *Store) ListPageContents(ctx context.Context) ([]model.PageContent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, sections, updated_at FROM page_contents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	defer rows.Close()

	var pages []model.PageContent
	for rows.Next() {
		pc, err := scanPageContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning page: %w", err)
		}
		pages = append(pages, *pc)
	}
	return pages, rows.Err()
}

// SavePageContent inserts or replaces the page.
func (s *Store) SavePageContent(ctx context.Context, pc *model.PageContent) error {
	sections, err := json.Marshal(pc.Sections)
	if err != nil {
		return fmt.Errorf("encoding sections for page %s: %w", pc.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO page_contents (id, name, sections, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			sections = excluded.sections,
			updated_at = excluded.updated_at`,
		pc.ID, pc.Name, string(sections), pc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving page %s: %w", pc.ID, err)
	}
	return nil
}

// DeletePageContent removes the page. Deleting a missing page is a no-op.
func (s *Store) DeletePageContent(ctx context.Context, pageID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM page_contents WHERE id = $1`, pageID)
	if err != nil {
		return fmt.Errorf("deleting page %s: %w", pageID, err)
	}
	return nil
}

// GetSetting returns the setting for key, or (nil, nil) when absent.
func (s *Store) GetSetting(ctx context.Context, key string) (*model.Setting, error) {
	var (
		v        model.Setting
		value    []byte
		isActive int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT setting_key, setting_value, is_active, updated_by, created_at, updated_at
		FROM website_settings WHERE setting_key = $1`, key).
		Scan(&v.Key, &value, &isActive, &v.UpdatedBy, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting setting %s: %w", key, err)
	}
	v.Value = json.RawMessage(value)
	v.IsActive = isActive != 0
	return &v, nil
}

// ListSettings returns all settings ordered by key.
func (s *Store) ListSettings(ctx context.Context) ([]model.Setting, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT setting_key, setting_value, is_active, updated_by, created_at, updated_at
		FROM website_settings ORDER BY setting_key`)
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	defer rows.Close()

	var settings []model.Setting
	for rows.Next() {
		var (
			v        model.Setting
			value    []byte
			isActive int
		)
		if err := rows.Scan(&v.Key, &value, &isActive, &v.UpdatedBy, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		v.Value = json.RawMessage(value)
		v.IsActive = isActive != 0
		settings = append(settings, v)
	}
	return settings, rows.Err()
}

// PutSetting inserts or replaces the setting keyed by Setting.Key.
func (s *Store) PutSetting(ctx context.Context, v *model.Setting) error {
	isActive := 0
	if v.IsActive {
		isActive = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO website_settings (setting_key, setting_value, is_active, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (setting_key) DO UPDATE SET
			setting_value = excluded.setting_value,
			is_active = excluded.is_active,
			updated_by = excluded.updated_by,
			updated_at = excluded.updated_at`,
		v.Key, string(v.Value), isActive, v.UpdatedBy, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving setting %s: %w", v.Key, err)
	}
	return nil
}

// DeleteSetting removes the setting. Deleting a missing key is a no-op.
func (s *Store) DeleteSetting(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM website_settings WHERE setting_key = $1`, key)
	if err != nil {
		return fmt.Errorf("deleting setting %s: %w", key, err)
	}
	return nil
}
