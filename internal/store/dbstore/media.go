// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package dbstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

const mediaColumns = `id, filename, mime_type, size, url, thumbnail_url, width, height, alt, description, uploaded_by, created_at, updated_at`

func scanMedia(row interface{ Scan(...any) error }) (*model.Media, error) {
	var m model.Media
	err := row.Scan(&m.ID, &m.Filename, &m.MimeType, &m.Size, &m.URL,
		&m.ThumbnailURL, &m.Width, &m.Height, &m.Alt, &m.Description,
		&m.UploadedBy, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMedia inserts a new media library entry.
func (s *Store) CreateMedia(ctx context.Context, m *model.Media) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO media (`+mediaColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.ID, m.Filename, m.MimeType, m.Size, m.URL, m.ThumbnailURL,
		m.Width, m.Height, m.Alt, m.Description, m.UploadedBy, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating media: %w", err)
	}
	return nil
}

// GetMedia returns the media entry with the given ID, or (nil, nil) when absent.
func (s *Store) GetMedia(ctx context.Context, id string) (*model.Media, error) {
	m, err := scanMedia(s.db.QueryRowContext(ctx,
		`SELECT `+mediaColumns+` FROM media WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting media %s: %w", id, err)
	}
	return m, nil
}

// ListMedia returns all media entries, newest first.
func (s *Store) ListMedia(ctx context.Context) ([]model.Media, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+mediaColumns+` FROM media ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing media: %w", err)
	}
	defer rows.Close()

	var media []model.Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning media: %w", err)
		}
		media = append(media, *m)
	}
	return media, rows.Err()
}

// UpdateMedia replaces the stored media row.
func (s *Store) UpdateMedia(ctx context.Context, m *model.Media) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE media
		SET filename = $2, mime_type = $3, size = $4, url = $5, thumbnail_url = $6,
		    width = $7, height = $8, alt = $9, description = $10,
		    uploaded_by = $11, updated_at = $12
		WHERE id = $1`,
		m.ID, m.Filename, m.MimeType, m.Size, m.URL, m.ThumbnailURL,
		m.Width, m.Height, m.Alt, m.Description, m.UploadedBy, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating media %s: %w", m.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("media %s: %w", m.ID, model.ErrNotFound)
	}
	return nil
}

// DeleteMedia removes the media row. Deleting a missing entry is a no-op.
func (s *Store) DeleteMedia(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting media %s: %w", id, err)
	}
	return nil
}
