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

const webinarColumns = `id, title, description, speaker, scheduled_at, duration_minutes, meeting_url, status, created_by, created_at, updated_at`

func scanWebinar(row interface{ Scan(...any) error }) (*model.Webinar, error) {
	var w model.Webinar
	err := row.Scan(&w.ID, &w.Title, &w.Description, &w.Speaker, &w.ScheduledAt,
		&w.DurationMinutes, &w.MeetingURL, &w.Status, &w.CreatedBy, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWebinar inserts a new webinar.
func (s *Store) CreateWebinar(ctx context.Context, w *model.Webinar) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO webinars (`+webinarColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		w.ID, w.Title, w.Description, w.Speaker, w.ScheduledAt,
		w.DurationMinutes, w.MeetingURL, w.Status, w.CreatedBy, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating webinar: %w", err)
	}
	return nil
}

// GetWebinar returns the webinar with the given ID, or (nil, nil) when absent.
func (s *Store) GetWebinar(ctx context.Context, id string) (*model.Webinar, error) {
	w, err := scanWebinar(s.db.QueryRowContext(ctx,
		`SELECT `+webinarColumns+` FROM webinars WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting webinar %s: %w", id, err)
	}
	return w, nil
}

// ListWebinars returns all webinars ordered by scheduled time.
func (s *Store) ListWebinars(ctx context.Context) ([]model.Webinar, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+webinarColumns+` FROM webinars ORDER BY scheduled_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing webinars: %w", err)
	}
	defer rows.Close()

	var webinars []model.Webinar
	for rows.Next() {
		w, err := scanWebinar(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning webinar: %w", err)
		}
		webinars = append(webinars, *w)
	}
	return webinars, rows.Err()
}

// UpdateWebinar replaces the stored webinar row.
func (s *Store) UpdateWebinar(ctx context.Context, w *model.Webinar) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE webinars
		SET title = $2, description = $3, speaker = $4, scheduled_at = $5,
		    duration_minutes = $6, meeting_url = $7, status = $8,
		    created_by = $9, updated_at = $10
		WHERE id = $1`,
		w.ID, w.Title, w.Description, w.Speaker, w.ScheduledAt,
		w.DurationMinutes, w.MeetingURL, w.Status, w.CreatedBy, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating webinar %s: %w", w.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("webinar %s: %w", w.ID, model.ErrNotFound)
	}
	return nil
}

// DeleteWebinar removes the webinar row. Deleting a missing webinar is a no-op.
func (s *Store) DeleteWebinar(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM webinars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting webinar %s: %w", id, err)
	}
	return nil
}
