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

func scanFeedbackForm(row interface{ Scan(...any) error }) (*model.FeedbackForm, error) {
	var (
		f         model.FeedbackForm
		questions []byte
		isActive  int
	)
	err := row.Scan(&f.ID, &f.Title, &f.Description, &questions, &isActive,
		&f.CreatedBy, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(questions, &f.Questions); err != nil {
		return nil, fmt.Errorf("decoding questions for form %s: %w", f.ID, err)
	}
	f.IsActive = isActive != 0
	return &f, nil
}

func (s *Store) execFeedbackForm(ctx context.Context, query string, f *model.FeedbackForm) (sql.Result, error) {
	questions, err := json.Marshal(f.Questions)
	if err != nil {
		return nil, fmt.Errorf("encoding questions for form %s: %w", f.ID, err)
	}
	isActive := 0
	if f.IsActive {
		isActive = 1
	}
	return s.db.ExecContext(ctx, query,
		f.ID, f.Title, f.Description, string(questions), isActive,
		f.CreatedBy, f.CreatedAt, f.UpdatedAt)
}

// CreateFeedbackForm inserts a new feedback form.
func (s *Store) CreateFeedbackForm(ctx context.Context, f *model.FeedbackForm) error {
	_, err := s.execFeedbackForm(ctx, `
		INSERT INTO feedback_forms (id, title, description, questions, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, f)
	if err != nil {
		return fmt.Errorf("creating feedback form: %w", err)
	}
	return nil
}

// GetFeedbackForm returns the form with the given ID, or (nil, nil) when absent.
func (s *Store) GetFeedbackForm(ctx context.Context, id string) (*model.FeedbackForm, error) {
	f, err := scanFeedbackForm(s.db.QueryRowContext(ctx, `
		SELECT id, title, description, questions, is_active, created_by, created_at, updated_at
		FROM feedback_forms WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting feedback form %s: %w", id, err)
	}
	return f, nil
}

// ListFeedbackForms returns all forms ordered by creation time.
func (s *Store) ListFeedbackForms(ctx context.Context) ([]model.FeedbackForm, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, questions, is_active, created_by, created_at, updated_at
		FROM feedback_forms ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing feedback forms: %w", err)
	}
	defer rows.Close()

	var forms []model.FeedbackForm
	for rows.Next() {
		f, err := scanFeedbackForm(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning feedback form: %w", err)
		}
		forms = append(forms, *f)
	}
	return forms, rows.Err()
}

// UpdateFeedbackForm replaces the stored form.
func (s *Store) UpdateFeedbackForm(ctx context.Context, f *model.FeedbackForm) error {
	res, err := s.execFeedbackForm(ctx, `
		UPDATE feedback_forms
		SET title = $2, description = $3, questions = $4, is_active = $5,
		    created_by = $6, created_at = $7, updated_at = $8
		WHERE id = $1`, f)
	if err != nil {
		return fmt.Errorf("updating feedback form %s: %w", f.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("feedback form %s: %w", f.ID, model.ErrNotFound)
	}
	return nil
}

// DeleteFeedbackForm removes the form; responses cascade via the foreign key.
func (s *Store) DeleteFeedbackForm(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM feedback_forms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting feedback form %s: %w", id, err)
	}
	return nil
}

// CreateFeedbackResponse inserts a submitted response.
func (s *Store) CreateFeedbackResponse(ctx context.Context, r *model.FeedbackResponse) error {
	answers, err := json.Marshal(r.Answers)
	if err != nil {
		return fmt.Errorf("encoding answers for response %s: %w", r.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO feedback_responses (id, form_id, respondent_id, answers, submitted_at)
		VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.FormID, r.RespondentID, string(answers), r.SubmittedAt)
	if err != nil {
		return fmt.Errorf("creating feedback response: %w", err)
	}
	return nil
}

// ListFeedbackResponses returns every response for the given form, ordered
// by submission time.
func (s *Store) ListFeedbackResponses(ctx context.Context, formID string) ([]model.FeedbackResponse, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, form_id, respondent_id, answers, submitted_at
		FROM feedback_responses WHERE form_id = $1
		ORDER BY submitted_at, id`, formID)
	if err != nil {
		return nil, fmt.Errorf("listing feedback responses: %w", err)
	}
	defer rows.Close()

	var responses []model.FeedbackResponse
	for rows.Next() {
		var (
			r       model.FeedbackResponse
			answers []byte
		)
		if err := rows.Scan(&r.ID, &r.FormID, &r.RespondentID, &answers, &r.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scanning feedback response: %w", err)
		}
		if err := json.Unmarshal(answers, &r.Answers); err != nil {
			return nil, fmt.Errorf("decoding answers for response %s: %w", r.ID, err)
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}
