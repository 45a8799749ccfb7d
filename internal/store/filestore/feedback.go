// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package filestore

import (
	"context"
	"fmt"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

func cloneForm(f model.FeedbackForm) *model.FeedbackForm {
	questions := make([]model.FeedbackQuestion, len(f.Questions))
	copy(questions, f.Questions)
	for i, q := range questions {
		if q.Options != nil {
			questions[i].Options = append([]string(nil), q.Options...)
		}
	}
	f.Questions = questions
	return &f
}

func cloneResponse(r model.FeedbackResponse) *model.FeedbackResponse {
	answers := make(map[string]any, len(r.Answers))
	for k, v := range r.Answers {
		answers[k] = v
	}
	r.Answers = answers
	return &r
}

// CreateFeedbackForm stores a new feedback form.
func (s *Store) CreateFeedbackForm(ctx context.Context, f *model.FeedbackForm) error {
	if _, exists := s.forms.get(f.ID); exists {
		return fmt.Errorf("feedback form %s already exists", f.ID)
	}
	return s.forms.put(f.ID, *cloneForm(*f))
}

// GetFeedbackForm returns the form with the given ID, or (nil, nil) when absent.
func (s *Store) GetFeedbackForm(ctx context.Context, id string) (*model.FeedbackForm, error) {
	f, ok := s.forms.get(id)
	if !ok {
		return nil, nil
	}
	return cloneForm(f), nil
}

// ListFeedbackForms returns all forms ordered by creation time.
func (s *Store) ListFeedbackForms(ctx context.Context) ([]model.FeedbackForm, error) {
	forms := s.forms.list()
	sortByCreated(forms,
		func(f model.FeedbackForm) int64 { return f.CreatedAt.UnixNano() },
		func(f model.FeedbackForm) string { return f.ID })
	for i := range forms {
		forms[i] = *cloneForm(forms[i])
	}
	return forms, nil
}

// UpdateFeedbackForm replaces the stored form.
func (s *Store) UpdateFeedbackForm(ctx context.Context, f *model.FeedbackForm) error {
	if _, ok := s.forms.get(f.ID); !ok {
		return fmt.Errorf("feedback form %s: %w", f.ID, model.ErrNotFound)
	}
	return s.forms.put(f.ID, *cloneForm(*f))
}

// DeleteFeedbackForm removes the form and all responses submitted against it.
func (s *Store) DeleteFeedbackForm(ctx context.Context, id string) error {
	if err := s.forms.delete(id); err != nil {
		return err
	}
	for _, r := range s.responses.list() {
		if r.FormID == id {
			if err := s.responses.delete(r.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateFeedbackResponse stores a submitted response.
func (s *Store) CreateFeedbackResponse(ctx context.Context, r *model.FeedbackResponse) error {
	return s.responses.put(r.ID, *cloneResponse(*r))
}

// ListFeedbackResponses returns every response for the given form, ordered
// by submission time.
func (s *Store) ListFeedbackResponses(ctx context.Context, formID string) ([]model.FeedbackResponse, error) {
	var out []model.FeedbackResponse
	for _, r := range s.responses.list() {
		if r.FormID == formID {
			out = append(out, *cloneResponse(r))
		}
	}
	sortByCreated(out,
		func(r model.FeedbackResponse) int64 { return r.SubmittedAt.UnixNano() },
		func(r model.FeedbackResponse) string { return r.ID })
	return out, nil
}
