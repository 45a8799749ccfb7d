// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"fmt"
	"time"
)

// Feedback question kinds.
const (
	QuestionText     = "text"
	QuestionTextarea = "textarea"
	QuestionRating   = "rating"
	QuestionSelect   = "select"
	QuestionCheckbox = "checkbox"
)

// ValidQuestionKinds returns all valid feedback question kinds.
func ValidQuestionKinds() []string {
	return []string{QuestionText, QuestionTextarea, QuestionRating, QuestionSelect, QuestionCheckbox}
}

// IsValidQuestionKind checks if a question kind is valid.
func IsValidQuestionKind(kind string) bool {
	for _, k := range ValidQuestionKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// FeedbackQuestion is one question of a feedback form. Question order within
// a form is meaningful.
type FeedbackQuestion struct {
	ID       string   `json:"id"`
	Kind     string   `json:"kind"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// FeedbackForm is an ordered list of questions presented to mentees after
// webinars and mentorship sessions.
type FeedbackForm struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Questions   []FeedbackQuestion `json:"questions"`
	IsActive    bool               `json:"isActive"`
	CreatedBy   string             `json:"createdBy,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// Validate checks the form definition.
func (f *FeedbackForm) Validate() error {
	if f.Title == "" {
		return fmt.Errorf("form title is required")
	}

	seen := make(map[string]struct{}, len(f.Questions))
	for _, q := range f.Questions {
		if q.ID == "" {
			return fmt.Errorf("question id is required")
		}
		if !IsValidQuestionKind(q.Kind) {
			return fmt.Errorf("unknown question kind %q", q.Kind)
		}
		if q.Kind == QuestionSelect && len(q.Options) == 0 {
			return fmt.Errorf("select question %q requires options", q.ID)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}
	}

	return nil
}

// FeedbackResponse is a submitted answer set for a form. Answers map a
// question ID to an answer value whose type depends on the question kind.
type FeedbackResponse struct {
	ID           string         `json:"id"`
	FormID       string         `json:"formId"`
	RespondentID string         `json:"respondentId,omitempty"`
	Answers      map[string]any `json:"answers"`
	SubmittedAt  time.Time      `json:"submittedAt"`
}
