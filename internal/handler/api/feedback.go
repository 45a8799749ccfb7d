// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/middleware"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

type feedbackFormRequest struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Questions   []model.FeedbackQuestion `json:"questions"`
	IsActive    *bool                    `json:"isActive"`
}

// ListFeedbackForms returns feedback forms. Non-admin callers only see
// active forms.
func (h *Handler) ListFeedbackForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.store.ListFeedbackForms(r.Context())
	if err != nil {
		h.WriteInternalError(w, "listing feedback forms", err)
		return
	}

	claims := middleware.ClaimsFrom(r)
	if claims == nil || claims.Role != model.RoleAdmin {
		active := forms[:0]
		for _, f := range forms {
			if f.IsActive {
				active = append(active, f)
			}
		}
		forms = active
	}
	WriteSuccess(w, forms, &Meta{Total: len(forms)})
}

// GetFeedbackForm returns a single form by ID.
func (h *Handler) GetFeedbackForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.store.GetFeedbackForm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting feedback form", err)
		return
	}
	if form == nil {
		WriteNotFound(w, "Feedback form not found")
		return
	}

	claims := middleware.ClaimsFrom(r)
	if !form.IsActive && (claims == nil || claims.Role != model.RoleAdmin) {
		WriteNotFound(w, "Feedback form not found")
		return
	}
	WriteSuccess(w, form, nil)
}

// CreateFeedbackForm creates a form. Admin only.
func (h *Handler) CreateFeedbackForm(w http.ResponseWriter, r *http.Request) {
	var req feedbackFormRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid form payload", nil)
		return
	}

	now := time.Now().UTC()
	form := &model.FeedbackForm{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedBy:   middleware.ClaimsFrom(r).UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := form.Validate(); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}

	if err := h.store.CreateFeedbackForm(r.Context(), form); err != nil {
		h.WriteInternalError(w, "creating feedback form", err)
		return
	}
	WriteCreated(w, form)
}

// UpdateFeedbackForm replaces a form's definition. Admin only.
func (h *Handler) UpdateFeedbackForm(w http.ResponseWriter, r *http.Request) {
	var req feedbackFormRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid form payload", nil)
		return
	}

	ctx := r.Context()
	form, err := h.store.GetFeedbackForm(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting feedback form", err)
		return
	}
	if form == nil {
		WriteNotFound(w, "Feedback form not found")
		return
	}

	form.Title = req.Title
	form.Description = req.Description
	form.Questions = req.Questions
	if req.IsActive != nil {
		form.IsActive = *req.IsActive
	}
	form.UpdatedAt = time.Now().UTC()

	if err := form.Validate(); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if err := h.store.UpdateFeedbackForm(ctx, form); err != nil {
		h.WriteStoreError(w, "updating feedback form", err)
		return
	}
	WriteSuccess(w, form, nil)
}

// DeleteFeedbackForm removes a form and its responses. Admin only.
func (h *Handler) DeleteFeedbackForm(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteFeedbackForm(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.WriteInternalError(w, "deleting feedback form", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type submitResponseRequest struct {
	Answers map[string]any `json:"answers"`
}

// SubmitFeedbackResponse records an answer set for an active form. The
// respondent is taken from the session, never from the payload.
func (h *Handler) SubmitFeedbackResponse(w http.ResponseWriter, r *http.Request) {
	var req submitResponseRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid response payload", nil)
		return
	}

	ctx := r.Context()
	form, err := h.store.GetFeedbackForm(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting feedback form", err)
		return
	}
	if form == nil {
		WriteNotFound(w, "Feedback form not found")
		return
	}
	if !form.IsActive {
		WriteError(w, http.StatusConflict, "form_inactive", "This form is no longer accepting responses", nil)
		return
	}

	if err := validateAnswers(form, req.Answers); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}

	resp := &model.FeedbackResponse{
		ID:           uuid.New().String(),
		FormID:       form.ID,
		RespondentID: middleware.ClaimsFrom(r).UserID,
		Answers:      req.Answers,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := h.store.CreateFeedbackResponse(ctx, resp); err != nil {
		h.WriteInternalError(w, "storing feedback response", err)
		return
	}
	WriteCreated(w, resp)
}

// ListFeedbackResponses returns all responses for a form. Admin only.
func (h *Handler) ListFeedbackResponses(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "id")

	form, err := h.store.GetFeedbackForm(r.Context(), formID)
	if err != nil {
		h.WriteInternalError(w, "getting feedback form", err)
		return
	}
	if form == nil {
		WriteNotFound(w, "Feedback form not found")
		return
	}

	responses, err := h.store.ListFeedbackResponses(r.Context(), formID)
	if err != nil {
		h.WriteInternalError(w, "listing feedback responses", err)
		return
	}
	WriteSuccess(w, responses, &Meta{Total: len(responses)})
}

// validateAnswers checks submitted answers against the form definition:
// every answered question must exist on the form and every required
// question must be answered with a non-empty value.
func validateAnswers(form *model.FeedbackForm, answers map[string]any) error {
	questions := make(map[string]model.FeedbackQuestion, len(form.Questions))
	for _, q := range form.Questions {
		questions[q.ID] = q
	}

	for qid := range answers {
		if _, ok := questions[qid]; !ok {
			return fmt.Errorf("answer for unknown question %q", qid)
		}
	}

	for _, q := range form.Questions {
		if !q.Required {
			continue
		}
		v, ok := answers[q.ID]
		if !ok || v == nil {
			return fmt.Errorf("question %q requires an answer", q.ID)
		}
		if s, isString := v.(string); isString && s == "" {
			return fmt.Errorf("question %q requires an answer", q.ID)
		}
	}
	return nil
}
