// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/middleware"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

type webinarRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Speaker         string    `json:"speaker"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	MeetingURL      string    `json:"meetingUrl"`
	Status          string    `json:"status"`
}

func (req *webinarRequest) validate() (string, bool) {
	if req.Title == "" {
		return "Webinar title is required", false
	}
	if req.ScheduledAt.IsZero() {
		return "A scheduled time is required", false
	}
	if req.DurationMinutes <= 0 {
		return "Duration must be positive", false
	}
	switch req.Status {
	case "", model.WebinarScheduled, model.WebinarCompleted, model.WebinarCancelled:
	default:
		return "Unknown webinar status", false
	}
	return "", true
}

// ListWebinars returns all webinars ordered by scheduled time. Public.
func (h *Handler) ListWebinars(w http.ResponseWriter, r *http.Request) {
	webinars, err := h.store.ListWebinars(r.Context())
	if err != nil {
		h.WriteInternalError(w, "listing webinars", err)
		return
	}

	// ?upcoming=true keeps only future scheduled sessions.
	if r.URL.Query().Get("upcoming") == "true" {
		now := time.Now().UTC()
		upcoming := webinars[:0]
		for _, wb := range webinars {
			if wb.IsUpcoming(now) {
				upcoming = append(upcoming, wb)
			}
		}
		webinars = upcoming
	}
	WriteSuccess(w, webinars, &Meta{Total: len(webinars)})
}

// GetWebinar returns a single webinar by ID. Public.
func (h *Handler) GetWebinar(w http.ResponseWriter, r *http.Request) {
	webinar, err := h.store.GetWebinar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting webinar", err)
		return
	}
	if webinar == nil {
		WriteNotFound(w, "Webinar not found")
		return
	}
	WriteSuccess(w, webinar, nil)
}

// CreateWebinar schedules a webinar. Admin only.
func (h *Handler) CreateWebinar(w http.ResponseWriter, r *http.Request) {
	var req webinarRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid webinar payload", nil)
		return
	}
	if msg, ok := req.validate(); !ok {
		WriteBadRequest(w, msg, nil)
		return
	}

	status := req.Status
	if status == "" {
		status = model.WebinarScheduled
	}
	now := time.Now().UTC()
	webinar := &model.Webinar{
		ID:              uuid.New().String(),
		Title:           req.Title,
		Description:     req.Description,
		Speaker:         req.Speaker,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		MeetingURL:      req.MeetingURL,
		Status:          status,
		CreatedBy:       middleware.ClaimsFrom(r).UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.store.CreateWebinar(r.Context(), webinar); err != nil {
		h.WriteInternalError(w, "creating webinar", err)
		return
	}
	WriteCreated(w, webinar)
}

// UpdateWebinar replaces a webinar's details. Admin only.
func (h *Handler) UpdateWebinar(w http.ResponseWriter, r *http.Request) {
	var req webinarRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid webinar payload", nil)
		return
	}
	if msg, ok := req.validate(); !ok {
		WriteBadRequest(w, msg, nil)
		return
	}

	ctx := r.Context()
	webinar, err := h.store.GetWebinar(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting webinar", err)
		return
	}
	if webinar == nil {
		WriteNotFound(w, "Webinar not found")
		return
	}

	webinar.Title = req.Title
	webinar.Description = req.Description
	webinar.Speaker = req.Speaker
	webinar.ScheduledAt = req.ScheduledAt
	webinar.DurationMinutes = req.DurationMinutes
	webinar.MeetingURL = req.MeetingURL
	if req.Status != "" {
		webinar.Status = req.Status
	}
	webinar.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateWebinar(ctx, webinar); err != nil {
		h.WriteStoreError(w, "updating webinar", err)
		return
	}
	WriteSuccess(w, webinar, nil)
}

// DeleteWebinar removes a webinar. Admin only.
func (h *Handler) DeleteWebinar(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteWebinar(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.WriteInternalError(w, "deleting webinar", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
