// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/middleware"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/service"
)

// maxUploadSize bounds a single media upload to 20 MiB.
const maxUploadSize = 20 << 20

// ListMedia returns the media library, newest first. Admin only.
func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	media, err := h.store.ListMedia(r.Context())
	if err != nil {
		h.WriteInternalError(w, "listing media", err)
		return
	}
	WriteSuccess(w, media, &Meta{Total: len(media)})
}

// GetMedia returns one media record by ID. Admin only.
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	media, err := h.store.GetMedia(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting media", err)
		return
	}
	if media == nil {
		WriteNotFound(w, "Media not found")
		return
	}
	WriteSuccess(w, media, nil)
}

// UploadMedia accepts a multipart upload under the "file" field. Admin only.
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		WriteBadRequest(w, "Invalid multipart upload", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "A file field is required", nil)
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	media, err := h.media.Upload(r.Context(), file, header.Filename, mimeType, middleware.ClaimsFrom(r).UserID)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedMediaType) {
			WriteError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", err.Error(), nil)
			return
		}
		h.WriteInternalError(w, "storing upload", err)
		return
	}

	h.logger.Info("media uploaded", "media", media.ID, "filename", media.Filename, "size", media.Size)
	WriteCreated(w, media)
}

type updateMediaRequest struct {
	Alt         *string `json:"alt"`
	Description *string `json:"description"`
}

// UpdateMedia edits a record's alt text and description. The file itself is
// immutable; re-upload to change it. Admin only.
func (h *Handler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	var req updateMediaRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid media payload", nil)
		return
	}

	ctx := r.Context()
	media, err := h.store.GetMedia(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting media", err)
		return
	}
	if media == nil {
		WriteNotFound(w, "Media not found")
		return
	}

	if req.Alt != nil {
		media.Alt = *req.Alt
	}
	if req.Description != nil {
		media.Description = *req.Description
	}
	media.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateMedia(ctx, media); err != nil {
		h.WriteStoreError(w, "updating media", err)
		return
	}
	WriteSuccess(w, media, nil)
}

// DeleteMedia removes a record and its files. Admin only.
func (h *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if err := h.media.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.WriteInternalError(w, "deleting media", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
