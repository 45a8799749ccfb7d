// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the REST handlers for the portal.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/auth"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/cache"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/service"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/store"
)

// renderedTTL bounds how long a rendered page may be served from cache.
const renderedTTL = 5 * time.Minute

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	store    store.Store
	tokens   *auth.TokenManager
	media    *service.MediaService
	rendered *cache.TypedCache[*service.RenderedPage]
	logger   *slog.Logger
}

// NewHandler creates the API handler group. The cache holds rendered pages
// for the public site.
func NewHandler(st store.Store, tokens *auth.TokenManager, media *service.MediaService, c cache.Cache, logger *slog.Logger) *Handler {
	return &Handler{
		store:    st,
		tokens:   tokens,
		media:    media,
		rendered: cache.NewTypedCache[*service.RenderedPage](c, "rendered:"),
		logger:   logger,
	}
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains collection metadata.
type Meta struct {
	Total int `json:"total,omitempty"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a 200 response in the data envelope.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// WriteCreated writes a 201 Created response in the data envelope.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Data: data})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: ErrorDetail{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteStoreError maps a storage failure to the API envelope. A write aimed
// at a record that vanished between the handler's existence check and the
// store call becomes a 404; anything else is a logged 500.
func (h *Handler) WriteStoreError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, model.ErrNotFound) {
		WriteNotFound(w, "Record not found")
		return
	}
	h.WriteInternalError(w, op, err)
}

// WriteInternalError logs the error and writes a generic 500 response.
func (h *Handler) WriteInternalError(w http.ResponseWriter, op string, err error) {
	h.logger.Error("internal error", "op", op, "error", err)
	WriteError(w, http.StatusInternalServerError, "internal_error", "Something went wrong", nil)
}

// decodeBody decodes a JSON request body, rejecting unknown fields.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
