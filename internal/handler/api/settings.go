// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/middleware"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// ListSettings returns every stored setting.
func (h *Handler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.ListSettings(r.Context())
	if err != nil {
		h.WriteInternalError(w, "listing settings", err)
		return
	}
	WriteSuccess(w, settings, &Meta{Total: len(settings)})
}

// GetSetting returns one setting. The logo key self-initializes: a read of
// an absent logo creates and persists the default before returning it.
func (h *Handler) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	ctx := r.Context()

	setting, err := h.store.GetSetting(ctx, key)
	if err != nil {
		h.WriteInternalError(w, "getting setting", err)
		return
	}

	if setting == nil && key == model.SettingKeyLogo {
		setting = model.DefaultLogoSetting(time.Now().UTC())
		if err := h.store.PutSetting(ctx, setting); err != nil {
			h.WriteInternalError(w, "initializing logo setting", err)
			return
		}
		h.logger.Info("logo setting self-initialized")
	}

	if setting == nil {
		WriteNotFound(w, "Setting not found")
		return
	}
	WriteSuccess(w, setting, nil)
}

// putSettingRequest is the write payload for a setting.
type putSettingRequest struct {
	Value    json.RawMessage `json:"settingValue"`
	IsActive *bool           `json:"isActive,omitempty"`
}

// PutSetting inserts or replaces a setting, stamping the acting user.
func (h *Handler) PutSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req putSettingRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid setting payload: "+err.Error(), nil)
		return
	}
	if len(req.Value) == 0 || !json.Valid(req.Value) {
		WriteBadRequest(w, "settingValue must be valid JSON", nil)
		return
	}

	ctx := r.Context()
	now := time.Now().UTC()

	setting, err := h.store.GetSetting(ctx, key)
	if err != nil {
		h.WriteInternalError(w, "getting setting", err)
		return
	}
	if setting == nil {
		setting = &model.Setting{Key: key, IsActive: true, CreatedAt: now}
	}

	setting.Value = req.Value
	setting.UpdatedAt = now
	if req.IsActive != nil {
		setting.IsActive = *req.IsActive
	}
	if claims := middleware.ClaimsFrom(r); claims != nil {
		setting.UpdatedBy = claims.UserID
	}

	if err := h.store.PutSetting(ctx, setting); err != nil {
		h.WriteInternalError(w, "saving setting", err)
		return
	}
	WriteSuccess(w, setting, nil)
}

// DeleteSetting removes a setting.
func (h *Handler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteSetting(r.Context(), chi.URLParam(r, "key")); err != nil {
		h.WriteInternalError(w, "deleting setting", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
