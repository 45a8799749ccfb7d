// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/auth"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/middleware"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

type createUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type updateUserRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// ListUsers returns all accounts, newest first.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.WriteInternalError(w, "listing users", err)
		return
	}
	WriteSuccess(w, users, &Meta{Total: len(users)})
}

// GetUser returns a single account by ID.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting user", err)
		return
	}
	if user == nil {
		WriteNotFound(w, "User not found")
		return
	}
	WriteSuccess(w, user, nil)
}

// CreateUser creates an account with any role. Admin only.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid user payload", nil)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		WriteBadRequest(w, "A valid email is required", nil)
		return
	}
	if len(req.Password) < minPasswordLength {
		WriteBadRequest(w, "Password must be at least 8 characters", nil)
		return
	}
	if !model.IsValidRole(req.Role) {
		WriteBadRequest(w, "Unknown role", map[string]string{"role": req.Role})
		return
	}

	ctx := r.Context()
	existing, err := h.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		h.WriteInternalError(w, "looking up user", err)
		return
	}
	if existing != nil {
		WriteError(w, http.StatusConflict, "email_taken", "Email is already registered", nil)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.WriteInternalError(w, "hashing password", err)
		return
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.store.CreateUser(ctx, user); err != nil {
		h.WriteInternalError(w, "creating user", err)
		return
	}

	h.logger.Info("user created", "user", user.ID, "role", user.Role, "by", middleware.ClaimsFrom(r).UserID)
	WriteCreated(w, user)
}

// UpdateUser applies a partial update to an account. Admin only.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid user payload", nil)
		return
	}

	ctx := r.Context()
	user, err := h.store.GetUserByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting user", err)
		return
	}
	if user == nil {
		WriteNotFound(w, "User not found")
		return
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" || !strings.Contains(email, "@") {
			WriteBadRequest(w, "A valid email is required", nil)
			return
		}
		if !strings.EqualFold(email, user.Email) {
			existing, err := h.store.GetUserByEmail(ctx, email)
			if err != nil {
				h.WriteInternalError(w, "looking up user", err)
				return
			}
			if existing != nil {
				WriteError(w, http.StatusConflict, "email_taken", "Email is already registered", nil)
				return
			}
		}
		user.Email = email
	}
	if req.Role != nil {
		if !model.IsValidRole(*req.Role) {
			WriteBadRequest(w, "Unknown role", map[string]string{"role": *req.Role})
			return
		}
		user.Role = *req.Role
	}
	if req.Password != nil {
		if len(*req.Password) < minPasswordLength {
			WriteBadRequest(w, "Password must be at least 8 characters", nil)
			return
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			h.WriteInternalError(w, "hashing password", err)
			return
		}
		user.PasswordHash = hash
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateUser(ctx, user); err != nil {
		h.WriteStoreError(w, "updating user", err)
		return
	}
	WriteSuccess(w, user, nil)
}

// DeleteUser removes an account. Admins cannot delete themselves so the
// portal always keeps at least one working admin login.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if claims := middleware.ClaimsFrom(r); claims != nil && claims.UserID == id {
		WriteBadRequest(w, "You cannot delete your own account", nil)
		return
	}

	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		h.WriteInternalError(w, "deleting user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
