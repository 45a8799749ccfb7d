// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/auth"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/middleware"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password produce the same response so accounts cannot be enumerated.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid login payload", nil)
		return
	}

	ctx := r.Context()
	user, err := h.store.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		h.WriteInternalError(w, "looking up user", err)
		return
	}
	if user == nil {
		WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password", nil)
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		if err != nil {
			h.logger.Warn("password check failed", "user", user.ID, "error", err)
		}
		WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password", nil)
		return
	}

	// Upgrade hashes created with older cost parameters.
	if auth.NeedsRehash(user.PasswordHash) {
		if rehash, err := auth.HashPassword(req.Password); err == nil {
			user.PasswordHash = rehash
			user.UpdatedAt = time.Now().UTC()
			if err := h.store.UpdateUser(ctx, user); err != nil {
				h.logger.Warn("storing rehashed password failed", "user", user.ID, "error", err)
			}
		}
	}

	if err := h.store.RecordLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		h.logger.Warn("recording login failed", "user", user.ID, "error", err)
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.WriteInternalError(w, "issuing token", err)
		return
	}
	WriteSuccess(w, sessionResponse{Token: token, User: user}, nil)
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register creates a mentee account and issues a session token. Mentor and
// admin accounts are created by an admin through the users endpoints.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid registration payload", nil)
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
		Role:         model.RoleMentee,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.store.CreateUser(ctx, user); err != nil {
		h.WriteInternalError(w, "creating user", err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.WriteInternalError(w, "issuing token", err)
		return
	}

	h.logger.Info("mentee registered", "user", user.ID)
	WriteCreated(w, sessionResponse{Token: token, User: user})
}

// Me returns the authenticated user's current record.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r)

	user, err := h.store.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		h.WriteInternalError(w, "getting user", err)
		return
	}
	if user == nil {
		// The account was deleted after the token was issued.
		WriteError(w, http.StatusUnauthorized, "unauthorized", "Account no longer exists", nil)
		return
	}
	WriteSuccess(w, user, nil)
}
