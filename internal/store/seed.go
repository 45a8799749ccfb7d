// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/auth"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/contentstore"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// Default admin credentials used only when seeding is explicitly enabled.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "changeme"
)

// Seed creates the initial admin account and the default site pages. It is
// idempotent: existing records are never touched.
func Seed(ctx context.Context, st Store, logger *slog.Logger) error {
	if err := seedAdmin(ctx, st, logger); err != nil {
		return err
	}
	return seedPages(ctx, st, logger)
}

func seedAdmin(ctx context.Context, st Store, logger *slog.Logger) error {
	existing, err := st.GetUserByEmail(ctx, DefaultAdminEmail)
	if err != nil {
		return fmt.Errorf("checking for admin user: %w", err)
	}
	if existing != nil {
		logger.Info("admin user already exists, skipping seed")
		return nil
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
		FirstName:    "Portal",
		LastName:     "Admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := st.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	logger.Info("created default admin user",
		"id", user.ID,
		"email", user.Email,
		"password", DefaultAdminPassword,
	)
	return nil
}

// seedPages stores the stock site pages for any page ID that has no record
// yet, so a fresh install serves real content immediately.
func seedPages(ctx context.Context, st Store, logger *slog.Logger) error {
	for id, page := range contentstore.DefaultPages() {
		existing, err := st.GetPageContent(ctx, id)
		if err != nil {
			return fmt.Errorf("checking page %s: %w", id, err)
		}
		if existing != nil {
			continue
		}

		pc := page.Clone()
		pc.UpdatedAt = time.Now().UTC()
		if err := st.SavePageContent(ctx, pc); err != nil {
			return fmt.Errorf("seeding page %s: %w", id, err)
		}
		logger.Info("seeded default page", "page", id)
	}
	return nil
}
