// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package filestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

func cloneUser(u model.User) *model.User {
	if u.LastLoginAt != nil {
		t := *u.LastLoginAt
		u.LastLoginAt = &t
	}
	return &u
}

// CreateUser stores a new user and registers its email in the index.
// Email uniqueness is enforced case-insensitively.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	email := strings.ToLower(u.Email)

	s.emailMu.Lock()
	defer s.emailMu.Unlock()
	if _, taken := s.emailIdx[email]; taken {
		return fmt.Errorf("email %s already registered", u.Email)
	}
	if err := s.users.put(u.ID, *cloneUser(*u)); err != nil {
		return err
	}
	s.emailIdx[email] = u.ID
	return nil
}

// GetUserByID returns the user with the given ID, or (nil, nil) when absent.
func (s *Store) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := s.users.get(id)
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

// GetUserByEmail looks the user up through the email index, case-insensitively.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.emailMu.RLock()
	id, ok := s.emailIdx[strings.ToLower(email)]
	s.emailMu.RUnlock()
	if !ok {
		return nil, nil
	}
	return s.GetUserByID(ctx, id)
}

// ListUsers returns all users ordered by creation time.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	users := s.users.list()
	sortByCreated(users,
		func(u model.User) int64 { return u.CreatedAt.UnixNano() },
		func(u model.User) string { return u.ID })
	for i := range users {
		users[i] = *cloneUser(users[i])
	}
	return users, nil
}

// UpdateUser replaces the stored user, keeping the email index consistent
// when the address changed.
func (s *Store) UpdateUser(ctx context.Context, u *model.User) error {
	prev, ok := s.users.get(u.ID)
	if !ok {
		return fmt.Errorf("user %s: %w", u.ID, model.ErrNotFound)
	}

	s.emailMu.Lock()
	defer s.emailMu.Unlock()

	newEmail := strings.ToLower(u.Email)
	oldEmail := strings.ToLower(prev.Email)
	if newEmail != oldEmail {
		if owner, taken := s.emailIdx[newEmail]; taken && owner != u.ID {
			return fmt.Errorf("email %s already registered", u.Email)
		}
	}

	if err := s.users.put(u.ID, *cloneUser(*u)); err != nil {
		return err
	}
	if newEmail != oldEmail {
		delete(s.emailIdx, oldEmail)
		s.emailIdx[newEmail] = u.ID
	}
	return nil
}

// DeleteUser removes the user and its email index entry. Deleting a missing
// user is a no-op.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	u, ok := s.users.get(id)
	if !ok {
		return nil
	}
	if err := s.users.delete(id); err != nil {
		return err
	}
	s.emailMu.Lock()
	delete(s.emailIdx, strings.ToLower(u.Email))
	s.emailMu.Unlock()
	return nil
}

// RecordLogin stamps the user's last login time.
func (s *Store) RecordLogin(ctx context.Context, id string, at time.Time) error {
	u, ok := s.users.get(id)
	if !ok {
		return fmt.Errorf("user %s: %w", id, model.ErrNotFound)
	}
	u.LastLoginAt = &at
	u.UpdatedAt = at
	return s.users.put(id, u)
}
