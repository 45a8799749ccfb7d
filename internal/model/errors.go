// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "errors"

// ErrNotFound signals a mutation aimed at a record that does not exist.
// Reads signal absence with a (nil, nil) return instead; this sentinel exists
// for updates, where there is no entity to return and callers need to tell
// a vanished target apart from an I/O failure. Wrap it with context:
//
//	fmt.Errorf("user %s: %w", id, model.ErrNotFound)
var ErrNotFound = errors.New("record not found")
