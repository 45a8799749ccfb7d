// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"time"
)

// Well-known setting keys.
const (
	SettingKeyLogo  = "logo"
	SettingKeyTheme = "theme"
)

// Setting is a site-wide configuration record keyed by a unique setting key.
// The value is free-form JSON; settings are created on first save, updated in
// place, and never hard-deleted (IsActive is available as a soft flag).
type Setting struct {
	Key       string          `json:"settingKey"`
	Value     json.RawMessage `json:"settingValue"`
	IsActive  bool            `json:"isActive"`
	UpdatedBy string          `json:"updatedById,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// DefaultLogoSetting returns the logo record used to self-initialize the
// "logo" key on first read.
func DefaultLogoSetting(now time.Time) *Setting {
	value, _ := json.Marshal(map[string]string{
		"url": "/assets/logo-default.svg",
		"alt": "GIReach Academia",
	})
	return &Setting{
		Key:       SettingKeyLogo,
		Value:     value,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
