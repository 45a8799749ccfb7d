// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose helpers shared across packages,
// including URL identifier generation with Unicode normalization.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonSlugChars matches anything outside lowercase ASCII letters,
	// digits and hyphens.
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	// hyphenRuns matches two or more consecutive hyphens.
	hyphenRuns = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a string to a URL-friendly identifier. Accents are
// stripped via Unicode decomposition, spaces become hyphens, and everything
// outside [a-z0-9-] is removed.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)

	out = strings.ToLower(out)
	out = strings.ReplaceAll(out, " ", "-")
	out = nonSlugChars.ReplaceAllString(out, "")
	out = hyphenRuns.ReplaceAllString(out, "-")

	return strings.Trim(out, "-")
}

// IsValidSlug reports whether s is a well-formed identifier: non-empty,
// limited to lowercase letters, digits and single interior hyphens.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	return !strings.Contains(s, "--")
}

// SanitizeFilename reduces an uploaded filename to a safe form, preserving
// the extension. The base name is slugified; an empty result falls back to
// "file".
func SanitizeFilename(name string) string {
	ext := ""
	if i := strings.LastIndex(name, "."); i > 0 {
		ext = strings.ToLower(name[i:])
		name = name[:i]
	}
	base := Slugify(name)
	if base == "" {
		base = "file"
	}
	return base + ext
}
