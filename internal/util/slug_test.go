// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Mentorship  Program!", "mentorship-program"},
		{"Café Résumé", "cafe-resume"},
		{"--leading and trailing--", "leading-and-trailing"},
		{"UPPER case", "upper-case"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.input), "Slugify(%q)", tt.input)
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"home", "about-us", "webinar-2026", "a"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "-home", "home-", "two--hyphens", "Upper", "with space", "ünïcode"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), "expected %q to be invalid", s)
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "team-photo.jpg", SanitizeFilename("Team Photo.JPG"))
	assert.Equal(t, "report.pdf", SanitizeFilename("Report.pdf"))
	assert.Equal(t, "file.png", SanitizeFilename("???.PNG"))
	assert.Equal(t, "notes", SanitizeFilename("Notes"))
}
