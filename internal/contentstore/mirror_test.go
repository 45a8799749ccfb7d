// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package contentstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

func TestFileMirrorRoundTrip(t *testing.T) {
	m, err := NewFileMirror(t.TempDir())
	require.NoError(t, err)

	pc := &model.PageContent{
		ID:   "home",
		Name: "Home",
		Sections: []model.ContentSection{
			{ID: "hero", Type: model.SectionHero, Title: "Welcome"},
		},
	}
	require.NoError(t, m.Store(pc))

	got, err := m.Load("home")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Home", got.Name)

	absent, err := m.Load("missing")
	require.NoError(t, err)
	assert.Nil(t, absent)

	require.NoError(t, m.Remove("home"))
	gone, err := m.Load("home")
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Removing again is a no-op.
	require.NoError(t, m.Remove("home"))
}

func TestFileMirrorCorruptFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	m, err := NewFileMirror(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	_, err = m.Load("bad")
	require.Error(t, err)
}

func TestFileMirrorClear(t *testing.T) {
	dir := t.TempDir()
	m, err := NewFileMirror(dir)
	require.NoError(t, err)

	require.NoError(t, m.Store(&model.PageContent{ID: "a", Name: "A"}))
	require.NoError(t, m.Store(&model.PageContent{ID: "b", Name: "B"}))
	require.NoError(t, m.Clear())

	got, err := m.Load("a")
	require.NoError(t, err)
	assert.Nil(t, got)
}
