// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/contentstore"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/store"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/testutil"
)

func TestSeedIsIdempotent(t *testing.T) {
	st := testutil.OpenFileStore(t)

	ctx := t.Context()
	require.NoError(t, store.Seed(ctx, st, testutil.NewLogger()))

	admin, err := st.GetUserByEmail(ctx, store.DefaultAdminEmail)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	for id := range contentstore.DefaultPages() {
		page, err := st.GetPageContent(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, page, id)
		assert.NotEmpty(t, page.Sections, id)
	}

	// A second run keeps existing records untouched.
	home, err := st.GetPageContent(ctx, "home")
	require.NoError(t, err)
	home.Name = "Customized"
	require.NoError(t, st.SavePageContent(ctx, home))

	require.NoError(t, store.Seed(ctx, st, testutil.NewLogger()))

	home, err = st.GetPageContent(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "Customized", home.Name)

	users, err := st.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
