// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package contentstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// fakeAPI is an in-memory stand-in for the content API with request
// counters and toggleable failure modes.
type fakeAPI struct {
	mu    sync.Mutex
	pages map[string]model.PageContent

	lists atomic.Int64
	gets  atomic.Int64
	puts  atomic.Int64

	failAll  atomic.Bool // every request returns 500
	failPuts atomic.Bool // writes return 500

	// putStarted/putRelease let tests hold a PUT open.
	putStarted chan struct{}
	putRelease chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{pages: make(map[string]model.PageContent)}
}

func (f *fakeAPI) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	if f.failAll.Load() {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	pageID := strings.TrimPrefix(r.URL.Path, "/api/v1/content")
	pageID = strings.TrimPrefix(pageID, "/")

	switch {
	case r.Method == http.MethodGet && pageID == "":
		f.lists.Add(1)
		f.mu.Lock()
		out := make([]model.PageContent, 0, len(f.pages))
		for _, pc := range f.pages {
			out = append(out, pc)
		}
		f.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]any{"data": out})

	case r.Method == http.MethodGet:
		f.gets.Add(1)
		f.mu.Lock()
		pc, ok := f.pages[pageID]
		f.mu.Unlock()
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": pc})

	case r.Method == http.MethodPut:
		if f.putStarted != nil {
			f.putStarted <- struct{}{}
			<-f.putRelease
		}
		if f.failPuts.Load() {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		f.puts.Add(1)
		var pc model.PageContent
		if err := json.NewDecoder(r.Body).Decode(&pc); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		pc.ID = pageID
		f.mu.Lock()
		f.pages[pageID] = pc
		f.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]any{"data": pc})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func newTestStore(t *testing.T, api *fakeAPI) *ContentStore {
	t.Helper()
	srv := api.server(t)
	return New(Options{
		APIBaseURL:       srv.URL,
		Logger:           quietLogger(),
		GlobalEventDelay: 10 * time.Millisecond,
	})
}

func TestInitializeIsSingleFlight(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)
	ctx := context.Background()

	const callers = 10
	reports := make([]*InitReport, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := s.Initialize(ctx)
			require.NoError(t, err)
			reports[i] = r
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), api.lists.Load(), "exactly one collection fetch")
	for i := 1; i < callers; i++ {
		assert.Same(t, reports[0], reports[i], "all callers share one report")
	}
}

func TestInitializeSeedsMissingDefaults(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)

	report, err := s.Initialize(context.Background())
	require.NoError(t, err)
	assert.False(t, report.FromDefaults)
	assert.Empty(t, report.SeedFailures)
	assert.Equal(t, len(DefaultPages()), report.Pages)

	// Every default was pushed to the empty API.
	api.mu.Lock()
	defer api.mu.Unlock()
	for id := range DefaultPages() {
		assert.Contains(t, api.pages, id)
	}
}

func TestInitializeFallsBackToDefaults(t *testing.T) {
	api := newFakeAPI()
	api.failAll.Store(true)
	s := newTestStore(t, api)

	report, err := s.Initialize(context.Background())
	require.NoError(t, err)
	assert.True(t, report.FromDefaults)
	assert.Equal(t, len(DefaultPages()), report.Pages)
	// Seeding failed for every page but initialization still succeeded.
	assert.Len(t, report.SeedFailures, len(DefaultPages()))

	pc := s.PageContentSync("home")
	require.NotNil(t, pc)
	assert.Equal(t, "Home", pc.Name)
}

func TestSeedFailuresAreReported(t *testing.T) {
	api := newFakeAPI()
	api.failPuts.Store(true)
	s := newTestStore(t, api)

	report, err := s.Initialize(context.Background())
	require.NoError(t, err)
	assert.False(t, report.FromDefaults)
	require.Len(t, report.SeedFailures, len(DefaultPages()))
	for _, sf := range report.SeedFailures {
		assert.NotEmpty(t, sf.PageID)
		assert.Error(t, sf.Err)
	}
}

func TestPageContentFallsBackToDefaultOnServerError(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)
	ctx := context.Background()

	_, err := s.Initialize(ctx)
	require.NoError(t, err)

	// Break the API and force a cache miss.
	api.failAll.Store(true)
	require.NoError(t, s.InvalidateCache(ctx))

	pc, err := s.PageContent(ctx, "home")
	require.NoError(t, err)
	require.NotNil(t, pc)
	assert.Equal(t, "Home", pc.Name)
}

func TestPageContentUnknownPageReturnsNil(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)
	ctx := context.Background()

	pc, err := s.PageContent(ctx, "nonexistent-page")
	require.NoError(t, err)
	assert.Nil(t, pc)
}

func TestWriteThenReadServedFromCache(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)
	ctx := context.Background()

	_, err := s.Initialize(ctx)
	require.NoError(t, err)

	edited := &model.PageContent{
		Name: "About Us",
		Sections: []model.ContentSection{
			{ID: "mission", Type: model.SectionText, Title: "Mission", Content: "Edited."},
		},
	}
	require.NoError(t, s.SavePageContent(ctx, "about", edited))

	getsBefore := api.gets.Load()
	pc, err := s.PageContent(ctx, "about")
	require.NoError(t, err)
	require.NotNil(t, pc)
	assert.Equal(t, "Edited.", pc.Sections[0].Content)
	assert.Equal(t, getsBefore, api.gets.Load(), "read must be served from cache")
}

func TestDuplicateSaveIsDropped(t *testing.T) {
	api := newFakeAPI()
	api.putStarted = make(chan struct{}, 1)
	api.putRelease = make(chan struct{})
	srv := api.server(t)
	s := New(Options{
		APIBaseURL:       srv.URL,
		Logger:           quietLogger(),
		GlobalEventDelay: 10 * time.Millisecond,
	})
	ctx := context.Background()

	pc := &model.PageContent{
		Name: "Home",
		Sections: []model.ContentSection{
			{ID: "hero", Type: model.SectionHero, Title: "Hi"},
		},
	}

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.SavePageContent(ctx, "home", pc)
	}()

	// Wait until the first save's PUT is in flight, then issue a duplicate.
	<-api.putStarted
	err := s.SavePageContent(ctx, "home", pc)
	require.NoError(t, err, "duplicate save returns nil without writing")

	close(api.putRelease)
	require.NoError(t, <-firstDone)
	assert.Equal(t, int64(1), api.puts.Load(), "exactly one network write")
}

func TestSaveSendsSessionToken(t *testing.T) {
	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			got.Store(r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(map[string]any{"data": model.PageContent{}})
	}))
	t.Cleanup(srv.Close)

	s := New(Options{
		APIBaseURL:  srv.URL,
		TokenSource: func() string { return "session-token" },
		Logger:      quietLogger(),
	})

	pc := &model.PageContent{
		Name:     "Home",
		Sections: []model.ContentSection{{ID: "hero", Type: model.SectionHero, Title: "Hi"}},
	}
	require.NoError(t, s.SavePageContent(context.Background(), "home", pc))
	assert.Equal(t, "Bearer session-token", got.Load())
}

func TestFailedSaveMutatesNothing(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)
	ctx := context.Background()

	_, err := s.Initialize(ctx)
	require.NoError(t, err)

	before, err := s.PageContent(ctx, "home")
	require.NoError(t, err)
	require.NotNil(t, before)

	api.failPuts.Store(true)
	edited := before.Clone()
	edited.Sections[0].Title = "Broken edit"
	require.Error(t, s.SavePageContent(ctx, "home", edited))

	after, err := s.PageContent(ctx, "home")
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, before.Sections[0].Title, after.Sections[0].Title)
}

func TestSaveFailsAgainOnNextAttemptNotBlocked(t *testing.T) {
	api := newFakeAPI()
	api.failPuts.Store(true)
	s := newTestStore(t, api)
	ctx := context.Background()

	pc := &model.PageContent{
		Name:     "Home",
		Sections: []model.ContentSection{{ID: "hero", Type: model.SectionHero, Title: "Hi"}},
	}
	require.Error(t, s.SavePageContent(ctx, "home", pc))

	// The in-flight guard was cleared; the retry reaches the network again.
	api.failPuts.Store(false)
	require.NoError(t, s.SavePageContent(ctx, "home", pc))
}

func TestEventOrdering(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)
	ctx := context.Background()

	var (
		mu    sync.Mutex
		order []string
	)
	global := make(chan struct{})
	s.Events().OnPageUpdated(func(pageID string) {
		mu.Lock()
		order = append(order, "page:"+pageID)
		mu.Unlock()
	})
	s.Events().OnContentChanged(func() {
		mu.Lock()
		order = append(order, "global")
		mu.Unlock()
		close(global)
	})

	pc := &model.PageContent{
		Name:     "Home",
		Sections: []model.ContentSection{{ID: "hero", Type: model.SectionHero, Title: "Hi"}},
	}
	require.NoError(t, s.SavePageContent(ctx, "home", pc))

	select {
	case <-global:
	case <-time.After(2 * time.Second):
		t.Fatal("global event never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"page:home", "global"}, order)
}

func TestZeroDelayFiresGlobalEventSynchronously(t *testing.T) {
	api := newFakeAPI()
	srv := api.server(t)
	s := New(Options{
		APIBaseURL: srv.URL,
		Logger:     quietLogger(),
		// GlobalEventDelay left zero on purpose.
	})
	ctx := context.Background()

	var order []string
	s.Events().OnPageUpdated(func(pageID string) { order = append(order, "page:"+pageID) })
	s.Events().OnContentChanged(func() { order = append(order, "global") })

	pc := &model.PageContent{
		Name:     "Home",
		Sections: []model.ContentSection{{ID: "hero", Type: model.SectionHero, Title: "Hi"}},
	}
	require.NoError(t, s.SavePageContent(ctx, "home", pc))

	// Both events have fired, in order, by the time the save returns.
	require.Equal(t, []string{"page:home", "global"}, order)
}

func TestResetToDefault(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)
	ctx := context.Background()

	_, err := s.Initialize(ctx)
	require.NoError(t, err)

	edited := &model.PageContent{
		Name:     "Hacked Home",
		Sections: []model.ContentSection{{ID: "hero", Type: model.SectionHero, Title: "Edited"}},
	}
	require.NoError(t, s.SavePageContent(ctx, "home", edited))

	// Even with the API down, the local view resets immediately.
	api.failAll.Store(true)
	require.NoError(t, s.ResetToDefault(ctx))

	defaults := DefaultPages()
	for id, want := range defaults {
		got := s.PageContentSync(id)
		require.NotNil(t, got, "default page %s", id)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, len(want.Sections), len(got.Sections))
		if len(got.Sections) > 0 {
			assert.Equal(t, want.Sections[0].Title, got.Sections[0].Title)
		}
	}
}

func TestPageContentSyncFallsThroughMirror(t *testing.T) {
	mirror := NewMemoryMirror()
	require.NoError(t, mirror.Store(&model.PageContent{
		ID:   "archive",
		Name: "Archive",
		Sections: []model.ContentSection{
			{ID: "list", Type: model.SectionText, Title: "Past Webinars"},
		},
	}))

	api := newFakeAPI()
	srv := api.server(t)
	s := New(Options{
		APIBaseURL: srv.URL,
		Mirror:     mirror,
		Logger:     quietLogger(),
	})

	// Not in cache, not a default: served from the mirror, no network.
	pc := s.PageContentSync("archive")
	require.NotNil(t, pc)
	assert.Equal(t, "Archive", pc.Name)
	assert.Zero(t, api.gets.Load())

	// Unknown everywhere: nil, no panic.
	assert.Nil(t, s.PageContentSync("ghost"))
}

func TestInvalidateCacheSinglePage(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)
	ctx := context.Background()

	_, err := s.Initialize(ctx)
	require.NoError(t, err)

	require.NoError(t, s.InvalidateCache(ctx, "home"))

	getsBefore := api.gets.Load()
	_, err = s.PageContent(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, getsBefore+1, api.gets.Load(), "invalidated page refetches")
}
