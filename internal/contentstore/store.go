// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package contentstore reconciles page content between the remote API, an
// in-memory cache, and a persistent mirror. The remote API is the source of
// truth; reads prefer availability, writes prefer consistency.
package contentstore

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/cache"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// SeedFailure records one default page that could not be pushed to the API
// during initialization.
type SeedFailure struct {
	PageID string
	Err    error
}

// InitReport is the typed outcome of Initialize. Seed failures are reported
// here rather than only logged so callers can assert on partial outcomes.
type InitReport struct {
	// Pages is the number of pages available after initialization.
	Pages int
	// FromDefaults is true when the API was unreachable and the store
	// initialized entirely from static defaults.
	FromDefaults bool
	// SeedFailures lists defaults that could not be persisted remotely.
	SeedFailures []SeedFailure
}

// Options configures a ContentStore. Zero-value fields get working defaults
// so tests can construct a store with only the pieces they care about.
type Options struct {
	APIBaseURL string
	HTTPClient *http.Client
	// TokenSource supplies the current session token for API writes. Nil
	// leaves writes unauthenticated.
	TokenSource func() string
	Cache       cache.Cache
	Mirror      Mirror
	Defaults    map[string]*model.PageContent
	Logger      *slog.Logger
	// GlobalEventDelay separates the page event from the global event.
	// Zero fires the global event synchronously after the page event;
	// production callers pass DefaultGlobalEventDelay.
	GlobalEventDelay time.Duration
}

// ContentStore is the process-wide content engine. Create one per process
// at the composition root.
type ContentStore struct {
	client   *Client
	cache    cache.Cache
	pages    *cache.TypedCache[*model.PageContent]
	mirror   Mirror
	defaults map[string]*model.PageContent
	logger   *slog.Logger
	events   *Broadcaster

	// initMu guards initDone; report and initErr are written once before
	// initDone is closed.
	initMu   sync.Mutex
	initDone chan struct{}
	report   *InitReport
	initErr  error

	// savingMu guards saving, the per-page in-flight save set.
	savingMu sync.Mutex
	saving   map[string]struct{}
}

// New creates a content store from options.
func New(opts Options) *ContentStore {
	if opts.Cache == nil {
		opts.Cache = cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Hour})
	}
	if opts.Mirror == nil {
		opts.Mirror = NewMemoryMirror()
	}
	if opts.Defaults == nil {
		opts.Defaults = DefaultPages()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &ContentStore{
		client:   NewClient(opts.APIBaseURL, opts.HTTPClient, opts.TokenSource),
		cache:    opts.Cache,
		pages:    cache.NewTypedCache[*model.PageContent](opts.Cache, "content:"),
		mirror:   opts.Mirror,
		defaults: opts.Defaults,
		logger:   opts.Logger,
		events:   NewBroadcaster(opts.GlobalEventDelay),
		saving:   make(map[string]struct{}),
	}
}

// Events exposes the change broadcaster for subscribers.
func (s *ContentStore) Events() *Broadcaster {
	return s.events
}

// Initialize loads the full content collection. Concurrent callers share
// one in-flight run and receive the same report. Initialization is terminal:
// once it completes it is never re-run for the store's lifetime.
func (s *ContentStore) Initialize(ctx context.Context) (*InitReport, error) {
	s.initMu.Lock()
	if s.initDone != nil {
		done := s.initDone
		s.initMu.Unlock()
		select {
		case <-done:
			return s.report, s.initErr
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	done := make(chan struct{})
	s.initDone = done
	s.initMu.Unlock()

	report := s.runInit(ctx)
	s.report = report
	close(done)
	return report, nil
}

// runInit performs the actual initialization sequence. It never fails: an
// unreachable API degrades to the static default set.
func (s *ContentStore) runInit(ctx context.Context) *InitReport {
	report := &InitReport{}

	pages, err := s.client.FetchAll(ctx)
	if err != nil {
		s.logger.Warn("content api unavailable, initializing from defaults", "error", err)
		report.FromDefaults = true
		for id, def := range s.defaults {
			s.seedDefault(ctx, id, def, report)
		}
		report.Pages = len(s.defaults)
		return report
	}

	seen := make(map[string]bool, len(pages))
	for i := range pages {
		pc := &pages[i]
		seen[pc.ID] = true
		s.cachePage(ctx, pc)
	}

	// Defaults the API does not know about yet get pushed and included.
	for id, def := range s.defaults {
		if seen[id] {
			continue
		}
		s.seedDefault(ctx, id, def, report)
		seen[id] = true
	}

	report.Pages = len(seen)
	return report
}

// seedDefault pushes one default page to the API best-effort and caches it
// locally regardless of the push outcome.
func (s *ContentStore) seedDefault(ctx context.Context, id string, def *model.PageContent, report *InitReport) {
	if err := s.client.PutPage(ctx, def); err != nil {
		s.logger.Warn("seeding default page failed", "page", id, "error", err)
		report.SeedFailures = append(report.SeedFailures, SeedFailure{PageID: id, Err: err})
	}
	s.cachePage(ctx, def.Clone())
}

// cachePage writes a page to the in-memory cache and the persistent mirror.
// Both writes are best-effort.
func (s *ContentStore) cachePage(ctx context.Context, pc *model.PageContent) {
	if err := s.pages.Set(ctx, pc.ID, pc, 0); err != nil {
		s.logger.Warn("caching page failed", "page", pc.ID, "error", err)
	}
	if err := s.mirror.Store(pc); err != nil {
		s.logger.Warn("mirroring page failed", "page", pc.ID, "error", err)
	}
}

// PageContent returns the content for one page: cache, then API, then the
// static default. A (nil, nil) return means the page does not exist anywhere
// and callers should render an empty state.
func (s *ContentStore) PageContent(ctx context.Context, pageID string) (*model.PageContent, error) {
	if _, err := s.Initialize(ctx); err != nil {
		return nil, err
	}

	if pc, err := s.pages.Get(ctx, pageID); err == nil {
		return pc, nil
	}

	pc, err := s.client.FetchPage(ctx, pageID)
	if err == nil {
		s.cachePage(ctx, pc)
		return pc, nil
	}

	def := s.defaults[pageID]
	if errors.Is(err, ErrNotFound) {
		if def == nil {
			return nil, nil
		}
		// The API has never seen this page; push the default best-effort.
		if perr := s.client.PutPage(ctx, def); perr != nil {
			s.logger.Warn("persisting default page failed", "page", pageID, "error", perr)
		}
		s.cachePage(ctx, def.Clone())
		return def.Clone(), nil
	}

	// Transient failure: serve the default without persisting or caching so
	// the next read retries the API.
	s.logger.Warn("fetching page failed, serving default", "page", pageID, "error", err)
	if def == nil {
		return nil, nil
	}
	return def.Clone(), nil
}

// PageContentSync is the non-blocking read path: cache, then mirror, then
// defaults. It never touches the network and never fails; a mirror parse
// error counts as absent.
func (s *ContentStore) PageContentSync(pageID string) *model.PageContent {
	ctx := context.Background()

	if pc, err := s.pages.Get(ctx, pageID); err == nil {
		return pc
	}

	pc, err := s.mirror.Load(pageID)
	if err != nil {
		s.logger.Debug("mirror read failed", "page", pageID, "error", err)
	} else if pc != nil {
		return pc
	}

	if def := s.defaults[pageID]; def != nil {
		return def.Clone()
	}
	return nil
}

// SavePageContent writes a page to the remote API, then updates the cache
// and mirror and broadcasts the change. A duplicate concurrent save for the
// same page is dropped: logged, nil error, no second network write. A failed
// remote write mutates nothing locally.
func (s *ContentStore) SavePageContent(ctx context.Context, pageID string, pc *model.PageContent) error {
	s.savingMu.Lock()
	if _, inflight := s.saving[pageID]; inflight {
		s.savingMu.Unlock()
		s.logger.Warn("save already in flight, dropping duplicate", "page", pageID)
		return nil
	}
	s.saving[pageID] = struct{}{}
	s.savingMu.Unlock()

	defer func() {
		s.savingMu.Lock()
		delete(s.saving, pageID)
		s.savingMu.Unlock()
	}()

	content := pc.Clone()
	content.ID = pageID
	content.UpdatedAt = time.Now().UTC()
	if err := content.Validate(); err != nil {
		return err
	}

	// Remote write first. Local state never runs ahead of the API.
	if err := s.client.PutPage(ctx, content); err != nil {
		return err
	}

	s.cachePage(ctx, content)
	s.events.Notify(pageID)
	return nil
}

// InvalidateCache clears the given pages from the cache and the mirror, or
// everything when no IDs are given. The next read will hit the API.
func (s *ContentStore) InvalidateCache(ctx context.Context, pageIDs ...string) error {
	if len(pageIDs) == 0 {
		if err := s.cache.Clear(ctx); err != nil {
			return err
		}
		return s.mirror.Clear()
	}

	for _, id := range pageIDs {
		if err := s.pages.Delete(ctx, id); err != nil {
			return err
		}
		if err := s.mirror.Remove(id); err != nil {
			return err
		}
	}
	return nil
}

// ResetToDefault pushes every static default to the API best-effort, then
// unconditionally replaces the cache and mirror with the defaults. This is
// the one operation where local state may run ahead of the API; it exists
// for explicit administrative resets.
func (s *ContentStore) ResetToDefault(ctx context.Context) error {
	for id, def := range s.defaults {
		if err := s.client.PutPage(ctx, def); err != nil {
			s.logger.Warn("pushing default page failed", "page", id, "error", err)
		}
	}

	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("clearing cache failed", "error", err)
	}
	if err := s.mirror.Clear(); err != nil {
		s.logger.Warn("clearing mirror failed", "error", err)
	}

	for _, def := range s.defaults {
		s.cachePage(ctx, def.Clone())
	}
	return nil
}
