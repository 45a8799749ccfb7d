// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package contentstore

import (
	"sync"
	"time"
)

// DefaultGlobalEventDelay separates the per-page update event from the
// global content-changed event. Subscribers re-rendering on the first event
// finish before the second fires. The exact interval is tunable.
const DefaultGlobalEventDelay = 150 * time.Millisecond

// Broadcaster delivers the two-phase change notification: a synchronous
// page-specific event, then a delayed global event.
type Broadcaster struct {
	mu              sync.Mutex
	pageListeners   []func(pageID string)
	globalListeners []func()
	delay           time.Duration
}

// NewBroadcaster creates a broadcaster with the given global-event delay.
// A zero delay fires the global listeners synchronously, right after the
// page listeners; a negative delay uses the default.
func NewBroadcaster(delay time.Duration) *Broadcaster {
	if delay < 0 {
		delay = DefaultGlobalEventDelay
	}
	return &Broadcaster{delay: delay}
}

// OnPageUpdated registers a listener fired synchronously after each
// successful save with the saved page's ID.
func (b *Broadcaster) OnPageUpdated(fn func(pageID string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pageListeners = append(b.pageListeners, fn)
}

// OnContentChanged registers a listener fired after the delay whenever any
// page changes.
func (b *Broadcaster) OnContentChanged(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.globalListeners = append(b.globalListeners, fn)
}

// Notify fires the page listeners in registration order, then schedules the
// global listeners. The page event always completes before the global one.
func (b *Broadcaster) Notify(pageID string) {
	b.mu.Lock()
	page := make([]func(string), len(b.pageListeners))
	copy(page, b.pageListeners)
	global := make([]func(), len(b.globalListeners))
	copy(global, b.globalListeners)
	delay := b.delay
	b.mu.Unlock()

	for _, fn := range page {
		fn(pageID)
	}

	if len(global) == 0 {
		return
	}
	if delay == 0 {
		for _, fn := range global {
			fn()
		}
		return
	}
	time.AfterFunc(delay, func() {
		for _, fn := range global {
			fn()
		}
	})
}
