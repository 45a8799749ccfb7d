// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package filestore is the JSON-file persistence backend. Each entity family
// lives in one JSON file under the data directory; every record set is held
// fully in memory and every mutation rewrites its file before returning.
//
// It serves deployments without a database: small data volumes, zero
// operational dependencies.
package filestore

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// Collection file names, one per entity family.
const (
	fileUsers     = "users.json"
	fileContents  = "page-contents.json"
	fileSettings  = "website-settings.json"
	fileForms     = "feedback-forms.json"
	fileResponses = "feedback-responses.json"
	fileWebinars  = "webinars.json"
	fileProjects  = "projects.json"
	fileTasks     = "tasks.json"
	fileMedia     = "media-library.json"
)

// Store implements the persistence contract over per-family JSON files.
type Store struct {
	dir    string
	logger *slog.Logger

	users     *collection[model.User]
	contents  *collection[model.PageContent]
	settings  *collection[model.Setting]
	forms     *collection[model.FeedbackForm]
	responses *collection[model.FeedbackResponse]
	webinars  *collection[model.Webinar]
	projects  *collection[model.Project]
	tasks     *collection[model.Task]
	media     *collection[model.Media]

	// emailMu guards emailIdx, the lowercase email -> user ID index.
	emailMu  sync.RWMutex
	emailIdx map[string]string
}

// Open loads all collection files from dir, creating the directory and the
// email index as needed.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}

	s := &Store{
		dir:      dir,
		logger:   logger,
		emailIdx: make(map[string]string),
	}

	var err error
	if s.users, err = openCollection[model.User](fileIn(dir, fileUsers)); err != nil {
		return nil, err
	}
	if s.contents, err = openCollection[model.PageContent](fileIn(dir, fileContents)); err != nil {
		return nil, err
	}
	if s.settings, err = openCollection[model.Setting](fileIn(dir, fileSettings)); err != nil {
		return nil, err
	}
	if s.forms, err = openCollection[model.FeedbackForm](fileIn(dir, fileForms)); err != nil {
		return nil, err
	}
	if s.responses, err = openCollection[model.FeedbackResponse](fileIn(dir, fileResponses)); err != nil {
		return nil, err
	}
	if s.webinars, err = openCollection[model.Webinar](fileIn(dir, fileWebinars)); err != nil {
		return nil, err
	}
	if s.projects, err = openCollection[model.Project](fileIn(dir, fileProjects)); err != nil {
		return nil, err
	}
	if s.tasks, err = openCollection[model.Task](fileIn(dir, fileTasks)); err != nil {
		return nil, err
	}
	if s.media, err = openCollection[model.Media](fileIn(dir, fileMedia)); err != nil {
		return nil, err
	}

	for _, u := range s.users.list() {
		s.emailIdx[strings.ToLower(u.Email)] = u.ID
	}

	logger.Info("file store loaded",
		"dir", dir,
		"users", len(s.users.items),
		"pages", len(s.contents.items))
	return s, nil
}

// Ping reports whether the data directory is still writable.
func (s *Store) Ping(ctx context.Context) error {
	return ensureDir(s.dir)
}

// Close is a no-op; every mutation is already flushed to disk.
func (s *Store) Close() error {
	return nil
}

// sortByCreated orders records oldest-first with ID as a tiebreaker so list
// output is deterministic across restarts.
func sortByCreated[T any](items []T, created func(T) int64, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if ci != cj {
			return ci < cj
		}
		return id(items[i]) < id(items[j])
	})
}
