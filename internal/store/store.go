// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store defines the persistence contract shared by the relational
// and JSON-file backends. The backend is chosen once at startup; callers
// never branch on the storage kind.
//
// Lookups for records that do not exist return (nil, nil). Updates aimed at
// a record that does not exist return an error wrapping model.ErrNotFound.
// Other errors are reserved for real I/O and encoding failures.
package store

import (
	"context"
	"time"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// Store is the persistence interface implemented by dbstore and filestore.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, u *model.User) error
	DeleteUser(ctx context.Context, id string) error
	RecordLogin(ctx context.Context, id string, at time.Time) error

	// Page content
	GetPageContent(ctx context.Context, pageID string) (*model.PageContent, error)
	ListPageContents(ctx context.Context) ([]model.PageContent, error)
	SavePageContent(ctx context.Context, pc *model.PageContent) error
	DeletePageContent(ctx context.Context, pageID string) error

	// Settings
	GetSetting(ctx context.Context, key string) (*model.Setting, error)
	ListSettings(ctx context.Context) ([]model.Setting, error)
	PutSetting(ctx context.Context, s *model.Setting) error
	DeleteSetting(ctx context.Context, key string) error

	// Feedback forms and responses
	CreateFeedbackForm(ctx context.Context, f *model.FeedbackForm) error
	GetFeedbackForm(ctx context.Context, id string) (*model.FeedbackForm, error)
	ListFeedbackForms(ctx context.Context) ([]model.FeedbackForm, error)
	UpdateFeedbackForm(ctx context.Context, f *model.FeedbackForm) error
	DeleteFeedbackForm(ctx context.Context, id string) error
	CreateFeedbackResponse(ctx context.Context, r *model.FeedbackResponse) error
	ListFeedbackResponses(ctx context.Context, formID string) ([]model.FeedbackResponse, error)

	// Webinars
	CreateWebinar(ctx context.Context, w *model.Webinar) error
	GetWebinar(ctx context.Context, id string) (*model.Webinar, error)
	ListWebinars(ctx context.Context) ([]model.Webinar, error)
	UpdateWebinar(ctx context.Context, w *model.Webinar) error
	DeleteWebinar(ctx context.Context, id string) error

	// Projects and tasks
	CreateProject(ctx context.Context, p *model.Project) error
	GetProject(ctx context.Context, id string) (*model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	ListProjectsForUser(ctx context.Context, userID string) ([]model.Project, error)
	UpdateProject(ctx context.Context, p *model.Project) error
	DeleteProject(ctx context.Context, id string) error
	CreateTask(ctx context.Context, t *model.Task) error
	GetTask(ctx context.Context, id string) (*model.Task, error)
	ListTasks(ctx context.Context, projectID string) ([]model.Task, error)
	UpdateTask(ctx context.Context, t *model.Task) error
	DeleteTask(ctx context.Context, id string) error

	// Media library
	CreateMedia(ctx context.Context, m *model.Media) error
	GetMedia(ctx context.Context, id string) (*model.Media, error)
	ListMedia(ctx context.Context) ([]model.Media, error)
	UpdateMedia(ctx context.Context, m *model.Media) error
	DeleteMedia(ctx context.Context, id string) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}
