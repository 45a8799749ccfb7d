// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package filestore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir, testLogger())
	require.NoError(t, err)
	return s, dir
}

func TestOpenEmptyDir(t *testing.T) {
	s, _ := openTestStore(t)
	defer s.Close()

	require.NoError(t, s.Ping(context.Background()))

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestMissingRecordsReturnNilNil(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	u, err := s.GetUserByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, u)

	pc, err := s.GetPageContent(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, pc)

	st, err := s.GetSetting(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, st)

	w, err := s.GetWebinar(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestUpdateOfMissingRecordSignalsNotFound(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	err := s.UpdateUser(ctx, &model.User{ID: "ghost", Email: "ghost@example.org"})
	require.ErrorIs(t, err, model.ErrNotFound)

	require.ErrorIs(t, s.RecordLogin(ctx, "ghost", now), model.ErrNotFound)
	require.ErrorIs(t, s.UpdateWebinar(ctx, &model.Webinar{ID: "ghost"}), model.ErrNotFound)
	require.ErrorIs(t, s.UpdateProject(ctx, &model.Project{ID: "ghost"}), model.ErrNotFound)
	require.ErrorIs(t, s.UpdateFeedbackForm(ctx, &model.FeedbackForm{ID: "ghost"}), model.ErrNotFound)
	require.ErrorIs(t, s.UpdateMedia(ctx, &model.Media{ID: "ghost"}), model.ErrNotFound)
	require.ErrorIs(t, s.UpdateTask(ctx, &model.Task{ID: "ghost", ProjectID: "ghost"}), model.ErrNotFound)
}

func TestUserCRUDAndEmailIndex(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	u := &model.User{
		ID:        "u1",
		Email:     "Mentor@Example.org",
		Role:      model.RoleMentor,
		FirstName: "Ada",
		LastName:  "Khan",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.CreateUser(ctx, u))

	// Lookup is case-insensitive.
	got, err := s.GetUserByEmail(ctx, "mentor@example.org")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)

	// Duplicate email is rejected regardless of case.
	dup := &model.User{ID: "u2", Email: "MENTOR@example.org", Role: model.RoleMentee, CreatedAt: now}
	require.Error(t, s.CreateUser(ctx, dup))

	// Email change moves the index entry.
	u.Email = "ada@example.org"
	require.NoError(t, s.UpdateUser(ctx, u))
	old, err := s.GetUserByEmail(ctx, "mentor@example.org")
	require.NoError(t, err)
	assert.Nil(t, old)
	moved, err := s.GetUserByEmail(ctx, "ada@example.org")
	require.NoError(t, err)
	require.NotNil(t, moved)

	require.NoError(t, s.RecordLogin(ctx, "u1", now.Add(time.Hour)))
	got, err = s.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, got.LastLoginAt.Equal(now.Add(time.Hour)))

	require.NoError(t, s.DeleteUser(ctx, "u1"))
	gone, err := s.GetUserByEmail(ctx, "ada@example.org")
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Deleting again is a no-op.
	require.NoError(t, s.DeleteUser(ctx, "u1"))
}

func TestPageContentPersistsAcrossReopen(t *testing.T) {
	s, dir := openTestStore(t)
	ctx := context.Background()

	pc := &model.PageContent{
		ID:   "home",
		Name: "Home",
		Sections: []model.ContentSection{
			{ID: "intro", Type: model.SectionHero, Title: "Welcome", Content: "Hello"},
		},
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.SavePageContent(ctx, pc))

	// Mutating the caller's copy must not affect the stored page.
	pc.Sections[0].Title = "changed"

	reopened, err := Open(dir, testLogger())
	require.NoError(t, err)
	got, err := reopened.GetPageContent(ctx, "home")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "Welcome", got.Sections[0].Title)
}

func TestCollectionFileIsWellFormedJSON(t *testing.T) {
	s, dir := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutSetting(ctx, &model.Setting{
		Key:   model.SettingKeyLogo,
		Value: json.RawMessage(`{"url":"/assets/logo.svg"}`),
	}))

	data, err := os.ReadFile(filepath.Join(dir, fileSettings))
	require.NoError(t, err)
	var m map[string]model.Setting
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, model.SettingKeyLogo)
}

func TestDeleteFeedbackFormCascadesResponses(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	form := &model.FeedbackForm{
		ID:    "f1",
		Title: "Webinar feedback",
		Questions: []model.FeedbackQuestion{
			{ID: "q1", Kind: model.QuestionRating, Label: "Overall rating"},
		},
		CreatedAt: now,
	}
	require.NoError(t, s.CreateFeedbackForm(ctx, form))
	require.NoError(t, s.CreateFeedbackResponse(ctx, &model.FeedbackResponse{
		ID: "r1", FormID: "f1", Answers: map[string]any{"q1": 5}, SubmittedAt: now,
	}))
	require.NoError(t, s.CreateFeedbackResponse(ctx, &model.FeedbackResponse{
		ID: "r2", FormID: "other", Answers: map[string]any{"q1": 3}, SubmittedAt: now,
	}))

	require.NoError(t, s.DeleteFeedbackForm(ctx, "f1"))

	orphans, err := s.ListFeedbackResponses(ctx, "f1")
	require.NoError(t, err)
	assert.Empty(t, orphans)

	kept, err := s.ListFeedbackResponses(ctx, "other")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestDeleteProjectCascadesTasks(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.CreateProject(ctx, &model.Project{
		ID: "p1", Title: "IBD cohort study", MentorID: "m1", MenteeID: "s1",
		Status: model.ProjectActive, CreatedAt: now,
	}))
	require.NoError(t, s.CreateTask(ctx, &model.Task{
		ID: "t1", ProjectID: "p1", Title: "Literature review", Status: model.TaskTodo, CreatedAt: now,
	}))

	// A task for an unknown project is rejected.
	require.Error(t, s.CreateTask(ctx, &model.Task{ID: "t2", ProjectID: "ghost", Title: "x"}))

	require.NoError(t, s.DeleteProject(ctx, "p1"))
	tasks, err := s.ListTasks(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestListProjectsForUser(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.CreateProject(ctx, &model.Project{
		ID: "p1", MentorID: "m1", MenteeID: "s1", Status: model.ProjectActive, CreatedAt: now,
	}))
	require.NoError(t, s.CreateProject(ctx, &model.Project{
		ID: "p2", MentorID: "m2", MenteeID: "s1", Status: model.ProjectActive, CreatedAt: now.Add(time.Second),
	}))
	require.NoError(t, s.CreateProject(ctx, &model.Project{
		ID: "p3", MentorID: "m1", MenteeID: "s2", Status: model.ProjectActive, CreatedAt: now.Add(2 * time.Second),
	}))

	mine, err := s.ListProjectsForUser(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "p1", mine[0].ID)
	assert.Equal(t, "p2", mine[1].ID)

	mentor, err := s.ListProjectsForUser(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, mentor, 2)
}

func TestWebinarsOrderedBySchedule(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.CreateWebinar(ctx, &model.Webinar{
		ID: "w2", Title: "Later", ScheduledAt: now.Add(48 * time.Hour),
		Status: model.WebinarScheduled, CreatedAt: now,
	}))
	require.NoError(t, s.CreateWebinar(ctx, &model.Webinar{
		ID: "w1", Title: "Sooner", ScheduledAt: now.Add(24 * time.Hour),
		Status: model.WebinarScheduled, CreatedAt: now,
	}))

	webinars, err := s.ListWebinars(ctx)
	require.NoError(t, err)
	require.Len(t, webinars, 2)
	assert.Equal(t, "w1", webinars[0].ID)
	assert.Equal(t, "w2", webinars[1].ID)
}
