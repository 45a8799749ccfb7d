// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package filestore

import (
	"context"
	"fmt"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

func cloneTask(t model.Task) *model.Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return &t
}

// CreateProject stores a new mentorship project.
func (s *Store) CreateProject(ctx context.Context, p *model.Project) error {
	if _, exists := s.projects.get(p.ID); exists {
		return fmt.Errorf("project %s already exists", p.ID)
	}
	return s.projects.put(p.ID, *p)
}

// GetProject returns the project with the given ID, or (nil, nil) when absent.
func (s *Store) GetProject(ctx context.Context, id string) (*model.Project, error) {
	p, ok := s.projects.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// ListProjects returns all projects ordered by creation time.
func (s *Store) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects := s.projects.list()
	sortByCreated(projects,
		func(p model.Project) int64 { return p.CreatedAt.UnixNano() },
		func(p model.Project) string { return p.ID })
	return projects, nil
}

// ListProjectsForUser returns projects where the user is the mentor or the
// mentee.
func (s *Store) ListProjectsForUser(ctx context.Context, userID string) ([]model.Project, error) {
	var out []model.Project
	for _, p := range s.projects.list() {
		if p.MentorID == userID || p.MenteeID == userID {
			out = append(out, p)
		}
	}
	sortByCreated(out,
		func(p model.Project) int64 { return p.CreatedAt.UnixNano() },
		func(p model.Project) string { return p.ID })
	return out, nil
}

// UpdateProject replaces the stored project.
func (s *Store) UpdateProject(ctx context.Context, p *model.Project) error {
	if _, ok := s.projects.get(p.ID); !ok {
		return fmt.Errorf("project %s: %w", p.ID, model.ErrNotFound)
	}
	return s.projects.put(p.ID, *p)
}

// DeleteProject removes the project and all of its tasks.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	if err := s.projects.delete(id); err != nil {
		return err
	}
	for _, t := range s.tasks.list() {
		if t.ProjectID == id {
			if err := s.tasks.delete(t.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateTask stores a new project task.
func (s *Store) CreateTask(ctx context.Context, t *model.Task) error {
	if _, exists := s.tasks.get(t.ID); exists {
		return fmt.Errorf("task %s already exists", t.ID)
	}
	if _, ok := s.projects.get(t.ProjectID); !ok {
		return fmt.Errorf("project %s: %w", t.ProjectID, model.ErrNotFound)
	}
	return s.tasks.put(t.ID, *cloneTask(*t))
}

// GetTask returns the task with the given ID, or (nil, nil) when absent.
func (s *Store) GetTask(ctx context.Context, id string) (*model.Task, error) {
	t, ok := s.tasks.get(id)
	if !ok {
		return nil, nil
	}
	return cloneTask(t), nil
}

// ListTasks returns every task in the project, ordered by creation time.
func (s *Store) ListTasks(ctx context.Context, projectID string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range s.tasks.list() {
		if t.ProjectID == projectID {
			out = append(out, *cloneTask(t))
		}
	}
	sortByCreated(out,
		func(t model.Task) int64 { return t.CreatedAt.UnixNano() },
		func(t model.Task) string { return t.ID })
	return out, nil
}

// UpdateTask replaces the stored task.
func (s *Store) UpdateTask(ctx context.Context, t *model.Task) error {
	if _, ok := s.tasks.get(t.ID); !ok {
		return fmt.Errorf("task %s: %w", t.ID, model.ErrNotFound)
	}
	return s.tasks.put(t.ID, *cloneTask(*t))
}

// DeleteTask removes the task. Deleting a missing task is a no-op.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.tasks.delete(id)
}
