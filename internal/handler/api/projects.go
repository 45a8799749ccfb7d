// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/auth"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/middleware"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

type projectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MentorID    string `json:"mentorId"`
	MenteeID    string `json:"menteeId"`
	Status      string `json:"status"`
}

// canAccessProject reports whether the caller may see a project: admins see
// everything, mentors and mentees only the projects they belong to.
func canAccessProject(claims *auth.Claims, p *model.Project) bool {
	if claims == nil {
		return false
	}
	return claims.Role == model.RoleAdmin || p.MentorID == claims.UserID || p.MenteeID == claims.UserID
}

// ListProjects returns the caller's projects, or all projects for admins.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r)

	var (
		projects []model.Project
		err      error
	)
	if claims.Role == model.RoleAdmin {
		projects, err = h.store.ListProjects(r.Context())
	} else {
		projects, err = h.store.ListProjectsForUser(r.Context(), claims.UserID)
	}
	if err != nil {
		h.WriteInternalError(w, "listing projects", err)
		return
	}
	WriteSuccess(w, projects, &Meta{Total: len(projects)})
}

// GetProject returns a single project the caller may access.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.store.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting project", err)
		return
	}
	// A project outside the caller's scope looks identical to a missing one.
	if project == nil || !canAccessProject(middleware.ClaimsFrom(r), project) {
		WriteNotFound(w, "Project not found")
		return
	}
	WriteSuccess(w, project, nil)
}

// CreateProject creates a mentorship project. Admin only.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid project payload", nil)
		return
	}
	if req.Title == "" {
		WriteBadRequest(w, "Project title is required", nil)
		return
	}
	if req.MentorID == "" || req.MenteeID == "" {
		WriteBadRequest(w, "A mentor and a mentee are required", nil)
		return
	}

	ctx := r.Context()
	for _, id := range []string{req.MentorID, req.MenteeID} {
		user, err := h.store.GetUserByID(ctx, id)
		if err != nil {
			h.WriteInternalError(w, "looking up user", err)
			return
		}
		if user == nil {
			WriteBadRequest(w, "Unknown user", map[string]string{"userId": id})
			return
		}
	}

	status := req.Status
	if status == "" {
		status = model.ProjectActive
	}
	now := time.Now().UTC()
	project := &model.Project{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		MentorID:    req.MentorID,
		MenteeID:    req.MenteeID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.store.CreateProject(ctx, project); err != nil {
		h.WriteInternalError(w, "creating project", err)
		return
	}
	WriteCreated(w, project)
}

// UpdateProject updates a project's details. Admin only.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid project payload", nil)
		return
	}

	ctx := r.Context()
	project, err := h.store.GetProject(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting project", err)
		return
	}
	if project == nil {
		WriteNotFound(w, "Project not found")
		return
	}

	if req.Title != "" {
		project.Title = req.Title
	}
	project.Description = req.Description
	if req.MentorID != "" {
		project.MentorID = req.MentorID
	}
	if req.MenteeID != "" {
		project.MenteeID = req.MenteeID
	}
	if req.Status != "" {
		project.Status = req.Status
	}
	project.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateProject(ctx, project); err != nil {
		h.WriteStoreError(w, "updating project", err)
		return
	}
	WriteSuccess(w, project, nil)
}

// DeleteProject removes a project and its tasks. Admin only.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.WriteInternalError(w, "deleting project", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type taskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssigneeID  string     `json:"assigneeId"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
}

// projectForCaller loads the project from the URL and enforces membership.
// It writes the error response itself and returns nil when the caller
// should not proceed.
func (h *Handler) projectForCaller(w http.ResponseWriter, r *http.Request) *model.Project {
	project, err := h.store.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.WriteInternalError(w, "getting project", err)
		return nil
	}
	if project == nil || !canAccessProject(middleware.ClaimsFrom(r), project) {
		WriteNotFound(w, "Project not found")
		return nil
	}
	return project
}

// ListTasks returns the tasks of a project the caller belongs to.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	project := h.projectForCaller(w, r)
	if project == nil {
		return
	}

	tasks, err := h.store.ListTasks(r.Context(), project.ID)
	if err != nil {
		h.WriteInternalError(w, "listing tasks", err)
		return
	}
	WriteSuccess(w, tasks, &Meta{Total: len(tasks)})
}

// CreateTask adds a task to a project the caller belongs to.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	project := h.projectForCaller(w, r)
	if project == nil {
		return
	}

	var req taskRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid task payload", nil)
		return
	}
	if req.Title == "" {
		WriteBadRequest(w, "Task title is required", nil)
		return
	}

	status := req.Status
	if status == "" {
		status = model.TaskTodo
	}
	if !model.IsValidTaskStatus(status) {
		WriteBadRequest(w, "Unknown task status", map[string]string{"status": status})
		return
	}

	now := time.Now().UTC()
	task := &model.Task{
		ID:          uuid.New().String(),
		ProjectID:   project.ID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Status:      status,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.store.CreateTask(r.Context(), task); err != nil {
		h.WriteInternalError(w, "creating task", err)
		return
	}
	WriteCreated(w, task)
}

// UpdateTask updates a task within a project the caller belongs to.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	project := h.projectForCaller(w, r)
	if project == nil {
		return
	}

	var req taskRequest
	if err := decodeBody(r, &req); err != nil {
		WriteBadRequest(w, "Invalid task payload", nil)
		return
	}

	ctx := r.Context()
	task, err := h.store.GetTask(ctx, chi.URLParam(r, "taskID"))
	if err != nil {
		h.WriteInternalError(w, "getting task", err)
		return
	}
	if task == nil || task.ProjectID != project.ID {
		WriteNotFound(w, "Task not found")
		return
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	task.Description = req.Description
	task.AssigneeID = req.AssigneeID
	task.DueDate = req.DueDate
	if req.Status != "" {
		if !model.IsValidTaskStatus(req.Status) {
			WriteBadRequest(w, "Unknown task status", map[string]string{"status": req.Status})
			return
		}
		task.Status = req.Status
	}
	task.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateTask(ctx, task); err != nil {
		h.WriteStoreError(w, "updating task", err)
		return
	}
	WriteSuccess(w, task, nil)
}

// DeleteTask removes a task from a project the caller belongs to.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	project := h.projectForCaller(w, r)
	if project == nil {
		return
	}

	task, err := h.store.GetTask(r.Context(), chi.URLParam(r, "taskID"))
	if err != nil {
		h.WriteInternalError(w, "getting task", err)
		return
	}
	if task == nil || task.ProjectID != project.ID {
		WriteNotFound(w, "Task not found")
		return
	}

	if err := h.store.DeleteTask(r.Context(), task.ID); err != nil {
		h.WriteInternalError(w, "deleting task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
