// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/middleware"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// RouterOptions tunes pieces of the router that differ between production
// and tests.
type RouterOptions struct {
	AllowedOrigins []string
	UploadsDir     string // serves /uploads/* when non-empty

	// Login throttling; zero values fall back to the middleware defaults.
	LoginRPS   float64
	LoginBurst int
}

// NewRouter wires the full API surface under /api/v1 plus static uploads.
func NewRouter(h *Handler, opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.CORS(opts.AllowedOrigins))

	authenticate := middleware.Authenticate(h.tokens, h.logger)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	r.Route("/api/v1", func(r chi.Router) {
		// Public surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.LoginRateLimit(opts.LoginRPS, opts.LoginBurst))
			r.Post("/auth/login", h.Login)
			r.Post("/auth/register", h.Register)
		})
		r.Get("/content", h.ListContent)
		r.Get("/content/{pageID}", h.GetContent)
		r.Get("/content/{pageID}/rendered", h.GetRenderedContent)
		r.Get("/settings", h.ListSettings)
		r.Get("/settings/{key}", h.GetSetting)
		r.Get("/webinars", h.ListWebinars)
		r.Get("/webinars/{id}", h.GetWebinar)

		// Any signed-in user.
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/auth/me", h.Me)

			r.Get("/feedback-forms", h.ListFeedbackForms)
			r.Get("/feedback-forms/{id}", h.GetFeedbackForm)
			r.Post("/feedback-forms/{id}/responses", h.SubmitFeedbackResponse)

			r.Get("/projects", h.ListProjects)
			r.Get("/projects/{id}", h.GetProject)
			r.Get("/projects/{id}/tasks", h.ListTasks)
			r.Post("/projects/{id}/tasks", h.CreateTask)
			r.Put("/projects/{id}/tasks/{taskID}", h.UpdateTask)
			r.Delete("/projects/{id}/tasks/{taskID}", h.DeleteTask)
		})

		// Admin surface.
		r.Group(func(r chi.Router) {
			r.Use(authenticate, adminOnly)

			r.Put("/content/{pageID}", h.PutContent)
			r.Delete("/content/{pageID}", h.DeleteContent)

			r.Put("/settings/{key}", h.PutSetting)
			r.Delete("/settings/{key}", h.DeleteSetting)

			r.Get("/users", h.ListUsers)
			r.Post("/users", h.CreateUser)
			r.Get("/users/{id}", h.GetUser)
			r.Put("/users/{id}", h.UpdateUser)
			r.Delete("/users/{id}", h.DeleteUser)

			r.Post("/feedback-forms", h.CreateFeedbackForm)
			r.Put("/feedback-forms/{id}", h.UpdateFeedbackForm)
			r.Delete("/feedback-forms/{id}", h.DeleteFeedbackForm)
			r.Get("/feedback-forms/{id}/responses", h.ListFeedbackResponses)

			r.Post("/webinars", h.CreateWebinar)
			r.Put("/webinars/{id}", h.UpdateWebinar)
			r.Delete("/webinars/{id}", h.DeleteWebinar)

			r.Post("/projects", h.CreateProject)
			r.Put("/projects/{id}", h.UpdateProject)
			r.Delete("/projects/{id}", h.DeleteProject)

			r.Get("/media", h.ListMedia)
			r.Post("/media", h.UploadMedia)
			r.Get("/media/{id}", h.GetMedia)
			r.Put("/media/{id}", h.UpdateMedia)
			r.Delete("/media/{id}", h.DeleteMedia)
		})
	})

	r.Get("/healthz", h.Health)

	if opts.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadsDir)))
		r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
			fs.ServeHTTP(w, r)
		})
	}

	return r
}

// Health reports whether the persistence layer is reachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "unavailable", "Storage is unreachable", nil)
		return
	}
	WriteSuccess(w, map[string]string{"status": "ok"}, nil)
}
