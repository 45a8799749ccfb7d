// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/middleware"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/service"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/util"
)

// ListContent returns every stored page.
func (h *Handler) ListContent(w http.ResponseWriter, r *http.Request) {
	pages, err := h.store.ListPageContents(r.Context())
	if err != nil {
		h.WriteInternalError(w, "listing pages", err)
		return
	}
	WriteSuccess(w, pages, &Meta{Total: len(pages)})
}

// GetContent returns one page by ID.
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	pc, err := h.store.GetPageContent(r.Context(), pageID)
	if err != nil {
		h.WriteInternalError(w, "getting page", err)
		return
	}
	if pc == nil {
		WriteNotFound(w, "Page not found")
		return
	}
	WriteSuccess(w, pc, nil)
}

// GetRenderedContent returns one page with section markdown rendered to
// sanitized HTML for the public site. Rendered pages are cached briefly and
// invalidated on save.
func (h *Handler) GetRenderedContent(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	ctx := r.Context()

	if cached, err := h.rendered.Get(ctx, pageID); err == nil {
		WriteSuccess(w, cached, nil)
		return
	}

	pc, err := h.store.GetPageContent(ctx, pageID)
	if err != nil {
		h.WriteInternalError(w, "getting page", err)
		return
	}
	if pc == nil {
		WriteNotFound(w, "Page not found")
		return
	}

	rendered := service.RenderPage(pc)
	if err := h.rendered.Set(ctx, pageID, rendered, renderedTTL); err != nil {
		h.logger.Warn("caching rendered page failed", "page", pageID, "error", err)
	}
	WriteSuccess(w, rendered, nil)
}

// PutContent inserts or replaces a page. The page ID comes from the URL.
func (h *Handler) PutContent(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	if !util.IsValidSlug(pageID) {
		WriteBadRequest(w, "Invalid page id", nil)
		return
	}

	var pc model.PageContent
	if err := decodeBody(r, &pc); err != nil {
		WriteBadRequest(w, "Invalid page payload: "+err.Error(), nil)
		return
	}

	pc.ID = pageID
	pc.UpdatedAt = time.Now().UTC()
	if err := pc.Validate(); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	service.SanitizePage(&pc)

	if err := h.store.SavePageContent(r.Context(), &pc); err != nil {
		h.WriteInternalError(w, "saving page", err)
		return
	}
	_ = h.rendered.Delete(r.Context(), pageID)

	if claims := middleware.ClaimsFrom(r); claims != nil {
		h.logger.Info("page saved", "page", pageID, "user", claims.UserID)
	}
	WriteSuccess(w, pc, nil)
}

// DeleteContent removes a page.
func (h *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	if err := h.store.DeletePageContent(r.Context(), pageID); err != nil {
		h.WriteInternalError(w, "deleting page", err)
		return
	}
	_ = h.rendered.Delete(r.Context(), pageID)
	w.WriteHeader(http.StatusNoContent)
}
