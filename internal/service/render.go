// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds application services behind the HTTP handlers:
// content rendering and media processing.
package service

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// htmlSanitizer strips dangerous markup from rendered section content.
// UGCPolicy allows safe tags while removing scripts and event handlers.
var htmlSanitizer = bluemonday.UGCPolicy()

// textSanitizer reduces titles and names to plain text.
var textSanitizer = bluemonday.StrictPolicy()

// SanitizePage strips dangerous markup from every editable text field of a
// page before it is persisted, so stored content is safe to serve raw.
// Section content keeps safe inline HTML; titles and the page name are
// reduced to plain text.
func SanitizePage(pc *model.PageContent) {
	pc.Name = textSanitizer.Sanitize(pc.Name)
	for i := range pc.Sections {
		sec := &pc.Sections[i]
		sec.Title = textSanitizer.Sanitize(sec.Title)
		if sec.Content != "" {
			sec.Content = htmlSanitizer.Sanitize(sec.Content)
		}
	}
}

// RenderedSection is a content section with its markdown body rendered to
// sanitized HTML.
type RenderedSection struct {
	model.ContentSection
	HTML string `json:"html,omitempty"`
}

// RenderedPage is a page prepared for the public site.
type RenderedPage struct {
	ID       string            `json:"pageId"`
	Name     string            `json:"pageName"`
	Sections []RenderedSection `json:"sections"`
}

// RenderMarkdown converts markdown to sanitized HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}

// RenderPage renders every section's markdown content. Sections whose
// content fails to render keep their raw text and an empty HTML field.
func RenderPage(pc *model.PageContent) *RenderedPage {
	out := &RenderedPage{
		ID:       pc.ID,
		Name:     pc.Name,
		Sections: make([]RenderedSection, 0, len(pc.Sections)),
	}
	for _, sec := range pc.Sections {
		rs := RenderedSection{ContentSection: sec}
		if sec.Content != "" {
			if html, err := RenderMarkdown(sec.Content); err == nil {
				rs.HTML = html
			}
		}
		out.Sections = append(out.Sections, rs)
	}
	return out
}
