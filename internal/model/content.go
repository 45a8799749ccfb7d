// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the
// application including PageContent, Setting, User, and the portal entities.
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// SectionType discriminates the payload carried by a content section.
type SectionType string

// Section types supported by the public renderer and the admin editor.
const (
	SectionHero         SectionType = "hero"
	SectionText         SectionType = "text"
	SectionStats        SectionType = "stats"
	SectionServices     SectionType = "services"
	SectionContact      SectionType = "contact"
	SectionTestimonials SectionType = "testimonials"
)

// ValidSectionTypes returns all section types the editor may produce.
func ValidSectionTypes() []SectionType {
	return []SectionType{
		SectionHero,
		SectionText,
		SectionStats,
		SectionServices,
		SectionContact,
		SectionTestimonials,
	}
}

// IsValidSectionType checks if a section type is known.
func IsValidSectionType(t SectionType) bool {
	for _, v := range ValidSectionTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// StatItem is one entry of a stats section.
type StatItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ServiceItem is one entry of a services section.
type ServiceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// ContactDetails is the payload of a contact section.
type ContactDetails struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Hours   string `json:"hours,omitempty"`
	MapURL  string `json:"mapUrl,omitempty"`
}

// Testimonial is one entry of a testimonials section.
type Testimonial struct {
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	Quote     string `json:"quote"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// SectionData is the tagged-union payload of a content section. Exactly one
// field may be populated, and which one is dictated by the section type.
// Hero and text sections carry no payload beyond title/content/image.
type SectionData struct {
	Stats        []StatItem      `json:"-"`
	Services     []ServiceItem   `json:"-"`
	Contact      *ContactDetails `json:"-"`
	Testimonials []Testimonial   `json:"-"`
}

// IsZero reports whether no payload variant is set.
func (d SectionData) IsZero() bool {
	return d.Stats == nil && d.Services == nil && d.Contact == nil && d.Testimonials == nil
}

// ContentSection is one typed, independently editable block within a page.
type ContentSection struct {
	ID       string            `json:"id"`
	Type     SectionType       `json:"type"`
	Title    string            `json:"title"`
	Content  string            `json:"content,omitempty"`
	ImageURL string            `json:"imageUrl,omitempty"`
	Styles   map[string]string `json:"styles,omitempty"`
	Data     SectionData       `json:"data,omitempty"`
}

// sectionWire is the JSON form of a section with the payload left raw so it
// can be decoded according to the type discriminant.
type sectionWire struct {
	ID       string            `json:"id"`
	Type     SectionType       `json:"type"`
	Title    string            `json:"title"`
	Content  string            `json:"content,omitempty"`
	ImageURL string            `json:"imageUrl,omitempty"`
	Styles   map[string]string `json:"styles,omitempty"`
	Data     json.RawMessage   `json:"data,omitempty"`
}

// MarshalJSON encodes the payload variant that matches the section type.
func (s ContentSection) MarshalJSON() ([]byte, error) {
	w := sectionWire{
		ID:       s.ID,
		Type:     s.Type,
		Title:    s.Title,
		Content:  s.Content,
		ImageURL: s.ImageURL,
		Styles:   s.Styles,
	}

	var payload any
	switch s.Type {
	case SectionStats:
		if s.Data.Stats != nil {
			payload = s.Data.Stats
		}
	case SectionServices:
		if s.Data.Services != nil {
			payload = s.Data.Services
		}
	case SectionContact:
		if s.Data.Contact != nil {
			payload = s.Data.Contact
		}
	case SectionTestimonials:
		if s.Data.Testimonials != nil {
			payload = s.Data.Testimonials
		}
	}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding %s section data: %w", s.Type, err)
		}
		w.Data = raw
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes the data payload according to the type discriminant,
// so a section can never carry a payload that belongs to another type.
func (s *ContentSection) UnmarshalJSON(b []byte) error {
	var w sectionWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	if !IsValidSectionType(w.Type) {
		return fmt.Errorf("unknown section type %q", w.Type)
	}

	*s = ContentSection{
		ID:       w.ID,
		Type:     w.Type,
		Title:    w.Title,
		Content:  w.Content,
		ImageURL: w.ImageURL,
		Styles:   w.Styles,
	}

	if len(w.Data) == 0 || string(w.Data) == "null" {
		return nil
	}

	switch w.Type {
	case SectionStats:
		if err := json.Unmarshal(w.Data, &s.Data.Stats); err != nil {
			return fmt.Errorf("decoding stats section %q: %w", w.ID, err)
		}
	case SectionServices:
		if err := json.Unmarshal(w.Data, &s.Data.Services); err != nil {
			return fmt.Errorf("decoding services section %q: %w", w.ID, err)
		}
	case SectionContact:
		if err := json.Unmarshal(w.Data, &s.Data.Contact); err != nil {
			return fmt.Errorf("decoding contact section %q: %w", w.ID, err)
		}
	case SectionTestimonials:
		if err := json.Unmarshal(w.Data, &s.Data.Testimonials); err != nil {
			return fmt.Errorf("decoding testimonials section %q: %w", w.ID, err)
		}
	default:
		// hero and text sections carry no structured payload
		return fmt.Errorf("section type %q does not accept a data payload", w.Type)
	}

	return nil
}

// Validate checks the section for internal consistency.
func (s *ContentSection) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("section id is required")
	}
	if !IsValidSectionType(s.Type) {
		return fmt.Errorf("unknown section type %q", s.Type)
	}

	switch s.Type {
	case SectionHero, SectionText:
		if !s.Data.IsZero() {
			return fmt.Errorf("section %q of type %s must not carry a data payload", s.ID, s.Type)
		}
	case SectionStats:
		if s.Data.Services != nil || s.Data.Contact != nil || s.Data.Testimonials != nil {
			return fmt.Errorf("section %q carries a payload that does not match type %s", s.ID, s.Type)
		}
	case SectionServices:
		if s.Data.Stats != nil || s.Data.Contact != nil || s.Data.Testimonials != nil {
			return fmt.Errorf("section %q carries a payload that does not match type %s", s.ID, s.Type)
		}
	case SectionContact:
		if s.Data.Stats != nil || s.Data.Services != nil || s.Data.Testimonials != nil {
			return fmt.Errorf("section %q carries a payload that does not match type %s", s.ID, s.Type)
		}
	case SectionTestimonials:
		if s.Data.Stats != nil || s.Data.Services != nil || s.Data.Contact != nil {
			return fmt.Errorf("section %q carries a payload that does not match type %s", s.ID, s.Type)
		}
	}

	return nil
}

// PageContent is the ordered set of editable sections composing one site
// page. The page ID is a slug (e.g. "home") and section order is meaningful:
// sections render top to bottom and are reorderable in the editor.
type PageContent struct {
	ID        string           `json:"pageId"`
	Name      string           `json:"pageName"`
	Sections  []ContentSection `json:"sections"`
	UpdatedAt time.Time        `json:"updatedAt,omitempty"`
}

// Validate checks the page and all of its sections.
func (p *PageContent) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("page id is required")
	}

	seen := make(map[string]struct{}, len(p.Sections))
	for i := range p.Sections {
		sec := &p.Sections[i]
		if err := sec.Validate(); err != nil {
			return err
		}
		if _, dup := seen[sec.ID]; dup {
			return fmt.Errorf("duplicate section id %q on page %q", sec.ID, p.ID)
		}
		seen[sec.ID] = struct{}{}
	}

	return nil
}

// Clone returns a deep copy of the page content. The content store hands out
// clones so callers cannot mutate cached state.
func (p *PageContent) Clone() *PageContent {
	if p == nil {
		return nil
	}

	out := &PageContent{
		ID:        p.ID,
		Name:      p.Name,
		UpdatedAt: p.UpdatedAt,
	}

	if p.Sections != nil {
		out.Sections = make([]ContentSection, len(p.Sections))
		for i, sec := range p.Sections {
			cp := sec
			if sec.Styles != nil {
				cp.Styles = make(map[string]string, len(sec.Styles))
				for k, v := range sec.Styles {
					cp.Styles[k] = v
				}
			}
			if sec.Data.Stats != nil {
				cp.Data.Stats = append([]StatItem(nil), sec.Data.Stats...)
			}
			if sec.Data.Services != nil {
				cp.Data.Services = append([]ServiceItem(nil), sec.Data.Services...)
			}
			if sec.Data.Contact != nil {
				c := *sec.Data.Contact
				cp.Data.Contact = &c
			}
			if sec.Data.Testimonials != nil {
				cp.Data.Testimonials = append([]Testimonial(nil), sec.Data.Testimonials...)
			}
			out.Sections[i] = cp
		}
	}

	return out
}
