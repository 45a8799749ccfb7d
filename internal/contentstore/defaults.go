// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package contentstore

import "github.com/mrscientist29/GIReachAcademia-sub000/internal/model"

// DefaultPages returns the static fallback content for every known site
// page. These are the pages served when neither the API nor the mirror has
// anything, and the material pushed by ResetToDefault.
func DefaultPages() map[string]*model.PageContent {
	pages := []*model.PageContent{
		{
			ID:   "home",
			Name: "Home",
			Sections: []model.ContentSection{
				{
					ID:      "hero",
					Type:    model.SectionHero,
					Title:   "GIReach Academia",
					Content: "Connecting aspiring researchers with experienced mentors in gastroenterology and hepatology.",
				},
				{
					ID:    "impact",
					Type:  model.SectionStats,
					Title: "Our Impact",
					Data: model.SectionData{
						Stats: []model.StatItem{
							{Label: "Active Mentees", Value: "120+"},
							{Label: "Research Projects", Value: "85"},
							{Label: "Published Papers", Value: "40+"},
							{Label: "Partner Institutions", Value: "15"},
						},
					},
				},
				{
					ID:    "voices",
					Type:  model.SectionTestimonials,
					Title: "What Our Mentees Say",
					Data: model.SectionData{
						Testimonials: []model.Testimonial{
							{
								Name:  "Dr. Amina Raza",
								Role:  "Research Fellow",
								Quote: "The structured mentorship turned my case series into a published manuscript within a year.",
							},
						},
					},
				},
			},
		},
		{
			ID:   "about",
			Name: "About Us",
			Sections: []model.ContentSection{
				{
					ID:      "mission",
					Type:    model.SectionText,
					Title:   "Our Mission",
					Content: "GIReach Academia pairs medical students and early-career physicians with established investigators to build durable research skills through hands-on project work.",
				},
				{
					ID:      "story",
					Type:    model.SectionText,
					Title:   "Our Story",
					Content: "Founded by a group of academic gastroenterologists, the program grew from informal journal clubs into a structured international mentorship network.",
				},
			},
		},
		{
			ID:   "services",
			Name: "Programs",
			Sections: []model.ContentSection{
				{
					ID:    "programs",
					Type:  model.SectionServices,
					Title: "What We Offer",
					Data: model.SectionData{
						Services: []model.ServiceItem{
							{
								ID:          "mentorship",
								Title:       "One-on-One Mentorship",
								Description: "A dedicated mentor guides each mentee through study design, analysis, and manuscript writing.",
							},
							{
								ID:          "webinars",
								Title:       "Research Webinars",
								Description: "Monthly sessions on methodology, biostatistics, and publication strategy.",
							},
							{
								ID:          "projects",
								Title:       "Collaborative Projects",
								Description: "Multi-center studies where mentees contribute to every phase of the work.",
							},
						},
					},
				},
			},
		},
		{
			ID:   "contact",
			Name: "Contact",
			Sections: []model.ContentSection{
				{
					ID:      "reach-us",
					Type:    model.SectionContact,
					Title:   "Get In Touch",
					Content: "Questions about the program? We usually reply within two business days.",
					Data: model.SectionData{
						Contact: &model.ContactDetails{
							Email: "mentorship@gireach.org",
							Hours: "Mon-Fri, 9:00-17:00 UTC",
						},
					},
				},
			},
		},
	}

	out := make(map[string]*model.PageContent, len(pages))
	for _, p := range pages {
		out[p.ID] = p
	}
	return out
}
