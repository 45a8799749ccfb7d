// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Webinar statuses.
const (
	WebinarScheduled = "scheduled"
	WebinarCompleted = "completed"
	WebinarCancelled = "cancelled"
)

// Webinar is a scheduled online session for mentees.
type Webinar struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Speaker         string    `json:"speaker"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	MeetingURL      string    `json:"meetingUrl,omitempty"`
	Status          string    `json:"status"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// IsUpcoming returns true if the webinar is scheduled and in the future.
func (w *Webinar) IsUpcoming(now time.Time) bool {
	return w.Status == WebinarScheduled && w.ScheduledAt.After(now)
}

// EndsAt returns the scheduled end time.
func (w *Webinar) EndsAt() time.Time {
	return w.ScheduledAt.Add(time.Duration(w.DurationMinutes) * time.Minute)
}
