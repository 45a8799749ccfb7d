// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance jobs for the portal.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/store"
)

// Scheduler owns the cron runner and the store it operates on.
type Scheduler struct {
	cron   *cron.Cron
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

// New creates a scheduler; call Start to begin running jobs.
func New(st store.Store, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

// addJob registers a cron job with timeout and error logging.
func (s *Scheduler) addJob(schedule string, timeout time.Duration, jobFunc func(context.Context) error, errMsg string) {
	_, _ = s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := jobFunc(ctx); err != nil {
			s.logger.Error(errMsg, "error", err)
		}
	})
}

// Start registers the maintenance jobs and starts the cron loop.
func (s *Scheduler) Start() {
	// Every 15 minutes: mark webinars whose slot has passed as completed.
	s.addJob("*/15 * * * *", time.Minute, s.CompletePastWebinars, "webinar completion sweep failed")

	s.cron.Start()
	s.logger.Debug("scheduler started")
}

// Stop halts the cron loop; running jobs finish on their own.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// CompletePastWebinars flips scheduled webinars whose end time has passed to
// completed. Cancelled webinars are left alone.
func (s *Scheduler) CompletePastWebinars(ctx context.Context) error {
	webinars, err := s.store.ListWebinars(ctx)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	for i := range webinars {
		w := &webinars[i]
		if w.Status != model.WebinarScheduled || w.EndsAt().After(now) {
			continue
		}
		w.Status = model.WebinarCompleted
		w.UpdatedAt = now
		if err := s.store.UpdateWebinar(ctx, w); err != nil {
			s.logger.Error("marking webinar completed failed", "webinar", w.ID, "error", err)
			continue
		}
		s.logger.Info("webinar marked completed", "webinar", w.ID, "title", w.Title)
	}
	return nil
}
