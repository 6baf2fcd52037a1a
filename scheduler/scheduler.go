// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/danielhkuo/lovenest/models"
	"github.com/danielhkuo/lovenest/push"
	"github.com/danielhkuo/lovenest/store"
)

// Scheduler periodically scans the store for due, un-notified reminders
// and dispatches push notifications for them. Delivery is at-least-once:
// a reminder is marked notified only after a successful dispatch, so a
// failed dispatch is retried on the next tick.
type Scheduler struct {
	store      *store.Store
	dispatcher push.Dispatcher
	interval   time.Duration
}

func New(st *store.Store, dispatcher push.Dispatcher, interval time.Duration) *Scheduler {
	return &Scheduler{store: st, dispatcher: dispatcher, interval: interval}
}

// Run ticks at the configured interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	slog.Info("reminder scheduler started", "interval", s.interval)
	for {
		select {
		case <-t.C:
			s.Tick(time.Now().UTC())
		case <-ctx.Done():
			slog.Info("reminder scheduler stopped")
			return
		}
	}
}

// Tick runs one due-reminder scan. Exported so tests can drive the
// scheduler without waiting on the ticker.
func (s *Scheduler) Tick(now time.Time) {
	due, err := s.store.DueReminders(now)
	if err != nil {
		// The scan is idempotent; skip this tick and resume on the next.
		slog.Error("reminder scan failed", "error", err)
		return
	}

	for _, reminder := range due {
		s.notify(reminder)
	}
}

// notify handles a single reminder so one failure never blocks the rest
// of the tick.
func (s *Scheduler) notify(reminder models.Reminder) {
	err := s.dispatcher.Dispatch(reminder.DeliveryToken, reminder.Title, reminder.Description)
	if err != nil {
		slog.Error("reminder dispatch failed", "reminder_id", reminder.ID, "error", err)
		return
	}

	if err := s.store.MarkNotified(reminder.ID); err != nil {
		// The dispatch went out but the flag didn't stick; the next tick
		// will send a duplicate. Accepted under at-least-once delivery.
		slog.Error("failed to mark reminder notified", "reminder_id", reminder.ID, "error", err)
		return
	}

	slog.Info("reminder notified", "reminder_id", reminder.ID, "title", reminder.Title)
}
