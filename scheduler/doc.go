// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scheduler runs the periodic due-reminder scan.

# Algorithm

On every tick:

 1. Query the store for reminders with due_at <= now and notified = false.
 2. For each match, dispatch a push notification with its delivery token.
 3. On successful dispatch, mark the reminder notified.

A dispatch failure leaves the reminder un-notified, so the next tick
retries it - unbounded retries at tick granularity, no backoff. Each
reminder is handled independently; one failure does not affect the
others in the same tick. A store failure during the scan aborts the
tick silently and the next tick resumes.

# Guarantees

Delivery is at-least-once. There is no cross-instance lock: two
scheduler processes sharing one store can both dispatch the same
reminder. Recurrence (Daily/Weekly/...) is stored metadata only - the
scheduler does not compute the next occurrence; a client re-arms a
reminder by PUTting it with a new due_at and notified=false.

# Usage

	sched := scheduler.New(st, push.NewGateway(cfg.PushGatewayURL), cfg.ScanInterval)
	go sched.Run(ctx)

Tick is exported so tests can drive scans directly with a fixed clock.
*/
package scheduler
