package service

import (
	"context"
	"time"
)

// Task is a deferred unit of work. The context carries no deadline of the caller that scheduled it.
type Task func(ctx context.Context)

// TaskScheduler runs one-shot tasks at a point in time, at most one per key.
type TaskScheduler interface {
	// ScheduleOnce registers task to run at runAt under key, replacing any task already under key.
	ScheduleOnce(key string, runAt time.Time, task Task) error

	// Cancel removes the task under key and reports whether one was pending.
	Cancel(key string) bool

	// Pending reports whether a task is registered under key.
	Pending(key string) bool
}
