// Package scheduler runs keyed one-shot tasks on a robfig/cron runner.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// taskTimeout bounds a single task run.
const taskTimeout = 30 * time.Second

// onceSchedule fires a single time. Next is only called from the cron run loop.
type onceSchedule struct {
	runAt time.Time
	armed bool
}

// Next returns runAt (or t when already due) the first time and the zero time once it has fired,
// which cron treats as never.
func (s *onceSchedule) Next(t time.Time) time.Time {
	if s.armed {
		if t.Before(s.runAt) {
			return s.runAt
		}

		return time.Time{}
	}

	s.armed = true
	if t.Before(s.runAt) {
		return s.runAt
	}

	return t
}

type entry struct {
	id  cron.EntryID
	seq uint64
}

// cronScheduler implements service.TaskScheduler.
type cronScheduler struct {
	cron    *cron.Cron
	baseCtx context.Context
	logger  *slog.Logger
	now     func() time.Time

	mu      sync.Mutex
	seq     uint64
	entries map[string]entry
}

// SchedulerParams holds dependencies for the task scheduler, injected by Fx
type SchedulerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Logger *slog.Logger
}

// NewTaskScheduler creates the scheduler and ties its runner to the app lifecycle.
func NewTaskScheduler(params SchedulerParams) service.TaskScheduler {
	sched := newCronScheduler(params.Ctx, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sched.cron.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sched.stop(ctx)
		},
	})

	return sched
}

func newCronScheduler(ctx context.Context, logger *slog.Logger) *cronScheduler {
	logger = logger.With(slog.String("component", "scheduler"))
	cronLogger := &slogCronLogger{logger: logger}

	return &cronScheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger)),
		),
		baseCtx: context.WithoutCancel(ctx),
		logger:  logger,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// ScheduleOnce registers task under key, replacing a pending one. A runAt in the past runs as soon as possible.
func (s *cronScheduler) ScheduleOnce(key string, runAt time.Time, task service.Task) error {
	if now := s.now(); runAt.Before(now) {
		runAt = now
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.entries[key]; ok {
		s.cron.Remove(prev.id)
	}

	s.seq++
	seq := s.seq
	id := s.cron.Schedule(&onceSchedule{runAt: runAt}, cron.FuncJob(func() {
		s.run(key, seq, task)
	}))
	s.entries[key] = entry{id: id, seq: seq}

	s.logger.Debug("Task scheduled",
		slog.String("key", key),
		slog.Time("run_at", runAt),
	)

	return nil
}

func (s *cronScheduler) run(key string, seq uint64, task service.Task) {
	s.mu.Lock()
	current, ok := s.entries[key]
	if !ok || current.seq != seq {
		// Replaced or cancelled while the run loop was dispatching it.
		s.mu.Unlock()

		return
	}
	delete(s.entries, key)
	s.cron.Remove(current.id)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(s.baseCtx, taskTimeout)
	defer cancel()

	s.logger.Debug("Running task", slog.String("key", key))
	task(ctx)
}

// Cancel removes the task under key.
func (s *cronScheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entries[key]
	if !ok {
		return false
	}
	delete(s.entries, key)
	s.cron.Remove(current.id)

	return true
}

// Pending reports whether a task is registered under key.
func (s *cronScheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[key]

	return ok
}

// stop halts the runner and waits for running tasks, bounded by ctx.
func (s *cronScheduler) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.mu.Lock()
		pending := len(s.entries)
		s.mu.Unlock()
		s.logger.Info("Scheduler stopped", slog.Int("pending", pending))

		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Module provides the scheduler FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTaskScheduler),
)
