package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newStartedScheduler(t *testing.T) *cronScheduler {
	t.Helper()

	sched := newCronScheduler(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	sched.cron.Start()
	t.Cleanup(func() {
		require.NoError(t, sched.stop(context.Background()))
	})

	return sched
}

func TestOnceSchedule_Next(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	future := &onceSchedule{runAt: base.Add(time.Minute)}
	assert.Equal(t, base.Add(time.Minute), future.Next(base))
	assert.Equal(t, base.Add(time.Minute), future.Next(base.Add(time.Second)), "re-evaluation before firing keeps runAt")
	assert.True(t, future.Next(base.Add(time.Minute)).IsZero(), "never fires twice")

	due := &onceSchedule{runAt: base.Add(-time.Minute)}
	assert.Equal(t, base, due.Next(base))
	assert.True(t, due.Next(base.Add(time.Second)).IsZero())
}

func TestCronScheduler_RunsOnce(t *testing.T) {
	sched := newStartedScheduler(t)

	var runs atomic.Int32
	var sawDeadline atomic.Bool
	require.NoError(t, sched.ScheduleOnce("reminder_1", time.Now().Add(50*time.Millisecond), func(ctx context.Context) {
		_, ok := ctx.Deadline()
		sawDeadline.Store(ok)
		runs.Add(1)
	}))
	assert.True(t, sched.Pending("reminder_1"))

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.False(t, sched.Pending("reminder_1"))
	assert.True(t, sawDeadline.Load())

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestCronScheduler_PastRunAtRunsImmediately(t *testing.T) {
	sched := newStartedScheduler(t)

	var runs atomic.Int32
	require.NoError(t, sched.ScheduleOnce("reminder_due", time.Now().Add(-time.Hour), func(context.Context) {
		runs.Add(1)
	}))

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestCronScheduler_ReplaceKeepsOnlyLatest(t *testing.T) {
	sched := newStartedScheduler(t)

	var first, second atomic.Int32
	require.NoError(t, sched.ScheduleOnce("reminder_1", time.Now().Add(50*time.Millisecond), func(context.Context) {
		first.Add(1)
	}))
	require.NoError(t, sched.ScheduleOnce("reminder_1", time.Now().Add(80*time.Millisecond), func(context.Context) {
		second.Add(1)
	}))

	require.Eventually(t, func() bool { return second.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
}

func TestCronScheduler_Cancel(t *testing.T) {
	sched := newStartedScheduler(t)

	var runs atomic.Int32
	require.NoError(t, sched.ScheduleOnce("reminder_1", time.Now().Add(50*time.Millisecond), func(context.Context) {
		runs.Add(1)
	}))

	assert.True(t, sched.Cancel("reminder_1"))
	assert.False(t, sched.Cancel("reminder_1"), "second cancel is a no-op")
	assert.False(t, sched.Cancel("reminder_unknown"))
	assert.False(t, sched.Pending("reminder_1"))

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func TestCronScheduler_RecoversPanics(t *testing.T) {
	sched := newStartedScheduler(t)

	var after atomic.Int32
	require.NoError(t, sched.ScheduleOnce("boom", time.Now(), func(context.Context) {
		panic("boom")
	}))
	require.NoError(t, sched.ScheduleOnce("after", time.Now().Add(50*time.Millisecond), func(context.Context) {
		after.Add(1)
	}))

	require.Eventually(t, func() bool { return after.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestNewTaskScheduler_Lifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	sched := NewTaskScheduler(SchedulerParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	var runs atomic.Int32
	// Scheduled before start, as startup restoration does.
	require.NoError(t, sched.ScheduleOnce("reminder_1", time.Now(), func(context.Context) {
		runs.Add(1)
	}))

	lc.RequireStart()
	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	lc.RequireStop()
}
