package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/scheduler/mocks"
)

func newTestScheduler(t *testing.T, gen Generator, store PreferenceStore) *Scheduler {
	t.Helper()
	s := New(Params{Generator: gen, Store: store, RunTimeout: time.Second})
	s.Start()
	t.Cleanup(s.Shutdown)
	return s
}

func TestScheduler_Schedule(t *testing.T) {
	s := newTestScheduler(t, &mocks.GeneratorMock{}, &mocks.PreferenceStoreMock{})

	require.NoError(t, s.Schedule("u1", "07:00", "America/Los_Angeles"))
	jobs := s.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, Job{ID: "digest_u1", Name: "Daily digest for u1", UserID: "u1", NextRun: jobs[0].NextRun}, jobs[0])

	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	next := jobs[0].NextRun.In(loc)
	assert.Equal(t, 7, next.Hour())
	assert.Equal(t, 0, next.Minute())
	assert.True(t, next.After(time.Now()))
	assert.True(t, next.Before(time.Now().Add(25*time.Hour)))

	// rescheduling replaces the job
	require.NoError(t, s.Schedule("u1", "18:45", "Europe/London"))
	jobs = s.Jobs()
	require.Len(t, jobs, 1)
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	next = jobs[0].NextRun.In(london)
	assert.Equal(t, 18, next.Hour())
	assert.Equal(t, 45, next.Minute())
	assert.Len(t, s.cron.Entries(), 1)
}

func TestScheduler_ScheduleIdempotent(t *testing.T) {
	s := newTestScheduler(t, &mocks.GeneratorMock{}, &mocks.PreferenceStoreMock{})
	for range 3 {
		require.NoError(t, s.Schedule("u1", "07:00", "America/Los_Angeles"))
	}
	require.NoError(t, s.Schedule("u2", "07:00", "UTC"))

	jobs := s.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "digest_u1", jobs[0].ID)
	assert.Equal(t, "digest_u2", jobs[1].ID)
	assert.Len(t, s.cron.Entries(), 2)
}

func TestScheduler_ScheduleInvalid(t *testing.T) {
	s := newTestScheduler(t, &mocks.GeneratorMock{}, &mocks.PreferenceStoreMock{})
	require.NoError(t, s.Schedule("u1", "07:00", "UTC"))

	tests := []struct{ time, tz string }{
		{"25:00", "UTC"},
		{"7am", "UTC"},
		{"07:60", "UTC"},
		{"07:00", "Mars/Olympus"},
		{"07:00", ""},
	}
	for _, tt := range tests {
		err := s.Schedule("u1", tt.time, tt.tz)
		require.ErrorIs(t, err, domain.ErrInvalidSchedule, "%s %s", tt.time, tt.tz)
	}

	// failed reschedule keeps the existing job
	jobs := s.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, 7, jobs[0].NextRun.UTC().Hour())
}

func TestScheduler_Unschedule(t *testing.T) {
	s := newTestScheduler(t, &mocks.GeneratorMock{}, &mocks.PreferenceStoreMock{})
	assert.False(t, s.Unschedule("unknown"))

	require.NoError(t, s.Schedule("u1", "07:00", "UTC"))
	assert.True(t, s.Unschedule("u1"))
	assert.False(t, s.Unschedule("u1"))
	assert.Empty(t, s.Jobs())
	assert.Empty(t, s.cron.Entries())
}

func TestScheduler_RestoreAll(t *testing.T) {
	store := &mocks.PreferenceStoreMock{
		ListUserIDsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"u1", "u2", "broken", "gone"}, nil
		},
		GetPreferencesFunc: func(ctx context.Context, userID string) (domain.Preferences, error) {
			switch userID {
			case "broken":
				return domain.Preferences{UserID: userID, DeliveryTime: "7 o'clock", Timezone: "UTC"}, nil
			case "gone":
				return domain.Preferences{}, domain.ErrNotFound
			}
			return domain.Preferences{UserID: userID, DeliveryTime: "06:30", Timezone: "America/New_York"}, nil
		},
	}
	s := newTestScheduler(t, &mocks.GeneratorMock{}, store)

	count, err := s.RestoreAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	jobs := s.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "u1", jobs[0].UserID)
	assert.Equal(t, "u2", jobs[1].UserID)
	assert.Len(t, store.GetPreferencesCalls(), 4)
}

func TestScheduler_RestoreAllError(t *testing.T) {
	store := &mocks.PreferenceStoreMock{
		ListUserIDsFunc: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("db closed")
		},
	}
	s := newTestScheduler(t, &mocks.GeneratorMock{}, store)

	_, err := s.RestoreAll(context.Background())
	require.ErrorContains(t, err, "db closed")
	assert.Empty(t, s.Jobs())
}

func TestScheduler_Fire(t *testing.T) {
	gen := &mocks.GeneratorMock{
		GenerateFunc: func(ctx context.Context, userID string) (domain.DigestResult, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
			switch userID {
			case "u1":
				return domain.DigestResult{Digest: "digest", ToolCalls: []domain.ToolCall{{Tool: "upcoming_games"}}}, nil
			case "gone":
				return domain.DigestResult{}, domain.ErrNotFound
			}
			return domain.DigestResult{}, errors.New("provider unavailable")
		},
	}
	s := newTestScheduler(t, gen, &mocks.PreferenceStoreMock{})

	// failures never escape the job body
	s.fire("u1")
	s.fire("gone")
	s.fire("u3")

	calls := gen.GenerateCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, "u1", calls[0].UserID)
	assert.Equal(t, "u3", calls[2].UserID)
}

func TestScheduler_JobRecoversPanic(t *testing.T) {
	gen := &mocks.GeneratorMock{
		GenerateFunc: func(ctx context.Context, userID string) (domain.DigestResult, error) {
			panic("boom")
		},
	}
	s := newTestScheduler(t, gen, &mocks.PreferenceStoreMock{})
	require.NoError(t, s.Schedule("u1", "07:00", "UTC"))

	s.mu.Lock()
	id := s.entries["u1"]
	s.mu.Unlock()

	entry := s.cron.Entry(id)
	require.True(t, entry.Valid())
	assert.NotPanics(t, entry.WrappedJob.Run)
	assert.Len(t, gen.GenerateCalls(), 1)
}

func TestScheduler_ShutdownWithoutJobs(t *testing.T) {
	s := New(Params{})
	s.Start()
	done := make(chan struct{})
	go func() {
		s.Shutdown()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shutdown blocked")
	}
	assert.Equal(t, 5*time.Minute, s.runTimeout)
}

func TestScheduler_ShutdownWaitsForRunningJob(t *testing.T) {
	started := make(chan struct{}, 1)
	var finished atomic.Bool
	gen := &mocks.GeneratorMock{
		GenerateFunc: func(ctx context.Context, userID string) (domain.DigestResult, error) {
			select {
			case started <- struct{}{}:
			default:
			}
			time.Sleep(500 * time.Millisecond)
			finished.Store(true)
			return domain.DigestResult{}, nil
		},
	}
	s := New(Params{Generator: gen, Store: &mocks.PreferenceStoreMock{}, RunTimeout: 5 * time.Second})
	_, err := s.cron.AddFunc("@every 1s", func() { s.fire("u1") })
	require.NoError(t, err)
	s.Start()

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not fire")
	}
	s.Shutdown()
	assert.True(t, finished.Load(), "running job finished before shutdown returned")
}
