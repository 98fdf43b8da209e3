// Package scheduler runs a daily digest job per user. Each user has at most one cron entry,
// triggered at the user's delivery time in the user's timezone.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/preference_store.go -pkg mocks -skip-ensure -fmt goimports . PreferenceStore

// Generator produces and stores a digest for the user
type Generator interface {
	Generate(ctx context.Context, userID string) (domain.DigestResult, error)
}

// PreferenceStore provides stored users and their schedules
type PreferenceStore interface {
	ListUserIDs(ctx context.Context) ([]string, error)
	GetPreferences(ctx context.Context, userID string) (domain.Preferences, error)
}

// Job describes a scheduled digest job
type Job struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	UserID  string    `json:"user_id"`
	NextRun time.Time `json:"next_run"`
}

// Params configures Scheduler
type Params struct {
	Generator  Generator
	Store      PreferenceStore
	RunTimeout time.Duration // limits a single scheduled run, 5m if not set
}

// Scheduler keeps one daily cron entry per user
type Scheduler struct {
	cron       *cron.Cron
	generator  Generator
	store      PreferenceStore
	runTimeout time.Duration

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// New makes a scheduler, call Start to begin firing jobs
func New(params Params) *Scheduler {
	if params.RunTimeout <= 0 {
		params.RunTimeout = 5 * time.Minute
	}
	logger := cron.PrintfLogger(cronLogger{})
	return &Scheduler{
		cron:       cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger))),
		generator:  params.Generator,
		store:      params.Store,
		runTimeout: params.RunTimeout,
		entries:    map[string]cron.EntryID{},
	}
}

// Start begins firing scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
	lgr.Printf("[INFO] scheduler started with %d jobs", s.count())
}

// Schedule sets the daily job of the user, replacing any existing one
func (s *Scheduler) Schedule(userID, deliveryTime, timezone string) error {
	hour, minute, _, err := domain.ParseSchedule(deliveryTime, timezone)
	if err != nil {
		return err
	}
	spec := fmt.Sprintf("CRON_TZ=%s %d %d * * *", strings.TrimSpace(timezone), minute, hour)

	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.cron.AddFunc(spec, func() { s.fire(userID) })
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSchedule, err)
	}
	if prev, ok := s.entries[userID]; ok {
		s.cron.Remove(prev)
	}
	s.entries[userID] = id
	lgr.Printf("[DEBUG] scheduled daily digest for %s at %s %s", userID, deliveryTime, timezone)
	return nil
}

// Unschedule removes the job of the user, returns false if there was none
func (s *Scheduler) Unschedule(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.entries[userID]
	if !ok {
		return false
	}
	s.cron.Remove(id)
	delete(s.entries, userID)
	lgr.Printf("[DEBUG] unscheduled daily digest for %s", userID)
	return true
}

// RestoreAll schedules every stored user, users with malformed schedules are skipped
func (s *Scheduler) RestoreAll(ctx context.Context) (int, error) {
	ids, err := s.store.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}
	count := 0
	for _, id := range ids {
		prefs, err := s.store.GetPreferences(ctx, id)
		if err != nil {
			lgr.Printf("[WARN] can't load preferences of %s: %v", id, err)
			continue
		}
		if err := s.Schedule(id, prefs.DeliveryTime, prefs.Timezone); err != nil {
			lgr.Printf("[WARN] skip schedule of %s: %v", id, err)
			continue
		}
		count++
	}
	lgr.Printf("[INFO] restored %d of %d scheduled jobs", count, len(ids))
	return count, nil
}

// Shutdown stops firing new jobs and waits for running ones
func (s *Scheduler) Shutdown() {
	<-s.cron.Stop().Done()
	lgr.Printf("[INFO] scheduler stopped")
}

// Jobs returns scheduled jobs sorted by id
func (s *Scheduler) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]Job, 0, len(s.entries))
	for userID, id := range s.entries {
		res = append(res, Job{
			ID:      "digest_" + userID,
			Name:    "Daily digest for " + userID,
			UserID:  userID,
			NextRun: s.cron.Entry(id).Next,
		})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// fire is the job body, failures are logged and never propagated to cron
func (s *Scheduler) fire(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()

	st := time.Now()
	res, err := s.generator.Generate(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		lgr.Printf("[WARN] scheduled digest for %s skipped, no preferences", userID)
	case err != nil:
		lgr.Printf("[WARN] scheduled digest for %s failed: %v", userID, err)
	default:
		lgr.Printf("[INFO] scheduled digest for %s generated in %v, %d tool calls",
			userID, time.Since(st).Truncate(time.Millisecond), len(res.ToolCalls))
	}
}

func (s *Scheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// cronLogger sends cron errors to lgr
type cronLogger struct{}

func (cronLogger) Printf(format string, args ...interface{}) {
	lgr.Printf("[WARN] cron: "+format, args...)
}
