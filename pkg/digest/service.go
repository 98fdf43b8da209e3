package digest

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/scheduler"
)

// DefaultHistoryLimit is the number of history entries returned when no limit is given
const DefaultHistoryLimit = 10

// JobScheduler keeps daily digest jobs in sync with preferences
type JobScheduler interface {
	Schedule(userID, deliveryTime, timezone string) error
	Unschedule(userID string) bool
	Jobs() []scheduler.Job
}

// Service exposes preference management and digest operations
type Service struct {
	store     Store
	generator *Generator
	scheduler JobScheduler
	locks     *userLocks // guards stored preferences and the cron entry of a user
}

// NewService makes a service
func NewService(store Store, generator *Generator, sched JobScheduler) *Service {
	return &Service{store: store, generator: generator, scheduler: sched, locks: newUserLocks()}
}

// Configure stores preferences and schedules the daily digest, a new user id is generated if empty
func (s *Service) Configure(ctx context.Context, prefs domain.Preferences) (string, error) {
	prefs = prefs.Normalize()
	if prefs.UserID == "" {
		prefs.UserID = uuid.NewString()
	}
	unlock := s.locks.lock(prefs.UserID)
	defer unlock()
	if err := s.save(ctx, prefs); err != nil {
		return "", err
	}
	lgr.Printf("[INFO] configured %s, %d teams, %d players, %d leagues, delivery at %s %s", prefs.UserID,
		len(prefs.Teams), len(prefs.Players), len(prefs.Leagues), prefs.DeliveryTime, prefs.Timezone)
	return prefs.UserID, nil
}

// UpdatePreferences replaces preferences of an existing user and reschedules the daily digest
func (s *Service) UpdatePreferences(ctx context.Context, userID string, prefs domain.Preferences) (domain.Preferences, error) {
	userID = strings.TrimSpace(userID)
	unlock := s.locks.lock(userID)
	defer unlock()
	if _, err := s.store.GetPreferences(ctx, userID); err != nil {
		return domain.Preferences{}, err
	}
	prefs.UserID = userID
	prefs = prefs.Normalize()
	if err := s.save(ctx, prefs); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

// GetPreferences returns preferences of the user
func (s *Service) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	return s.store.GetPreferences(ctx, userID)
}

// DeletePreferences removes the user with history and the scheduled job
func (s *Service) DeletePreferences(ctx context.Context, userID string) error {
	unlock := s.locks.lock(userID)
	defer unlock()
	if err := s.store.DeletePreferences(ctx, userID); err != nil {
		return err
	}
	s.scheduler.Unschedule(userID)
	lgr.Printf("[INFO] deleted preferences of %s", userID)
	return nil
}

// GenerateNow runs the digest for the user immediately
func (s *Service) GenerateNow(ctx context.Context, userID string) (domain.DigestResult, error) {
	return s.generator.Generate(ctx, userID)
}

// History returns up to limit latest digests of the user, oldest first
func (s *Service) History(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error) {
	if _, err := s.store.GetPreferences(ctx, userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.store.GetHistory(ctx, userID, limit)
}

// ScheduledJobs returns all scheduled daily digests
func (s *Service) ScheduledJobs() []scheduler.Job {
	return s.scheduler.Jobs()
}

// save validates the schedule before anything is stored, caller holds the user lock
func (s *Service) save(ctx context.Context, prefs domain.Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	if err := s.store.SavePreferences(ctx, prefs); err != nil {
		return fmt.Errorf("save preferences of %s: %w", prefs.UserID, err)
	}
	if err := s.scheduler.Schedule(prefs.UserID, prefs.DeliveryTime, prefs.Timezone); err != nil {
		return fmt.Errorf("schedule digest of %s: %w", prefs.UserID, err)
	}
	return nil
}
