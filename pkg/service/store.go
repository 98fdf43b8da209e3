// Package service combines repositories into the store used by digest generation and scheduling
package service

import (
	"context"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/repository"
)

// Store provides unified access to preference and history repositories
type Store struct {
	prefRepo    *repository.PreferenceRepository
	historyRepo *repository.HistoryRepository
}

// NewStore creates a new store
func NewStore(prefRepo *repository.PreferenceRepository, historyRepo *repository.HistoryRepository) *Store {
	return &Store{prefRepo: prefRepo, historyRepo: historyRepo}
}

// Preference methods

func (s *Store) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	return s.prefRepo.GetPreferences(ctx, userID)
}

func (s *Store) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	return s.prefRepo.SavePreferences(ctx, prefs)
}

func (s *Store) DeletePreferences(ctx context.Context, userID string) error {
	return s.prefRepo.DeletePreferences(ctx, userID)
}

func (s *Store) ListUserIDs(ctx context.Context) ([]string, error) {
	return s.prefRepo.ListUserIDs(ctx)
}

// History methods

func (s *Store) AppendHistory(ctx context.Context, userID string, entry domain.HistoryEntry) error {
	return s.historyRepo.AppendHistory(ctx, userID, entry)
}

func (s *Store) GetHistory(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error) {
	return s.historyRepo.GetHistory(ctx, userID, limit)
}
