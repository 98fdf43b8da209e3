package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
)

// DefaultHistoryLimit is the number of digests kept per user
const DefaultHistoryLimit = 30

// HistoryRepository keeps a capped list of generated digests per user
type HistoryRepository struct {
	db    *sqlx.DB
	limit int
}

// NewHistoryRepository creates a history repository keeping up to limit entries per user
func NewHistoryRepository(db *sqlx.DB, limit int) *HistoryRepository {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryRepository{db: db, limit: limit}
}

// AppendHistory stores a digest and evicts the oldest entries above the limit.
// Returns domain.ErrNotFound if the user has no preferences.
func (r *HistoryRepository) AppendHistory(ctx context.Context, userID string, entry domain.HistoryEntry) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return retryable(err)
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		var exists int
		if err = tx.GetContext(ctx, &exists, "SELECT COUNT(*) FROM preferences WHERE user_id = ?", userID); err != nil {
			return retryable(err)
		}
		if exists == 0 {
			return &criticalError{err: fmt.Errorf("preferences of %s: %w", userID, domain.ErrNotFound)}
		}

		if _, err = tx.ExecContext(ctx, "INSERT INTO digest_history (user_id, digest, created_at) VALUES (?, ?, ?)",
			userID, entry.Digest, entry.Timestamp); err != nil {
			return retryable(err)
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM digest_history
			WHERE user_id = ? AND id NOT IN (
				SELECT id FROM digest_history WHERE user_id = ? ORDER BY id DESC LIMIT ?
			)`, userID, userID, r.limit)
		if err != nil {
			return retryable(err)
		}
		return retryable(tx.Commit())
	}, errCritical)
	if err != nil {
		return fmt.Errorf("append history: %w", unwrapCritical(err))
	}
	return nil
}

// GetHistory returns up to limit most recent entries of the user, oldest first.
// Non-positive limit returns all stored entries.
func (r *HistoryRepository) GetHistory(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 || limit > r.limit {
		limit = r.limit
	}
	res := []domain.HistoryEntry{}
	err := r.db.SelectContext(ctx, &res, `
		SELECT digest, created_at FROM (
			SELECT id, digest, created_at FROM digest_history
			WHERE user_id = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return res, nil
}
