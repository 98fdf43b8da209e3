package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
)

// PreferenceRepository handles user preferences
type PreferenceRepository struct {
	db *sqlx.DB
}

// preferenceSQL is the database row of preferences
type preferenceSQL struct {
	UserID       string     `db:"user_id"`
	Teams        stringList `db:"teams"`
	Players      stringList `db:"players"`
	Leagues      stringList `db:"leagues"`
	DeliveryTime string     `db:"delivery_time"`
	Timezone     string     `db:"timezone"`
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetPreferences returns preferences of the user, domain.ErrNotFound if there are none
func (r *PreferenceRepository) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	var row preferenceSQL
	err := r.db.GetContext(ctx, &row, `
		SELECT user_id, teams, players, leagues, delivery_time, timezone
		FROM preferences WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Preferences{}, fmt.Errorf("preferences of %s: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return row.toDomain(), nil
}

// SavePreferences creates or replaces preferences of the user
func (r *PreferenceRepository) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	row := preferenceSQL{
		UserID:       prefs.UserID,
		Teams:        stringList(prefs.Teams),
		Players:      stringList(prefs.Players),
		Leagues:      stringList(prefs.Leagues),
		DeliveryTime: prefs.DeliveryTime,
		Timezone:     prefs.Timezone,
	}
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO preferences (user_id, teams, players, leagues, delivery_time, timezone)
			VALUES (:user_id, :teams, :players, :leagues, :delivery_time, :timezone)
			ON CONFLICT(user_id) DO UPDATE SET
				teams = excluded.teams,
				players = excluded.players,
				leagues = excluded.leagues,
				delivery_time = excluded.delivery_time,
				timezone = excluded.timezone,
				updated_at = CURRENT_TIMESTAMP`, row)
		return retryable(err)
	}, errCritical)
	if err != nil {
		return fmt.Errorf("save preferences: %w", unwrapCritical(err))
	}
	return nil
}

// DeletePreferences removes preferences and history of the user, domain.ErrNotFound if there are none
func (r *PreferenceRepository) DeletePreferences(ctx context.Context, userID string) error {
	var affected int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return retryable(err)
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		if _, err = tx.ExecContext(ctx, "DELETE FROM digest_history WHERE user_id = ?", userID); err != nil {
			return retryable(err)
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM preferences WHERE user_id = ?", userID)
		if err != nil {
			return retryable(err)
		}
		if affected, err = res.RowsAffected(); err != nil {
			return retryable(err)
		}
		return retryable(tx.Commit())
	}, errCritical)
	if err != nil {
		return fmt.Errorf("delete preferences: %w", unwrapCritical(err))
	}
	if affected == 0 {
		return fmt.Errorf("preferences of %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// ListUserIDs returns ids of all users with stored preferences
func (r *PreferenceRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids, "SELECT user_id FROM preferences ORDER BY user_id"); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return ids, nil
}

func (p preferenceSQL) toDomain() domain.Preferences {
	return domain.Preferences{
		UserID:       p.UserID,
		Teams:        []string(p.Teams),
		Players:      []string(p.Players),
		Leagues:      []string(p.Leagues),
		DeliveryTime: p.DeliveryTime,
		Timezone:     p.Timezone,
	}
}
