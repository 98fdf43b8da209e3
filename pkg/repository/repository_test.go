package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	require.NoError(t, repos.Ping(context.Background()))
	return repos
}

func testPrefs(userID string) domain.Preferences {
	return domain.Preferences{UserID: userID, Teams: []string{"Lakers"}, Players: []string{},
		Leagues: []string{"NBA"}, DeliveryTime: "07:00", Timezone: "America/Los_Angeles"}
}

func TestPreferenceRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	_, err := repos.Preferences.GetPreferences(ctx, "u1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repos.Preferences.SavePreferences(ctx, testPrefs("u1")))
	got, err := repos.Preferences.GetPreferences(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, testPrefs("u1"), got)

	// replace
	upd := testPrefs("u1")
	upd.Teams = []string{"Lakers", "Dodgers"}
	upd.Players = []string{"Shohei Ohtani"}
	upd.DeliveryTime = "08:30"
	upd.Timezone = "America/New_York"
	require.NoError(t, repos.Preferences.SavePreferences(ctx, upd))
	got, err = repos.Preferences.GetPreferences(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, upd, got)

	// nil lists are stored as empty
	require.NoError(t, repos.Preferences.SavePreferences(ctx, domain.Preferences{UserID: "a0", DeliveryTime: "06:00", Timezone: "UTC"}))
	got, err = repos.Preferences.GetPreferences(ctx, "a0")
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Teams)

	ids, err := repos.Preferences.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "u1"}, ids)

	require.NoError(t, repos.Preferences.DeletePreferences(ctx, "u1"))
	_, err = repos.Preferences.GetPreferences(ctx, "u1")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, repos.Preferences.DeletePreferences(ctx, "u1"), domain.ErrNotFound)

	ids, err = repos.Preferences.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a0"}, ids)
}

func TestHistoryRepository_Cap(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	require.NoError(t, repos.Preferences.SavePreferences(ctx, testPrefs("u1")))
	require.NoError(t, repos.Preferences.SavePreferences(ctx, testPrefs("u2")))

	base := time.Date(2025, 10, 1, 7, 0, 0, 0, time.UTC)
	for i := 1; i <= 35; i++ {
		err := repos.History.AppendHistory(ctx, "u1", domain.HistoryEntry{
			Digest:    fmt.Sprintf("digest %d", i),
			Timestamp: base.Add(time.Duration(i) * time.Hour).Format(domain.TimestampLayout),
		})
		require.NoError(t, err)
	}
	require.NoError(t, repos.History.AppendHistory(ctx, "u2", domain.HistoryEntry{Digest: "other", Timestamp: base.Format(domain.TimestampLayout)}))

	all, err := repos.History.GetHistory(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, all, 30)
	assert.Equal(t, "digest 6", all[0].Digest)
	assert.Equal(t, "digest 35", all[29].Digest)
	assert.Equal(t, base.Add(35*time.Hour).Format(domain.TimestampLayout), all[29].Timestamp)

	last, err := repos.History.GetHistory(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, last, 10)
	assert.Equal(t, "digest 26", last[0].Digest)
	assert.Equal(t, "digest 35", last[9].Digest)

	other, err := repos.History.GetHistory(ctx, "u2", 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryEntry{{Digest: "other", Timestamp: base.Format(domain.TimestampLayout)}}, other)

	// history goes away with preferences
	require.NoError(t, repos.Preferences.DeletePreferences(ctx, "u1"))
	all, err = repos.History.GetHistory(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHistoryRepository_UnknownUser(t *testing.T) {
	repos := setupTestRepos(t)
	err := repos.History.AppendHistory(context.Background(), "ghost", domain.HistoryEntry{Digest: "x", Timestamp: "2025-10-01T07:00:00Z"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	res, err := repos.History.GetHistory(context.Background(), "ghost", 10)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestHistoryRepository_CustomLimit(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	require.NoError(t, repos.Preferences.SavePreferences(ctx, testPrefs("u1")))

	h := NewHistoryRepository(repos.DB, 3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, h.AppendHistory(ctx, "u1", domain.HistoryEntry{Digest: fmt.Sprintf("d%d", i), Timestamp: "t"}))
	}
	res, err := h.GetHistory(ctx, "u1", 100)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "d3", res[0].Digest)
}

func TestStringList(t *testing.T) {
	var l stringList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = stringList{"Lakers", "NBA"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["Lakers","NBA"]`, v.(string))

	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, stringList{"a", "b"}, l)
	require.NoError(t, l.Scan(nil))
	assert.Equal(t, stringList{}, l)
	require.Error(t, l.Scan("not json"))
}

func TestCriticalError(t *testing.T) {
	originalErr := fmt.Errorf("test error message")
	critErr := &criticalError{err: originalErr}

	assert.Equal(t, "test error message", critErr.Error())
	assert.ErrorIs(t, critErr, errCritical)
	assert.ErrorIs(t, critErr, originalErr)
	assert.Equal(t, originalErr, unwrapCritical(fmt.Errorf("wrapped: %w", critErr)))
	assert.Nil(t, retryable(nil))
	assert.NotErrorIs(t, retryable(fmt.Errorf("database is locked")), errCritical)
	assert.ErrorIs(t, retryable(fmt.Errorf("syntax error")), errCritical)
}

func TestIsLockError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.False(t, isLockError(nil))
	})

	t.Run("sqlite busy error", func(t *testing.T) {
		assert.True(t, isLockError(fmt.Errorf("SQLITE_BUSY: database is busy")))
	})

	t.Run("database locked error", func(t *testing.T) {
		assert.True(t, isLockError(fmt.Errorf("database is locked")))
	})

	t.Run("table locked error", func(t *testing.T) {
		assert.True(t, isLockError(fmt.Errorf("database table is locked")))
	})

	t.Run("non-lock error", func(t *testing.T) {
		assert.False(t, isLockError(fmt.Errorf("syntax error")))
	})
}
