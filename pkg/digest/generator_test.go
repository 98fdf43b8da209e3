package digest

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gr-siqueira/sport-agent/pkg/digest/mocks"
	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/graph"
)

func u1Prefs() domain.Preferences {
	return domain.Preferences{UserID: "u1", Teams: []string{"Lakers"}, Leagues: []string{"NBA"},
		DeliveryTime: "07:00", Timezone: "America/Los_Angeles"}
}

func TestGenerator_Generate(t *testing.T) {
	now := time.Date(2025, 10, 21, 14, 0, 0, 0, time.UTC)
	store := &mocks.StoreMock{
		GetPreferencesFunc: func(ctx context.Context, userID string) (domain.Preferences, error) {
			return u1Prefs(), nil
		},
		AppendHistoryFunc: func(ctx context.Context, userID string, entry domain.HistoryEntry) error {
			return nil
		},
	}
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context, st graph.State) (graph.State, error) {
			assert.Equal(t, u1Prefs(), st.Input.Prefs)
			assert.Equal(t, now, st.Input.Date)
			st.FinalDigest = "BASKETBALL\nLakers: Lakers beat the Celtics."
			st.ToolCalls = []domain.ToolCall{{Node: "scores", Tool: "recent_results", Args: map[string]any{"teams": []any{"Lakers"}}}}
			return st, nil
		},
	}
	reg := prometheus.NewRegistry()
	g := NewGenerator(store, runner, NewMetrics(reg))
	g.now = func() time.Time { return now }

	res, err := g.Generate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "BASKETBALL\nLakers: Lakers beat the Celtics.", res.Digest)
	assert.Equal(t, "2025-10-21T14:00:00Z", res.GeneratedAt)
	require.Len(t, res.ToolCalls, 1)
	assert.Equal(t, "scores", res.ToolCalls[0].Node)

	require.Len(t, store.AppendHistoryCalls(), 1)
	assert.Equal(t, "u1", store.AppendHistoryCalls()[0].UserID)
	assert.Equal(t, domain.HistoryEntry{Digest: res.Digest, Timestamp: res.GeneratedAt}, store.AppendHistoryCalls()[0].Entry)
	assert.InDelta(t, 1, testutil.ToFloat64(g.metrics.runsTotal.WithLabelValues("ok")), 0.001)
}

func TestGenerator_NotFound(t *testing.T) {
	store := &mocks.StoreMock{
		GetPreferencesFunc: func(ctx context.Context, userID string) (domain.Preferences, error) {
			return domain.Preferences{}, domain.ErrNotFound
		},
	}
	runner := &mocks.RunnerMock{}
	g := NewGenerator(store, runner, nil)

	_, err := g.Generate(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, runner.RunCalls())
}

func TestGenerator_RunError(t *testing.T) {
	store := &mocks.StoreMock{
		GetPreferencesFunc: func(ctx context.Context, userID string) (domain.Preferences, error) {
			return u1Prefs(), nil
		},
	}
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context, st graph.State) (graph.State, error) {
			return graph.State{}, &graph.RunError{Node: "schedule", Err: errors.New("provider unavailable")}
		},
	}
	g := NewGenerator(store, runner, nil)

	_, err := g.Generate(context.Background(), "u1")
	var runErr *graph.RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, "schedule", runErr.Node)
	assert.Empty(t, store.AppendHistoryCalls(), "failed run stores nothing")
}

func TestGenerator_StoreError(t *testing.T) {
	store := &mocks.StoreMock{
		GetPreferencesFunc: func(ctx context.Context, userID string) (domain.Preferences, error) {
			return u1Prefs(), nil
		},
		AppendHistoryFunc: func(ctx context.Context, userID string, entry domain.HistoryEntry) error {
			return errors.New("disk full")
		},
	}
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context, st graph.State) (graph.State, error) { return st, nil },
	}
	_, err := NewGenerator(store, runner, nil).Generate(context.Background(), "u1")
	require.ErrorContains(t, err, "disk full")
}

func TestGenerator_SerializesSameUser(t *testing.T) {
	var active, maxActive atomic.Int32
	store := &mocks.StoreMock{
		GetPreferencesFunc: func(ctx context.Context, userID string) (domain.Preferences, error) {
			return domain.Preferences{UserID: userID}, nil
		},
		AppendHistoryFunc: func(ctx context.Context, userID string, entry domain.HistoryEntry) error { return nil },
	}
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context, st graph.State) (graph.State, error) {
			if st.Input.Prefs.UserID == "u1" {
				n := active.Add(1)
				for {
					cur := maxActive.Load()
					if n <= cur || maxActive.CompareAndSwap(cur, n) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				active.Add(-1)
			}
			return st, nil
		},
	}
	g := NewGenerator(store, runner, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := g.Generate(context.Background(), "u1")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := g.Generate(context.Background(), "u2")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxActive.Load())
	assert.Len(t, store.AppendHistoryCalls(), 10)
	assert.Zero(t, g.locks.size(), "released locks are dropped")
}
