// Package digest composes daily sports digests. Generator runs the digest graph for a user
// and stores the result, Service exposes preference management and digest operations.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/graph"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner
//go:generate moq -out mocks/job_scheduler.go -pkg mocks -skip-ensure -fmt goimports . JobScheduler

// Store keeps preferences and digest history
type Store interface {
	GetPreferences(ctx context.Context, userID string) (domain.Preferences, error)
	SavePreferences(ctx context.Context, prefs domain.Preferences) error
	DeletePreferences(ctx context.Context, userID string) error
	AppendHistory(ctx context.Context, userID string, entry domain.HistoryEntry) error
	GetHistory(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error)
}

// Runner runs the digest graph
type Runner interface {
	Run(ctx context.Context, st graph.State) (graph.State, error)
}

// Generator runs the graph for a user and appends the digest to history.
// Runs of the same user are serialized.
type Generator struct {
	store   Store
	runner  Runner
	metrics *Metrics
	now     func() time.Time
	locks   *userLocks
}

// NewGenerator makes a generator
func NewGenerator(store Store, runner Runner, metrics *Metrics) *Generator {
	return &Generator{store: store, runner: runner, metrics: metrics, now: time.Now, locks: newUserLocks()}
}

// Generate produces a digest for the user and stores it in history
func (g *Generator) Generate(ctx context.Context, userID string) (domain.DigestResult, error) {
	unlock := g.locks.lock(userID)
	defer unlock()

	prefs, err := g.store.GetPreferences(ctx, userID)
	if err != nil {
		return domain.DigestResult{}, err
	}

	st := time.Now()
	res, err := g.runner.Run(ctx, graph.State{Input: graph.Input{Prefs: prefs.Clone(), Date: g.now()}})
	if err != nil {
		g.metrics.Run("error", time.Since(st))
		return domain.DigestResult{}, fmt.Errorf("generate digest for %s: %w", userID, err)
	}

	generatedAt := g.now().UTC().Format(domain.TimestampLayout)
	if err := g.store.AppendHistory(ctx, userID, domain.HistoryEntry{Digest: res.FinalDigest, Timestamp: generatedAt}); err != nil {
		g.metrics.Run("error", time.Since(st))
		return domain.DigestResult{}, fmt.Errorf("store digest of %s: %w", userID, err)
	}
	g.metrics.Run("ok", time.Since(st))
	lgr.Printf("[DEBUG] digest for %s generated in %v, %d chars", userID, time.Since(st), len(res.FinalDigest))

	calls := res.ToolCalls
	if calls == nil {
		calls = []domain.ToolCall{}
	}
	return domain.DigestResult{Digest: res.FinalDigest, GeneratedAt: generatedAt, ToolCalls: calls}, nil
}
