package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/gr-siqueira/sport-agent/pkg/content"
	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/sources"
)

//go:generate moq -out mocks/sports.go -pkg mocks -skip-ensure -fmt goimports . SportsSource
//go:generate moq -out mocks/searcher.go -pkg mocks -skip-ensure -fmt goimports . Searcher
//go:generate moq -out mocks/news.go -pkg mocks -skip-ensure -fmt goimports . NewsSource
//go:generate moq -out mocks/answerer.go -pkg mocks -skip-ensure -fmt goimports . TextAnswerer

// SportsSource provides structured schedules, results and standings
type SportsSource interface {
	NextEvents(ctx context.Context, team string, sport domain.Sport) ([]sources.Event, error)
	LastEvents(ctx context.Context, team string, sport domain.Sport) ([]sources.Event, error)
	Standings(ctx context.Context, league string) ([]sources.Standing, error)
}

// Searcher runs a web search
type Searcher interface {
	Search(ctx context.Context, query string) ([]sources.SearchResult, error)
}

// NewsSource finds news headlines
type NewsSource interface {
	Headlines(ctx context.Context, query string) ([]sources.Headline, error)
}

// TextAnswerer answers a short instruction with free text
type TextAnswerer interface {
	Answer(ctx context.Context, instruction string) (string, error)
}

// errNoSource marks a step which has no source for the request, it is not a failure
var errNoSource = errors.New("no source")

// Dispatcher executes tool requests through a fallback chain:
// specialized source, web search, provider answer and a static sentence as the last resort
type Dispatcher struct {
	sports   SportsSource
	search   Searcher
	news     NewsSource
	answerer TextAnswerer
	timeout  time.Duration
	limit    int
	cache    *expirable.LRU[string, string]
	metrics  *Metrics
	now      func() time.Time
}

// Params configures Dispatcher, every source is optional
type Params struct {
	Sports    SportsSource
	Search    Searcher
	News      NewsSource
	Answerer  TextAnswerer
	Timeout   time.Duration // per source attempt
	CacheTTL  time.Duration
	CacheSize int // non-positive disables caching
	Limit     int // result length limit, content.DefaultLimit if not set
	Metrics   *Metrics
}

// NewDispatcher makes a Dispatcher
func NewDispatcher(params Params) *Dispatcher {
	if params.Timeout <= 0 {
		params.Timeout = 10 * time.Second
	}
	if params.Limit <= 0 {
		params.Limit = content.DefaultLimit
	}
	d := &Dispatcher{
		sports:   params.Sports,
		search:   params.Search,
		news:     params.News,
		answerer: params.Answerer,
		timeout:  params.Timeout,
		limit:    params.Limit,
		metrics:  params.Metrics,
		now:      time.Now,
	}
	if params.CacheSize > 0 {
		ttl := params.CacheTTL
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		d.cache = expirable.NewLRU[string, string](params.CacheSize, nil, ttl)
	}
	return d
}

type step struct {
	source string
	run    func(ctx context.Context, req Request, sport domain.Sport) (string, error)
}

// Invoke runs the request and returns bounded non-empty text, it never fails
func (d *Dispatcher) Invoke(ctx context.Context, req Request) string {
	if req.Args == nil {
		req.Args = newArgs(req.Kind)
	}
	if req.Args == nil {
		return fmt.Sprintf("Tool %q is not available.", req.Kind)
	}
	req.Args.normalize()

	key := req.Key()
	if d.cache != nil {
		if cached, ok := d.cache.Get(key); ok {
			d.metrics.SourceResult("cache", "hit")
			return cached
		}
	}

	sport := detectSport(req.Args.subjects())
	steps := []step{
		{source: "specialized", run: d.specialized},
		{source: "search", run: d.webSearch},
		{source: "provider", run: d.providerAnswer},
	}
	for _, s := range steps {
		text, err := d.attempt(ctx, s, req, sport)
		if err != nil {
			continue
		}
		if res := content.Compact(text, d.limit); res != "" {
			if d.cache != nil {
				d.cache.Add(key, res)
			}
			return res
		}
	}

	d.metrics.SourceResult("static", "ok")
	return staticAnswer(req, d.limit)
}

// attempt runs a single step with its own timeout, errors are logged and reported to the caller
func (d *Dispatcher) attempt(ctx context.Context, s step, req Request, sport domain.Sport) (string, error) {
	if ctx.Err() != nil {
		d.metrics.SourceResult(s.source, "canceled")
		return "", ctx.Err()
	}
	actx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	text, err := s.run(actx, req, sport)
	switch {
	case errors.Is(err, errNoSource):
		d.metrics.SourceResult(s.source, "skip")
		return "", err
	case err != nil:
		d.metrics.SourceResult(s.source, "error")
		lgr.Printf("[DEBUG] tool %s, %s source failed: %v", req.Kind, s.source, err)
		return "", err
	case strings.TrimSpace(text) == "":
		d.metrics.SourceResult(s.source, "empty")
		return "", sources.ErrNoData
	}
	d.metrics.SourceResult(s.source, "ok")
	return text, nil
}

func (d *Dispatcher) specialized(ctx context.Context, req Request, sport domain.Sport) (string, error) {
	switch args := req.Args.(type) {
	case *UpcomingArgs:
		if d.sports == nil {
			return "", errNoSource
		}
		return perSubject(args.Teams, func(team string) (string, error) {
			events, err := d.sports.NextEvents(ctx, team, sport)
			if err != nil {
				return "", err
			}
			return formatUpcoming(team, events, args.Date, d.now())
		})
	case *ResultsArgs:
		if d.sports == nil {
			return "", errNoSource
		}
		return perSubject(args.Teams, func(team string) (string, error) {
			events, err := d.sports.LastEvents(ctx, team, sport)
			if err != nil {
				return "", err
			}
			since := d.now().Add(-time.Duration(args.LookbackDays)*24*time.Hour - 12*time.Hour)
			return formatResults(team, events, since)
		})
	case *LeaguesArgs:
		if d.sports == nil || req.Kind != KindTeamStandings {
			return "", errNoSource
		}
		return perSubject(args.Leagues, func(league string) (string, error) {
			table, err := d.sports.Standings(ctx, league)
			if err != nil {
				return "", err
			}
			return formatStandings(league, table), nil
		})
	case *PlayersArgs:
		if d.news == nil || req.Kind != KindPlayerNews {
			return "", errNoSource
		}
		return perSubject(args.PlayerNames, func(player string) (string, error) {
			headlines, err := d.news.Headlines(ctx, player)
			if err != nil {
				return "", err
			}
			return formatHeadlines(player, headlines), nil
		})
	case *TeamsArgs:
		if d.news == nil {
			return "", errNoSource
		}
		return perSubject(args.Teams, func(team string) (string, error) {
			headlines, err := d.news.Headlines(ctx, team+" injury")
			if err != nil {
				return "", err
			}
			return formatHeadlines(team, headlines), nil
		})
	}
	return "", errNoSource
}

func (d *Dispatcher) webSearch(ctx context.Context, req Request, sport domain.Sport) (string, error) {
	if d.search == nil {
		return "", errNoSource
	}
	results, err := d.search.Search(ctx, searchQuery(req, sport))
	if err != nil {
		return "", err
	}
	return formatSearch(results), nil
}

func (d *Dispatcher) providerAnswer(ctx context.Context, req Request, _ domain.Sport) (string, error) {
	if d.answerer == nil {
		return "", errNoSource
	}
	return d.answerer.Answer(ctx, Instruction(req))
}

// perSubject runs fn for up to three subjects and joins successful results,
// it fails only when every subject failed
func perSubject(subjects []string, fn func(string) (string, error)) (string, error) {
	if len(subjects) == 0 {
		return "", sources.ErrNoData
	}
	if len(subjects) > 3 {
		subjects = subjects[:3]
	}
	var parts []string
	var lastErr error
	for _, s := range subjects {
		text, err := fn(s)
		if err != nil {
			lastErr = err
			continue
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		if lastErr == nil {
			lastErr = sources.ErrNoData
		}
		return "", lastErr
	}
	return strings.Join(parts, "; "), nil
}

// detectSport returns the sport of the first classifiable subject
func detectSport(subjects []string) domain.Sport {
	for _, s := range subjects {
		if sport := domain.ClassifySport(s); sport != domain.SportOther {
			return sport
		}
	}
	return domain.SportOther
}
