package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/gr-siqueira/sport-agent/pkg/agent"
	"github.com/gr-siqueira/sport-agent/pkg/config"
	"github.com/gr-siqueira/sport-agent/pkg/content"
	"github.com/gr-siqueira/sport-agent/pkg/digest"
	"github.com/gr-siqueira/sport-agent/pkg/graph"
	"github.com/gr-siqueira/sport-agent/pkg/llm"
	"github.com/gr-siqueira/sport-agent/pkg/repository"
	"github.com/gr-siqueira/sport-agent/pkg/scheduler"
	"github.com/gr-siqueira/sport-agent/pkg/service"
	"github.com/gr-siqueira/sport-agent/pkg/sources"
	"github.com/gr-siqueira/sport-agent/pkg/tools"
	"github.com/gr-siqueira/sport-agent/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

// provider is the capability provider used by task nodes and by the tool fallback chain
type provider interface {
	agent.Provider
	tools.TextAnswerer
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[INFO] starting sportdigest version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and serves until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLog(opts.Debug, opts.NoColor, secrets(cfg)...)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		HistoryLimit:    cfg.Digest.HistoryLimit,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()
	store := service.NewStore(repos.Preferences, repos.History)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var prov provider = llm.NewClient(cfg.LLM)
	if cfg.LLM.TestMode {
		log.Printf("[INFO] test mode, using static provider")
		prov = llm.Static{Text: cfg.LLM.TestDigest}
	}

	dispatcher := tools.NewDispatcher(dispatcherParams(cfg, prov, tools.NewMetrics(registry)))

	g, err := makeGraph(cfg, prov, dispatcher)
	if err != nil {
		return fmt.Errorf("failed to build digest graph: %w", err)
	}

	gen := digest.NewGenerator(store, g, digest.NewMetrics(registry))
	sched := scheduler.New(scheduler.Params{Generator: gen, Store: store, RunTimeout: cfg.Schedule.RunTimeout})
	if _, err := sched.RestoreAll(ctx); err != nil {
		return fmt.Errorf("failed to restore schedules: %w", err)
	}
	sched.Start()
	defer sched.Shutdown()

	srv := server.New(cfg, digest.NewService(store, gen, sched), registry, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// dispatcherParams sets only enabled sources, disabled ones stay nil interfaces
func dispatcherParams(cfg *config.Config, answerer tools.TextAnswerer, metrics *tools.Metrics) tools.Params {
	params := tools.Params{
		Answerer:  answerer,
		Timeout:   cfg.Tools.Timeout,
		CacheTTL:  cfg.Tools.CacheTTL,
		CacheSize: cfg.Tools.CacheSize,
		Limit:     cfg.Tools.CompactLimit,
		Metrics:   metrics,
	}

	if !cfg.Sources.SportsDB.Disabled {
		params.Sports = sources.NewSportsDB(sources.SportsDBParams{
			Endpoint: cfg.Sources.SportsDB.Endpoint,
			APIKey:   cfg.Sources.SportsDB.APIKey,
			Timeout:  cfg.Tools.Timeout,
		})
	}
	if !cfg.Sources.News.Disabled {
		params.News = sources.NewNews(sources.NewsParams{
			Endpoint: cfg.Sources.News.Endpoint,
			MaxItems: cfg.Sources.News.MaxItems,
			Timeout:  cfg.Tools.Timeout,
		})
	}

	searchParams := sources.SearchParams{
		Endpoint:   cfg.Sources.Search.Endpoint,
		APIKey:     cfg.Sources.Search.APIKey,
		MaxResults: cfg.Sources.Search.MaxResults,
		Timeout:    cfg.Tools.Timeout,
	}
	if ext := cfg.Sources.Extraction; ext.Enabled {
		searchParams.Extractor = content.NewExtractor(content.ExtractorParams{
			Timeout:   ext.Timeout,
			UserAgent: ext.UserAgent,
			MinChars:  ext.MinTextLength,
		})
	}
	switch cfg.Sources.Search.Provider {
	case config.SearchDuckDuckGo:
		params.Search = sources.NewDuckDuckGo(searchParams)
	case config.SearchSerper:
		params.Search = sources.NewSerper(searchParams)
	}

	return params
}

// makeGraph builds the digest graph from the built-in roles
func makeGraph(cfg *config.Config, prov agent.Provider, runner agent.ToolRunner) (*graph.Graph, error) {
	roles := agent.DefaultRoles()
	nodes := make([]graph.Node, 0, len(roles))
	slots := make([]string, 0, len(roles))
	for _, role := range roles {
		node, err := agent.NewNode(role, prov, runner, cfg.Digest.OutputLimit)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		slots = append(slots, role.Slot)
	}
	return graph.New(nodes, digest.NewSynthesizer(slots, digest.DefaultSections, cfg.Digest.ExcerptLimit))
}

func secrets(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{cfg.LLM.APIKey, cfg.Sources.Search.APIKey} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
