package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// ErrMissingCredentials is returned when no LLM api key is configured outside of test mode
var ErrMissingCredentials = errors.New("missing llm credentials")

// search providers
const (
	SearchDuckDuckGo = "duckduckgo"
	SearchSerper     = "serper"
	SearchNone       = "none"
)

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	LLM      LLMConfig      `yaml:"llm" json:"llm" jsonschema:"description=OpenAI-compatible capability provider"`
	Tools    ToolsConfig    `yaml:"tools" json:"tools" jsonschema:"description=Tool dispatcher settings"`
	Sources  SourcesConfig  `yaml:"sources" json:"sources" jsonschema:"description=Sports data sources used by tools"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Daily digest scheduler"`
	Digest   DigestConfig   `yaml:"digest" json:"digest" jsonschema:"description=Digest composition and history"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:sportdigest.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// LLMConfig holds the capability provider configuration
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.openai.com/v1,description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,minimum=0,maximum=2,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	TestMode    bool          `yaml:"test_mode" json:"test_mode" jsonschema:"default=false,description=Use a static provider instead of calling the LLM"`
	TestDigest  string        `yaml:"test_digest" json:"test_digest" jsonschema:"default=Test sport digest,description=Text returned by the static provider in test mode"`
}

// ToolsConfig holds tool dispatcher settings
type ToolsConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Timeout of a single data source attempt"`
	CacheTTL     time.Duration `yaml:"cache_ttl" json:"cache_ttl" jsonschema:"default=5m,description=How long tool results are cached"`
	CacheSize    int           `yaml:"cache_size" json:"cache_size" jsonschema:"default=256,description=Maximum number of cached tool results"`
	CompactLimit int           `yaml:"compact_limit" json:"compact_limit" jsonschema:"default=200,description=Maximum length of a tool result in characters"`
}

// SourcesConfig groups external data sources
type SourcesConfig struct {
	SportsDB   SportsDBConfig   `yaml:"sportsdb" json:"sportsdb" jsonschema:"description=TheSportsDB structured data"`
	Search     SearchConfig     `yaml:"search" json:"search" jsonschema:"description=Web search"`
	News       NewsConfig       `yaml:"news" json:"news" jsonschema:"description=News RSS search"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Article text extraction for thin search results"`
}

// SportsDBConfig holds TheSportsDB client settings
type SportsDBConfig struct {
	Disabled bool   `yaml:"disabled" json:"disabled" jsonschema:"default=false,description=Disable TheSportsDB lookups"`
	Endpoint string `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://www.thesportsdb.com/api/v1/json,description=API base URL"`
	APIKey   string `yaml:"api_key" json:"api_key" jsonschema:"default=3,description=API key (3 is the public test key)"`
}

// SearchConfig holds web search settings
type SearchConfig struct {
	Provider   string `yaml:"provider" json:"provider" jsonschema:"default=duckduckgo,enum=duckduckgo,enum=serper,enum=none,description=Search provider"`
	Endpoint   string `yaml:"endpoint" json:"endpoint" jsonschema:"description=Provider endpoint override"`
	APIKey     string `yaml:"api_key" json:"api_key" jsonschema:"description=Provider API key (serper)"`
	MaxResults int    `yaml:"max_results" json:"max_results" jsonschema:"default=5,minimum=1,maximum=10,description=Maximum results per query"`
}

// NewsConfig holds news feed search settings
type NewsConfig struct {
	Disabled bool   `yaml:"disabled" json:"disabled" jsonschema:"default=false,description=Disable news feed lookups"`
	Endpoint string `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://news.google.com/rss/search,description=RSS search endpoint taking a q parameter"`
	MaxItems int    `yaml:"max_items" json:"max_items" jsonschema:"default=5,minimum=1,description=Maximum feed items per query"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Fetch pages of thin search results"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=5s,description=Extraction timeout per page"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=SportDigest/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
}

// ScheduleConfig holds scheduler settings
type ScheduleConfig struct {
	RunTimeout time.Duration `yaml:"run_timeout" json:"run_timeout" jsonschema:"default=5m,description=Maximum duration of a scheduled digest run"`
}

// DigestConfig holds digest composition settings
type DigestConfig struct {
	HistoryLimit int `yaml:"history_limit" json:"history_limit" jsonschema:"default=30,description=Digests kept per user"`
	OutputLimit  int `yaml:"output_limit" json:"output_limit" jsonschema:"default=200,description=Maximum length of a task node output"`
	ExcerptLimit int `yaml:"excerpt_limit" json:"excerpt_limit" jsonschema:"default=400,description=Maximum length of a fallback digest section"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse expands environment variables in data, decodes it, applies defaults and validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema validation is supplementary, report and continue
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:sportdigest.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// llm
	if c.LLM.Endpoint == "" {
		c.LLM.Endpoint = "https://api.openai.com/v1"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 500
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.LLM.TestDigest == "" {
		c.LLM.TestDigest = "Test sport digest"
	}

	// tools
	if c.Tools.Timeout == 0 {
		c.Tools.Timeout = 10 * time.Second
	}
	if c.Tools.CacheTTL == 0 {
		c.Tools.CacheTTL = 5 * time.Minute
	}
	if c.Tools.CacheSize == 0 {
		c.Tools.CacheSize = 256
	}
	if c.Tools.CompactLimit == 0 {
		c.Tools.CompactLimit = 200
	}

	// sources
	if c.Sources.SportsDB.Endpoint == "" {
		c.Sources.SportsDB.Endpoint = "https://www.thesportsdb.com/api/v1/json"
	}
	if c.Sources.SportsDB.APIKey == "" {
		c.Sources.SportsDB.APIKey = "3"
	}
	if c.Sources.Search.Provider == "" {
		c.Sources.Search.Provider = SearchDuckDuckGo
	}
	if c.Sources.Search.MaxResults == 0 {
		c.Sources.Search.MaxResults = 5
	}
	if c.Sources.News.Endpoint == "" {
		c.Sources.News.Endpoint = "https://news.google.com/rss/search"
	}
	if c.Sources.News.MaxItems == 0 {
		c.Sources.News.MaxItems = 5
	}
	if c.Sources.Extraction.Timeout == 0 {
		c.Sources.Extraction.Timeout = 5 * time.Second
	}
	if c.Sources.Extraction.UserAgent == "" {
		c.Sources.Extraction.UserAgent = "SportDigest/1.0"
	}
	if c.Sources.Extraction.MinTextLength == 0 {
		c.Sources.Extraction.MinTextLength = 100
	}

	// schedule and digest
	if c.Schedule.RunTimeout == 0 {
		c.Schedule.RunTimeout = 5 * time.Minute
	}
	if c.Digest.HistoryLimit == 0 {
		c.Digest.HistoryLimit = 30
	}
	if c.Digest.OutputLimit == 0 {
		c.Digest.OutputLimit = 200
	}
	if c.Digest.ExcerptLimit == 0 {
		c.Digest.ExcerptLimit = 400
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if !cfg.LLM.TestMode && cfg.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required unless llm.test_mode is set: %w", ErrMissingCredentials)
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	switch cfg.Sources.Search.Provider {
	case SearchDuckDuckGo, SearchNone:
	case SearchSerper:
		if cfg.Sources.Search.APIKey == "" {
			return fmt.Errorf("sources.search.api_key is required for serper")
		}
	default:
		return fmt.Errorf("unknown sources.search.provider %q", cfg.Sources.Search.Provider)
	}
	if cfg.Sources.Search.MaxResults < 1 || cfg.Sources.Search.MaxResults > 10 {
		return fmt.Errorf("sources.search.max_results must be between 1 and 10")
	}

	if cfg.Tools.Timeout < 100*time.Millisecond {
		return fmt.Errorf("tools.timeout must be at least 100ms")
	}
	if cfg.Tools.CacheSize < 0 {
		return fmt.Errorf("tools.cache_size must be non-negative")
	}
	if cfg.Digest.HistoryLimit < 1 {
		return fmt.Errorf("digest.history_limit must be at least 1")
	}
	if cfg.Digest.OutputLimit < 20 || cfg.Digest.ExcerptLimit < 20 {
		return fmt.Errorf("digest output and excerpt limits must be at least 20")
	}

	if cfg.Sources.Extraction.Enabled && cfg.Sources.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
