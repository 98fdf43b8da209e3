package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
llm:
  api_key: sk-test
  model: gpt-4o
  temperature: 0.7
tools:
  timeout: 3s
  cache_ttl: 1m
sources:
  search:
    provider: serper
    api_key: serper-key
    max_results: 3
  news:
    disabled: true
schedule:
  run_timeout: 2m
digest:
  history_limit: 10
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "sk-test", cfg.LLM.APIKey)
		assert.Equal(t, "gpt-4o", cfg.LLM.Model)
		assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 3*time.Second, cfg.Tools.Timeout)
		assert.Equal(t, time.Minute, cfg.Tools.CacheTTL)
		assert.Equal(t, SearchSerper, cfg.Sources.Search.Provider)
		assert.Equal(t, 3, cfg.Sources.Search.MaxResults)
		assert.True(t, cfg.Sources.News.Disabled)
		assert.Equal(t, 2*time.Minute, cfg.Schedule.RunTimeout)
		assert.Equal(t, 10, cfg.Digest.HistoryLimit)

		listen, timeout := cfg.GetServerConfig()
		assert.Equal(t, ":9090", listen)
		assert.Equal(t, 45*time.Second, timeout)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "llm:\n  test_mode: true\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Contains(t, cfg.Database.DSN, "sportdigest.db")
		assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.Endpoint)
		assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
		assert.Equal(t, "Test sport digest", cfg.LLM.TestDigest)
		assert.Equal(t, 10*time.Second, cfg.Tools.Timeout)
		assert.Equal(t, 5*time.Minute, cfg.Tools.CacheTTL)
		assert.Equal(t, 256, cfg.Tools.CacheSize)
		assert.Equal(t, 200, cfg.Tools.CompactLimit)
		assert.Equal(t, "3", cfg.Sources.SportsDB.APIKey)
		assert.Equal(t, SearchDuckDuckGo, cfg.Sources.Search.Provider)
		assert.Equal(t, 5, cfg.Sources.Search.MaxResults)
		assert.Equal(t, "https://news.google.com/rss/search", cfg.Sources.News.Endpoint)
		assert.Equal(t, 5*time.Minute, cfg.Schedule.RunTimeout)
		assert.Equal(t, 30, cfg.Digest.HistoryLimit)
		assert.Equal(t, 200, cfg.Digest.OutputLimit)
		assert.Equal(t, 400, cfg.Digest.ExcerptLimit)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("SPORT_TEST_KEY", "sk-from-env")
		cfg, err := Load(writeConfig(t, "llm:\n  api_key: ${SPORT_TEST_KEY}\n"))
		require.NoError(t, err)
		assert.Equal(t, "sk-from-env", cfg.LLM.APIKey)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "invalid: yaml: content: ["))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "bad temperature", yaml: "llm:\n  test_mode: true\n  temperature: 3\n", wantErr: "llm.temperature"},
		{name: "unknown search provider", yaml: "llm:\n  test_mode: true\nsources:\n  search:\n    provider: bing\n", wantErr: "unknown sources.search.provider"},
		{name: "serper without key", yaml: "llm:\n  test_mode: true\nsources:\n  search:\n    provider: serper\n", wantErr: "api_key is required for serper"},
		{name: "too many results", yaml: "llm:\n  test_mode: true\nsources:\n  search:\n    max_results: 20\n", wantErr: "max_results"},
		{name: "tiny tool timeout", yaml: "llm:\n  test_mode: true\ntools:\n  timeout: 1ms\n", wantErr: "tools.timeout"},
		{name: "tiny server timeout", yaml: "llm:\n  test_mode: true\nserver:\n  timeout: 10ms\n", wantErr: "server timeout"},
		{name: "small output limit", yaml: "llm:\n  test_mode: true\ndigest:\n  output_limit: 5\n", wantErr: "limits must be at least 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
