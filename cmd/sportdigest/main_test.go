package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gr-siqueira/sport-agent/pkg/config"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")
	cfgData := fmt.Sprintf(`
server:
  listen: "127.0.0.1:%d"
  timeout: 5s
database:
  dsn: %q
llm:
  test_mode: true
  test_digest: "Static digest text."
sources:
  sportsdb:
    disabled: true
  news:
    disabled: true
  search:
    provider: none
`, port, filepath.Join(tmpDir, "test.db"))
	require.NoError(t, os.WriteFile(configPath, []byte(cfgData), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, Opts{Config: configPath})
	}()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	post := func(path, body string) (int, map[string]interface{}) {
		resp, err := http.Post(baseURL+path, "application/json", bytes.NewBufferString(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		var res map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		return resp.StatusCode, res
	}

	code, res := post("/api/v1/configure-interests",
		`{"user_id":"u1","teams":["Lakers"],"leagues":["NBA"],"delivery_time":"07:00","timezone":"America/Los_Angeles"}`)
	require.Equal(t, http.StatusOK, code, res)
	assert.Equal(t, "u1", res["user_id"])

	code, res = post("/api/v1/generate-digest", `{"user_id":"u1"}`)
	require.Equal(t, http.StatusOK, code, res)
	digestText, ok := res["digest"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(digestText, "SPORTS DIGEST FOR "), digestText)
	assert.Contains(t, digestText, "TODAY'S SCHEDULE\nStatic digest text.")

	code, res = post("/api/v1/generate-digest", `{"user_id":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, code, res)

	resp, err := http.Get(baseURL + "/api/v1/scheduled-jobs")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"id":"digest_u1"`)

	resp, err = http.Get(baseURL + "/metrics")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), `sportdigest_digest_runs_total{result="ok"} 1`)

	cancel()
	select {
	case err := <-serverErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestDispatcherParams(t *testing.T) {
	cfg, err := config.Parse([]byte("llm:\n  test_mode: true\nsources:\n  news:\n    disabled: true\n  extraction:\n    enabled: true\n"))
	require.NoError(t, err)

	params := dispatcherParams(cfg, nil, nil)
	assert.NotNil(t, params.Sports)
	assert.NotNil(t, params.Search)
	assert.Nil(t, params.News, "disabled source stays a nil interface")
	assert.Equal(t, cfg.Tools.CompactLimit, params.Limit)

	cfg.Sources.Search.Provider = config.SearchNone
	cfg.Sources.SportsDB.Disabled = true
	params = dispatcherParams(cfg, nil, nil)
	assert.Nil(t, params.Sports)
	assert.Nil(t, params.Search)
}

func TestMakeGraph(t *testing.T) {
	cfg, err := config.Parse([]byte("llm:\n  test_mode: true\n"))
	require.NoError(t, err)
	g, err := makeGraph(cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"schedule", "scores", "player"}, g.Nodes())
}

func TestSecrets(t *testing.T) {
	cfg := &config.Config{}
	assert.Empty(t, secrets(cfg))
	cfg.LLM.APIKey = "sk-123"
	cfg.Sources.Search.APIKey = "serper-456"
	assert.Equal(t, []string{"sk-123", "serper-456"}, secrets(cfg))
}
