package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := Parse([]byte("llm:\n  test_mode: true\n"))
	require.NoError(t, err)
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, VerifyAgainstEmbeddedSchema(validConfig(t)))
	})

	t.Run("missing listen", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Server.Listen = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})

	t.Run("missing run timeout", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Schedule.RunTimeout = 0
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schedule.run_timeout is required")
	})
}

func TestEmbeddedSchema_MatchesConfig(t *testing.T) {
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &schema))
	assert.Equal(t, "#/$defs/Config", schema["$ref"])

	cfg := validConfig(t)
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	var values map[string]any
	require.NoError(t, json.Unmarshal(data, &values))

	defs := map[string]json.RawMessage{}
	raw, err := json.Marshal(schema["$defs"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &defs))

	assert.Empty(t, undeclaredKeys(defs, "Config", "", values))
	assert.Equal(t, []string{"extra"}, undeclaredKeys(defs, "Config", "", map[string]any{"extra": 1}))
	assert.Equal(t, []string{"sources.search.region"},
		undeclaredKeys(defs, "Config", "", map[string]any{"sources": map[string]any{"search": map[string]any{"region": "us"}}}))
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)
	def, ok := schema.Definitions["LLMConfig"]
	require.True(t, ok)
	_, ok = def.Properties.Get("test_mode")
	assert.True(t, ok)
}
