package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gr-siqueira/sport-agent/pkg/config"
	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/tools"
)

func newTestClient(url string) *Client {
	return NewClient(config.LLMConfig{
		Endpoint:    url + "/v1",
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
		MaxTokens:   500,
		Timeout:     5 * time.Second,
	})
}

func TestClient_InvokeWithTools(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		if assert.Len(t, req.Tools, 2) {
			assert.Equal(t, "upcoming_games", req.Tools[0].Function.Name)
			assert.Equal(t, "tv_schedule", req.Tools[1].Function.Name)
		}
		if assert.Len(t, req.Messages, 4) {
			assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
			assert.Len(t, req.Messages[2].ToolCalls, 1)
			assert.Equal(t, "call_0", req.Messages[3].ToolCallID)
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{
					Role: openai.ChatMessageRoleAssistant,
					ToolCalls: []openai.ToolCall{
						{ID: "call_1", Type: openai.ToolTypeFunction,
							Function: openai.FunctionCall{Name: "upcoming_games", Arguments: `{"teams":["Lakers"]}`}},
						{ID: "call_2", Type: openai.ToolTypeFunction,
							Function: openai.FunctionCall{Name: "tv_schedule", Arguments: `not json`}},
					},
				},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	resp, err := c.Invoke(context.Background(), []Message{
		{Role: domain.RoleSystem, Content: "You are a schedule assistant."},
		{Role: domain.RoleUser, Content: "Find games for Lakers."},
		{Role: domain.RoleAssistant, ToolRequests: []ToolRequest{{ID: "call_0", Name: "upcoming_games", Args: json.RawMessage(`{}`)}}},
		{Role: domain.RoleTool, ToolCallID: "call_0", Content: "Lakers vs Suns"},
	}, []tools.Kind{tools.KindUpcomingGames, tools.KindTVSchedule})
	require.NoError(t, err)

	assert.Empty(t, resp.Text)
	require.Len(t, resp.ToolRequests, 2)
	assert.Equal(t, ToolRequest{ID: "call_1", Name: "upcoming_games", Args: json.RawMessage(`{"teams":["Lakers"]}`)}, resp.ToolRequests[0])
	assert.JSONEq(t, `{}`, string(resp.ToolRequests[1].Args))
}

func TestClient_Answer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Empty(t, req.Tools)
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, "You are a concise sports information assistant.", req.Messages[0].Content)
			assert.Equal(t, "Respond with 200 characters or less.\nProvide latest news and updates about LeBron James.", req.Messages[1].Content)
		}
		resp := openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "  LeBron James returned to practice.\n"},
		}}}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	answer, err := newTestClient(server.URL).Answer(context.Background(), "Provide latest news and updates about LeBron James.")
	require.NoError(t, err)
	assert.Equal(t, "LeBron James returned to practice.", answer)
}

func TestClient_Errors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Invoke(context.Background(), []Message{{Role: domain.RoleUser, Content: "hi"}}, nil)
		require.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Invoke(context.Background(), []Message{{Role: domain.RoleUser, Content: "hi"}}, nil)
		require.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("empty answer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" "}}]}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Answer(context.Background(), "anything")
		require.ErrorIs(t, err, ErrProviderUnavailable)
	})
}

func TestStatic(t *testing.T) {
	s := Static{Text: "Test sport digest"}
	resp, err := s.Invoke(context.Background(), nil, tools.AllKinds)
	require.NoError(t, err)
	assert.Equal(t, Response{Text: "Test sport digest"}, resp)

	answer, err := s.Answer(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "Test sport digest", answer)
}
