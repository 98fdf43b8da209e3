package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/gr-siqueira/sport-agent/pkg/config"
	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/tools"
)

// ErrProviderUnavailable is returned when the provider call fails or returns nothing
var ErrProviderUnavailable = errors.New("provider unavailable")

const (
	answerSystemPrompt = "You are a concise sports information assistant."
	answerPrefix       = "Respond with 200 characters or less.\n"
)

// ToolRequest is a tool invocation requested by the provider
type ToolRequest struct {
	ID   string
	Name string
	Args json.RawMessage
}

// Message is a provider conversation entry. Assistant messages may carry the tool requests
// they made, tool messages refer to the request they answer by ToolCallID
type Message struct {
	Role         domain.Role
	Content      string
	ToolCallID   string
	ToolRequests []ToolRequest
}

// Response is the provider reply, either final text or a set of tool requests
type Response struct {
	Text         string
	ToolRequests []ToolRequest
}

// Client is an OpenAI-compatible capability provider
type Client struct {
	client *openai.Client
	config config.LLMConfig
}

// NewClient creates a provider client for the configured endpoint
func NewClient(cfg config.LLMConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{client: openai.NewClientWithConfig(clientConfig), config: cfg}
}

// Invoke sends the conversation with the given tool definitions attached
func (c *Client) Invoke(ctx context.Context, messages []Message, kinds []tools.Kind) (Response, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
		Messages:    chatMessages(messages),
	}
	for _, def := range tools.Definitions(kinds) {
		req.Tools = append(req.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.Parameters,
			},
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return Response{}, fmt.Errorf("llm request failed: %w: %w", ErrProviderUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("no response from llm: %w", ErrProviderUnavailable)
	}

	msg := resp.Choices[0].Message
	res := Response{Text: strings.TrimSpace(msg.Content)}
	for _, tc := range msg.ToolCalls {
		if tc.Type != "" && tc.Type != openai.ToolTypeFunction {
			lgr.Printf("[DEBUG] skip non-function tool call %s of type %s", tc.ID, tc.Type)
			continue
		}
		args := json.RawMessage(tc.Function.Arguments)
		if !json.Valid(args) {
			args = json.RawMessage("{}")
		}
		res.ToolRequests = append(res.ToolRequests, ToolRequest{ID: tc.ID, Name: tc.Function.Name, Args: args})
	}
	return res, nil
}

// Answer asks the provider for a short free-text answer without tools
func (c *Client) Answer(ctx context.Context, instruction string) (string, error) {
	resp, err := c.Invoke(ctx, []Message{
		{Role: domain.RoleSystem, Content: answerSystemPrompt},
		{Role: domain.RoleUser, Content: answerPrefix + instruction},
	}, nil)
	if err != nil {
		return "", err
	}
	if resp.Text == "" {
		return "", fmt.Errorf("empty answer: %w", ErrProviderUnavailable)
	}
	return resp.Text, nil
}

func chatMessages(messages []Message) []openai.ChatCompletionMessage {
	res := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msg := openai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content, ToolCallID: m.ToolCallID}
		for _, tr := range m.ToolRequests {
			msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
				ID:       tr.ID,
				Type:     openai.ToolTypeFunction,
				Function: openai.FunctionCall{Name: tr.Name, Arguments: string(tr.Args)},
			})
		}
		res = append(res, msg)
	}
	return res
}
