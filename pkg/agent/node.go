// Package agent implements task nodes of the digest graph. A node renders its role prompt,
// lets the provider request tools, runs them through the dispatcher and asks the provider
// for a final summary of the gathered data.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"github.com/go-pkgz/lgr"
	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/gr-siqueira/sport-agent/pkg/content"
	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/graph"
	"github.com/gr-siqueira/sport-agent/pkg/llm"
	"github.com/gr-siqueira/sport-agent/pkg/tools"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider
//go:generate moq -out mocks/tool_runner.go -pkg mocks -skip-ensure -fmt goimports . ToolRunner

// Provider is the capability provider used by nodes
type Provider interface {
	Invoke(ctx context.Context, messages []llm.Message, kinds []tools.Kind) (llm.Response, error)
}

// ToolRunner executes a tool request, it never fails
type ToolRunner interface {
	Invoke(ctx context.Context, req tools.Request) string
}

// Node is a task node bound to a role
type Node struct {
	role     Role
	tmpl     *template.Template
	provider Provider
	tools    ToolRunner
	limit    int
}

// promptData is available to role prompt templates
type promptData struct {
	UserID   string
	Teams    []string
	Players  []string
	Leagues  []string
	Timezone string
	Date     string
}

// NewNode makes a node for the role, the role prompt must be a valid template
func NewNode(role Role, provider Provider, runner ToolRunner, limit int) (*Node, error) {
	tmpl, err := template.New(role.Name).Funcs(sprig.TxtFuncMap()).Parse(role.Prompt)
	if err != nil {
		return nil, fmt.Errorf("parse prompt of %s: %w", role.Name, err)
	}
	if limit <= 0 {
		limit = content.DefaultLimit
	}
	return &Node{role: role, tmpl: tmpl, provider: provider, tools: runner, limit: limit}, nil
}

// Name returns role name
func (n *Node) Name() string { return n.role.Name }

// Slot returns the output slot written by the node
func (n *Node) Slot() string { return n.role.Slot }

// Execute runs the node for a single graph run
func (n *Node) Execute(ctx context.Context, in graph.Input) (graph.Update, error) {
	instruction, err := n.render(in)
	if err != nil {
		return graph.Update{}, err
	}
	upd := graph.Update{Slot: n.role.Slot, ToolCalls: []domain.ToolCall{}}
	upd.Messages = append(upd.Messages, domain.Message{Role: domain.RoleSystem, Node: n.role.Name, Content: instruction})

	conv := []llm.Message{{Role: domain.RoleSystem, Content: instruction}}
	resp, err := n.provider.Invoke(ctx, conv, n.role.Tools)
	if err != nil {
		return graph.Update{}, fmt.Errorf("invoke provider: %w", err)
	}

	if len(resp.ToolRequests) > 0 {
		conv = append(conv, llm.Message{Role: domain.RoleAssistant, Content: resp.Text, ToolRequests: resp.ToolRequests})
		for _, tr := range resp.ToolRequests {
			upd.ToolCalls = append(upd.ToolCalls, domain.ToolCall{Node: n.role.Name, Tool: tr.Name, Args: argsMap(tr.Args)})
			result := n.runTool(ctx, tr)
			conv = append(conv, llm.Message{Role: domain.RoleTool, Content: result, ToolCallID: tr.ID})
			upd.Messages = append(upd.Messages, domain.Message{Role: domain.RoleTool, Node: n.role.Name, Content: result})
		}
		conv = append(conv, llm.Message{Role: domain.RoleSystem, Content: n.role.SynthesisPrompt})
		if resp, err = n.provider.Invoke(ctx, conv, nil); err != nil {
			return graph.Update{}, fmt.Errorf("invoke provider for synthesis: %w", err)
		}
	}

	upd.Output = content.Compact(resp.Text, n.limit)
	upd.Messages = append(upd.Messages, domain.Message{Role: domain.RoleAssistant, Node: n.role.Name, Content: upd.Output})
	return upd, nil
}

func (n *Node) render(in graph.Input) (string, error) {
	data := promptData{
		UserID:   in.Prefs.UserID,
		Teams:    in.Prefs.Teams,
		Players:  in.Prefs.Players,
		Leagues:  in.Prefs.Leagues,
		Timezone: in.Prefs.Timezone,
		Date:     in.Date.Format("Monday, January 2, 2006"),
	}
	if loc, err := time.LoadLocation(in.Prefs.Timezone); err == nil {
		data.Date = in.Date.In(loc).Format("Monday, January 2, 2006")
	}
	var buf bytes.Buffer
	if err := n.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt of %s: %w", n.role.Name, err)
	}
	return buf.String(), nil
}

// runTool answers a single tool request, requests outside of the role tools are answered with an explanation
func (n *Node) runTool(ctx context.Context, tr llm.ToolRequest) string {
	kind := tools.Kind(tr.Name)
	if !n.role.allows(kind) {
		lgr.Printf("[WARN] %s node requested tool %q outside of its role", n.role.Name, tr.Name)
		return fmt.Sprintf("Tool %s is not available to the %s assistant.", tr.Name, n.role.Name)
	}
	req, err := tools.Parse(tr.Name, tr.Args)
	if err != nil {
		lgr.Printf("[WARN] %s node sent bad arguments for %s: %v", n.role.Name, tr.Name, err)
		return fmt.Sprintf("Tool %s could not read its arguments.", tr.Name)
	}
	return n.tools.Invoke(ctx, req)
}

func argsMap(raw json.RawMessage) map[string]any {
	res := map[string]any{}
	if len(raw) == 0 {
		return res
	}
	if err := json.Unmarshal(raw, &res); err != nil || res == nil {
		return map[string]any{}
	}
	return res
}
