// Package graph runs a fixed fan-out of task nodes followed by a single synthesis step.
// Nodes run concurrently and return updates, updates are merged after the join
// in the declaration order of nodes, so the result does not depend on completion order.
package graph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
)

// ErrSlotWritten is returned when an output slot is written twice in a run
var ErrSlotWritten = errors.New("output slot already written")

// Input is the read-only run input shared by all nodes
type Input struct {
	Prefs domain.Preferences
	Date  time.Time
}

// State is the state of a single run
type State struct {
	Input       Input
	Messages    []domain.Message
	ToolCalls   []domain.ToolCall
	Outputs     map[string]string
	FinalDigest string
}

// Update is the immutable result of a node
type Update struct {
	Messages  []domain.Message
	ToolCalls []domain.ToolCall
	Slot      string
	Output    string
}

// Node is a task node of the graph
type Node interface {
	Name() string
	Slot() string
	Execute(ctx context.Context, in Input) (Update, error)
}

// Synthesizer composes the final digest from node outputs
type Synthesizer interface {
	Synthesize(in Input, outputs map[string]string) string
}

// RunError reports a failed node
type RunError struct {
	Node string
	Err  error
}

func (e *RunError) Error() string { return fmt.Sprintf("node %s failed: %v", e.Node, e.Err) }

func (e *RunError) Unwrap() error { return e.Err }

// Graph is a static START -> nodes -> synthesis -> END topology
type Graph struct {
	nodes []Node
	synth Synthesizer
}

// New makes a graph, node names and slots must be unique
func New(nodes []Node, synth Synthesizer) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, errors.New("graph needs at least one node")
	}
	if synth == nil {
		return nil, errors.New("graph needs a synthesizer")
	}
	names := make(map[string]bool, len(nodes))
	slots := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if names[n.Name()] {
			return nil, fmt.Errorf("duplicate node %q", n.Name())
		}
		if slots[n.Slot()] {
			return nil, fmt.Errorf("duplicate output slot %q of node %q", n.Slot(), n.Name())
		}
		names[n.Name()], slots[n.Slot()] = true, true
	}
	return &Graph{nodes: append([]Node(nil), nodes...), synth: synth}, nil
}

// Nodes returns names of nodes in declaration order
func (g *Graph) Nodes() []string {
	res := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		res = append(res, n.Name())
	}
	return res
}

// Run executes all nodes concurrently, merges their updates and runs synthesis.
// Any node failure fails the whole run with *RunError, no partial state is returned.
func (g *Graph) Run(ctx context.Context, st State) (State, error) {
	updates := make([]Update, len(g.nodes))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, n := range g.nodes {
		in := Input{Prefs: st.Input.Prefs.Clone(), Date: st.Input.Date}
		eg.Go(func() error {
			started := time.Now()
			upd, err := n.Execute(egCtx, in)
			if err != nil {
				return &RunError{Node: n.Name(), Err: err}
			}
			lgr.Printf("[DEBUG] node %s completed in %v, %d tool calls", n.Name(), time.Since(started), len(upd.ToolCalls))
			upd.Slot = n.Slot()
			updates[i] = upd
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return State{}, err
	}

	res, err := Merge(st, updates...)
	if err != nil {
		return State{}, err
	}
	res.FinalDigest = g.synth.Synthesize(res.Input, res.Outputs)
	return res, nil
}

// Merge applies updates to the state: messages and tool calls are appended,
// an output slot may be written only once
func Merge(st State, updates ...Update) (State, error) {
	res := State{
		Input:       st.Input,
		Messages:    append([]domain.Message(nil), st.Messages...),
		ToolCalls:   append([]domain.ToolCall(nil), st.ToolCalls...),
		Outputs:     make(map[string]string, len(st.Outputs)+len(updates)),
		FinalDigest: st.FinalDigest,
	}
	for k, v := range st.Outputs {
		res.Outputs[k] = v
	}
	for _, u := range updates {
		res.Messages = append(res.Messages, u.Messages...)
		res.ToolCalls = append(res.ToolCalls, u.ToolCalls...)
		if u.Slot == "" {
			continue
		}
		if _, ok := res.Outputs[u.Slot]; ok {
			return State{}, fmt.Errorf("slot %q: %w", u.Slot, ErrSlotWritten)
		}
		res.Outputs[u.Slot] = u.Output
	}
	return res, nil
}
