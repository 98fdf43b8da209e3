package llm

import (
	"context"

	"github.com/gr-siqueira/sport-agent/pkg/tools"
)

// Static is a provider for test mode, it never requests tools and always returns the same text
type Static struct {
	Text string
}

// Invoke returns the fixed text
func (s Static) Invoke(_ context.Context, _ []Message, _ []tools.Kind) (Response, error) {
	return Response{Text: s.Text}, nil
}

// Answer returns the fixed text
func (s Static) Answer(_ context.Context, _ string) (string, error) {
	return s.Text, nil
}
