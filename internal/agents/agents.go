// Package agents provides the model invoker used by the analysis pipeline
// and the routine planner. The invoker is constructed once from finalized
// agent configuration and injected wherever inference is needed, so nothing
// in the codebase reaches for shared global client state.
package agents

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// ErrModelUnavailable wraps transport and provider failures from the
// underlying model. It is distinct from schema violations, which surface
// from response parsing.
var ErrModelUnavailable = errors.New("model invocation failed")

// Invoker executes single-shot inferences against the configured model.
// Vision sends one image (as a data URI) alongside the prompt; Chat is
// text-only.
type Invoker interface {
	Vision(ctx context.Context, prompt string, imageURI string) (string, error)
	Chat(ctx context.Context, prompt string) (string, error)
}

type invoker struct {
	cfg gaconfig.AgentConfig
}

// New creates an Invoker backed by go-agents with the given finalized config.
func New(cfg gaconfig.AgentConfig) Invoker {
	return &invoker{cfg: cfg}
}

func (i *invoker) Vision(ctx context.Context, prompt string, imageURI string) (string, error) {
	a, err := agent.New(&i.cfg)
	if err != nil {
		return "", fmt.Errorf("%w: create agent: %w", ErrModelUnavailable, err)
	}

	resp, err := a.Vision(ctx, prompt, []string{imageURI})
	if err != nil {
		return "", fmt.Errorf("%w: vision call: %w", ErrModelUnavailable, err)
	}

	return resp.Content(), nil
}

func (i *invoker) Chat(ctx context.Context, prompt string) (string, error) {
	a, err := agent.New(&i.cfg)
	if err != nil {
		return "", fmt.Errorf("%w: create agent: %w", ErrModelUnavailable, err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: chat call: %w", ErrModelUnavailable, err)
	}

	return resp.Content(), nil
}
