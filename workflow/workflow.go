package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// Input carries the inputs for a single analysis run. ImageURI is the selfie
// encoded as a base64 data URI; RealAge is the optional age the user reported.
type Input struct {
	TaskID   uuid.UUID
	ImageURI string
	RealAge  *int
}

// Execute runs the five-step analysis for a single selfie. It builds the
// linear state graph, seeds the initial state with the image and an empty
// accumulator, executes it, and extracts the Result from the final state.
// If any step fails, the error is returned and the accumulator as of the
// last completed step stands as the final partial result (already delivered
// through the progress callback).
func Execute(ctx context.Context, rt *Runtime, input Input) (*Result, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initial := state.New(nil)
	initial = initial.Set(KeyTaskID, input.TaskID)
	initial = initial.Set(KeyImageURI, input.ImageURI)
	initial = initial.Set(KeyAnalysis, Analysis{})
	if input.RealAge != nil {
		initial = initial.Set(KeyRealAge, *input.RealAge)
	}

	final, err := graph.Execute(ctx, initial)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(final, input)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("lumiderm-analysis")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	nodes := []struct {
		name string
		node state.StateNode
	}{
		{"global_profile", ProfileNode(rt)},
		{"texture", TextureNode(rt)},
		{"pigmentation", PigmentationNode(rt)},
		{"acne", AcneNode(rt)},
		{"aging", AgingNode(rt)},
	}

	for _, n := range nodes {
		if err := graph.AddNode(n.name, n.node); err != nil {
			return nil, err
		}
	}

	// strictly sequential: every edge is unconditional
	for i := 0; i < len(nodes)-1; i++ {
		if err := graph.AddEdge(nodes[i].name, nodes[i+1].name, nil); err != nil {
			return nil, err
		}
	}

	if err := graph.SetEntryPoint(nodes[0].name); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint(nodes[len(nodes)-1].name); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State, input Input) (*Result, error) {
	an, err := extractAnalysis(s)
	if err != nil {
		return nil, err
	}

	return &Result{
		TaskID:      input.TaskID,
		RealAge:     input.RealAge,
		Analysis:    an.Snapshot(),
		CompletedAt: time.Now(),
	}, nil
}
