package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lumiderm/lumiderm/internal/prompts"
)

// ComposePrompt builds the full inference prompt for an analysis stage:
// the shared esthetician preamble, tunable stage instructions, the immutable
// output spec, an optional reported real age, and the accumulated findings
// from previous steps. When prior is nil (first step), only the preamble,
// instructions, and spec are included.
func ComposePrompt(
	ctx context.Context,
	ps prompts.System,
	stage prompts.Stage,
	realAge *int,
	prior *Analysis,
) (string, error) {
	instructions, err := ps.Instructions(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := ps.Spec(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(prompts.Preamble)
	sb.WriteString("\n\n")
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)

	if realAge != nil {
		fmt.Fprintf(&sb, "\n\nReported real age: %d", *realAge)
	}

	if prior != nil {
		priorJSON, err := json.MarshalIndent(prior, "", "  ")
		if err != nil {
			return "", fmt.Errorf("serialize accumulated analysis: %w", err)
		}

		sb.WriteString("\n\nAccumulated findings from previous steps:\n\n")
		sb.WriteString(string(priorJSON))
	}

	return sb.String(), nil
}
