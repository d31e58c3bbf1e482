package routines

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lumiderm/lumiderm/internal/agents"
	"github.com/lumiderm/lumiderm/internal/prompts"
	"github.com/lumiderm/lumiderm/pkg/formatting"
)

// System defines the public contract for routine plan generation.
type System interface {
	Generate(ctx context.Context, analysis json.RawMessage, intake Intake) (*Plan, error)
}

type generator struct {
	invoker agents.Invoker
	prompts prompts.System
	logger  *slog.Logger
}

// New creates a routine plan generator backed by the given model invoker
// and prompt system.
func New(invoker agents.Invoker, ps prompts.System, logger *slog.Logger) System {
	return &generator{
		invoker: invoker,
		prompts: ps,
		logger:  logger.With("system", "routines"),
	}
}

// Generate produces a plan from a completed analysis and an intake
// questionnaire, then resolves purchase links for every selected product.
func (g *generator) Generate(ctx context.Context, analysis json.RawMessage, intake Intake) (*Plan, error) {
	intake.Normalize()

	prompt, err := composePrompt(ctx, g.prompts, analysis, intake)
	if err != nil {
		return nil, fmt.Errorf("compose routine prompt: %w", err)
	}

	content, err := g.invoker.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate routine plan: %w", err)
	}

	plan, err := formatting.Parse[Plan](content)
	if err != nil {
		return nil, fmt.Errorf("parse routine plan: %w", err)
	}

	plan.ResolveProductURLs()

	g.logger.Info("routine plan generated",
		"concerns", len(plan.Reasons.PrioritizedConcerns),
		"warnings", len(plan.Warnings),
	)
	return &plan, nil
}

// composePrompt assembles the planner prompt: planning rules, the analysis
// and intake inputs, the full product catalog, and the output contract.
func composePrompt(
	ctx context.Context,
	ps prompts.System,
	analysis json.RawMessage,
	intake Intake,
) (string, error) {
	instructions, err := ps.Instructions(ctx, prompts.StageRoutine)
	if err != nil {
		return "", err
	}

	spec, err := ps.Spec(ctx, prompts.StageRoutine)
	if err != nil {
		return "", err
	}

	if len(analysis) == 0 {
		analysis = json.RawMessage("{}")
	}

	intakeJSON, err := json.MarshalIndent(intake, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal intake: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n## INPUTS\n### A) Skin Analysis JSON\n")
	sb.Write(analysis)
	sb.WriteString("\n\n### B) Intake JSON (any field may be missing or \"unsure\")\n")
	sb.Write(intakeJSON)
	sb.WriteString("\n\n### C) Product DB (FULL; only use these items)\n")
	sb.WriteString(ProductTable)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\nReturn JSON only.")

	return sb.String(), nil
}
