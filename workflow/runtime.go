package workflow

import (
	"context"
	"log/slog"

	"github.com/lumiderm/lumiderm/internal/agents"
	"github.com/lumiderm/lumiderm/internal/prompts"
)

// ProgressFunc receives a stage tag and a snapshot of the accumulator after
// each successfully completed step. Implementations must not block the
// workflow; the snapshot is a deep copy and safe to retain.
type ProgressFunc func(ctx context.Context, tag string, snapshot Analysis)

// Progress tags emitted after each completed step.
const (
	TagProfileComplete      = "global_profile_complete"
	TagTextureComplete      = "texture_complete"
	TagPigmentationComplete = "pigmentation_complete"
	TagAcneComplete         = "acne_complete"
	TagAgingComplete        = "aging_complete"
)

// Runtime bundles the dependencies that workflow nodes require. It is
// constructed by higher-level composition code; the Invoker is injected so
// executions never reach for shared global client state.
type Runtime struct {
	Invoker  agents.Invoker
	Prompts  prompts.System
	Logger   *slog.Logger
	Progress ProgressFunc
}

func (rt *Runtime) notify(ctx context.Context, tag string, a *Analysis) {
	if rt.Progress == nil {
		return
	}
	rt.Progress(ctx, tag, a.Snapshot())
}
