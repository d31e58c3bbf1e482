package prompts

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumiderm/lumiderm/pkg/pagination"
)

// System defines the public contract for prompt domain operations.
// Instructions resolves the effective instructions for a stage (active DB
// override, falling back to the hardcoded default); Spec always returns the
// immutable output specification.
type System interface {
	Handler() *Handler

	Instructions(ctx context.Context, stage Stage) (string, error)
	Spec(ctx context.Context, stage Stage) (string, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Prompt], error)

	Find(ctx context.Context, id uuid.UUID) (*Prompt, error)
	Create(ctx context.Context, cmd CreateCommand) (*Prompt, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Prompt, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*Prompt, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*Prompt, error)
}
