package tasks

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumiderm/lumiderm/internal/routines"
	"github.com/lumiderm/lumiderm/pkg/pagination"
)

// System defines the public contract for task domain operations. Every
// read and mutation initiated by a request is scoped to the owning user.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		userID string,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Task], error)

	Find(ctx context.Context, id uuid.UUID, userID string) (*Task, error)
	Create(ctx context.Context, cmd CreateCommand) (*Task, error)
	Image(ctx context.Context, id uuid.UUID, userID string) (*Image, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
	Plan(ctx context.Context, id uuid.UUID, userID string, intake routines.Intake) (*Task, error)
}

// Store is the persistence surface the executor writes through while a run
// is in flight. It is implemented by the task repository and narrow enough
// to fake in tests.
type Store interface {
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	WriteProgress(ctx context.Context, id uuid.UUID, stage string, snapshot []byte, seq int) error
	Complete(ctx context.Context, id uuid.UUID, result []byte) error
	Fail(ctx context.Context, id uuid.UUID, message string) error
}
