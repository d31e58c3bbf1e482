package tasks

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumiderm/lumiderm/internal/agents"
	"github.com/lumiderm/lumiderm/internal/prompts"
	"github.com/lumiderm/lumiderm/internal/routines"
	"github.com/lumiderm/lumiderm/pkg/pagination"
	"github.com/lumiderm/lumiderm/pkg/query"
	"github.com/lumiderm/lumiderm/pkg/repository"
	"github.com/lumiderm/lumiderm/pkg/storage"
	"github.com/lumiderm/lumiderm/workflow"
)

const taskColumns = "id, user_id, status, stage, result, error, real_age, intake, routine, image_key, content_type, progress_seq, created_at, updated_at"

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	storage    storage.System
	planner    routines.System
	executor   *executor
}

// New creates a task repository implementing the System interface. It
// internally constructs the analysis workflow runtime and the background
// executor; base is the lifecycle context background runs inherit, so
// in-flight analyses stop when the service shuts down.
func New(
	base context.Context,
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
	storage storage.System,
	invoker agents.Invoker,
	ps prompts.System,
	planner routines.System,
) System {
	r := &repo{
		db:         db,
		logger:     logger.With("system", "tasks"),
		pagination: pagination,
		storage:    storage,
		planner:    planner,
	}

	rt := &workflow.Runtime{
		Invoker: invoker,
		Prompts: ps,
		Logger:  logger.With("workflow", "analysis"),
	}
	r.executor = newExecutor(base, rt, r, storage, logger)

	return r
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	userID string,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Task], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("UserID", userID)

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTask)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID, userID string) (*Task, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("ID", id).
		WhereEquals("UserID", userID).
		BuildSingleOrNull()

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTask)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

// Create stores the selfie, inserts the task in queued state, and hands the
// task to the executor. The blob upload happens before the insert; if the
// insert fails the blob is deleted so storage does not accumulate orphans.
func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Task, error) {
	if err := validateImage(cmd.ContentType, cmd.Data); err != nil {
		return nil, err
	}

	id := uuid.New()
	key := buildImageKey(cmd.UserID, id, cmd.ContentType)

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload selfie: %w", err)
	}

	q := fmt.Sprintf(`
		INSERT INTO tasks(id, user_id, status, real_age, image_key, content_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, taskColumns)

	args := []any{id, cmd.UserID, StatusQueued, cmd.RealAge, key, cmd.ContentType}

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Task, error) {
		return repository.QueryOne(ctx, tx, q, args, scanTask)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("orphaned selfie blob", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := r.executor.Start(&t); err != nil {
		return nil, err
	}

	r.logger.Info("task created", "id", t.ID, "user", t.UserID)
	return &t, nil
}

func (r *repo) Image(ctx context.Context, id uuid.UUID, userID string) (*Image, error) {
	t, err := r.Find(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	body, err := r.storage.Download(ctx, t.ImageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download selfie: %w", err)
	}

	return &Image{Body: body, ContentType: t.ContentType}, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	t, err := r.Find(ctx, id, userID)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM tasks WHERE id = $1 AND user_id = $2",
			id, userID,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := r.storage.Delete(ctx, t.ImageKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		r.logger.Warn("selfie blob not deleted", "key", t.ImageKey, "error", err)
	}

	r.logger.Info("task deleted", "id", id)
	return nil
}

// Plan kicks off routine generation for a completed task. Generation runs in
// the background under the task's run lease, so concurrent routine requests
// for the same task cannot race on the intake/routine/error columns; success
// fills intake and routine, failure records the error message without
// touching the task status.
func (r *repo) Plan(
	ctx context.Context,
	id uuid.UUID,
	userID string,
	intake routines.Intake,
) (*Task, error) {
	t, err := r.Find(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if t.Status != StatusCompleted || len(t.Result) == 0 {
		return nil, ErrNotCompleted
	}

	if !r.executor.acquire(t.ID) {
		return nil, ErrRoutineRunning
	}

	go r.generatePlan(t, intake)

	return t, nil
}

func (r *repo) generatePlan(t *Task, intake routines.Intake) {
	defer r.executor.release(t.ID)

	ctx := r.executor.base
	log := r.logger.With("task", t.ID)

	plan, err := r.planner.Generate(ctx, t.Result, intake)
	if err != nil {
		log.Error("routine generation failed", "error", err)
		r.setRoutineError(ctx, t.ID, err.Error())
		return
	}

	intakeJSON, err := json.Marshal(intake)
	if err != nil {
		r.setRoutineError(ctx, t.ID, fmt.Sprintf("marshal intake: %v", err))
		return
	}

	planJSON, err := json.Marshal(plan)
	if err != nil {
		r.setRoutineError(ctx, t.ID, fmt.Sprintf("marshal routine plan: %v", err))
		return
	}

	if err := r.saveRoutine(ctx, t.ID, intakeJSON, planJSON); err != nil {
		log.Error("routine plan not saved", "error", err)
		return
	}

	log.Info("routine plan saved")
}

func (r *repo) saveRoutine(ctx context.Context, id uuid.UUID, intake, routine []byte) error {
	err := repository.ExecExpectOne(
		ctx, r.db,
		"UPDATE tasks SET intake = $2, routine = $3, error = NULL, updated_at = now() WHERE id = $1",
		id, intake, routine,
	)
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}

func (r *repo) setRoutineError(ctx context.Context, id uuid.UUID, message string) {
	err := repository.ExecExpectOne(
		ctx, r.db,
		"UPDATE tasks SET error = $2, updated_at = now() WHERE id = $1",
		id, message,
	)
	if err != nil {
		r.logger.Error("routine error not recorded", "task", id, "error", err)
	}
}

// MarkProcessing transitions a task to processing and resets run-scoped
// fields so a re-run starts from a clean slate.
func (r *repo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	err := repository.ExecExpectOne(
		ctx, r.db,
		`UPDATE tasks
		SET status = $2, stage = NULL, result = NULL, error = NULL, progress_seq = 0, updated_at = now()
		WHERE id = $1`,
		id, StatusProcessing,
	)
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}

// WriteProgress persists a stage snapshot. The sequence guard drops writes
// that arrive after a newer snapshot has already landed.
func (r *repo) WriteProgress(ctx context.Context, id uuid.UUID, stage string, snapshot []byte, seq int) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE tasks
		SET stage = $2, result = $3, progress_seq = $4, updated_at = now()
		WHERE id = $1 AND progress_seq < $4`,
		id, stage, snapshot, seq,
	)
	if err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

func (r *repo) Complete(ctx context.Context, id uuid.UUID, result []byte) error {
	err := repository.ExecExpectOne(
		ctx, r.db,
		"UPDATE tasks SET status = $2, result = $3, error = NULL, updated_at = now() WHERE id = $1",
		id, StatusCompleted, result,
	)
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}

func (r *repo) Fail(ctx context.Context, id uuid.UUID, message string) error {
	err := repository.ExecExpectOne(
		ctx, r.db,
		"UPDATE tasks SET status = $2, error = $3, updated_at = now() WHERE id = $1",
		id, StatusFailed, message,
	)
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}
