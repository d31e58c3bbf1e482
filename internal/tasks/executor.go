package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lumiderm/lumiderm/pkg/storage"
	"github.com/lumiderm/lumiderm/workflow"
)

// executor runs analysis workflows in the background. It holds an exclusive
// per-task lease so a task can never have two concurrent runs in this
// process, and it funnels progress snapshots through an errgroup that is
// awaited before the terminal status write, so a slow snapshot can never
// land after completed or failed.
type executor struct {
	base    context.Context
	rt      *workflow.Runtime
	store   Store
	storage storage.System
	logger  *slog.Logger

	mu     sync.Mutex
	active map[uuid.UUID]struct{}
}

func newExecutor(
	base context.Context,
	rt *workflow.Runtime,
	store Store,
	st storage.System,
	logger *slog.Logger,
) *executor {
	return &executor{
		base:    base,
		rt:      rt,
		store:   store,
		storage: st,
		logger:  logger.With("system", "executor"),
		active:  make(map[uuid.UUID]struct{}),
	}
}

// Start acquires the run lease for the task and launches the analysis in the
// background. Returns ErrAlreadyRunning if a run is already in flight.
func (e *executor) Start(task *Task) error {
	if !e.acquire(task.ID) {
		return ErrAlreadyRunning
	}

	go e.run(*task)
	return nil
}

// acquire takes the exclusive run lease for the task. The same lease covers
// analysis runs and routine generation, so the two can never write task
// columns concurrently.
func (e *executor) acquire(id uuid.UUID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, running := e.active[id]; running {
		return false
	}
	e.active[id] = struct{}{}
	return true
}

func (e *executor) release(id uuid.UUID) {
	e.mu.Lock()
	delete(e.active, id)
	e.mu.Unlock()
}

func (e *executor) run(task Task) {
	defer e.release(task.ID)

	ctx := e.base
	log := e.logger.With("task", task.ID)

	if err := e.store.MarkProcessing(ctx, task.ID); err != nil {
		log.Error("task not marked processing", "error", err)
		return
	}

	imageURI, err := e.loadImage(ctx, &task)
	if err != nil {
		e.fail(ctx, log, task.ID, err)
		return
	}

	// The graph runs steps strictly sequentially, so the callback is never
	// invoked concurrently and the plain counter is safe. Each write gets a
	// monotonically increasing sequence number; the store's guard makes the
	// writes commute.
	var (
		seq int
		g   errgroup.Group
	)

	rt := *e.rt
	rt.Progress = func(_ context.Context, stage string, snapshot workflow.Analysis) {
		seq++
		n := seq
		g.Go(func() error {
			data, err := json.Marshal(snapshot)
			if err != nil {
				log.Warn("progress snapshot not marshaled", "stage", stage, "error", err)
				return nil
			}
			if err := e.store.WriteProgress(ctx, task.ID, stage, data, n); err != nil {
				log.Warn("progress snapshot not written", "stage", stage, "error", err)
			}
			return nil
		})
	}

	result, runErr := workflow.Execute(ctx, &rt, workflow.Input{
		TaskID:   task.ID,
		ImageURI: imageURI,
		RealAge:  task.RealAge,
	})

	// every progress write must land before the terminal write
	_ = g.Wait()

	if runErr != nil {
		e.fail(ctx, log, task.ID, runErr)
		return
	}

	data, err := json.Marshal(result.Analysis)
	if err != nil {
		e.fail(ctx, log, task.ID, fmt.Errorf("marshal result: %w", err))
		return
	}

	if err := e.store.Complete(ctx, task.ID, data); err != nil {
		log.Error("task not completed", "error", err)
		return
	}

	log.Info("analysis completed", "findings", result.Analysis.Issues.Count())
}

func (e *executor) fail(ctx context.Context, log *slog.Logger, id uuid.UUID, cause error) {
	log.Error("analysis failed", "error", cause)
	if err := e.store.Fail(ctx, id, cause.Error()); err != nil {
		log.Error("task not marked failed", "error", err)
	}
}

func (e *executor) loadImage(ctx context.Context, task *Task) (string, error) {
	body, err := e.storage.Download(ctx, task.ImageKey)
	if err != nil {
		return "", fmt.Errorf("download selfie: %w", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read selfie: %w", err)
	}

	return encodeImageDataURI(data, task.ContentType)
}
