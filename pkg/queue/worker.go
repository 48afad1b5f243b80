package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/task"
	"github.com/aurora-sre/aurora/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes tasks.
// Claims go through the admin pool: the claim transaction spans tenants,
// and per-tenant scoping happens inside the handlers.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	mux      *Mux
	pool     TaskRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for cancellation
// bookkeeping.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, mux *Mux, pool TaskRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		mux:          mux,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check (best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Task.Query().
		Where(task.StatusEQ(task.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	claimed, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", claimed.ID, "kind", claimed.Kind, "worker_id", w.id)
	log.Info("Task claimed", "attempt", claimed.Attempts)

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	// Register cancel function for merge-triggered cancellation.
	w.pool.RegisterTask(claimed.ID, cancelTask)
	defer w.pool.UnregisterTask(claimed.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	handler, ok := w.mux.Lookup(claimed.Kind)
	var execErr error
	if !ok {
		execErr = fmt.Errorf("no handler registered for task kind %q", claimed.Kind)
	} else {
		execErr = handler.Handle(taskCtx, claimed)
	}
	cancelHeartbeat()

	// Terminal updates use a background context: taskCtx may already be
	// cancelled or expired.
	if err := w.finishTask(context.Background(), claimed, taskCtx, execErr); err != nil {
		log.Error("Failed to record task outcome", "error", err)
		return err
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()
	return nil
}

// claimNextTask atomically claims the next runnable task using
// FOR UPDATE SKIP LOCKED, ordered by scheduled_at for FIFO behavior within
// the due set.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	claimed, err := tx.Task.Query().
		Where(
			task.StatusEQ(task.StatusPending),
			task.ScheduledAtLTE(time.Now()),
		).
		Order(ent.Asc(task.FieldScheduledAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	claimed, err = claimed.Update().
		SetStatus(task.StatusInProgress).
		SetPodID(w.podID).
		SetLastHeartbeatAt(time.Now()).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// finishTask records the terminal state: completed on success, requeued
// with backoff on a retryable failure, failed once the budget is spent.
func (w *Worker) finishTask(ctx context.Context, claimed *ent.Task, taskCtx context.Context, execErr error) error {
	log := slog.With("task_id", claimed.ID, "kind", claimed.Kind)

	switch {
	case execErr == nil:
		log.Info("Task completed")
		return claimed.Update().
			SetStatus(task.StatusCompleted).
			SetCompletedAt(time.Now()).
			ClearErrorMessage().
			Exec(ctx)

	case errors.Is(taskCtx.Err(), context.Canceled):
		// Cancelled mid-run (merge or shutdown). Terminal: the canceller
		// already decided this work should not happen again.
		log.Info("Task cancelled")
		return claimed.Update().
			SetStatus(task.StatusCancelled).
			SetCompletedAt(time.Now()).
			SetErrorMessage(execErr.Error()).
			Exec(ctx)

	case claimed.Attempts >= w.maxAttempts():
		log.Error("Task failed, retry budget spent", "attempts", claimed.Attempts, "error", execErr)
		return claimed.Update().
			SetStatus(task.StatusFailed).
			SetCompletedAt(time.Now()).
			SetErrorMessage(execErr.Error()).
			Exec(ctx)

	default:
		backoff := time.Duration(claimed.Attempts) * 30 * time.Second
		log.Warn("Task failed, requeueing", "attempts", claimed.Attempts, "backoff", backoff, "error", execErr)
		return claimed.Update().
			SetStatus(task.StatusPending).
			SetScheduledAt(time.Now().Add(backoff)).
			SetErrorMessage(execErr.Error()).
			ClearPodID().
			ClearLastHeartbeatAt().
			Exec(ctx)
	}
}

func (w *Worker) maxAttempts() int {
	if w.config.MaxTaskAttempts > 0 {
		return w.config.MaxTaskAttempts
	}
	return 3
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Task.UpdateOneID(taskID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
