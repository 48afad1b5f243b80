package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/task"
	"github.com/aurora-sre/aurora/pkg/database"
)

// Service enqueues and cancels tasks. Satisfies the ingest pipeline's
// Enqueuer interface; claiming and execution live in Worker.
type Service struct {
	db *database.Client
}

// NewService creates a task service.
func NewService(db *database.Client) *Service {
	if db == nil {
		panic("queue.NewService: db must not be nil")
	}
	return &Service{db: db}
}

// Enqueue schedules one task. runAt in the future delays execution; zero
// means now. Returns the task id.
func (s *Service) Enqueue(ctx context.Context, userID, kind, incidentID string, payload map[string]any, runAt time.Time) (string, error) {
	if runAt.IsZero() {
		runAt = time.Now()
	}
	id := uuid.New().String()
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		builder := tx.Task.Create().
			SetID(id).
			SetUserID(userID).
			SetKind(kind).
			SetScheduledAt(runAt)
		if incidentID != "" {
			builder.SetIncidentID(incidentID)
		}
		if payload != nil {
			builder.SetPayload(payload)
		}
		if err := builder.Exec(ctx); err != nil {
			return fmt.Errorf("enqueue %s task: %w", kind, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// CancelPendingForIncident cancels every pending task scoped to the
// incident. The merge operation calls this for the source incident so its
// queued RCA trigger never fires.
func (s *Service) CancelPendingForIncident(ctx context.Context, userID, incidentID string) (int, error) {
	var cancelled int
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		var err error
		cancelled, err = tx.Task.Update().
			Where(
				task.IncidentIDEQ(incidentID),
				task.StatusEQ(task.StatusPending),
			).
			SetStatus(task.StatusCancelled).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("cancel incident tasks: %w", err)
		}
		return nil
	})
	return cancelled, err
}

// Get loads one task within the tenant scope.
func (s *Service) Get(ctx context.Context, userID, taskID string) (*ent.Task, error) {
	var t *ent.Task
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		var err error
		t, err = tx.Task.Get(ctx, taskID)
		if err != nil {
			return fmt.Errorf("load task: %w", err)
		}
		return nil
	})
	return t, err
}

// PurgeFinishedTasks deletes finished tasks older than the retention
// window. Runs on the admin pool across all tenants; the retention janitor
// owns the schedule.
func (s *Service) PurgeFinishedTasks(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	count, err := s.db.Admin.Task.Delete().
		Where(
			task.StatusIn(task.StatusCompleted, task.StatusFailed, task.StatusCancelled),
			task.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge finished tasks: %w", err)
	}
	return count, nil
}
