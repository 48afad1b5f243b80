package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/task"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress tasks with stale heartbeats and
// requeues them. The claim already counted an attempt, so a task that keeps
// killing its worker eventually exhausts the retry budget.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusInProgress),
			task.LastHeartbeatAtNotNil(),
			task.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, orphan := range orphans {
		if err := p.recoverOrphanedTask(ctx, orphan); err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", orphan.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedTask requeues or fails a single orphaned task.
func (p *WorkerPool) recoverOrphanedTask(ctx context.Context, orphan *ent.Task) error {
	podID := "unknown"
	if orphan.PodID != nil {
		podID = *orphan.PodID
	}
	lastHeartbeat := "unknown"
	if orphan.LastHeartbeatAt != nil {
		lastHeartbeat = orphan.LastHeartbeatAt.Format(time.RFC3339)
	}
	reason := fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)

	maxAttempts := p.config.MaxTaskAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if orphan.Attempts >= maxAttempts {
		slog.Warn("Orphaned task out of retries, marking failed",
			"task_id", orphan.ID, "attempts", orphan.Attempts)
		return orphan.Update().
			SetStatus(task.StatusFailed).
			SetCompletedAt(time.Now()).
			SetErrorMessage(reason).
			Exec(ctx)
	}

	err := orphan.Update().
		SetStatus(task.StatusPending).
		SetScheduledAt(time.Now()).
		SetErrorMessage(reason).
		ClearPodID().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue orphaned task: %w", err)
	}

	slog.Warn("Orphaned task requeued", "task_id", orphan.ID, "old_pod_id", podID, "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of tasks owned by this
// pod that were in-progress when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusEQ(task.StatusInProgress),
			task.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, orphan := range orphans {
		err := orphan.Update().
			SetStatus(task.StatusPending).
			SetScheduledAt(time.Now()).
			SetErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted while task was in progress", podID)).
			ClearPodID().
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to requeue startup orphan",
				"task_id", orphan.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "task_id", orphan.ID)
	}

	return nil
}
