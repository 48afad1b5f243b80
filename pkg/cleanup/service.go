// Package cleanup enforces data retention: persisted catch-up events and
// finished queue tasks are short-lived operational rows, deleted once they
// age out. All operations are idempotent and safe to run from multiple pods.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/aurora-sre/aurora/pkg/config"
)

// EventPurger deletes persisted events past their TTL. Satisfied by the
// event service.
type EventPurger interface {
	CleanupOldEvents(ctx context.Context, ttl time.Duration) (int, error)
}

// TaskPurger deletes finished queue tasks past retention. Satisfied by the
// queue service.
type TaskPurger interface {
	PurgeFinishedTasks(ctx context.Context, olderThan time.Duration) (int, error)
}

// Service is the background retention janitor.
type Service struct {
	cfg    config.RetentionConfig
	events EventPurger
	tasks  TaskPurger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the janitor.
func NewService(cfg config.RetentionConfig, events EventPurger, tasks TaskPurger) *Service {
	return &Service{
		cfg:    cfg,
		events: events,
		tasks:  tasks,
	}
}

// Start launches the background loop. Runs once immediately, then on the
// configured interval.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention janitor started",
		"event_ttl", s.cfg.EventTTL,
		"task_retention", s.cfg.TaskRetention,
		"interval", s.cfg.Interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention janitor stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes one retention sweep. Failures are logged, not returned:
// the next tick retries, and a broken sweep must not take the process down.
func (s *Service) RunOnce(ctx context.Context) {
	if s.events != nil {
		count, err := s.events.CleanupOldEvents(ctx, s.cfg.EventTTL)
		switch {
		case err != nil:
			slog.Error("Retention: event cleanup failed", "error", err)
		case count > 0:
			slog.Info("Retention: deleted old events", "count", count)
		}
	}

	if s.tasks != nil {
		count, err := s.tasks.PurgeFinishedTasks(ctx, s.cfg.TaskRetention)
		switch {
		case err != nil:
			slog.Error("Retention: task purge failed", "error", err)
		case count > 0:
			slog.Info("Retention: purged finished tasks", "count", count)
		}
	}
}
