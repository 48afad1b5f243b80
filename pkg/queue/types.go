// Package queue is the database-backed work queue: webhook processing,
// incident summaries, delayed RCA triggers, and merge context updates.
// Workers on every replica claim pending tasks with FOR UPDATE SKIP LOCKED.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/aurora-sre/aurora/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no runnable tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Handler processes one claimed task. A returned error requeues the task
// with backoff until its retry budget runs out; nil completes it.
type Handler interface {
	Handle(ctx context.Context, task *ent.Task) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, task *ent.Task) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, task *ent.Task) error {
	return f(ctx, task)
}

// Mux routes tasks to handlers by kind.
type Mux struct {
	handlers map[string]Handler
}

// NewMux creates an empty handler mux.
func NewMux() *Mux {
	return &Mux{handlers: make(map[string]Handler)}
}

// Register binds a handler to a task kind. Later registrations win.
func (m *Mux) Register(kind string, h Handler) {
	m.handlers[kind] = h
}

// Lookup returns the handler for a kind.
func (m *Mux) Lookup(kind string) (Handler, bool) {
	h, ok := m.handlers[kind]
	return h, ok
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
