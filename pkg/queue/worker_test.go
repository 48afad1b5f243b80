package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/task"
	"github.com/aurora-sre/aurora/pkg/config"
	testdb "github.com/aurora-sre/aurora/test/database"
)

type fakeRegistry struct {
	mu         sync.Mutex
	registered []string
}

func (r *fakeRegistry) RegisterTask(taskID string, _ context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registered = append(r.registered, taskID)
}

func (r *fakeRegistry) UnregisterTask(string) {}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.TaskTimeout = 5 * time.Second
	cfg.HeartbeatInterval = 50 * time.Millisecond
	return cfg
}

func TestWorkerClaimsAndCompletesTask(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db)
	ctx := context.Background()

	var handled []string
	mux := NewMux()
	mux.Register("noop", HandlerFunc(func(_ context.Context, tk *ent.Task) error {
		handled = append(handled, tk.ID)
		return nil
	}))

	id, err := svc.Enqueue(ctx, testUser, "noop", "", nil, time.Now())
	require.NoError(t, err)

	w := NewWorker("w-0", "pod-test", db.Admin, testQueueConfig(), mux, &fakeRegistry{})
	require.NoError(t, w.pollAndProcess(ctx))

	assert.Equal(t, []string{id}, handled)
	got, err := svc.Get(ctx, testUser, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, got.Status)
	assert.Equal(t, 1, got.Attempts)
	assert.NotNil(t, got.CompletedAt)
}

func TestWorkerSkipsFutureTasks(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.Enqueue(ctx, testUser, "noop", "", nil, time.Now().Add(time.Hour))
	require.NoError(t, err)

	w := NewWorker("w-0", "pod-test", db.Admin, testQueueConfig(), NewMux(), &fakeRegistry{})
	err = w.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestWorkerRequeuesFailedTaskWithBackoff(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db)
	ctx := context.Background()

	mux := NewMux()
	mux.Register("flaky", HandlerFunc(func(context.Context, *ent.Task) error {
		return errors.New("downstream unavailable")
	}))

	id, err := svc.Enqueue(ctx, testUser, "flaky", "", nil, time.Now())
	require.NoError(t, err)

	w := NewWorker("w-0", "pod-test", db.Admin, testQueueConfig(), mux, &fakeRegistry{})
	require.NoError(t, w.pollAndProcess(ctx))

	got, err := svc.Get(ctx, testUser, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, got.Status)
	assert.Equal(t, 1, got.Attempts)
	assert.True(t, got.ScheduledAt.After(time.Now().Add(10*time.Second)), "backoff should push scheduled_at out")
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "downstream unavailable")
}

func TestWorkerFailsTaskAfterRetryBudget(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db)
	ctx := context.Background()

	mux := NewMux()
	mux.Register("broken", HandlerFunc(func(context.Context, *ent.Task) error {
		return errors.New("permanent breakage")
	}))

	cfg := testQueueConfig()
	cfg.MaxTaskAttempts = 1

	id, err := svc.Enqueue(ctx, testUser, "broken", "", nil, time.Now())
	require.NoError(t, err)

	w := NewWorker("w-0", "pod-test", db.Admin, cfg, mux, &fakeRegistry{})
	require.NoError(t, w.pollAndProcess(ctx))

	got, err := svc.Get(ctx, testUser, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
}

func TestWorkerMarksUnknownKindFailed(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.MaxTaskAttempts = 1

	id, err := svc.Enqueue(ctx, testUser, "mystery", "", nil, time.Now())
	require.NoError(t, err)

	w := NewWorker("w-0", "pod-test", db.Admin, cfg, NewMux(), &fakeRegistry{})
	require.NoError(t, w.pollAndProcess(ctx))

	got, err := svc.Get(ctx, testUser, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "no handler registered")
}

func TestStartupOrphanRecoveryRequeues(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db)
	ctx := context.Background()

	id, err := svc.Enqueue(ctx, testUser, "noop", "", nil, time.Now())
	require.NoError(t, err)

	// Simulate a crash mid-run on this pod.
	require.NoError(t, db.Admin.Task.UpdateOneID(id).
		SetStatus(task.StatusInProgress).
		SetPodID("pod-crashed").
		SetAttempts(1).
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		Exec(ctx))

	require.NoError(t, CleanupStartupOrphans(ctx, db.Admin, "pod-crashed"))

	got, err := svc.Get(ctx, testUser, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, got.Status)
	assert.Nil(t, got.PodID)
}
