package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/ent/task"
	testdb "github.com/aurora-sre/aurora/test/database"
)

const testUser = "user-1"

func TestEnqueueAndGet(t *testing.T) {
	svc := NewService(testdb.NewTestClient(t))
	ctx := context.Background()

	runAt := time.Now().Add(5 * time.Second)
	id, err := svc.Enqueue(ctx, testUser, "rca_trigger", "inc-1", map[string]any{"incident_id": "inc-1"}, runAt)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := svc.Get(ctx, testUser, id)
	require.NoError(t, err)
	assert.Equal(t, "rca_trigger", got.Kind)
	assert.Equal(t, task.StatusPending, got.Status)
	require.NotNil(t, got.IncidentID)
	assert.Equal(t, "inc-1", *got.IncidentID)
	assert.WithinDuration(t, runAt, got.ScheduledAt, time.Second)
	assert.Equal(t, 0, got.Attempts)
}

func TestCancelPendingForIncident(t *testing.T) {
	svc := NewService(testdb.NewTestClient(t))
	ctx := context.Background()

	rcaID, err := svc.Enqueue(ctx, testUser, "rca_trigger", "inc-2", nil, time.Now().Add(time.Minute))
	require.NoError(t, err)
	otherID, err := svc.Enqueue(ctx, testUser, "incident_summary", "inc-other", nil, time.Now())
	require.NoError(t, err)

	cancelled, err := svc.CancelPendingForIncident(ctx, testUser, "inc-2")
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)

	got, err := svc.Get(ctx, testUser, rcaID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, got.Status)

	other, err := svc.Get(ctx, testUser, otherID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, other.Status)
}
