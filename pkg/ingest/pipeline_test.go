package ingest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/pkg/correlate"
	"github.com/aurora-sre/aurora/pkg/events"
	"github.com/aurora-sre/aurora/pkg/services"
	testdb "github.com/aurora-sre/aurora/test/database"
)

const testUser = "user-1"

type enqueuedTask struct {
	Kind       string
	IncidentID string
	RunAt      time.Time
}

type fakeQueue struct {
	mu    sync.Mutex
	tasks []enqueuedTask
}

func (q *fakeQueue) Enqueue(_ context.Context, _, kind, incidentID string, _ map[string]any, runAt time.Time) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, enqueuedTask{Kind: kind, IncidentID: incidentID, RunAt: runAt})
	return "task-1", nil
}

func (q *fakeQueue) byKind(kind string) []enqueuedTask {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []enqueuedTask
	for _, task := range q.tasks {
		if task.Kind == kind {
			out = append(out, task)
		}
	}
	return out
}

type fakeSink struct {
	mu      sync.Mutex
	created []events.IncidentCreatedPayload
	updates []events.IncidentUpdatePayload
}

func (s *fakeSink) PublishIncidentCreated(_ context.Context, p events.IncidentCreatedPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, p)
	return nil
}

func (s *fakeSink) PublishIncidentUpdate(_ context.Context, p events.IncidentUpdatePayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, p)
	return nil
}

type pipelineFixture struct {
	pipeline  *Pipeline
	incidents *services.IncidentService
	queue     *fakeQueue
	sink      *fakeSink
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	incidents := services.NewIncidentService(client)
	alerts := services.NewAlertEventService(client)
	correlator := correlate.New(incidents, 15*time.Minute)
	queue := &fakeQueue{}
	sink := &fakeSink{}
	return &pipelineFixture{
		pipeline:  NewPipeline(alerts, incidents, correlator, queue, sink, PipelineConfig{}),
		incidents: incidents,
		queue:     queue,
		sink:      sink,
	}
}

func TestProcessCreatesIncidentAndSchedulesFollowups(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	before := time.Now()
	res, err := f.pipeline.Process(ctx, testUser, "pagerduty", pdTriggeredBody, time.Now())
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, res.Outcome)
	require.NotEmpty(t, res.IncidentID)

	inc, err := f.incidents.Get(ctx, testUser, res.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, "API 5xx spike", inc.AlertTitle)
	assert.Equal(t, "high", inc.Severity)
	assert.Equal(t, []string{"api"}, inc.AffectedServices)
	assert.Equal(t, 1, inc.CorrelatedAlertCount)

	summaries := f.queue.byKind(TaskIncidentSummary)
	require.Len(t, summaries, 1)
	assert.Equal(t, res.IncidentID, summaries[0].IncidentID)
	assert.WithinDuration(t, before, summaries[0].RunAt, 5*time.Second)

	// The RCA trigger waits out the grace period so a trailing custom-field
	// event (runbook link) can land first.
	triggers := f.queue.byKind(TaskRCATrigger)
	require.Len(t, triggers, 1)
	assert.WithinDuration(t, before.Add(DefaultRCAGracePeriod), triggers[0].RunAt, 5*time.Second)
	assert.True(t, triggers[0].RunAt.After(before.Add(DefaultRCAGracePeriod/2)))

	require.Len(t, f.sink.created, 1)
	assert.Equal(t, res.IncidentID, f.sink.created[0].IncidentID)
	assert.Equal(t, testUser, f.sink.created[0].UserID)
}

func TestProcessDropsDuplicateDelivery(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	first, err := f.pipeline.Process(ctx, testUser, "pagerduty", pdTriggeredBody, time.Now())
	require.NoError(t, err)
	require.Equal(t, OutcomeCreated, first.Outcome)

	second, err := f.pipeline.Process(ctx, testUser, "pagerduty", pdTriggeredBody, time.Now())
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, second.Outcome)

	// No extra tasks or events from the redelivery.
	assert.Len(t, f.queue.byKind(TaskRCATrigger), 1)
	assert.Len(t, f.sink.created, 1)
}

func TestProcessMergesMetadataEvent(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	created, err := f.pipeline.Process(ctx, testUser, "pagerduty", pdTriggeredBody, time.Now())
	require.NoError(t, err)

	metadataBody := []byte(`{
		"event": {
			"event_type": "incident.custom_field_values.updated",
			"data": {
				"id": "Q0IX1",
				"custom_fields": [{"name": "runbook_link", "value": "https://wiki/runbooks/api-5xx"}]
			}
		}
	}`)
	res, err := f.pipeline.Process(ctx, testUser, "pagerduty", metadataBody, time.Now())
	require.NoError(t, err)
	assert.Equal(t, OutcomeMetadataMerged, res.Outcome)
	assert.Equal(t, created.IncidentID, res.IncidentID)

	inc, err := f.incidents.Get(ctx, testUser, created.IncidentID)
	require.NoError(t, err)
	cf, _ := inc.AlertMetadata["customFields"].(map[string]any)
	require.NotNil(t, cf)
	assert.Equal(t, "https://wiki/runbooks/api-5xx", cf["runbook_link"])
}

func TestProcessCorrelatesRelatedAlertIntoOpenIncident(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	created, err := f.pipeline.Process(ctx, testUser, "pagerduty", pdTriggeredBody, time.Now())
	require.NoError(t, err)

	// Same service, overlapping window, different source alert.
	grafanaBody := []byte(`{
		"status": "firing",
		"alerts": [
			{"fingerprint": "gf-777", "labels": {"alertname": "API 5xx spike", "severity": "critical", "service": "api"}}
		]
	}`)
	res, err := f.pipeline.Process(ctx, testUser, "grafana", grafanaBody, time.Now())
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrelated, res.Outcome)
	assert.Equal(t, created.IncidentID, res.IncidentID)

	inc, err := f.incidents.Get(ctx, testUser, created.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, 2, inc.CorrelatedAlertCount)

	// Correlation publishes an update, not a second creation, and does not
	// schedule another RCA run.
	assert.Len(t, f.sink.created, 1)
	require.Len(t, f.sink.updates, 1)
	assert.Equal(t, "correlation", f.sink.updates[0].Reason)
	assert.Len(t, f.queue.byKind(TaskRCATrigger), 1)
}

func TestProcessStatusUpdateResolvesIncident(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	created, err := f.pipeline.Process(ctx, testUser, "pagerduty", pdTriggeredBody, time.Now())
	require.NoError(t, err)

	resolvedBody := []byte(`{
		"event": {
			"event_type": "incident.resolved",
			"data": {
				"id": "Q0IX1",
				"title": "API 5xx spike",
				"status": "resolved",
				"service": {"summary": "api"}
			}
		}
	}`)
	res, err := f.pipeline.Process(ctx, testUser, "pagerduty", resolvedBody, time.Now())
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, res.Outcome)
	assert.Equal(t, created.IncidentID, res.IncidentID)

	inc, err := f.incidents.Get(ctx, testUser, created.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, "resolved", string(inc.Status))

	require.NotEmpty(t, f.sink.updates)
	assert.Equal(t, "status_change", f.sink.updates[len(f.sink.updates)-1].Reason)
}
