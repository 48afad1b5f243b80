package queue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/pkg/models"
	"github.com/aurora-sre/aurora/pkg/runbook"
	"github.com/aurora-sre/aurora/pkg/services"
	testdb "github.com/aurora-sre/aurora/test/database"
)

type fakeSummarizer struct {
	summary string
}

func (f *fakeSummarizer) Summarize(context.Context, *ent.Incident) (string, error) {
	return f.summary, nil
}

type fakeLauncher struct {
	mu       sync.Mutex
	prompts  []string
	sessions []*ent.ChatSession
}

func (l *fakeLauncher) Launch(_ context.Context, _ string, session *ent.ChatSession, prompt string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prompts = append(l.prompts, prompt)
	l.sessions = append(l.sessions, session)
	return nil
}

type handlerFixture struct {
	handlers  *Handlers
	incidents *services.IncidentService
	sessions  *services.ChatSessionService
	thoughts  *services.ThoughtService
	launcher  *fakeLauncher
}

func newHandlerFixture(t *testing.T, automationDefault bool) *handlerFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	incidents := services.NewIncidentService(db)
	sessions := services.NewChatSessionService(db)
	thoughts := services.NewThoughtService(db)
	launcher := &fakeLauncher{}

	h := NewHandlers(HandlersConfig{
		Incidents:         incidents,
		Sessions:          sessions,
		Thoughts:          thoughts,
		Runbooks:          runbook.NewFetcher(runbook.Config{}),
		Summarizer:        &fakeSummarizer{summary: "API error rate spiked; checkout is degraded."},
		Launcher:          launcher,
		PodID:             "pod-test",
		AutomationDefault: automationDefault,
	})
	return &handlerFixture{
		handlers:  h,
		incidents: incidents,
		sessions:  sessions,
		thoughts:  thoughts,
		launcher:  launcher,
	}
}

func triggeredAlert(externalID, title string, metadata map[string]any) models.NormalizedAlert {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return models.NormalizedAlert{
		Source:     models.SourcePagerDuty,
		ExternalID: externalID,
		DedupeKey:  externalID + ":triggered",
		Title:      title,
		Status:     "triggered",
		Severity:   "high",
		Service:    "api",
		EventKind:  models.EventKindCreate,
		Metadata:   metadata,
		Payload:    map[string]any{"raw": true},
		ReceivedAt: time.Now(),
	}
}

func rcaTask(incidentID string) *ent.Task {
	return &ent.Task{
		ID:        "task-rca",
		UserID:    testUser,
		Kind:      "rca_trigger",
		Payload:   map[string]any{"incident_id": incidentID, "source": "pagerduty"},
		CreatedAt: time.Now(),
	}
}

func TestRCATriggerCreatesSessionAndLaunches(t *testing.T) {
	f := newHandlerFixture(t, true)
	ctx := context.Background()

	up, err := f.incidents.UpsertFromAlert(ctx, testUser, triggeredAlert("PD-9", "API 5xx spike", nil), models.IncidentInvestigating)
	require.NoError(t, err)

	require.NoError(t, f.handlers.HandleRCATrigger(ctx, rcaTask(up.Incident.ID)))

	require.Len(t, f.launcher.sessions, 1)
	session := f.launcher.sessions[0]
	assert.Equal(t, "RCA: API 5xx spike", session.Title)
	assert.Contains(t, f.launcher.prompts[0], "=== INCIDENT DETAILS ===")

	inc, err := f.incidents.Get(ctx, testUser, up.Incident.ID)
	require.NoError(t, err)
	assert.Equal(t, incident.AuroraStatusRunning, inc.AuroraStatus)
}

func TestRCATriggerReadsRunbookAtFireTime(t *testing.T) {
	f := newHandlerFixture(t, true)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("## API 5xx runbook\nCheck the ingress error budget first."))
	}))
	defer srv.Close()

	// Incident is created without a runbook; the custom-field webhook lands
	// during the grace period, before the trigger fires.
	up, err := f.incidents.UpsertFromAlert(ctx, testUser, triggeredAlert("PD-10", "API 5xx spike", nil), models.IncidentInvestigating)
	require.NoError(t, err)

	metadataEvent := models.NormalizedAlert{
		Source:     models.SourcePagerDuty,
		ExternalID: "PD-10",
		DedupeKey:  "PD-10:incident.custom_field_values.updated",
		EventKind:  models.EventKindMetadata,
		Metadata:   map[string]any{"customFields": map[string]any{"runbook_link": srv.URL}},
		Payload:    map[string]any{},
		ReceivedAt: time.Now(),
	}
	_, err = f.incidents.MergeMetadata(ctx, testUser, metadataEvent)
	require.NoError(t, err)

	require.NoError(t, f.handlers.HandleRCATrigger(ctx, rcaTask(up.Incident.ID)))

	require.Len(t, f.launcher.prompts, 1)
	assert.Contains(t, f.launcher.prompts[0], "=== RUNBOOK ===")
	assert.Contains(t, f.launcher.prompts[0], "ingress error budget")
}

func TestRCATriggerSkipsWhenSessionExists(t *testing.T) {
	f := newHandlerFixture(t, true)
	ctx := context.Background()

	up, err := f.incidents.UpsertFromAlert(ctx, testUser, triggeredAlert("PD-11", "disk full", nil), models.IncidentInvestigating)
	require.NoError(t, err)
	_, err = f.sessions.Create(ctx, testUser, services.CreateSessionInput{
		Title:         "RCA: disk full",
		IncidentID:    up.Incident.ID,
		TriggerSource: "pagerduty",
	})
	require.NoError(t, err)

	require.NoError(t, f.handlers.HandleRCATrigger(ctx, rcaTask(up.Incident.ID)))
	assert.Empty(t, f.launcher.sessions)
}

func TestRCATriggerSkipsClosedIncident(t *testing.T) {
	f := newHandlerFixture(t, true)
	ctx := context.Background()

	up, err := f.incidents.UpsertFromAlert(ctx, testUser, triggeredAlert("PD-12", "cache misses", nil), models.IncidentResolved)
	require.NoError(t, err)

	require.NoError(t, f.handlers.HandleRCATrigger(ctx, rcaTask(up.Incident.ID)))
	assert.Empty(t, f.launcher.sessions)
}

func TestRCATriggerHonorsAutomationPreference(t *testing.T) {
	f := newHandlerFixture(t, false)
	ctx := context.Background()

	up, err := f.incidents.UpsertFromAlert(ctx, testUser, triggeredAlert("PD-13", "queue backlog", nil), models.IncidentInvestigating)
	require.NoError(t, err)
	require.NoError(t, f.handlers.HandleRCATrigger(ctx, rcaTask(up.Incident.ID)))
	assert.Empty(t, f.launcher.sessions)

	// Per-incident override beats the deployment default.
	enabled := triggeredAlert("PD-14", "queue backlog again",
		map[string]any{"customFields": map[string]any{"automation_enabled": true}})
	up2, err := f.incidents.UpsertFromAlert(ctx, testUser, enabled, models.IncidentInvestigating)
	require.NoError(t, err)
	require.NoError(t, f.handlers.HandleRCATrigger(ctx, rcaTask(up2.Incident.ID)))
	assert.Len(t, f.launcher.sessions, 1)
}

func TestRCATriggerMissingIncidentIsQuiet(t *testing.T) {
	f := newHandlerFixture(t, true)
	require.NoError(t, f.handlers.HandleRCATrigger(context.Background(), rcaTask("no-such-incident")))
	assert.Empty(t, f.launcher.sessions)
}

func TestIncidentSummaryHandler(t *testing.T) {
	f := newHandlerFixture(t, true)
	ctx := context.Background()

	up, err := f.incidents.UpsertFromAlert(ctx, testUser, triggeredAlert("PD-15", "API 5xx spike", nil), models.IncidentInvestigating)
	require.NoError(t, err)

	summaryTask := &ent.Task{
		ID:      "task-summary",
		UserID:  testUser,
		Kind:    "incident_summary",
		Payload: map[string]any{"incident_id": up.Incident.ID},
	}
	require.NoError(t, f.handlers.HandleIncidentSummary(ctx, summaryTask))

	inc, err := f.incidents.Get(ctx, testUser, up.Incident.ID)
	require.NoError(t, err)
	assert.Equal(t, "API error rate spiked; checkout is degraded.", inc.AuroraSummary)
}

func TestContextUpdateQueuesNoteForSession(t *testing.T) {
	f := newHandlerFixture(t, true)
	ctx := context.Background()

	source, err := f.incidents.UpsertFromAlert(ctx, testUser, triggeredAlert("PD-16", "DB connection pool exhausted", nil), models.IncidentInvestigating)
	require.NoError(t, err)
	_, err = f.thoughts.Append(ctx, testUser, source.Incident.ID, "analysis", "pool exhaustion correlates with deploy 412")
	require.NoError(t, err)

	target, err := f.incidents.UpsertFromAlert(ctx, testUser, triggeredAlert("PD-17", "API latency", nil), models.IncidentInvestigating)
	require.NoError(t, err)
	session, err := f.sessions.Create(ctx, testUser, services.CreateSessionInput{
		Title:      "RCA: API latency",
		IncidentID: target.Incident.ID,
	})
	require.NoError(t, err)

	ctxTask := &ent.Task{
		ID:     "task-ctx",
		UserID: testUser,
		Kind:   TaskContextUpdate,
		Payload: map[string]any{
			"session_id":         session.ID,
			"source_incident_id": source.Incident.ID,
		},
	}
	require.NoError(t, f.handlers.HandleContextUpdate(ctx, ctxTask))

	notes, err := f.sessions.DrainPendingContext(ctx, testUser, session.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, models.RoleHuman, notes[0].Role)
	assert.Contains(t, notes[0].Content, "DB connection pool exhausted")
	assert.Contains(t, notes[0].Content, "deploy 412")

	// Draining clears the queue.
	again, err := f.sessions.DrainPendingContext(ctx, testUser, session.ID)
	require.NoError(t, err)
	assert.Empty(t, again)
}
