package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/ent/incidentalert"
	"github.com/aurora-sre/aurora/pkg/correlate"
	"github.com/aurora-sre/aurora/pkg/models"
	testdb "github.com/aurora-sre/aurora/test/database"
)

const testUser = "user-1"

func pdAlert(externalID, title string) models.NormalizedAlert {
	return models.NormalizedAlert{
		Source:     models.SourcePagerDuty,
		ExternalID: externalID,
		DedupeKey:  externalID + ":triggered",
		Title:      title,
		Status:     "triggered",
		Severity:   "high",
		Service:    "checkout",
		EventKind:  models.EventKindCreate,
		Metadata:   map[string]any{"incident_key": "key-" + externalID},
		Payload:    map[string]any{"raw": true},
		ReceivedAt: time.Now(),
	}
}

func TestUpsertFromAlertCreatesIncident(t *testing.T) {
	svc := NewIncidentService(testdb.NewTestClient(t))
	ctx := context.Background()

	res, err := svc.UpsertFromAlert(ctx, testUser, pdAlert("PD-1", "DB connection pool exhausted"), models.IncidentInvestigating)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, incident.StatusInvestigating, res.Incident.Status)
	assert.Equal(t, "high", res.Incident.Severity)
	assert.Equal(t, []string{"checkout"}, res.Incident.AffectedServices)
	assert.Equal(t, 1, res.Incident.CorrelatedAlertCount)
}

func TestUpsertFromAlertIsIdempotentPerSourceKey(t *testing.T) {
	svc := NewIncidentService(testdb.NewTestClient(t))
	ctx := context.Background()

	first, err := svc.UpsertFromAlert(ctx, testUser, pdAlert("PD-2", "API latency"), models.IncidentInvestigating)
	require.NoError(t, err)

	update := pdAlert("PD-2", "API latency")
	update.Severity = "critical"
	second, err := svc.UpsertFromAlert(ctx, testUser, update, models.IncidentAnalyzed)
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, first.Incident.ID, second.Incident.ID)
	assert.Equal(t, incident.StatusAnalyzed, second.Incident.Status)
	assert.Equal(t, "critical", second.Incident.Severity)
}

func TestUpsertDoesNotRewindStartedAt(t *testing.T) {
	svc := NewIncidentService(testdb.NewTestClient(t))
	ctx := context.Background()

	first, err := svc.UpsertFromAlert(ctx, testUser, pdAlert("PD-3", "disk full"), models.IncidentInvestigating)
	require.NoError(t, err)
	started := first.Incident.StartedAt

	later := pdAlert("PD-3", "disk full")
	later.ReceivedAt = time.Now().Add(time.Hour)
	second, err := svc.UpsertFromAlert(ctx, testUser, later, models.IncidentAnalyzed)
	require.NoError(t, err)
	assert.WithinDuration(t, started, second.Incident.StartedAt, time.Second)
}

func TestUpsertRewindsStartedAtWhenResolvedRefires(t *testing.T) {
	svc := NewIncidentService(testdb.NewTestClient(t))
	ctx := context.Background()

	_, err := svc.UpsertFromAlert(ctx, testUser, pdAlert("PD-4", "cache miss storm"), models.IncidentInvestigating)
	require.NoError(t, err)
	_, err = svc.UpsertFromAlert(ctx, testUser, pdAlert("PD-4", "cache miss storm"), models.IncidentResolved)
	require.NoError(t, err)

	refire := pdAlert("PD-4", "cache miss storm")
	refire.ReceivedAt = time.Now().Add(2 * time.Hour)
	res, err := svc.UpsertFromAlert(ctx, testUser, refire, models.IncidentInvestigating)
	require.NoError(t, err)
	assert.WithinDuration(t, refire.ReceivedAt, res.Incident.StartedAt, time.Second)
}

func TestMetadataMergePreservesRunbookLink(t *testing.T) {
	svc := NewIncidentService(testdb.NewTestClient(t))
	ctx := context.Background()

	_, err := svc.UpsertFromAlert(ctx, testUser, pdAlert("PD-5", "pod crash loop"), models.IncidentInvestigating)
	require.NoError(t, err)

	// Custom-field event arrives with the runbook link.
	fields := models.NormalizedAlert{
		Source:     models.SourcePagerDuty,
		ExternalID: "PD-5",
		EventKind:  models.EventKindMetadata,
		Metadata:   map[string]any{"customFields": map[string]any{"runbook_link": "https://wiki/x"}},
	}
	merged, err := svc.MergeMetadata(ctx, testUser, fields)
	require.NoError(t, err)
	cf := merged.AlertMetadata["customFields"].(map[string]any)
	assert.Equal(t, "https://wiki/x", cf["runbook_link"])

	// A later status update without the field must not blank it.
	update := pdAlert("PD-5", "pod crash loop")
	update.Metadata = map[string]any{"customFields": map[string]any{"owner": "sre-team"}}
	res, err := svc.UpsertFromAlert(ctx, testUser, update, models.IncidentAnalyzed)
	require.NoError(t, err)
	cf = res.Incident.AlertMetadata["customFields"].(map[string]any)
	assert.Equal(t, "https://wiki/x", cf["runbook_link"])
	assert.Equal(t, "sre-team", cf["owner"])
}

func TestAttachCorrelatedIncrementsAndUnions(t *testing.T) {
	db := testdb.NewTestClient(t)
	incidents := NewIncidentService(db)
	alerts := NewAlertEventService(db)
	ctx := context.Background()

	created, err := incidents.UpsertFromAlert(ctx, testUser, pdAlert("PD-6", "checkout 5xx spike"), models.IncidentInvestigating)
	require.NoError(t, err)

	followup := pdAlert("PD-7", "checkout 5xx spike again")
	followup.Service = "payments"
	rec, err := alerts.Record(ctx, testUser, followup)
	require.NoError(t, err)

	updated, err := incidents.AttachCorrelated(ctx, testUser, rec.Event.ID, followup, correlate.Result{
		IsCorrelated: true,
		IncidentID:   created.Incident.ID,
		Score:        0.8,
		Strategy:     correlate.StrategyServiceFingerprint,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CorrelatedAlertCount)
	assert.ElementsMatch(t, []string{"checkout", "payments"}, updated.AffectedServices)

	// Re-attaching the same alert is a no-op.
	again, err := incidents.AttachCorrelated(ctx, testUser, rec.Event.ID, followup, correlate.Result{
		IsCorrelated: true,
		IncidentID:   created.Incident.ID,
		Score:        0.8,
		Strategy:     correlate.StrategyServiceFingerprint,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, again.CorrelatedAlertCount)
}

func TestRecentCandidatesExcludesMergedAndOld(t *testing.T) {
	db := testdb.NewTestClient(t)
	incidents := NewIncidentService(db)
	ctx := context.Background()

	fresh, err := incidents.UpsertFromAlert(ctx, testUser, pdAlert("PD-8", "fresh incident"), models.IncidentInvestigating)
	require.NoError(t, err)

	old := pdAlert("PD-9", "stale incident")
	old.ReceivedAt = time.Now().Add(-2 * time.Hour)
	_, err = incidents.UpsertFromAlert(ctx, testUser, old, models.IncidentInvestigating)
	require.NoError(t, err)

	candidates, err := incidents.RecentCandidates(ctx, testUser, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, fresh.Incident.ID, candidates[0].IncidentID)
	assert.Equal(t, "pagerduty:key-PD-8", candidates[0].IdentityKey)
}

func TestMergePreservesAudit(t *testing.T) {
	db := testdb.NewTestClient(t)
	incidents := NewIncidentService(db)
	alerts := NewAlertEventService(db)
	ctx := context.Background()

	srcAlert := pdAlert("PD-10", "node pressure")
	srcAlert.Service = "ingress"
	srcRec, err := alerts.Record(ctx, testUser, srcAlert)
	require.NoError(t, err)
	src, err := incidents.UpsertFromAlert(ctx, testUser, srcAlert, models.IncidentInvestigating)
	require.NoError(t, err)
	require.NoError(t, incidents.RecordPrimaryAlert(ctx, testUser, src.Incident.ID, srcRec.Event.ID, srcAlert.ReceivedAt))
	require.NoError(t, incidents.SetSummary(ctx, testUser, src.Incident.ID, "half-finished summary"))

	tgt, err := incidents.UpsertFromAlert(ctx, testUser, pdAlert("PD-11", "node pressure root"), models.IncidentInvestigating)
	require.NoError(t, err)

	res, err := incidents.Merge(ctx, testUser, src.Incident.ID, tgt.Incident.ID)
	require.NoError(t, err)

	assert.Equal(t, incident.StatusMerged, res.Source.Status)
	require.NotNil(t, res.Source.MergedIntoIncidentID)
	assert.Equal(t, tgt.Incident.ID, *res.Source.MergedIntoIncidentID)
	assert.Nil(t, res.Source.AuroraSummary)

	assert.Equal(t, tgt.Incident.CorrelatedAlertCount+1, res.Target.CorrelatedAlertCount)
	assert.Contains(t, res.Target.AffectedServices, "ingress")

	// The source's primary alert now appears on the target as a manual edge.
	edges, err := db.App.IncidentAlert.Query().
		Where(incidentalert.IncidentIDEQ(tgt.Incident.ID)).
		All(ctx)
	require.NoError(t, err)
	found := false
	for _, e := range edges {
		if e.AlertEventID == srcRec.Event.ID {
			found = true
			assert.Equal(t, incidentalert.CorrelationStrategyManual, e.CorrelationStrategy)
			assert.Equal(t, 1.0, e.CorrelationScore)
		}
	}
	assert.True(t, found, "manual edge for source primary alert")
}

func TestMergeRejectsSelfAndCycles(t *testing.T) {
	db := testdb.NewTestClient(t)
	incidents := NewIncidentService(db)
	ctx := context.Background()

	a, err := incidents.UpsertFromAlert(ctx, testUser, pdAlert("PD-12", "a"), models.IncidentInvestigating)
	require.NoError(t, err)
	b, err := incidents.UpsertFromAlert(ctx, testUser, pdAlert("PD-13", "b"), models.IncidentInvestigating)
	require.NoError(t, err)

	_, err = incidents.Merge(ctx, testUser, a.Incident.ID, a.Incident.ID)
	assert.True(t, IsValidationError(err))

	_, err = incidents.Merge(ctx, testUser, a.Incident.ID, b.Incident.ID)
	require.NoError(t, err)

	// B now points nowhere, but A → B; merging B into A would close the loop.
	_, err = incidents.Merge(ctx, testUser, b.Incident.ID, a.Incident.ID)
	assert.ErrorIs(t, err, ErrMergeCycle)
}

func TestAlertEventRecordIsDeduped(t *testing.T) {
	alerts := NewAlertEventService(testdb.NewTestClient(t))
	ctx := context.Background()

	alert := pdAlert("PD-14", "dup delivery")
	first, err := alerts.Record(ctx, testUser, alert)
	require.NoError(t, err)
	assert.False(t, first.Duplicate)

	second, err := alerts.Record(ctx, testUser, alert)
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.Event.ID, second.Event.ID)
}
