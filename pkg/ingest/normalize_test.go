package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/pkg/models"
)

var pdTriggeredBody = []byte(`{
	"event": {
		"event_type": "incident.triggered",
		"data": {
			"id": "Q0IX1",
			"title": "API 5xx spike",
			"status": "triggered",
			"incident_key": "srv-api-5xx",
			"urgency": "high",
			"priority": {"summary": "P2"},
			"service": {"summary": "api"}
		}
	}
}`)

func TestNormalizePagerDutyTriggered(t *testing.T) {
	now := time.Now()
	alert, err := NormalizePagerDuty(pdTriggeredBody, now)
	require.NoError(t, err)

	assert.Equal(t, models.SourcePagerDuty, alert.Source)
	assert.Equal(t, "Q0IX1", alert.ExternalID)
	assert.Equal(t, "API 5xx spike", alert.Title)
	assert.Equal(t, "api", alert.Service)
	assert.Equal(t, "high", alert.Severity) // P2
	assert.Equal(t, models.EventKindCreate, alert.EventKind)
	assert.Equal(t, "srv-api-5xx", alert.Metadata["incident_key"])
	assert.Equal(t, models.IncidentInvestigating, NormalizeStatus(alert.Source, alert.Status))
}

func TestNormalizePagerDutyCustomFields(t *testing.T) {
	body := []byte(`{
		"event": {
			"event_type": "incident.custom_field_values.updated",
			"data": {
				"id": "Q0IX1",
				"custom_fields": [
					{"name": "runbook_link", "value": "https://wiki/x"},
					{"name": "owner", "value": "sre-team"}
				]
			}
		}
	}`)
	alert, err := NormalizePagerDuty(body, time.Now())
	require.NoError(t, err)

	assert.Equal(t, models.EventKindMetadata, alert.EventKind)
	cf := alert.Metadata["customFields"].(map[string]any)
	assert.Equal(t, "https://wiki/x", cf["runbook_link"])
	assert.Equal(t, "sre-team", cf["owner"])
}

func TestNormalizePagerDutySeverityMapping(t *testing.T) {
	for priority, want := range map[string]string{
		"P1": "critical", "P2": "high", "P3": "medium", "P4": "low", "P5": "low",
	} {
		assert.Equal(t, want, pdSeverity(priority, ""), "priority %s", priority)
	}
	assert.Equal(t, "high", pdSeverity("", "high"))
	assert.Equal(t, "unknown", pdSeverity("", ""))
}

func TestNormalizeGrafanaFiring(t *testing.T) {
	body := []byte(`{
		"status": "firing",
		"title": "HighErrorRate",
		"alerts": [
			{"fingerprint": "abc123", "labels": {"alertname": "HighErrorRate", "severity": "critical", "service": "checkout"}}
		]
	}`)
	alert, err := NormalizeGrafana(body, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "abc123", alert.ExternalID)
	assert.Equal(t, "critical", alert.Severity)
	assert.Equal(t, "checkout", alert.Service)
	assert.Equal(t, models.EventKindCreate, alert.EventKind)
	assert.Equal(t, "abc123", alert.Metadata["fingerprint"])
}

func TestNormalizeGrafanaResolvedIsUpdate(t *testing.T) {
	body := []byte(`{"status":"resolved","alerts":[{"fingerprint":"abc123","labels":{"alertname":"HighErrorRate"}}]}`)
	alert, err := NormalizeGrafana(body, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.EventKindUpdate, alert.EventKind)
	assert.Equal(t, models.IncidentResolved, NormalizeStatus(alert.Source, alert.Status))
}

func TestNormalizeJenkinsFailureOpensIncident(t *testing.T) {
	body := []byte(`{"name":"deploy-checkout","build":{"number":412,"status":"FAILURE","full_url":"https://jenkins/job/deploy-checkout/412/"}}`)
	alert, err := NormalizeJenkins(body, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "deploy-checkout", alert.ExternalID)
	assert.Equal(t, models.EventKindCreate, alert.EventKind)
	assert.Equal(t, "high", alert.Severity)
	assert.Equal(t, "412", alert.Metadata["build_number"])
}

func TestNormalizeNetdataStatuses(t *testing.T) {
	critical, err := NormalizeNetdata([]byte(`{"host":"db-1","alarm":"disk_full","status":"CRITICAL","info":"disk is 98% full"}`), time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.EventKindCreate, critical.EventKind)
	assert.Equal(t, "critical", critical.Severity)
	assert.Equal(t, "db-1/disk_full", critical.ExternalID)

	clear, err := NormalizeNetdata([]byte(`{"host":"db-1","alarm":"disk_full","status":"CLEAR"}`), time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.EventKindUpdate, clear.EventKind)
	assert.Equal(t, models.IncidentResolved, NormalizeStatus(clear.Source, clear.Status))
}

func TestNormalizeDynatraceOpen(t *testing.T) {
	body := []byte(`{"ProblemID":"P-42","State":"OPEN","ProblemTitle":"Response time degradation","ProblemSeverity":"PERFORMANCE","ImpactedEntity":"checkout-service"}`)
	alert, err := NormalizeDynatrace(body, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.EventKindCreate, alert.EventKind)
	assert.Equal(t, "medium", alert.Severity)
}

func TestNormalizeUnknownSource(t *testing.T) {
	_, err := Normalize("nagios", []byte(`{}`), time.Now())
	assert.Error(t, err)
}

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test"
	body := []byte(`{"hello":"world"}`)

	ts, sig := SignBody(secret, body, time.Now())
	assert.NoError(t, VerifySignature(secret, body, ts, sig))

	// Without the v0= prefix too.
	assert.NoError(t, VerifySignature(secret, body, ts, sig[len("v0="):]))

	assert.Error(t, VerifySignature(secret, []byte(`{"hello":"tampered"}`), ts, sig))
	assert.Error(t, VerifySignature("wrong-secret", body, ts, sig))

	oldTS, oldSig := SignBody(secret, body, time.Now().Add(-10*time.Minute))
	assert.Error(t, VerifySignature(secret, body, oldTS, oldSig))

	assert.Error(t, VerifySignature(secret, body, "", ""))
}
