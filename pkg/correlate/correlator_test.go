package correlate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/pkg/models"
)

type staticStore []Candidate

func (s staticStore) RecentCandidates(ctx context.Context, userID string, window time.Duration) ([]Candidate, error) {
	return s, nil
}

func TestFingerprintStripsVolatileTokens(t *testing.T) {
	cases := map[string]string{
		"API 5xx spike":          "api 5xx spike",
		"API 5xx spike at 2026-08-26T10:01:02Z": "api 5xx spike at",
		"pod crash 10.0.12.9":    "pod crash",
		"job 9f86d081884c7d659a2feaa0c55ad015 failed": "job failed",
		"deploy   1724680000  broke   things":         "deploy broke things",
		"oom in 1c9a7e4b-0f3d-4a6e-9b7c-2d5f8e1a3c4b": "oom in",
	}
	for in, want := range cases {
		assert.Equal(t, want, Fingerprint(in), "input: %q", in)
	}
}

func TestFingerprintEqualAcrossOccurrences(t *testing.T) {
	a := Fingerprint("disk full on 10.1.2.3 at 2026-08-26T09:00:00Z")
	b := Fingerprint("disk full on 10.9.8.7 at 2026-08-26T11:30:00Z")
	assert.Equal(t, a, b)
}

func alert(service, title, severity string) models.NormalizedAlert {
	return models.NormalizedAlert{
		Source:     models.SourcePagerDuty,
		Title:      title,
		Service:    service,
		Severity:   severity,
		ReceivedAt: time.Now(),
	}
}

func TestStrategyPriority(t *testing.T) {
	now := time.Now()
	store := staticStore{
		{IncidentID: "inc-window", Service: "api", Severity: "high", ReceivedAt: now.Add(-10 * time.Minute)},
		{IncidentID: "inc-fp", Service: "api", Severity: "high", TitleFingerprint: "api 5xx spike", ReceivedAt: now.Add(-8 * time.Minute)},
		{IncidentID: "inc-identity", Service: "api", Severity: "high", TitleFingerprint: "api 5xx spike",
			IdentityKey: "pagerduty:K1", ReceivedAt: now.Add(-20 * time.Minute)},
	}
	c := New(store, 30*time.Minute)

	// Identity beats fingerprint and window even when older.
	a := alert("api", "API 5xx spike", "high")
	a.Metadata = map[string]any{"incident_key": "K1"}
	res, err := c.Correlate(context.Background(), "u1", a)
	require.NoError(t, err)
	assert.True(t, res.IsCorrelated)
	assert.Equal(t, "inc-identity", res.IncidentID)
	assert.Equal(t, StrategyIdentity, res.Strategy)
	assert.Equal(t, 1.0, res.Score)

	// Without an identity match, fingerprint wins over the window match.
	a.Metadata = nil
	a.DedupeKey = ""
	res, err = c.Correlate(context.Background(), "u1", a)
	require.NoError(t, err)
	assert.Equal(t, StrategyServiceFingerprint, res.Strategy)
	assert.Equal(t, 0.8, res.Score)

	// With neither, service + severity inside the window is last resort.
	res, err = c.Correlate(context.Background(), "u1", alert("api", "totally different text", "high"))
	require.NoError(t, err)
	assert.Equal(t, StrategyServiceTimeWindow, res.Strategy)
	assert.Equal(t, 0.5, res.Score)
}

func TestTieBreaksToMostRecent(t *testing.T) {
	now := time.Now()
	store := staticStore{
		{IncidentID: "older", Service: "db", Severity: "high", ReceivedAt: now.Add(-25 * time.Minute)},
		{IncidentID: "newer", Service: "db", Severity: "high", ReceivedAt: now.Add(-5 * time.Minute)},
	}
	c := New(store, 30*time.Minute)

	res, err := c.Correlate(context.Background(), "u1", alert("db", "replication lag", "high"))
	require.NoError(t, err)
	assert.Equal(t, "newer", res.IncidentID)
}

func TestNoMatchMeansNewIncident(t *testing.T) {
	c := New(staticStore{}, 30*time.Minute)
	res, err := c.Correlate(context.Background(), "u1", alert("api", "API 5xx spike", "high"))
	require.NoError(t, err)
	assert.False(t, res.IsCorrelated)
}
