// Package correlate decides whether a new alert joins an existing incident
// or founds a new one.
package correlate

import (
	"context"
	"time"

	"github.com/aurora-sre/aurora/pkg/models"
)

// Correlation strategies, in priority order.
const (
	StrategyPrimary            = "primary"
	StrategyIdentity           = "identity"
	StrategyServiceFingerprint = "service_fingerprint"
	StrategyServiceTimeWindow  = "service_time_window"
	StrategyManual             = "manual"
)

// Candidate is one recent non-merged incident considered for correlation.
type Candidate struct {
	IncidentID       string
	Service          string
	TitleFingerprint string
	Severity         string
	IdentityKey      string
	ReceivedAt       time.Time
}

// CandidateStore loads correlation candidates for a tenant: incidents in
// status investigating or analyzed whose primary alert arrived inside the
// window.
type CandidateStore interface {
	RecentCandidates(ctx context.Context, userID string, window time.Duration) ([]Candidate, error)
}

// Result is the correlator's decision for one alert.
type Result struct {
	IsCorrelated bool
	IncidentID   string
	Score        float64
	Strategy     string
	Details      map[string]any
}

// Correlator scores new alerts against a tenant's recent incidents.
type Correlator struct {
	store  CandidateStore
	window time.Duration
}

func New(store CandidateStore, window time.Duration) *Correlator {
	if window <= 0 {
		window = 30 * time.Minute
	}
	return &Correlator{store: store, window: window}
}

// Correlate runs the strategies in priority order; the first strategy with
// any match wins, and within a strategy ties break to the most recent
// candidate.
func (c *Correlator) Correlate(ctx context.Context, userID string, alert models.NormalizedAlert) (Result, error) {
	candidates, err := c.store.RecentCandidates(ctx, userID, c.window)
	if err != nil {
		return Result{}, err
	}
	if len(candidates) == 0 {
		return Result{}, nil
	}

	identityKey := IdentityKey(alert)
	fingerprint := Fingerprint(alert.Title)

	if identityKey != "" {
		if m := newest(candidates, func(cand Candidate) bool {
			return cand.IdentityKey != "" && cand.IdentityKey == identityKey
		}); m != nil {
			return Result{
				IsCorrelated: true,
				IncidentID:   m.IncidentID,
				Score:        1.0,
				Strategy:     StrategyIdentity,
				Details:      map[string]any{"identity_key": identityKey},
			}, nil
		}
	}

	if alert.Service != "" && fingerprint != "" {
		if m := newest(candidates, func(cand Candidate) bool {
			return cand.Service == alert.Service && cand.TitleFingerprint == fingerprint
		}); m != nil {
			return Result{
				IsCorrelated: true,
				IncidentID:   m.IncidentID,
				Score:        0.8,
				Strategy:     StrategyServiceFingerprint,
				Details:      map[string]any{"service": alert.Service, "fingerprint": fingerprint},
			}, nil
		}
	}

	if alert.Service != "" {
		if m := newest(candidates, func(cand Candidate) bool {
			return cand.Service == alert.Service && cand.Severity == alert.Severity
		}); m != nil {
			return Result{
				IsCorrelated: true,
				IncidentID:   m.IncidentID,
				Score:        0.5,
				Strategy:     StrategyServiceTimeWindow,
				Details:      map[string]any{"service": alert.Service, "severity": alert.Severity},
			}, nil
		}
	}

	return Result{}, nil
}

// IdentityKey extracts the source's external incident key when the payload
// carries one (PagerDuty incident_key, Grafana fingerprint, and friends).
func IdentityKey(alert models.NormalizedAlert) string {
	for _, field := range []string{"incident_key", "fingerprint", "dedup_key", "alert_id"} {
		if v, ok := alert.Metadata[field].(string); ok && v != "" {
			return alert.Source + ":" + v
		}
	}
	if alert.DedupeKey != "" {
		return alert.Source + ":" + alert.DedupeKey
	}
	return ""
}

func newest(candidates []Candidate, match func(Candidate) bool) *Candidate {
	var best *Candidate
	for i := range candidates {
		cand := &candidates[i]
		if !match(*cand) {
			continue
		}
		if best == nil || cand.ReceivedAt.After(best.ReceivedAt) {
			best = cand
		}
	}
	return best
}
