package models

import "time"

// Alert sources.
const (
	SourcePagerDuty = "pagerduty"
	SourceGrafana   = "grafana"
	SourceDatadog   = "datadog"
	SourceNetdata   = "netdata"
	SourceSplunk    = "splunk"
	SourceDynatrace = "dynatrace"
	SourceJenkins   = "jenkins"
)

// Incident status values shared across the pipeline.
const (
	IncidentInvestigating = "investigating"
	IncidentAnalyzed      = "analyzed"
	IncidentResolved      = "resolved"
	IncidentMerged        = "merged"
)

// Chat session lifecycle values.
const (
	SessionActive     = "active"
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionCancelled  = "cancelled"
)

// RCA agent lifecycle values on the incident.
const (
	AuroraIdle     = "idle"
	AuroraRunning  = "running"
	AuroraComplete = "complete"
	AuroraError    = "error"
)

// NormalizedAlert is the source-independent view of one webhook event,
// produced by the per-source normalizers before storage and correlation.
type NormalizedAlert struct {
	Source     string         `json:"source"`
	ExternalID string         `json:"external_id"`
	DedupeKey  string         `json:"dedupe_key"`
	Title      string         `json:"title"`
	Status     string         `json:"status"`
	Severity   string         `json:"severity"`
	Service    string         `json:"service"`
	EventKind  string         `json:"event_kind"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Payload    map[string]any `json:"payload"`
	ReceivedAt time.Time      `json:"received_at"`
}

// Event kinds emitted by the normalizers.
const (
	EventKindCreate   = "create"   // opens or correlates into an incident
	EventKindUpdate   = "update"   // status/severity refresh
	EventKindMetadata = "metadata" // custom-field merge, skips correlation
)

// IsCreation reports whether this event may open a new incident.
func (a NormalizedAlert) IsCreation() bool {
	return a.EventKind == EventKindCreate
}
