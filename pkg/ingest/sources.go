package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/aurora-sre/aurora/pkg/models"
)

// NormalizeDatadog handles monitor webhook payloads ($ID/$ALERT_TRANSITION
// template variables rendered by Datadog).
func NormalizeDatadog(body []byte, receivedAt time.Time) (models.NormalizedAlert, error) {
	payload, err := decodePayload(body)
	if err != nil {
		return models.NormalizedAlert{}, err
	}

	externalID := firstNonEmpty(str(payload, "alert_id"), str(payload, "id"))
	if externalID == "" {
		return models.NormalizedAlert{}, fmt.Errorf("datadog payload missing alert_id")
	}
	transition := strings.ToLower(firstNonEmpty(str(payload, "alert_transition"), str(payload, "alert_type")))

	alert := models.NormalizedAlert{
		Source:     models.SourceDatadog,
		ExternalID: externalID,
		DedupeKey:  externalID + ":" + transition,
		Title:      firstNonEmpty(str(payload, "title"), str(payload, "alert_title")),
		Status:     transition,
		Severity:   datadogSeverity(transition, str(payload, "priority")),
		Service:    firstNonEmpty(str(payload, "service"), str(payload, "tags_service"), str(payload, "hostname")),
		Payload:    payload,
		ReceivedAt: receivedAt,
		Metadata:   map[string]any{"alert_id": externalID},
	}

	switch transition {
	case "triggered", "alert", "re-triggered", "warn":
		alert.EventKind = models.EventKindCreate
	default:
		alert.EventKind = models.EventKindUpdate
	}
	return alert, nil
}

func datadogSeverity(transition, priority string) string {
	switch strings.ToUpper(priority) {
	case "P1":
		return "critical"
	case "P2":
		return "high"
	case "P3":
		return "medium"
	case "P4", "P5":
		return "low"
	}
	if transition == "warn" {
		return "medium"
	}
	if transition == "triggered" || transition == "alert" || transition == "re-triggered" {
		return "high"
	}
	return "unknown"
}

// NormalizeNetdata handles Netdata alarm notifications.
func NormalizeNetdata(body []byte, receivedAt time.Time) (models.NormalizedAlert, error) {
	payload, err := decodePayload(body)
	if err != nil {
		return models.NormalizedAlert{}, err
	}

	name := firstNonEmpty(str(payload, "alarm"), str(payload, "name"))
	host := firstNonEmpty(str(payload, "host"), str(payload, "hostname"))
	if name == "" {
		return models.NormalizedAlert{}, fmt.Errorf("netdata payload missing alarm name")
	}
	status := strings.ToUpper(firstNonEmpty(str(payload, "status"), str(payload, "severity")))
	externalID := host + "/" + name

	alert := models.NormalizedAlert{
		Source:     models.SourceNetdata,
		ExternalID: externalID,
		DedupeKey:  externalID + ":" + status,
		Title:      firstNonEmpty(str(payload, "info"), name),
		Status:     status,
		Service:    host,
		Payload:    payload,
		ReceivedAt: receivedAt,
		Metadata:   map[string]any{"chart": str(payload, "chart")},
	}

	switch status {
	case "CRITICAL":
		alert.Severity = "critical"
		alert.EventKind = models.EventKindCreate
	case "WARNING":
		alert.Severity = "warning"
		alert.EventKind = models.EventKindCreate
	case "CLEAR":
		alert.Severity = "unknown"
		alert.EventKind = models.EventKindUpdate
	default:
		alert.Severity = "unknown"
		alert.EventKind = models.EventKindUpdate
	}
	return alert, nil
}

// NormalizeSplunk handles alert-action webhooks fired by saved searches.
func NormalizeSplunk(body []byte, receivedAt time.Time) (models.NormalizedAlert, error) {
	payload, err := decodePayload(body)
	if err != nil {
		return models.NormalizedAlert{}, err
	}

	sid := firstNonEmpty(str(payload, "sid"), str(payload, "result.sid"))
	if sid == "" {
		return models.NormalizedAlert{}, fmt.Errorf("splunk payload missing sid")
	}

	alert := models.NormalizedAlert{
		Source:     models.SourceSplunk,
		ExternalID: sid,
		DedupeKey:  sid,
		Title:      firstNonEmpty(str(payload, "search_name"), "Splunk alert"),
		Status:     "triggered",
		Severity:   firstNonEmpty(strings.ToLower(str(payload, "result.severity")), "unknown"),
		Service:    firstNonEmpty(str(payload, "result.service"), str(payload, "result.host")),
		Payload:    payload,
		ReceivedAt: receivedAt,
		Metadata:   map[string]any{"search_name": str(payload, "search_name")},
		// Saved-search alerts only fire; resolution is manual.
		EventKind: models.EventKindCreate,
	}
	return alert, nil
}

// NormalizeDynatrace handles problem-notification webhooks.
func NormalizeDynatrace(body []byte, receivedAt time.Time) (models.NormalizedAlert, error) {
	payload, err := decodePayload(body)
	if err != nil {
		return models.NormalizedAlert{}, err
	}

	problemID := firstNonEmpty(str(payload, "ProblemID"), str(payload, "PID"))
	if problemID == "" {
		return models.NormalizedAlert{}, fmt.Errorf("dynatrace payload missing ProblemID")
	}
	state := strings.ToUpper(str(payload, "State"))

	alert := models.NormalizedAlert{
		Source:     models.SourceDynatrace,
		ExternalID: problemID,
		DedupeKey:  problemID + ":" + state,
		Title:      firstNonEmpty(str(payload, "ProblemTitle"), "Dynatrace problem"),
		Status:     state,
		Severity:   dynatraceSeverity(str(payload, "ProblemSeverity")),
		Service:    firstNonEmpty(str(payload, "ImpactedEntity"), str(payload, "ImpactedEntities")),
		Payload:    payload,
		ReceivedAt: receivedAt,
		Metadata:   map[string]any{"problem_id": problemID},
	}

	if state == "OPEN" {
		alert.EventKind = models.EventKindCreate
	} else {
		alert.EventKind = models.EventKindUpdate
	}
	return alert, nil
}

func dynatraceSeverity(severity string) string {
	switch strings.ToUpper(severity) {
	case "AVAILABILITY":
		return "critical"
	case "ERROR":
		return "high"
	case "PERFORMANCE", "RESOURCE_CONTENTION":
		return "medium"
	default:
		return "unknown"
	}
}

// NormalizeJenkins handles build-completion notifications; failed deploy
// builds open incidents, a subsequent success resolves them.
func NormalizeJenkins(body []byte, receivedAt time.Time) (models.NormalizedAlert, error) {
	payload, err := decodePayload(body)
	if err != nil {
		return models.NormalizedAlert{}, err
	}

	job := firstNonEmpty(str(payload, "name"), str(payload, "job_name"))
	if job == "" {
		return models.NormalizedAlert{}, fmt.Errorf("jenkins payload missing job name")
	}
	buildStatus := strings.ToUpper(firstNonEmpty(str(payload, "build.status"), str(payload, "build.result")))
	buildNumber := str(payload, "build.number")

	alert := models.NormalizedAlert{
		Source:     models.SourceJenkins,
		ExternalID: job,
		DedupeKey:  job + "#" + buildNumber + ":" + buildStatus,
		Title:      fmt.Sprintf("Jenkins build %s #%s %s", job, buildNumber, buildStatus),
		Status:     buildStatus,
		Service:    job,
		Payload:    payload,
		ReceivedAt: receivedAt,
		Metadata:   map[string]any{"build_number": buildNumber, "build_url": str(payload, "build.full_url")},
	}

	switch buildStatus {
	case "FAILURE", "UNSTABLE", "ABORTED":
		alert.Severity = "high"
		alert.EventKind = models.EventKindCreate
	case "SUCCESS":
		alert.Severity = "unknown"
		alert.EventKind = models.EventKindUpdate
	default:
		alert.Severity = "unknown"
		alert.EventKind = models.EventKindUpdate
	}
	return alert, nil
}
