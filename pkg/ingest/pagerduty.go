package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/aurora-sre/aurora/pkg/models"
)

// PagerDuty V3 webhook event types handled by the pipeline.
const (
	pdIncidentTriggered    = "incident.triggered"
	pdIncidentAcknowledged = "incident.acknowledged"
	pdIncidentEscalated    = "incident.escalated"
	pdIncidentResolved     = "incident.resolved"
	pdCustomFieldsUpdated  = "incident.custom_field_values.updated"
)

// NormalizePagerDuty handles V3 webhook envelopes: `event.event_type` plus
// `event.data` holding the incident. Custom-field updates become metadata
// events that merge into the existing incident without correlation.
func NormalizePagerDuty(body []byte, receivedAt time.Time) (models.NormalizedAlert, error) {
	payload, err := decodePayload(body)
	if err != nil {
		return models.NormalizedAlert{}, err
	}

	eventType := str(payload, "event.event_type")
	externalID := str(payload, "event.data.id")
	if externalID == "" {
		return models.NormalizedAlert{}, fmt.Errorf("pagerduty payload missing event.data.id")
	}

	alert := models.NormalizedAlert{
		Source:     models.SourcePagerDuty,
		ExternalID: externalID,
		DedupeKey:  externalID + ":" + eventType,
		Title:      str(payload, "event.data.title"),
		Status:     str(payload, "event.data.status"),
		Service:    str(payload, "event.data.service.summary"),
		Payload:    payload,
		ReceivedAt: receivedAt,
		Metadata:   map[string]any{},
	}
	if key := str(payload, "event.data.incident_key"); key != "" {
		alert.Metadata["incident_key"] = key
	}
	if urgency := str(payload, "event.data.urgency"); urgency != "" {
		alert.Metadata["urgency"] = urgency
	}

	switch eventType {
	case pdIncidentTriggered:
		alert.EventKind = models.EventKindCreate
		if alert.Status == "" {
			alert.Status = "triggered"
		}
	case pdCustomFieldsUpdated:
		alert.EventKind = models.EventKindMetadata
		alert.Metadata["customFields"] = pdCustomFields(payload)
	case pdIncidentAcknowledged, pdIncidentEscalated, pdIncidentResolved:
		alert.EventKind = models.EventKindUpdate
	default:
		alert.EventKind = models.EventKindUpdate
	}

	alert.Severity = pdSeverity(str(payload, "event.data.priority.summary"), str(payload, "event.data.urgency"))
	return alert, nil
}

// pdSeverity maps PagerDuty priority (P1..P5) to severity, falling back to
// urgency when no priority is assigned.
func pdSeverity(priority, urgency string) string {
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
	switch strings.ToLower(urgency) {
	case "high":
		return "high"
	case "low":
		return "low"
	}
	return "unknown"
}

// pdCustomFields flattens the custom_fields array into a name → value map.
func pdCustomFields(payload map[string]any) map[string]any {
	out := map[string]any{}
	fields, _ := payload["event"].(map[string]any)
	if fields == nil {
		return out
	}
	data, _ := fields["data"].(map[string]any)
	if data == nil {
		return out
	}
	list, _ := data["custom_fields"].([]any)
	for _, item := range list {
		field, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := field["name"].(string)
		if name == "" {
			continue
		}
		out[name] = field["value"]
	}
	return out
}
