package ingest

import (
	"fmt"
	"time"

	"github.com/aurora-sre/aurora/pkg/models"
)

// NormalizeGrafana handles unified-alerting webhooks. Grafana batches
// alerts; the first alert in the batch carries the identity (fingerprint)
// and the envelope carries the firing/resolved status.
func NormalizeGrafana(body []byte, receivedAt time.Time) (models.NormalizedAlert, error) {
	payload, err := decodePayload(body)
	if err != nil {
		return models.NormalizedAlert{}, err
	}

	status := str(payload, "status") // firing or resolved
	first := firstGrafanaAlert(payload)
	fingerprint := str(first, "fingerprint")
	if fingerprint == "" {
		fingerprint = str(payload, "groupKey")
	}
	if fingerprint == "" {
		return models.NormalizedAlert{}, fmt.Errorf("grafana payload missing fingerprint and groupKey")
	}

	alert := models.NormalizedAlert{
		Source:     models.SourceGrafana,
		ExternalID: fingerprint,
		DedupeKey:  fingerprint + ":" + status,
		Title: firstNonEmpty(
			str(payload, "title"),
			str(first, "labels.alertname"),
			str(payload, "commonLabels.alertname"),
		),
		Status: status,
		Severity: firstNonEmpty(
			str(first, "labels.severity"),
			str(payload, "commonLabels.severity"),
			"unknown",
		),
		Service: firstNonEmpty(
			str(first, "labels.service"),
			str(first, "labels.job"),
			str(payload, "commonLabels.service"),
		),
		Payload:    payload,
		ReceivedAt: receivedAt,
		Metadata:   map[string]any{"fingerprint": fingerprint},
	}

	if status == "firing" {
		alert.EventKind = models.EventKindCreate
	} else {
		alert.EventKind = models.EventKindUpdate
	}
	return alert, nil
}

func firstGrafanaAlert(payload map[string]any) map[string]any {
	list, _ := payload["alerts"].([]any)
	if len(list) == 0 {
		return nil
	}
	first, _ := list[0].(map[string]any)
	return first
}
