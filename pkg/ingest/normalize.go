// Package ingest turns vendor webhook payloads into normalized alerts and
// drives them through the incident pipeline: store raw, correlate, upsert,
// and schedule follow-up work.
package ingest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aurora-sre/aurora/pkg/models"
)

// Normalizer converts one source's webhook payload into a NormalizedAlert.
type Normalizer func(body []byte, receivedAt time.Time) (models.NormalizedAlert, error)

// normalizers maps source name to its normalizer.
var normalizers = map[string]Normalizer{
	models.SourcePagerDuty: NormalizePagerDuty,
	models.SourceGrafana:   NormalizeGrafana,
	models.SourceDatadog:   NormalizeDatadog,
	models.SourceNetdata:   NormalizeNetdata,
	models.SourceSplunk:    NormalizeSplunk,
	models.SourceDynatrace: NormalizeDynatrace,
	models.SourceJenkins:   NormalizeJenkins,
}

// Normalize dispatches to the source's normalizer.
func Normalize(source string, body []byte, receivedAt time.Time) (models.NormalizedAlert, error) {
	n, ok := normalizers[source]
	if !ok {
		return models.NormalizedAlert{}, fmt.Errorf("unknown alert source %q", source)
	}
	return n(body, receivedAt)
}

// Sources lists the supported webhook sources.
func Sources() []string {
	return []string{
		models.SourcePagerDuty,
		models.SourceGrafana,
		models.SourceDatadog,
		models.SourceNetdata,
		models.SourceSplunk,
		models.SourceDynatrace,
		models.SourceJenkins,
	}
}

// NormalizeStatus maps a source status onto the incident lifecycle.
func NormalizeStatus(source, status string) string {
	switch strings.ToLower(status) {
	case "resolved", "ok", "recovered", "clear", "closed", "success":
		return models.IncidentResolved
	case "acknowledged", "ack":
		return models.IncidentAnalyzed
	default:
		return models.IncidentInvestigating
	}
}

func decodePayload(body []byte) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode webhook payload: %w", err)
	}
	return payload, nil
}

// str digs a dotted path out of a decoded payload, returning "" when any
// segment is missing or not an object.
func str(m map[string]any, path string) string {
	parts := strings.Split(path, ".")
	current := any(m)
	for _, p := range parts {
		obj, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current = obj[p]
	}
	switch v := current.(type) {
	case string:
		return v
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%f", v), ".000000")
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
