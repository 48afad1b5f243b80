package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/ent/incidentalert"
	"github.com/aurora-sre/aurora/ent/incidentcitation"
	"github.com/aurora-sre/aurora/ent/incidentsuggestion"
	"github.com/aurora-sre/aurora/ent/incidentthought"
	"github.com/aurora-sre/aurora/pkg/correlate"
	"github.com/aurora-sre/aurora/pkg/database"
	"github.com/aurora-sre/aurora/pkg/models"
)

// mergeChainLimit bounds the walk from a merge target to its root when
// checking for cycles. Chains deeper than this are rejected outright.
const mergeChainLimit = 10

// IncidentService owns the incident table: pipeline upserts, correlation
// attaches, and the manual merge operation.
type IncidentService struct {
	db *database.Client
}

func NewIncidentService(db *database.Client) *IncidentService {
	if db == nil {
		panic("NewIncidentService: db must not be nil")
	}
	return &IncidentService{db: db}
}

// UpsertResult reports what the pipeline upsert did.
type UpsertResult struct {
	Incident *ent.Incident
	Created  bool
}

// UpsertFromAlert creates or refreshes the incident keyed by
// (source_type, source_alert_id, user_id). On update the status and
// severity are refreshed; started_at is rewound only when a previously
// resolved incident re-fires; alert_metadata is merged with previously
// stored custom fields preserved.
func (s *IncidentService) UpsertFromAlert(ctx context.Context, userID string, alert models.NormalizedAlert, status string) (*UpsertResult, error) {
	var result UpsertResult
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		existing, err := tx.Incident.Query().
			Where(
				incident.SourceTypeEQ(alert.Source),
				incident.SourceAlertIDEQ(alert.ExternalID),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("query incident: %w", err)
		}

		if existing == nil {
			created, err := tx.Incident.Create().
				SetID(uuid.New().String()).
				SetUserID(userID).
				SetSourceType(alert.Source).
				SetSourceAlertID(alert.ExternalID).
				SetStatus(incident.Status(status)).
				SetSeverity(alert.Severity).
				SetAlertTitle(alert.Title).
				SetAlertService(alert.Service).
				SetAffectedServices(serviceSet(alert.Service)).
				SetAlertMetadata(alert.Metadata).
				SetStartedAt(alert.ReceivedAt).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create incident: %w", err)
			}
			result = UpsertResult{Incident: created, Created: true}
			return nil
		}

		update := existing.Update().
			SetStatus(incident.Status(status)).
			SetAlertMetadata(mergeAlertMetadata(existing.AlertMetadata, alert.Metadata))
		if alert.Severity != "" {
			update.SetSeverity(alert.Severity)
		}
		// A resolved incident that fires again restarts its clock.
		if existing.Status == incident.StatusResolved && status != models.IncidentResolved {
			update.SetStartedAt(alert.ReceivedAt)
		}

		updated, err := update.Save(ctx)
		if err != nil {
			return fmt.Errorf("update incident: %w", err)
		}
		result = UpsertResult{Incident: updated}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MergeMetadata folds a metadata-only event (custom field updates) into the
// incident identified by its source key. Correlation never runs for these.
func (s *IncidentService) MergeMetadata(ctx context.Context, userID string, alert models.NormalizedAlert) (*ent.Incident, error) {
	var merged *ent.Incident
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		existing, err := tx.Incident.Query().
			Where(
				incident.SourceTypeEQ(alert.Source),
				incident.SourceAlertIDEQ(alert.ExternalID),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: incident for %s/%s", ErrNotFound, alert.Source, alert.ExternalID)
			}
			return fmt.Errorf("query incident: %w", err)
		}

		merged, err = existing.Update().
			SetAlertMetadata(mergeAlertMetadata(existing.AlertMetadata, alert.Metadata)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("merge incident metadata: %w", err)
		}
		return nil
	})
	return merged, err
}

// RecordPrimaryAlert links the incident's own alert event with strategy
// primary. A no-op when the edge already exists.
func (s *IncidentService) RecordPrimaryAlert(ctx context.Context, userID, incidentID, alertEventID string, receivedAt time.Time) error {
	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		exists, err := tx.IncidentAlert.Query().
			Where(
				incidentalert.IncidentIDEQ(incidentID),
				incidentalert.AlertEventIDEQ(alertEventID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check primary alert edge: %w", err)
		}
		if exists {
			return nil
		}

		err = tx.IncidentAlert.Create().
			SetID(uuid.New().String()).
			SetIncidentID(incidentID).
			SetAlertEventID(alertEventID).
			SetUserID(userID).
			SetCorrelationStrategy(incidentalert.CorrelationStrategyPrimary).
			SetCorrelationScore(1.0).
			SetReceivedAt(receivedAt).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("record primary alert: %w", err)
		}
		return nil
	})
}

// AttachCorrelated links a correlated alert to an existing incident:
// inserts the edge, bumps correlated_alert_count, and unions the alert's
// service into affected_services. No new incident row is created.
func (s *IncidentService) AttachCorrelated(ctx context.Context, userID, alertEventID string, alert models.NormalizedAlert, res correlate.Result) (*ent.Incident, error) {
	var updated *ent.Incident
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		target, err := tx.Incident.Get(ctx, res.IncidentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: incident %s", ErrNotFound, res.IncidentID)
			}
			return fmt.Errorf("load incident: %w", err)
		}

		exists, err := tx.IncidentAlert.Query().
			Where(
				incidentalert.IncidentIDEQ(target.ID),
				incidentalert.AlertEventIDEQ(alertEventID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check correlated alert edge: %w", err)
		}
		if exists {
			updated = target
			return nil // already attached by an earlier delivery
		}

		err = tx.IncidentAlert.Create().
			SetID(uuid.New().String()).
			SetIncidentID(target.ID).
			SetAlertEventID(alertEventID).
			SetUserID(userID).
			SetCorrelationStrategy(incidentalert.CorrelationStrategy(res.Strategy)).
			SetCorrelationScore(res.Score).
			SetCorrelationDetails(res.Details).
			SetReceivedAt(alert.ReceivedAt).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("attach correlated alert: %w", err)
		}

		updated, err = target.Update().
			SetCorrelatedAlertCount(target.CorrelatedAlertCount + 1).
			SetAffectedServices(unionServices(target.AffectedServices, alert.Service)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update incident after attach: %w", err)
		}
		return nil
	})
	return updated, err
}

// RecentCandidates returns the tenant's non-merged incidents inside the
// correlation window, shaped for the correlator.
func (s *IncidentService) RecentCandidates(ctx context.Context, userID string, window time.Duration) ([]correlate.Candidate, error) {
	var candidates []correlate.Candidate
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		cutoff := time.Now().Add(-window)
		incidents, err := tx.Incident.Query().
			Where(
				incident.StatusIn(incident.StatusInvestigating, incident.StatusAnalyzed),
				incident.StartedAtGTE(cutoff),
			).
			Order(ent.Desc(incident.FieldStartedAt)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("query correlation candidates: %w", err)
		}

		candidates = make([]correlate.Candidate, 0, len(incidents))
		for _, inc := range incidents {
			candidates = append(candidates, correlate.Candidate{
				IncidentID:       inc.ID,
				Service:          inc.AlertService,
				TitleFingerprint: correlate.Fingerprint(inc.AlertTitle),
				Severity:         inc.Severity,
				IdentityKey:      incidentIdentityKey(inc),
				ReceivedAt:       inc.StartedAt,
			})
		}
		return nil
	})
	return candidates, err
}

// MergeResult reports the state needed by the caller after a merge: the
// updated rows plus whether the target has a live RCA session that should
// receive a context update.
type MergeResult struct {
	Source           *ent.Incident
	Target           *ent.Incident
	TargetRCARunning bool
	SourceSessionID  string
}

// Merge folds the source incident into the target: copies the source's
// primary alert as a manual edge, unions counts and services into the
// target, and marks the source merged with its summary cleared.
//
// Merging into an incident that is itself (transitively) merged into the
// source would create a cycle; the chain from the target to its root is
// walked and the merge rejected if the source appears on it.
func (s *IncidentService) Merge(ctx context.Context, userID, sourceID, targetID string) (*MergeResult, error) {
	if sourceID == targetID {
		return nil, NewValidationError("target_incident_id", "cannot merge an incident into itself")
	}

	var result MergeResult
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		source, err := tx.Incident.Get(ctx, sourceID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: incident %s", ErrNotFound, sourceID)
			}
			return fmt.Errorf("load source incident: %w", err)
		}
		target, err := tx.Incident.Get(ctx, targetID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: incident %s", ErrNotFound, targetID)
			}
			return fmt.Errorf("load target incident: %w", err)
		}

		if err := checkMergeChain(ctx, tx, target, sourceID); err != nil {
			return err
		}

		// Copy the source's primary alert edge into the target.
		primary, err := tx.IncidentAlert.Query().
			Where(
				incidentalert.IncidentIDEQ(sourceID),
				incidentalert.CorrelationStrategyEQ(incidentalert.CorrelationStrategyPrimary),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("load source primary alert: %w", err)
		}
		added := 0
		if primary != nil {
			exists, err := tx.IncidentAlert.Query().
				Where(
					incidentalert.IncidentIDEQ(targetID),
					incidentalert.AlertEventIDEQ(primary.AlertEventID),
				).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("check target alert edge: %w", err)
			}
			if !exists {
				err = tx.IncidentAlert.Create().
					SetID(uuid.New().String()).
					SetIncidentID(targetID).
					SetAlertEventID(primary.AlertEventID).
					SetUserID(userID).
					SetCorrelationStrategy(incidentalert.CorrelationStrategyManual).
					SetCorrelationScore(1.0).
					SetCorrelationDetails(map[string]any{"merged_from": sourceID}).
					SetReceivedAt(primary.ReceivedAt).
					Exec(ctx)
				if err != nil {
					return fmt.Errorf("copy primary alert to target: %w", err)
				}
				added = 1
			}
		}

		services := target.AffectedServices
		for _, svc := range source.AffectedServices {
			services = unionServices(services, svc)
		}
		services = unionServices(services, source.AlertService)

		result.Target, err = target.Update().
			SetCorrelatedAlertCount(target.CorrelatedAlertCount + added).
			SetAffectedServices(services).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update merge target: %w", err)
		}

		result.Source, err = source.Update().
			SetStatus(incident.StatusMerged).
			ClearAuroraSummary().
			SetMergedIntoIncidentID(targetID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("mark source merged: %w", err)
		}

		result.TargetRCARunning = target.AuroraStatus == incident.AuroraStatusRunning
		if source.AuroraChatSessionID != nil {
			result.SourceSessionID = *source.AuroraChatSessionID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// checkMergeChain walks merged_into links from the target; finding sourceID
// means the merge would close a loop.
func checkMergeChain(ctx context.Context, tx *ent.Tx, target *ent.Incident, sourceID string) error {
	current := target
	for i := 0; i < mergeChainLimit; i++ {
		if current.MergedIntoIncidentID == nil {
			return nil
		}
		next := *current.MergedIntoIncidentID
		if next == sourceID {
			return ErrMergeCycle
		}
		var err error
		current, err = tx.Incident.Get(ctx, next)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil // dangling link, chain ends
			}
			return fmt.Errorf("walk merge chain: %w", err)
		}
	}
	return fmt.Errorf("%w: merge chain exceeds %d links", ErrMergeCycle, mergeChainLimit)
}

// SetAuroraStatus transitions the RCA lifecycle field, optionally linking
// the primary chat session.
func (s *IncidentService) SetAuroraStatus(ctx context.Context, userID, incidentID, status, sessionID string) error {
	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		update := tx.Incident.UpdateOneID(incidentID).
			SetAuroraStatus(incident.AuroraStatus(status))
		if sessionID != "" {
			update.SetAuroraChatSessionID(sessionID)
		}
		if err := update.Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: incident %s", ErrNotFound, incidentID)
			}
			return fmt.Errorf("set aurora status: %w", err)
		}
		return nil
	})
}

// SetSummary stores the generated incident summary.
func (s *IncidentService) SetSummary(ctx context.Context, userID, incidentID, summary string) error {
	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		if err := tx.Incident.UpdateOneID(incidentID).SetAuroraSummary(summary).Exec(ctx); err != nil {
			return fmt.Errorf("set incident summary: %w", err)
		}
		return nil
	})
}

// SetSlackMessageTS records the Slack thread anchor for the incident.
func (s *IncidentService) SetSlackMessageTS(ctx context.Context, userID, incidentID, ts string) error {
	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		if err := tx.Incident.UpdateOneID(incidentID).SetSlackMessageTs(ts).Exec(ctx); err != nil {
			return fmt.Errorf("set slack message ts: %w", err)
		}
		return nil
	})
}

// Get loads one incident.
func (s *IncidentService) Get(ctx context.Context, userID, incidentID string) (*ent.Incident, error) {
	var inc *ent.Incident
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		var err error
		inc, err = tx.Incident.Get(ctx, incidentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: incident %s", ErrNotFound, incidentID)
			}
			return fmt.Errorf("load incident: %w", err)
		}
		return nil
	})
	return inc, err
}

// List returns the tenant's incidents newest first, optionally filtered by
// status.
func (s *IncidentService) List(ctx context.Context, userID, status string, limit int) ([]*ent.Incident, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var incidents []*ent.Incident
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		q := tx.Incident.Query().
			Order(ent.Desc(incident.FieldStartedAt)).
			Limit(limit)
		if status != "" {
			q.Where(incident.StatusEQ(incident.Status(status)))
		}
		var err error
		incidents, err = q.All(ctx)
		if err != nil {
			return fmt.Errorf("list incidents: %w", err)
		}
		return nil
	})
	return incidents, err
}

// IncidentJSON assembles the incident with its RCA artifacts as a JSON
// document for the incident_query tool.
func (s *IncidentService) IncidentJSON(ctx context.Context, userID, incidentID string) (string, error) {
	var doc map[string]any
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		inc, err := tx.Incident.Get(ctx, incidentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: incident %s", ErrNotFound, incidentID)
			}
			return fmt.Errorf("load incident: %w", err)
		}

		thoughts, err := tx.IncidentThought.Query().
			Where(incidentthought.IncidentIDEQ(incidentID)).
			Order(ent.Asc(incidentthought.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load thoughts: %w", err)
		}
		citations, err := tx.IncidentCitation.Query().
			Where(incidentcitation.IncidentIDEQ(incidentID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load citations: %w", err)
		}
		sortCitations(citations)
		suggestions, err := tx.IncidentSuggestion.Query().
			Where(incidentsuggestion.IncidentIDEQ(incidentID)).
			Order(ent.Asc(incidentsuggestion.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load suggestions: %w", err)
		}

		doc = map[string]any{
			"incident_id":            inc.ID,
			"title":                  inc.AlertTitle,
			"status":                 inc.Status,
			"aurora_status":          inc.AuroraStatus,
			"severity":               inc.Severity,
			"service":                inc.AlertService,
			"affected_services":      inc.AffectedServices,
			"correlated_alert_count": inc.CorrelatedAlertCount,
			"alert_metadata":         inc.AlertMetadata,
			"started_at":             inc.StartedAt,
			"thoughts":               thoughts,
			"citations":              citations,
			"suggestions":            suggestions,
		}
		if inc.AuroraSummary != nil {
			doc["summary"] = *inc.AuroraSummary
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal incident document: %w", err)
	}
	return string(out), nil
}

// mergeAlertMetadata lays incoming over existing. The customFields submap
// is merged key-by-key so an earlier runbook_link survives updates whose
// payload omits or blanks it.
func mergeAlertMetadata(existing, incoming map[string]any) map[string]any {
	merged := make(map[string]any, len(existing)+len(incoming))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range incoming {
		if k != "customFields" {
			merged[k] = v
			continue
		}
		merged[k] = mergeCustomFields(asMap(existing[k]), asMap(v))
	}
	return merged
}

func mergeCustomFields(existing, incoming map[string]any) map[string]any {
	out := make(map[string]any, len(existing)+len(incoming))
	for k, v := range existing {
		out[k] = v
	}
	for k, v := range incoming {
		if s, ok := v.(string); ok && s == "" {
			continue // never blank a previously stored value
		}
		out[k] = v
	}
	return out
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// incidentIdentityKey recovers the external identity stored at creation so
// identity-strategy correlation can match follow-up alerts.
func incidentIdentityKey(inc *ent.Incident) string {
	for _, key := range []string{"incident_key", "fingerprint", "dedup_key", "alert_id"} {
		if v, ok := inc.AlertMetadata[key].(string); ok && v != "" {
			return inc.SourceType + ":" + v
		}
	}
	if inc.SourceAlertID != "" {
		return inc.SourceType + ":" + inc.SourceAlertID
	}
	return ""
}

func serviceSet(service string) []string {
	if service == "" {
		return []string{}
	}
	return []string{service}
}

func unionServices(services []string, service string) []string {
	if service == "" {
		return services
	}
	for _, s := range services {
		if s == service {
			return services
		}
	}
	return append(services, service)
}

func sortCitations(citations []*ent.IncidentCitation) {
	sort.Slice(citations, func(i, j int) bool {
		return citationOrder(citations[i].CitationKey) < citationOrder(citations[j].CitationKey)
	})
}

// citationOrder parses the numeric key; non-numeric keys sort last.
func citationOrder(key string) int {
	n := 0
	for _, r := range key {
		if r < '0' || r > '9' {
			return 1 << 30
		}
		n = n*10 + int(r-'0')
	}
	if key == "" {
		return 1 << 30
	}
	return n
}
