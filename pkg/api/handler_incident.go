package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/pkg/events"
	"github.com/aurora-sre/aurora/pkg/queue"
)

// listIncidentsHandler handles GET /api/v1/incidents.
func (s *Server) listIncidentsHandler(c *echo.Context) error {
	status := c.QueryParam("status")
	if status != "" {
		if err := incident.StatusValidator(incident.Status(status)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+status)
		}
	}

	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-500")
		}
		limit = n
	}

	incidents, err := s.incidents.List(c.Request().Context(), extractUserID(c), status, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, incidents)
}

// getIncidentHandler handles GET /api/v1/incidents/:id.
func (s *Server) getIncidentHandler(c *echo.Context) error {
	incidentID := c.Param("id")
	if incidentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "incident id is required")
	}

	inc, err := s.incidents.Get(c.Request().Context(), extractUserID(c), incidentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, inc)
}

// incidentEventsHandler handles GET /api/v1/incidents/:id/events.
func (s *Server) incidentEventsHandler(c *echo.Context) error {
	incidentID := c.Param("id")
	if incidentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "incident id is required")
	}

	evts, err := s.alerts.EventsForIncident(c.Request().Context(), extractUserID(c), incidentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, evts)
}

// incidentThoughtsHandler handles GET /api/v1/incidents/:id/thoughts.
func (s *Server) incidentThoughtsHandler(c *echo.Context) error {
	incidentID := c.Param("id")
	if incidentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "incident id is required")
	}

	thoughts, err := s.thoughts.List(c.Request().Context(), extractUserID(c), incidentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, thoughts)
}

// incidentCitationsHandler handles GET /api/v1/incidents/:id/citations.
func (s *Server) incidentCitationsHandler(c *echo.Context) error {
	incidentID := c.Param("id")
	if incidentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "incident id is required")
	}

	citations, err := s.citations.List(c.Request().Context(), extractUserID(c), incidentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, citations)
}

// incidentSuggestionsHandler handles GET /api/v1/incidents/:id/suggestions.
func (s *Server) incidentSuggestionsHandler(c *echo.Context) error {
	incidentID := c.Param("id")
	if incidentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "incident id is required")
	}

	suggestions, err := s.suggestions.List(c.Request().Context(), extractUserID(c), incidentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, suggestions)
}

// mergeIncidentHandler handles POST /api/v1/incidents/:id/merge.
// Folds the incident in the path (source) into the target named in the body,
// then tears down the source's investigation: its active sessions are
// cancelled, its pending queue tasks dropped, and, when the target has an RCA
// running, a context-update task carries the source's findings across.
func (s *Server) mergeIncidentHandler(c *echo.Context) error {
	sourceID := c.Param("id")
	if sourceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "incident id is required")
	}

	var req MergeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TargetIncidentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "target_incident_id is required")
	}

	ctx := c.Request().Context()
	userID := extractUserID(c)

	res, err := s.incidents.Merge(ctx, userID, sourceID, req.TargetIncidentID)
	if err != nil {
		return mapServiceError(err)
	}

	cancelled, err := s.sessions.CancelForIncident(ctx, userID, sourceID)
	if err != nil {
		slog.Warn("cancelling source sessions after merge failed",
			"incident_id", sourceID, "error", err)
	}
	if s.gateway != nil && res.SourceSessionID != "" {
		s.gateway.CancelSession(res.SourceSessionID)
	}
	if _, err := s.queue.CancelPendingForIncident(ctx, userID, sourceID); err != nil {
		slog.Warn("cancelling source tasks after merge failed",
			"incident_id", sourceID, "error", err)
	}

	if res.TargetRCARunning && res.Target.AuroraChatSessionID != nil {
		_, err := s.queue.Enqueue(ctx, userID, queue.TaskContextUpdate, req.TargetIncidentID,
			map[string]any{
				"session_id":         *res.Target.AuroraChatSessionID,
				"source_incident_id": sourceID,
			}, time.Now())
		if err != nil {
			slog.Warn("enqueue merge context update failed",
				"incident_id", req.TargetIncidentID, "error", err)
		}
	}

	s.publishMergeUpdate(ctx, userID, res.Source.ID, "merged")
	s.publishMergeUpdate(ctx, userID, res.Target.ID, "merge_target")

	return c.JSON(http.StatusOK, &MergeResponse{
		SourceIncidentID:  res.Source.ID,
		TargetIncidentID:  res.Target.ID,
		SessionsCancelled: cancelled,
		ContextForwarded:  res.TargetRCARunning,
	})
}

func (s *Server) publishMergeUpdate(ctx context.Context, userID, incidentID, reason string) {
	if s.publisher == nil {
		return
	}
	inc, err := s.incidents.Get(ctx, userID, incidentID)
	if err != nil {
		return
	}
	err = s.publisher.PublishIncidentUpdate(ctx, events.IncidentUpdatePayload{
		EventID:              uuid.New().String(),
		IncidentID:           incidentID,
		UserID:               userID,
		Status:               string(inc.Status),
		AuroraStatus:         string(inc.AuroraStatus),
		Severity:             inc.Severity,
		CorrelatedAlertCount: inc.CorrelatedAlertCount,
		AffectedServices:     inc.AffectedServices,
		Reason:               reason,
		UpdatedAt:            time.Now(),
	})
	if err != nil {
		slog.Warn("publish merge update failed", "incident_id", incidentID, "error", err)
	}
}
