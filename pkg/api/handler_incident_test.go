package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/pkg/models"
	"github.com/aurora-sre/aurora/pkg/queue"
	"github.com/aurora-sre/aurora/pkg/services"
	testdb "github.com/aurora-sre/aurora/test/database"
)

const testUser = "user-1"

func TestListIncidentsHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{name: "invalid status", query: "status=bogus", errMsg: "invalid status"},
		{name: "limit not a number", query: "limit=many", errMsg: "invalid limit"},
		{name: "limit zero", query: "limit=0", errMsg: "invalid limit"},
		{name: "limit too large", query: "limit=1000", errMsg: "invalid limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.listIncidentsHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, tt.errMsg)
				}
			}
		})
	}
}

func TestMergeIncidentHandler_Validation(t *testing.T) {
	// Validation fires before any service access, so an empty dependency set
	// is enough.
	s := NewServer(ServerDeps{})

	t.Run("missing target returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/inc-1/merge", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "target_incident_id")
	})
}

func newIncidentTestServer(t *testing.T) (*Server, *services.IncidentService) {
	t.Helper()
	db := testdb.NewTestClient(t)
	incidents := services.NewIncidentService(db)
	return NewServer(ServerDeps{
		DB:        db,
		Incidents: incidents,
		Sessions:  services.NewChatSessionService(db),
		Queue:     queue.NewService(db),
	}), incidents
}

func seedIncident(t *testing.T, incidents *services.IncidentService, externalID, title string) string {
	t.Helper()
	res, err := incidents.UpsertFromAlert(context.Background(), testUser, models.NormalizedAlert{
		Source:     models.SourcePagerDuty,
		ExternalID: externalID,
		DedupeKey:  externalID + ":triggered",
		Title:      title,
		Status:     "triggered",
		Severity:   "high",
		Service:    "checkout",
		EventKind:  models.EventKindCreate,
		ReceivedAt: time.Now(),
	}, models.IncidentInvestigating)
	require.NoError(t, err)
	return res.Incident.ID
}

func asUser(req *http.Request) *http.Request {
	req.Header.Set("X-Forwarded-User", testUser)
	return req
}

func TestMergeIncidentHandler_MergesAndCancelsSource(t *testing.T) {
	s, incidents := newIncidentTestServer(t)

	sourceID := seedIncident(t, incidents, "PD-src", "checkout errors")
	targetID := seedIncident(t, incidents, "PD-dst", "checkout latency")

	body := strings.NewReader(`{"target_incident_id":"` + targetID + `"}`)
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/incidents/"+sourceID+"/merge", body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), targetID)

	src, err := incidents.Get(context.Background(), testUser, sourceID)
	require.NoError(t, err)
	assert.Equal(t, incident.StatusMerged, src.Status)
	require.NotNil(t, src.MergedIntoIncidentID)
	assert.Equal(t, targetID, *src.MergedIntoIncidentID)
}

func TestMergeIncidentHandler_SelfMergeRejected(t *testing.T) {
	s, incidents := newIncidentTestServer(t)
	id := seedIncident(t, incidents, "PD-self", "self merge")

	body := strings.NewReader(`{"target_incident_id":"` + id + `"}`)
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/incidents/"+id+"/merge", body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetIncidentHandler(t *testing.T) {
	s, incidents := newIncidentTestServer(t)
	id := seedIncident(t, incidents, "PD-mine", "owned incident")

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/incidents/"+id, nil))
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "owned incident")

	// Unknown ids are a 404, not a 500.
	req = asUser(httptest.NewRequest(http.MethodGet, "/api/v1/incidents/not-a-real-id", nil))
	rec = httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
