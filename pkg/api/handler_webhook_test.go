package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/ent/task"
	"github.com/aurora-sre/aurora/pkg/config"
	"github.com/aurora-sre/aurora/pkg/ingest"
	"github.com/aurora-sre/aurora/pkg/queue"
	testdb "github.com/aurora-sre/aurora/test/database"
)

const webhookSecret = "whsec_test"

func newWebhookTestServer(t *testing.T) *Server {
	t.Helper()
	db := testdb.NewTestClient(t)
	return NewServer(ServerDeps{
		Ingest: config.IngestConfig{
			SigningSecrets: map[string]string{
				"grafana":   webhookSecret,
				"pagerduty": webhookSecret,
			},
		},
		DB:    db,
		Queue: queue.NewService(db),
	})
}

func signedWebhookRequest(t *testing.T, source string, body []byte) *http.Request {
	t.Helper()
	ts, sig := ingest.SignBody(webhookSecret, body, time.Now())
	req := httptest.NewRequest(http.MethodPost, "/webhooks/"+source, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerTimestamp, ts)
	req.Header.Set(headerSignature, sig)
	return req
}

func TestWebhookHandler_AcceptsSignedDelivery(t *testing.T) {
	s := newWebhookTestServer(t)

	body := []byte(`{"status":"firing","title":"High error rate","alerts":[]}`)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, signedWebhookRequest(t, "grafana", body))

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "accepted")

	// The raw delivery is parked as a queue task; the pipeline runs async.
	tasks, err := s.db.Admin.Task.Query().Where(task.KindEQ(queue.TaskProcessEvent)).All(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "grafana", tasks[0].Payload["source"])
	assert.Contains(t, tasks[0].Payload["body"], "High error rate")
}

func TestWebhookHandler_RejectsBadSignature(t *testing.T) {
	s := newWebhookTestServer(t)

	body := []byte(`{"status":"firing"}`)
	ts, _ := ingest.SignBody(webhookSecret, body, time.Now())
	req := httptest.NewRequest(http.MethodPost, "/webhooks/grafana", bytes.NewReader(body))
	req.Header.Set(headerTimestamp, ts)
	req.Header.Set(headerSignature, "v0=deadbeef")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	count, err := s.db.Admin.Task.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "rejected deliveries must not enqueue work")
}

func TestWebhookHandler_RejectsStaleTimestamp(t *testing.T) {
	s := newWebhookTestServer(t)

	body := []byte(`{"status":"firing"}`)
	ts, sig := ingest.SignBody(webhookSecret, body, time.Now().Add(-10*time.Minute))
	req := httptest.NewRequest(http.MethodPost, "/webhooks/grafana", bytes.NewReader(body))
	req.Header.Set(headerTimestamp, ts)
	req.Header.Set(headerSignature, sig)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookHandler_UnknownSource(t *testing.T) {
	s := newWebhookTestServer(t)

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, signedWebhookRequest(t, "nagios", []byte(`{}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebhookHandler_UnconfiguredSourceFailsClosed(t *testing.T) {
	s := newWebhookTestServer(t)

	// datadog is a known source but has no signing secret configured.
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, signedWebhookRequest(t, "datadog", []byte(`{"id":"1"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookHandler_EmptyBody(t *testing.T) {
	s := newWebhookTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/grafana", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKnownSource(t *testing.T) {
	for _, src := range ingest.Sources() {
		assert.True(t, knownSource(src), src)
	}
	assert.False(t, knownSource("nagios"))
	assert.False(t, knownSource(""))
}

// Guard against the route group swallowing the param.
func TestWebhookRouteBindsSourceParam(t *testing.T) {
	e := echo.New()
	var got string
	e.POST("/webhooks/:source", func(c *echo.Context) error {
		got = c.Param("source")
		return c.NoContent(http.StatusOK)
	})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhooks/pagerduty", nil))
	assert.Equal(t, "pagerduty", got)
}
