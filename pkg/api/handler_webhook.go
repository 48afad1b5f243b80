package api

import (
	"io"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/aurora-sre/aurora/pkg/ingest"
	"github.com/aurora-sre/aurora/pkg/queue"
)

// maxWebhookBody caps a single webhook payload. Vendor payloads are a few KB;
// anything near the cap is not an alert.
const maxWebhookBody = 1 << 20

// Signature headers for the v0 HMAC scheme.
const (
	headerTimestamp = "X-Aurora-Timestamp"
	headerSignature = "X-Aurora-Signature"
)

// webhookHandler handles POST /webhooks/:source.
// Verifies the HMAC signature, stores the raw delivery as a queue task, and
// returns 202 immediately. All pipeline work happens on the worker pool so a
// slow correlator never makes a vendor retry.
func (s *Server) webhookHandler(c *echo.Context) error {
	source := c.Param("source")
	if !knownSource(source) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown webhook source: "+source)
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read body: "+err.Error())
	}
	if len(body) > maxWebhookBody {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "webhook body too large")
	}
	if len(body) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty webhook body")
	}

	secret := s.ingestCfg.SigningSecrets[source]
	err = ingest.VerifySignature(secret, body,
		c.Request().Header.Get(headerTimestamp),
		c.Request().Header.Get(headerSignature))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "signature verification failed: "+err.Error())
	}

	receivedAt := time.Now()
	taskID, err := s.queue.Enqueue(c.Request().Context(), extractUserID(c), queue.TaskProcessEvent, "",
		map[string]any{
			"source":      source,
			"body":        string(body),
			"received_at": receivedAt.Format(time.RFC3339Nano),
		}, receivedAt)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, &WebhookResponse{
		Status: "accepted",
		TaskID: taskID,
	})
}

func knownSource(source string) bool {
	for _, s := range ingest.Sources() {
		if s == source {
			return true
		}
	}
	return false
}
