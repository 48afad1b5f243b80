package ingest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// replayWindow bounds how old a signed webhook may be. Requests outside the
// window are rejected even with a valid signature.
const replayWindow = 5 * time.Minute

// VerifySignature checks an HMAC-SHA256 webhook signature over the
// `v0:<timestamp>:<body>` base string. The signature header may carry a
// `v0=` prefix. Timestamps further than the replay window from now fail.
func VerifySignature(secret string, body []byte, timestampHeader, signatureHeader string) error {
	if secret == "" {
		return fmt.Errorf("webhook secret not configured")
	}
	if timestampHeader == "" || signatureHeader == "" {
		return fmt.Errorf("missing signature headers")
	}

	ts, err := strconv.ParseInt(timestampHeader, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid signature timestamp: %w", err)
	}
	age := time.Since(time.Unix(ts, 0))
	if age > replayWindow || age < -replayWindow {
		return fmt.Errorf("signature timestamp outside replay window")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:", timestampHeader)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	got := strings.TrimPrefix(signatureHeader, "v0=")
	if !hmac.Equal([]byte(expected), []byte(got)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

// SignBody produces the signature for a body at the given timestamp.
// Exported for tests and for outbound webhook replay tooling.
func SignBody(secret string, body []byte, ts time.Time) (timestamp, signature string) {
	timestamp = strconv.FormatInt(ts.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:", timestamp)
	mac.Write(body)
	return timestamp, "v0=" + hex.EncodeToString(mac.Sum(nil))
}
