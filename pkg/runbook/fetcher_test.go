package runbook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t,
		"https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/db/failover.md",
		NormalizeURL("https://github.com/acme/runbooks/blob/main/db/failover.md"))
	assert.Equal(t,
		"https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/db.md",
		NormalizeURL("https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/db.md"))
	assert.Equal(t, "https://wiki.internal/x", NormalizeURL("https://wiki.internal/x"))
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("https://wiki.internal/runbook", nil))
	assert.Error(t, ValidateURL("ftp://wiki.internal/runbook", nil))
	assert.Error(t, ValidateURL("https://evil.example/runbook", []string{"wiki.internal"}))
	assert.NoError(t, ValidateURL("https://www.wiki.internal/runbook", []string{"wiki.internal"}))
}

func TestFetchCaches(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("step 1: check replication"))
	}))
	defer srv.Close()

	f := NewFetcher(Config{CacheTTL: time.Hour})
	for i := 0; i < 3; i++ {
		content, err := f.Fetch(context.Background(), srv.URL+"/runbook.md")
		require.NoError(t, err)
		assert.Equal(t, "step 1: check replication", content)
	}
	assert.Equal(t, int64(1), hits.Load())
}

func TestFetchErrorsOnNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(Config{})
	_, err := f.Fetch(context.Background(), srv.URL+"/missing.md")
	assert.ErrorContains(t, err, "404")
}

func TestFetchRespectsAllowlist(t *testing.T) {
	f := NewFetcher(Config{AllowedDomains: []string{"wiki.internal"}})
	_, err := f.Fetch(context.Background(), "https://attacker.example/payload")
	assert.Error(t, err)
}
