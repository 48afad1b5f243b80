package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spaServer builds a Server whose echo instance carries the API and health
// routes that must keep priority over the SPA fallback, then points it at a
// temp dashboard build containing the given files.
func spaServer(t *testing.T, files map[string]string) *Server {
	t.Helper()
	e := echo.New()
	e.GET("/health", func(c *echo.Context) error {
		return c.String(http.StatusOK, "healthy")
	})
	e.GET("/api/v1/incidents", func(c *echo.Context) error {
		return c.String(http.StatusOK, `[]`)
	})

	s := &Server{echo: e}
	if files == nil {
		return s
	}

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	s.dashboardDir = dir
	s.setupDashboardRoutes()
	return s
}

func get(s *Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func appShell() map[string]string {
	return map[string]string{"index.html": "<html><body>aurora</body></html>"}
}

func TestDashboardDisabledWithoutDir(t *testing.T) {
	s := spaServer(t, nil)
	s.setupDashboardRoutes() // empty dashboardDir is a no-op

	assert.NotEqual(t, http.StatusOK, get(s, "/").Code)
}

func TestDashboardSkippedWithoutIndex(t *testing.T) {
	// A build directory without index.html means no usable SPA; routing
	// stays API-only.
	s := spaServer(t, map[string]string{"robots.txt": "User-agent: *"})

	assert.NotEqual(t, http.StatusOK, get(s, "/").Code)
}

func TestSPAFallbackServesAppShell(t *testing.T) {
	s := spaServer(t, appShell())

	for _, path := range []string{
		"/",
		"/incidents",
		"/incidents/inc-42",
		"/incidents/inc-42/investigation",
		"/settings/integrations",
	} {
		t.Run(path, func(t *testing.T) {
			rec := get(s, path)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "aurora")
			assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"),
				"the app shell must revalidate so deploys propagate new asset hashes")
		})
	}
}

func TestExactFilesServedFromDisk(t *testing.T) {
	files := appShell()
	files["favicon.ico"] = "icon-bytes"
	files["robots.txt"] = "User-agent: *"
	s := spaServer(t, files)

	rec := get(s, "/robots.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User-agent")
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"),
		"unhashed root files revalidate like the shell")
}

func TestHashedAssetsCacheImmutable(t *testing.T) {
	files := appShell()
	files["assets/index-Bx9q2c.js"] = "console.log('aurora')"
	files["assets/index-7fk1ab.css"] = ".incident { color: red }"
	s := spaServer(t, files)

	for _, path := range []string{"/assets/index-Bx9q2c.js", "/assets/index-7fk1ab.css"} {
		rec := get(s, path)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"),
			"content-hashed bundles never change under the same name")
	}
}

func TestAPIAndWebhookPathsNeverFallBackToIndex(t *testing.T) {
	s := spaServer(t, appShell())

	// Registered API route resolves normally.
	rec := get(s, "/api/v1/incidents")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `[]`, rec.Body.String())

	// Unregistered API and webhook paths are 404s, not the app shell: a
	// misconfigured monitoring source must see an error, not HTML.
	for _, path := range []string{"/api/v1/nonexistent", "/webhooks/grafana"} {
		rec := get(s, path)
		assert.NotContains(t, rec.Body.String(), "aurora", "%s must not render the shell", path)
	}
}

func TestHealthNotInterceptedBySPA(t *testing.T) {
	s := spaServer(t, appShell())

	rec := get(s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", rec.Body.String())
}

func TestSetDashboardDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>aurora</html>"), 0o644))

	s := spaServer(t, nil)
	s.SetDashboardDir(dir)
	rec := get(s, "/incidents/inc-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "aurora")

	// Empty dir keeps API-only routing.
	s2 := spaServer(t, nil)
	s2.SetDashboardDir("")
	assert.NotEqual(t, http.StatusOK, get(s2, "/").Code)
}
