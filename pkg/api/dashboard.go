package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// SetDashboardDir enables serving the built dashboard SPA from dir. Empty dir
// leaves the API-only routing in place. Must be called after NewServer so API
// routes keep priority over the SPA fallback.
func (s *Server) SetDashboardDir(dir string) {
	s.dashboardDir = dir
	s.setupDashboardRoutes()
}

// setupDashboardRoutes registers the SPA fallback: exact files are served from
// disk, everything else gets index.html so client-side routing works. Skipped
// when no dashboard build is present.
func (s *Server) setupDashboardRoutes() {
	if s.dashboardDir == "" {
		return
	}
	index := filepath.Join(s.dashboardDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		slog.Warn("dashboard dir has no index.html, SPA routes disabled", "dir", s.dashboardDir)
		return
	}
	s.echo.GET("/*", s.serveDashboard)
}

func (s *Server) serveDashboard(c *echo.Context) error {
	reqPath := c.Request().URL.Path

	// API paths never fall through to index.html; an unregistered API route
	// is a 404, not a page.
	if strings.HasPrefix(reqPath, "/api/") || strings.HasPrefix(reqPath, "/webhooks/") {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}

	rel := filepath.Clean(strings.TrimPrefix(reqPath, "/"))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "..") {
		rel = "index.html"
	}

	full := filepath.Join(s.dashboardDir, rel)
	if fi, err := os.Stat(full); err == nil && !fi.IsDir() {
		if strings.HasPrefix(reqPath, "/assets/") {
			// Vite emits content-hashed filenames under /assets; cache hard.
			c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			c.Response().Header().Set("Cache-Control", "no-cache")
		}
		http.ServeFile(c.Response(), c.Request(), full)
		return nil
	}

	// SPA fallback: unknown paths render the app shell. no-cache so browsers
	// pick up new asset hashes after deployments.
	c.Response().Header().Set("Cache-Control", "no-cache")
	http.ServeFile(c.Response(), c.Request(), filepath.Join(s.dashboardDir, "index.html"))
	return nil
}
