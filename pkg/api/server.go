// Package api is Aurora's HTTP surface: signed webhook ingestion, the REST
// read API for the dashboard, the merge operation, and the two WebSocket
// upgrade points (dashboard events, interactive sessions).
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/aurora-sre/aurora/pkg/config"
	"github.com/aurora-sre/aurora/pkg/database"
	"github.com/aurora-sre/aurora/pkg/events"
	"github.com/aurora-sre/aurora/pkg/gateway"
	"github.com/aurora-sre/aurora/pkg/queue"
	"github.com/aurora-sre/aurora/pkg/services"
)

// Server hosts the echo instance and the handler dependencies.
type Server struct {
	echo *echo.Echo
	http *http.Server

	cfg       config.ServerConfig
	ingestCfg config.IngestConfig

	db          *database.Client
	incidents   *services.IncidentService
	sessions    *services.ChatSessionService
	alerts      *services.AlertEventService
	thoughts    *services.ThoughtService
	citations   *services.CitationService
	suggestions *services.SuggestionService

	queue      *queue.Service
	workerPool *queue.WorkerPool

	gateway     *gateway.Gateway
	connManager *events.ConnectionManager
	publisher   *events.Publisher

	dashboardDir string
}

// ServerDeps carries everything the handlers need. Gateway, connManager,
// publisher, and workerPool may be nil; the matching routes degrade.
type ServerDeps struct {
	Config    config.ServerConfig
	Ingest    config.IngestConfig
	DB        *database.Client
	Incidents *services.IncidentService
	Sessions  *services.ChatSessionService
	Alerts    *services.AlertEventService

	Thoughts    *services.ThoughtService
	Citations   *services.CitationService
	Suggestions *services.SuggestionService

	Queue      *queue.Service
	WorkerPool *queue.WorkerPool

	Gateway     *gateway.Gateway
	ConnManager *events.ConnectionManager
	Publisher   *events.Publisher
}

// NewServer builds the server and registers all routes.
func NewServer(deps ServerDeps) *Server {
	s := &Server{
		echo:        echo.New(),
		cfg:         deps.Config,
		ingestCfg:   deps.Ingest,
		db:          deps.DB,
		incidents:   deps.Incidents,
		sessions:    deps.Sessions,
		alerts:      deps.Alerts,
		thoughts:    deps.Thoughts,
		citations:   deps.Citations,
		suggestions: deps.Suggestions,
		queue:       deps.Queue,
		workerPool:  deps.WorkerPool,
		gateway:     deps.Gateway,
		connManager: deps.ConnManager,
		publisher:   deps.Publisher,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())
	e.Use(corsHeaders(s.cfg.CORSAllowedOrigins))

	e.GET("/health", s.healthHandler)

	// Webhook ingestion is unauthenticated at the proxy level; the HMAC
	// signature is the credential.
	e.POST("/webhooks/:source", s.webhookHandler)

	v1 := e.Group("/api/v1")
	v1.GET("/incidents", s.listIncidentsHandler)
	v1.GET("/incidents/:id", s.getIncidentHandler)
	v1.GET("/incidents/:id/events", s.incidentEventsHandler)
	v1.GET("/incidents/:id/thoughts", s.incidentThoughtsHandler)
	v1.GET("/incidents/:id/citations", s.incidentCitationsHandler)
	v1.GET("/incidents/:id/suggestions", s.incidentSuggestionsHandler)
	v1.POST("/incidents/:id/merge", s.mergeIncidentHandler)

	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.POST("/sessions/:id/cancel", s.cancelSessionHandler)

	e.GET("/ws", s.dashboardWSHandler)
	e.GET("/ws/session", s.sessionWSHandler)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo { return s.echo }

// Start begins serving on addr and blocks until the listener fails.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", addr)
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
