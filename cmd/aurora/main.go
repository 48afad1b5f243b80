// Aurora incident-response server — ingests alert webhooks, manages the
// task queue workers, and serves the dashboard API and WebSocket streams.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aurora-sre/aurora/pkg/api"
	"github.com/aurora-sre/aurora/pkg/cleanup"
	"github.com/aurora-sre/aurora/pkg/config"
	"github.com/aurora-sre/aurora/pkg/confirm"
	"github.com/aurora-sre/aurora/pkg/correlate"
	"github.com/aurora-sre/aurora/pkg/database"
	"github.com/aurora-sre/aurora/pkg/events"
	"github.com/aurora-sre/aurora/pkg/gateway"
	"github.com/aurora-sre/aurora/pkg/ingest"
	"github.com/aurora-sre/aurora/pkg/llm"
	"github.com/aurora-sre/aurora/pkg/masking"
	"github.com/aurora-sre/aurora/pkg/queue"
	"github.com/aurora-sre/aurora/pkg/runbook"
	"github.com/aurora-sre/aurora/pkg/secrets"
	"github.com/aurora-sre/aurora/pkg/services"
	"github.com/aurora-sre/aurora/pkg/slack"
	"github.com/aurora-sre/aurora/pkg/tools"
	"github.com/aurora-sre/aurora/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Aurora",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (migrations run inside NewClient)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Admin, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Domain services
	incidents := services.NewIncidentService(dbClient)
	sessions := services.NewChatSessionService(dbClient)
	alerts := services.NewAlertEventService(dbClient)
	thoughts := services.NewThoughtService(dbClient)
	citations := services.NewCitationService(dbClient)
	suggestions := services.NewSuggestionService(dbClient)
	eventService := services.NewEventService(dbClient)
	queueService := queue.NewService(dbClient)
	slog.Info("Services initialized")

	// 5. Streaming infrastructure: persisted events + LISTEN/NOTIFY fan-out
	publisher := events.NewPublisher(dbClient.AdminDB())
	connManager := events.NewConnectionManager(eventService, sessions, cfg.Server.WSWriteTimeout)

	listener := events.NewListener(dbConfig.AdminDSN(), connManager)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	connManager.SetListener(listener)
	slog.Info("Streaming infrastructure initialized")

	// 6. Agent infrastructure: secrets, tools, providers, engine
	var secretsBackend secrets.Backend
	if cfg.Secrets.Addr != "" {
		secretsBackend = secrets.NewHTTPBackend(cfg.Secrets.Addr, cfg.Secrets.Token)
	} else {
		// No secret store configured: tools needing credentials report the
		// missing credential instead of failing at startup.
		secretsBackend = secrets.NewMemoryBackend()
		slog.Warn("No secret store configured, per-user credentials unavailable")
	}
	secretsClient := secrets.NewClient(secretsBackend, cfg.Secrets.CacheTTL)

	runbooks := runbook.NewFetcher(runbook.Config{
		Token:          cfg.Runbook.GitHubToken,
		AllowedDomains: cfg.Runbook.AllowedDomains,
		CacheTTL:       cfg.Runbook.CacheTTL,
	})

	toolRegistry := tools.NewRegistry()
	if err := tools.RegisterBuiltins(toolRegistry, tools.Deps{
		Runner:    tools.NewExecRunner(),
		Runbooks:  runbooks,
		Incidents: incidents,
	}); err != nil {
		slog.Error("Failed to register builtin tools", "error", err)
		os.Exit(1)
	}

	toolRegistry.SetScrubber(masking.NewScrubber())

	providers := llm.NewRegistry(cfg.LLM)
	broker := confirm.NewBroker()
	engine := workflow.NewEngine(providers, toolRegistry, broker, sessions, secretsClient,
		cfg.Workflow, cfg.LLM)
	gw := gateway.New(engine, toolRegistry, broker, sessions, secretsClient, secretsClient,
		cfg.Server, cfg.Workflow)
	slog.Info("Agent engine initialized")

	// 7. Outbound Slack notifications (nil service disables them)
	var notifier *slack.Service
	if cfg.Slack.Enabled {
		notifier = slack.NewService(slack.ServiceConfig{
			Token:        cfg.Slack.BotToken,
			Channel:      cfg.Slack.Channel,
			DashboardURL: getEnv("DASHBOARD_URL", ""),
		})
		if notifier == nil {
			slog.Warn("Slack enabled but bot token or channel missing, notifications disabled")
		}
	}

	// 8. Ingest pipeline and queue workers
	correlator := correlate.New(incidents, cfg.Ingest.CorrelationWindow)
	pipeline := ingest.NewPipeline(alerts, incidents, correlator, queueService, publisher,
		ingest.PipelineConfig{
			RCAGracePeriod: cfg.Ingest.RCATriggerGrace,
			Slack:          notifier,
		})

	launcher := workflow.NewLauncher(engine, sessions, incidents, thoughts, citations,
		suggestions, publisher, gw, notifier)

	mux := queue.NewHandlers(queue.HandlersConfig{
		Incidents:         incidents,
		Sessions:          sessions,
		Thoughts:          thoughts,
		Pipeline:          pipeline,
		Runbooks:          runbooks,
		Summarizer:        queue.NewModelSummarizer(providers, cfg.LLM),
		Launcher:          launcher,
		Publisher:         publisher,
		PodID:             podID,
		AutomationDefault: cfg.Ingest.AutomationEnabledDefault,
	}).Mux()

	workerPool := queue.NewWorkerPool(podID, dbClient.Admin, cfg.Queue, mux)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	janitor := cleanup.NewService(cfg.Retention, eventService, queueService)
	janitor.Start(ctx)
	defer janitor.Stop()

	// 9. HTTP server
	httpServer := api.NewServer(api.ServerDeps{
		Config:      cfg.Server,
		Ingest:      cfg.Ingest,
		DB:          dbClient,
		Incidents:   incidents,
		Sessions:    sessions,
		Alerts:      alerts,
		Thoughts:    thoughts,
		Citations:   citations,
		Suggestions: suggestions,
		Queue:       queueService,
		WorkerPool:  workerPool,
		Gateway:     gw,
		ConnManager: connManager,
		Publisher:   publisher,
	})
	if dir := os.Getenv("DASHBOARD_DIR"); dir != "" {
		httpServer.SetDashboardDir(dir)
	}

	// 10. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Aurora started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain workers first, then the HTTP server
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — running investigations will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
