// Package config loads Aurora configuration from a YAML file plus environment
// variables. YAML supports {{.ENV_VAR}} template expansion so secrets never
// live in the file itself.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration object.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Queue     *QueueConfig    `yaml:"queue"`
	LLM       LLMConfig       `yaml:"llm"`
	Workflow  WorkflowConfig  `yaml:"workflow"`
	Ingest    IngestConfig    `yaml:"ingest"`
	Runbook   RunbookConfig   `yaml:"runbook"`
	Slack     SlackConfig     `yaml:"slack"`
	Secrets   SecretsConfig   `yaml:"secrets"`
	Retention RetentionConfig `yaml:"retention"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// CORSAllowedOrigins is the WebSocket/REST origin allowlist. Empty = same-origin only.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	// WSWriteTimeout bounds a single WebSocket write.
	WSWriteTimeout time.Duration `yaml:"ws_write_timeout"`

	// WSRateLimit is the per-connection message rate (messages/second).
	WSRateLimit float64 `yaml:"ws_rate_limit"`

	// WSRateBurst is the per-connection burst allowance.
	WSRateBurst int `yaml:"ws_rate_burst"`
}

// WorkflowConfig bounds a single agent turn.
type WorkflowConfig struct {
	// TurnTimeout is the hard ceiling for one agent turn.
	TurnTimeout time.Duration `yaml:"turn_timeout"`

	// MaxIterations caps the tool-calling loop before a forced conclusion.
	MaxIterations int `yaml:"max_iterations"`

	// MaxMessageTokens rejects oversize human messages before the loop starts.
	MaxMessageTokens int `yaml:"max_message_tokens"`

	// CancelDrainTimeout bounds the wait for in-flight tool calls on cancel.
	CancelDrainTimeout time.Duration `yaml:"cancel_drain_timeout"`

	// CancelDrainPoll is the polling interval during the cancel drain.
	CancelDrainPoll time.Duration `yaml:"cancel_drain_poll"`
}

// IngestConfig configures the alert → incident pipeline.
type IngestConfig struct {
	// CorrelationWindow is how far back the correlator searches for open incidents.
	CorrelationWindow time.Duration `yaml:"correlation_window"`

	// RCATriggerGrace delays the RCA task so late custom-field events
	// (runbook links) can land before the agent reads incident metadata.
	RCATriggerGrace time.Duration `yaml:"rca_trigger_grace"`

	// WebhookReplayWindow rejects signed payloads older than this.
	WebhookReplayWindow time.Duration `yaml:"webhook_replay_window"`

	// SigningSecrets maps source name → webhook signing secret.
	SigningSecrets map[string]string `yaml:"signing_secrets"`

	// AutomationEnabledDefault is used when a tenant has no explicit preference.
	AutomationEnabledDefault bool `yaml:"automation_enabled_default"`
}

// RunbookConfig configures runbook fetching.
type RunbookConfig struct {
	AllowedDomains []string      `yaml:"allowed_domains"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
	GitHubToken    string        `yaml:"github_token"`
}

// SlackConfig configures outbound Slack notifications.
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	Channel  string `yaml:"channel"`
}

// SecretsConfig configures the secret store client.
type SecretsConfig struct {
	// Addr is the base URL of the KV secret service.
	Addr string `yaml:"addr"`

	// Token authenticates Aurora to the secret service.
	Token string `yaml:"token"`

	// CacheTTL bounds how long a fetched credential is reused without re-read.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// RetentionConfig bounds how long transient rows are kept. The events table
// is a catch-up buffer and the task table a work log; neither is an audit
// trail.
type RetentionConfig struct {
	// EventTTL is how long persisted catch-up events live.
	EventTTL time.Duration `yaml:"event_ttl"`

	// TaskRetention is how long finished queue tasks live.
	TaskRetention time.Duration `yaml:"task_retention"`

	// Interval is how often the retention janitor runs.
	Interval time.Duration `yaml:"interval"`
}

// Load reads, expands, parses, and defaults the configuration file.
// A missing file is not an error — defaults plus environment apply.
func Load(configDir string) (*Config, error) {
	cfg := defaultConfig()

	path := filepath.Join(configDir, "aurora.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(ExpandEnv(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Queue: DefaultQueueConfig(),
	}
}

// applyDefaults fills zero values with built-in defaults.
func (c *Config) applyDefaults() {
	if c.Queue == nil {
		c.Queue = DefaultQueueConfig()
	}
	if c.Server.WSWriteTimeout <= 0 {
		c.Server.WSWriteTimeout = 10 * time.Second
	}
	if c.Server.WSRateLimit <= 0 {
		c.Server.WSRateLimit = 5
	}
	if c.Server.WSRateBurst <= 0 {
		c.Server.WSRateBurst = 10
	}
	if c.Workflow.TurnTimeout <= 0 {
		c.Workflow.TurnTimeout = 30 * time.Minute
	}
	if c.Workflow.MaxIterations <= 0 {
		c.Workflow.MaxIterations = 30
	}
	if c.Workflow.MaxMessageTokens <= 0 {
		c.Workflow.MaxMessageTokens = 20000
	}
	if c.Workflow.CancelDrainTimeout <= 0 {
		c.Workflow.CancelDrainTimeout = 30 * time.Second
	}
	if c.Workflow.CancelDrainPoll <= 0 {
		c.Workflow.CancelDrainPoll = 500 * time.Millisecond
	}
	if c.Ingest.CorrelationWindow <= 0 {
		c.Ingest.CorrelationWindow = 30 * time.Minute
	}
	if c.Ingest.RCATriggerGrace <= 0 {
		c.Ingest.RCATriggerGrace = 5 * time.Second
	}
	if c.Ingest.WebhookReplayWindow <= 0 {
		c.Ingest.WebhookReplayWindow = 5 * time.Minute
	}
	if c.Runbook.CacheTTL <= 0 {
		c.Runbook.CacheTTL = time.Minute
	}
	if c.Secrets.CacheTTL <= 0 {
		c.Secrets.CacheTTL = 5 * time.Minute
	}
	if c.Retention.EventTTL <= 0 {
		c.Retention.EventTTL = 24 * time.Hour
	}
	if c.Retention.TaskRetention <= 0 {
		c.Retention.TaskRetention = 7 * 24 * time.Hour
	}
	if c.Retention.Interval <= 0 {
		c.Retention.Interval = time.Hour
	}
	c.LLM.applyDefaults()
}
