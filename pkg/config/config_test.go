package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Server.WSWriteTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Workflow.TurnTimeout)
	assert.Equal(t, 5*time.Second, cfg.Ingest.RCATriggerGrace)
	assert.Equal(t, 30*time.Minute, cfg.Ingest.CorrelationWindow)
	assert.Equal(t, 24*time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention.TaskRetention)
	assert.Equal(t, time.Hour, cfg.Retention.Interval)
	require.NotNil(t, cfg.Queue)
	assert.Greater(t, cfg.Queue.WorkerCount, 0)
	assert.Equal(t, ModeDirect, cfg.LLM.Mode)
}

func TestLoad_ParsesYAMLAndKeepsDefaultsForOmitted(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  ws_write_timeout: 3s
ingest:
  rca_trigger_grace: 12s
  signing_secrets:
    grafana: whsec_abc
slack:
  enabled: true
  channel: "#incidents"
retention:
  event_ttl: 48h
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aurora.yaml"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Server.WSWriteTimeout)
	assert.Equal(t, 12*time.Second, cfg.Ingest.RCATriggerGrace)
	assert.Equal(t, "whsec_abc", cfg.Ingest.SigningSecrets["grafana"])
	assert.True(t, cfg.Slack.Enabled)
	assert.Equal(t, "#incidents", cfg.Slack.Channel)
	assert.Equal(t, 48*time.Hour, cfg.Retention.EventTTL)
	// Omitted fields still get defaults.
	assert.Equal(t, 30*time.Minute, cfg.Workflow.TurnTimeout)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention.TaskRetention)
}

func TestLoad_ExpandsEnvTemplates(t *testing.T) {
	t.Setenv("WEBHOOK_SECRET_PD", "whsec_from_env")

	dir := t.TempDir()
	content := `
ingest:
  signing_secrets:
    pagerduty: "{{.WEBHOOK_SECRET_PD}}"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aurora.yaml"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "whsec_from_env", cfg.Ingest.SigningSecrets["pagerduty"])
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aurora.yaml"), []byte("server: ["), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestExpandEnv_LiteralDollarSignsSurvive(t *testing.T) {
	in := []byte(`pattern: "^\\$[0-9]+$"`)
	assert.Equal(t, in, ExpandEnv(in))
}

func TestExpandEnv_MissingVariableExpandsEmpty(t *testing.T) {
	out := ExpandEnv([]byte(`token: "{{.AURORA_TEST_UNSET_VAR}}"`))
	assert.Equal(t, `token: ""`, string(out))
}
