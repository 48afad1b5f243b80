package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurora-sre/aurora/pkg/config"
)

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "anthropic/claude-3.5-haiku", Canonicalize("anthropic/claude-3-5-haiku"))
	assert.Equal(t, "google/gemini-2.5-pro", Canonicalize("google/gemini-2-5-pro"))
	assert.Equal(t, "anthropic/claude-sonnet-4", Canonicalize("anthropic/claude-sonnet-4"))
	assert.Equal(t, "something/unknown", Canonicalize("something/unknown"))
}

func TestProviderFor(t *testing.T) {
	assert.Equal(t, "anthropic", ProviderFor("anthropic/claude-sonnet-4"))
	assert.Equal(t, "google", ProviderFor("google/gemini-2-5-flash"))
	assert.Equal(t, "", ProviderFor("no-prefix-model"))
}

func TestNativeName(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-20250514", NativeName("anthropic/claude-sonnet-4", config.ProviderAnthropic))
	assert.Equal(t, "anthropic/claude-sonnet-4", NativeName("anthropic/claude-sonnet-4", config.ProviderOpenRouter))
	assert.Equal(t, "gpt-4o", NativeName("openai/gpt-4o", config.ProviderOpenAI))
	assert.Equal(t, "gemini-2.5-pro", NativeName("google/gemini-2-5-pro", config.ProviderGoogle))
}

func TestNativeNameUnknownPassesThrough(t *testing.T) {
	// Unknown models keep working without a table update.
	assert.Equal(t, "anthropic/claude-future", NativeName("anthropic/claude-future", config.ProviderOpenRouter))
	assert.Equal(t, "claude-future", NativeName("anthropic/claude-future", config.ProviderAnthropic))
}

func TestResolveDirectModeRequiresCredentials(t *testing.T) {
	t.Setenv(config.EnvAnthropicAPIKey, "")
	t.Setenv(config.EnvOpenRouterAPIKey, "")

	r := NewRegistry(config.LLMConfig{Mode: config.ModeDirect, DefaultModel: "anthropic/claude-sonnet-4"})
	_, _, err := r.Resolve("anthropic/claude-sonnet-4", config.ModeDirect, nil)
	assert.ErrorContains(t, err, config.EnvAnthropicAPIKey)
}

func TestResolveNoSilentFallback(t *testing.T) {
	// A configured gateway must not absorb direct-mode requests for an
	// unconfigured vendor.
	t.Setenv(config.EnvAnthropicAPIKey, "")
	t.Setenv(config.EnvOpenRouterAPIKey, "sk-or-test")

	r := NewRegistry(config.LLMConfig{Mode: config.ModeDirect, DefaultModel: "anthropic/claude-sonnet-4"})
	_, _, err := r.Resolve("anthropic/claude-sonnet-4", config.ModeDirect, nil)
	assert.Error(t, err)
}

func TestResolveOpenRouterMode(t *testing.T) {
	t.Setenv(config.EnvOpenRouterAPIKey, "sk-or-test")

	r := NewRegistry(config.LLMConfig{Mode: config.ModeOpenRouter, DefaultModel: "anthropic/claude-sonnet-4"})
	p, native, err := r.Resolve("anthropic/claude-sonnet-4", config.ModeOpenRouter, nil)
	assert.NoError(t, err)
	assert.Equal(t, config.ProviderOpenRouter, p.Name())
	assert.Equal(t, "anthropic/claude-sonnet-4", native)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("hi"))
	assert.Equal(t, 25, EstimateTokens(string(make([]byte, 100))))
}
