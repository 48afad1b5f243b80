package config

import (
	"os"
	"time"
)

// ProviderMode selects how model requests are routed.
type ProviderMode string

// Provider modes.
const (
	// ModeDirect routes each canonical model name to its own vendor SDK.
	ModeDirect ProviderMode = "direct"
	// ModeOpenRouter routes everything through the OpenRouter gateway.
	ModeOpenRouter ProviderMode = "openrouter"
	// ModeAuto behaves like direct.
	ModeAuto ProviderMode = "auto"
)

// Provider identifiers.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGoogle     = "google"
	ProviderOpenRouter = "openrouter"
)

// Environment variables holding per-provider API keys. Missing-credential
// errors name these so the user knows exactly what to configure.
const (
	EnvAnthropicAPIKey  = "ANTHROPIC_API_KEY"
	EnvOpenAIAPIKey     = "OPENAI_API_KEY"
	EnvGoogleAPIKey     = "GOOGLE_API_KEY"
	EnvOpenRouterAPIKey = "OPENROUTER_API_KEY"
)

// LLMConfig configures the model provider registry.
type LLMConfig struct {
	// Mode is the routing mode: direct (default) or openrouter.
	Mode ProviderMode `yaml:"mode"`

	// DefaultModel is the canonical "vendor/model" used when a turn names none.
	DefaultModel string `yaml:"default_model"`

	// Temperature applies to all chat calls unless overridden per turn.
	Temperature float32 `yaml:"temperature"`

	// RequestTimeout bounds a single streaming call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxRetries is the per-call retry budget for transient vendor errors.
	MaxRetries int `yaml:"max_retries"`

	// DisableThinking turns off reasoning mode for thinking-capable models.
	DisableThinking bool `yaml:"disable_thinking"`
}

func (c *LLMConfig) applyDefaults() {
	if c.Mode == "" {
		c.Mode = ModeDirect
	}
	if c.DefaultModel == "" {
		c.DefaultModel = "anthropic/claude-sonnet-4"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.2
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Minute
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
}

// APIKey returns the API key for a provider from the environment.
func APIKey(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return os.Getenv(EnvAnthropicAPIKey)
	case ProviderOpenAI:
		return os.Getenv(EnvOpenAIAPIKey)
	case ProviderGoogle:
		return os.Getenv(EnvGoogleAPIKey)
	case ProviderOpenRouter:
		return os.Getenv(EnvOpenRouterAPIKey)
	}
	return ""
}

// KeyEnvVar returns the environment variable name holding a provider's API key.
func KeyEnvVar(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return EnvAnthropicAPIKey
	case ProviderOpenAI:
		return EnvOpenAIAPIKey
	case ProviderGoogle:
		return EnvGoogleAPIKey
	case ProviderOpenRouter:
		return EnvOpenRouterAPIKey
	}
	return ""
}
