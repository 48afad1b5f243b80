package llm

import (
	"strings"

	"github.com/aurora-sre/aurora/pkg/config"
)

// canonical "provider/model" → per-vendor native names. Aliases (hyphen or
// dot variants published by gateways) map onto the same row.
type nameEntry struct {
	anthropic  string
	openai     string
	google     string
	openrouter string
}

var nameTable = map[string]nameEntry{
	"anthropic/claude-sonnet-4": {
		anthropic:  "claude-sonnet-4-20250514",
		openrouter: "anthropic/claude-sonnet-4",
	},
	"anthropic/claude-opus-4": {
		anthropic:  "claude-opus-4-20250514",
		openrouter: "anthropic/claude-opus-4",
	},
	"anthropic/claude-3.5-haiku": {
		anthropic:  "claude-3-5-haiku-latest",
		openrouter: "anthropic/claude-3.5-haiku",
	},
	"openai/gpt-4o": {
		openai:     "gpt-4o",
		openrouter: "openai/gpt-4o",
	},
	"openai/gpt-4o-mini": {
		openai:     "gpt-4o-mini",
		openrouter: "openai/gpt-4o-mini",
	},
	"openai/o3-mini": {
		openai:     "o3-mini",
		openrouter: "openai/o3-mini",
	},
	"google/gemini-2.5-pro": {
		google:     "gemini-2.5-pro",
		openrouter: "google/gemini-2.5-pro",
	},
	"google/gemini-2.5-flash": {
		google:     "gemini-2.5-flash",
		openrouter: "google/gemini-2.5-flash",
	},
}

var nameAliases = map[string]string{
	"anthropic/claude-3-5-haiku": "anthropic/claude-3.5-haiku",
	"anthropic/claude-sonnet-4.0": "anthropic/claude-sonnet-4",
	"google/gemini-2-5-pro":       "google/gemini-2.5-pro",
	"google/gemini-2-5-flash":     "google/gemini-2.5-flash",
}

// Canonicalize resolves aliases to the canonical "provider/model" form.
// Unknown names pass through unchanged.
func Canonicalize(model string) string {
	if canonical, ok := nameAliases[model]; ok {
		return canonical
	}
	return model
}

// ProviderFor returns the provider prefix of a canonical model name, or ""
// when the name has no prefix.
func ProviderFor(model string) string {
	prefix, _, ok := strings.Cut(Canonicalize(model), "/")
	if !ok {
		return ""
	}
	return prefix
}

// NativeName translates a canonical model name to the target provider's
// native identifier. Unknown models pass through so that newly released
// models work without a table update.
func NativeName(model, targetProvider string) string {
	canonical := Canonicalize(model)
	entry, ok := nameTable[canonical]
	if !ok {
		if targetProvider == config.ProviderOpenRouter {
			return canonical
		}
		_, bare, found := strings.Cut(canonical, "/")
		if found {
			return bare
		}
		return canonical
	}
	switch targetProvider {
	case config.ProviderAnthropic:
		if entry.anthropic != "" {
			return entry.anthropic
		}
	case config.ProviderOpenAI:
		if entry.openai != "" {
			return entry.openai
		}
	case config.ProviderGoogle:
		if entry.google != "" {
			return entry.google
		}
	case config.ProviderOpenRouter:
		if entry.openrouter != "" {
			return entry.openrouter
		}
	}
	return canonical
}
