package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostFor(t *testing.T) {
	tests := []struct {
		name  string
		model string
		usage Usage
		want  float64
	}{
		{
			name:  "sonnet",
			model: "claude-sonnet-4-20250514",
			usage: Usage{InputTokens: 1000, OutputTokens: 2000},
			want:  0.003 + 0.030,
		},
		{
			name:  "openrouter vendor-prefixed id",
			model: "anthropic/claude-opus-4",
			usage: Usage{InputTokens: 1_000_000, OutputTokens: 0},
			want:  15,
		},
		{
			name:  "mini variant matches before the base family",
			model: "gpt-4o-mini",
			usage: Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000},
			want:  0.15 + 0.60,
		},
		{
			name:  "gemini flash",
			model: "gemini-2.5-flash",
			usage: Usage{InputTokens: 0, OutputTokens: 1_000_000},
			want:  2.50,
		},
		{
			name:  "unlisted model costs zero",
			model: "llama-3.3-70b",
			usage: Usage{InputTokens: 5000, OutputTokens: 5000},
			want:  0,
		},
		{
			name:  "no tokens no cost",
			model: "claude-sonnet-4",
			usage: Usage{},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CostFor(tt.model, tt.usage), 1e-9)
		})
	}
}
