package llm

import "strings"

// modelRate is the published USD price per million tokens for one model
// family. Matching is a substring check on the lowercased native model name,
// first match wins, so more specific entries precede their prefixes.
type modelRate struct {
	match  string
	input  float64
	output float64
}

var modelRates = []modelRate{
	// Anthropic; matches both bare names and OpenRouter "anthropic/..." ids.
	{match: "opus", input: 15, output: 75},
	{match: "sonnet", input: 3, output: 15},
	{match: "haiku", input: 0.80, output: 4},

	// OpenAI
	{match: "gpt-4o-mini", input: 0.15, output: 0.60},
	{match: "gpt-4o", input: 2.50, output: 10},
	{match: "gpt-4.1-nano", input: 0.10, output: 0.40},
	{match: "gpt-4.1-mini", input: 0.40, output: 1.60},
	{match: "gpt-4.1", input: 2, output: 8},
	{match: "o4-mini", input: 1.10, output: 4.40},
	{match: "o3", input: 2, output: 8},

	// Google
	{match: "gemini-2.5-pro", input: 1.25, output: 10},
	{match: "gemini-2.5-flash", input: 0.30, output: 2.50},
	{match: "gemini-2.0-flash", input: 0.10, output: 0.40},
}

// CostFor prices one invocation's token counts against the model's rate.
// Unlisted models cost zero; their token counts still travel on the usage
// frame so spend stays inspectable.
func CostFor(model string, u Usage) float64 {
	name := strings.ToLower(model)
	for _, r := range modelRates {
		if strings.Contains(name, r.match) {
			return float64(u.InputTokens)*r.input/1e6 + float64(u.OutputTokens)*r.output/1e6
		}
	}
	return 0
}
