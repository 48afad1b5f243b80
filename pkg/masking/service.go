// Package masking scrubs credentials from agent tool output. Structural
// maskers handle formats that need parsing (Kubernetes Secret manifests);
// regex patterns sweep up everything else.
package masking

import "log/slog"

// Scrubber applies all structural maskers and builtin patterns to a piece
// of text. Stateless after construction and safe for concurrent use.
type Scrubber struct {
	maskers  []Masker
	patterns []*Pattern
}

// NewScrubber compiles the builtin rule set.
func NewScrubber() *Scrubber {
	s := &Scrubber{
		maskers:  []Masker{&KubernetesSecretMasker{}},
		patterns: builtinPatterns(),
	}
	slog.Info("Scrubber initialized",
		"structural_maskers", len(s.maskers),
		"patterns", len(s.patterns))
	return s
}

// Scrub returns content with credential material replaced. Structural
// maskers run first so a parsed Secret manifest is masked precisely; the
// regex sweep then catches loose tokens the parsers did not claim.
func (s *Scrubber) Scrub(content string) string {
	if content == "" {
		return content
	}
	for _, m := range s.maskers {
		if m.AppliesTo(content) {
			content = m.Mask(content)
		}
	}
	for _, p := range s.patterns {
		content = p.Regex.ReplaceAllString(content, p.Replacement)
	}
	return content
}
