package correlate

import (
	"regexp"
	"strings"
)

// Volatile tokens stripped from alert titles before comparison. Two alerts
// about the same failure usually differ only in these.
var volatilePatterns = []*regexp.Regexp{
	// ISO-ish timestamps
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}(:\d{2})?(\.\d+)?(Z|[+-]\d{2}:?\d{2})?`),
	// UUIDs
	regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`),
	// IPv4 addresses
	regexp.MustCompile(`\b\d{1,3}(\.\d{1,3}){3}\b`),
	// long hex runs (container ids, hashes)
	regexp.MustCompile(`\b[0-9a-fA-F]{12,}\b`),
	// base64-looking blobs
	regexp.MustCompile(`\b[A-Za-z0-9+/]{24,}={0,2}\b`),
	// long digit runs (epoch seconds, build numbers)
	regexp.MustCompile(`\b\d{6,}\b`),
}

var whitespace = regexp.MustCompile(`\s+`)

// Fingerprint normalizes an alert title for correlation: volatile tokens are
// stripped, whitespace collapsed, case folded.
func Fingerprint(title string) string {
	s := title
	for _, p := range volatilePatterns {
		s = p.ReplaceAllString(s, "")
	}
	s = whitespace.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}
