// Package runbook fetches and caches runbook content linked from alert
// metadata (wiki pages, repository markdown).
package runbook

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// githubBlobTreePattern matches GitHub blob or tree URLs:
// https://github.com/{owner}/{repo}/{blob|tree}/{ref}/{path...}
var githubBlobTreePattern = regexp.MustCompile(`^/([^/]+)/([^/]+)/(blob|tree)/([^/]+)(?:/(.*))?$`)

// NormalizeURL converts GitHub blob URLs to raw content URLs so the fetch
// returns markdown instead of an HTML page. Other URLs pass through.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if parsed.Host == "raw.githubusercontent.com" {
		return rawURL
	}
	if parsed.Host != "github.com" && parsed.Host != "www.github.com" {
		return rawURL
	}
	matches := githubBlobTreePattern.FindStringSubmatch(parsed.Path)
	if matches == nil {
		return rawURL
	}
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/refs/heads/%s/%s",
		matches[1], matches[2], matches[4], matches[5])
}

// ValidateURL checks scheme and, when configured, a domain allowlist.
// Runbook links arrive from webhook payloads, so the fetcher never follows
// arbitrary schemes.
func ValidateURL(rawURL string, allowedDomains []string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid scheme %q: only http and https allowed", parsed.Scheme)
	}
	if len(allowedDomains) > 0 {
		host := strings.ToLower(parsed.Hostname())
		for _, domain := range allowedDomains {
			if host == domain || host == "www."+domain {
				return nil
			}
		}
		return fmt.Errorf("domain %q not in allowed list", host)
	}
	return nil
}
