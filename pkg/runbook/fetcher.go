package runbook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const maxRunbookBytes = 512 * 1024

// Fetcher downloads runbook content with TTL caching. Fetches are best
// effort: the incident pipeline treats a failed runbook fetch as a missing
// runbook, never as a failed RCA.
type Fetcher struct {
	httpClient     *http.Client
	token          string
	allowedDomains []string
	ttl            time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	content   string
	fetchedAt time.Time
}

// Config for the fetcher. Token authenticates raw GitHub reads; empty means
// public content only.
type Config struct {
	Token          string
	AllowedDomains []string
	CacheTTL       time.Duration
	Timeout        time.Duration
}

func NewFetcher(cfg Config) *Fetcher {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Fetcher{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		token:          cfg.Token,
		allowedDomains: cfg.AllowedDomains,
		ttl:            cfg.CacheTTL,
		cache:          make(map[string]cacheEntry),
	}
}

// Fetch returns the content at url, serving from cache when a fresh copy
// exists. The cache key is the normalized URL so blob and raw forms of the
// same document share an entry.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := ValidateURL(rawURL, f.allowedDomains); err != nil {
		return "", err
	}
	target := NormalizeURL(rawURL)

	if content, ok := f.cached(target); ok {
		return content, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch runbook from %s: %w", target, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("runbook fetch returned HTTP %d for %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRunbookBytes))
	if err != nil {
		return "", fmt.Errorf("read runbook body: %w", err)
	}

	content := string(body)
	f.store(target, content)
	return content, nil
}

func (f *Fetcher) cached(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.cache[key]
	if !ok {
		return "", false
	}
	if time.Since(entry.fetchedAt) > f.ttl {
		delete(f.cache, key)
		return "", false
	}
	return entry.content, true
}

func (f *Fetcher) store(key, content string) {
	f.mu.Lock()
	f.cache[key] = cacheEntry{content: content, fetchedAt: time.Now()}
	f.mu.Unlock()
}

// OverrideHTTPClientForTest replaces the HTTP client. For testing only.
func (f *Fetcher) OverrideHTTPClientForTest(c *http.Client) {
	f.httpClient = c
}
