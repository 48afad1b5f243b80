// Package secrets provides read-through cached access to per-user provider
// credentials held in an external key-value store.
package secrets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Backend is the underlying key-value store. Values are opaque maps; a
// credential entry may carry an access token plus an expiry hint.
type Backend interface {
	Read(ctx context.Context, path string) (map[string]any, error)
	Write(ctx context.Context, path string, value map[string]any) error
}

// Entry is one cached credential set.
type Entry struct {
	Values    map[string]any
	FetchedAt time.Time
	ExpiresAt time.Time // zero when the backend gave no expiry hint
}

func (e Entry) expired(now time.Time, defaultTTL time.Duration) bool {
	if !e.ExpiresAt.IsZero() {
		// Refresh slightly early so callers never hold a token that dies
		// mid-request.
		return now.After(e.ExpiresAt.Add(-30 * time.Second))
	}
	return now.Sub(e.FetchedAt) > defaultTTL
}

// Client is a read-through cache over a Backend. Refreshes for the same
// (user, provider) path are single-flighted: concurrent tool executions
// missing the cache trigger one backend read, not a stampede.
type Client struct {
	backend    Backend
	defaultTTL time.Duration

	mu    sync.RWMutex
	cache map[string]Entry
	group singleflight.Group
}

func NewClient(backend Backend, defaultTTL time.Duration) *Client {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	return &Client{
		backend:    backend,
		defaultTTL: defaultTTL,
		cache:      make(map[string]Entry),
	}
}

func credentialPath(userID, provider string) string {
	return fmt.Sprintf("users/%s/providers/%s", userID, provider)
}

// Read returns the credential set for (user, provider), refreshing from the
// backend when the cached entry is absent or expired.
func (c *Client) Read(ctx context.Context, userID, provider string) (map[string]any, error) {
	path := credentialPath(userID, provider)
	now := time.Now()

	c.mu.RLock()
	entry, ok := c.cache[path]
	c.mu.RUnlock()
	if ok && !entry.expired(now, c.defaultTTL) {
		return entry.Values, nil
	}

	v, err, _ := c.group.Do(path, func() (any, error) {
		// Another flight may have refreshed while we queued.
		c.mu.RLock()
		entry, ok := c.cache[path]
		c.mu.RUnlock()
		if ok && !entry.expired(time.Now(), c.defaultTTL) {
			return entry.Values, nil
		}

		values, err := c.backend.Read(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("read credentials for %s/%s: %w", userID, provider, err)
		}
		fresh := Entry{
			Values:    values,
			FetchedAt: time.Now(),
			ExpiresAt: expiryHint(values),
		}
		c.mu.Lock()
		c.cache[path] = fresh
		c.mu.Unlock()
		return values, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

// Write stores a credential set and drops any cached copy.
func (c *Client) Write(ctx context.Context, userID, provider string, values map[string]any) error {
	path := credentialPath(userID, provider)
	if err := c.backend.Write(ctx, path, values); err != nil {
		return fmt.Errorf("write credentials for %s/%s: %w", userID, provider, err)
	}
	c.mu.Lock()
	delete(c.cache, path)
	c.mu.Unlock()
	return nil
}

// Invalidate drops the cached entry for (user, provider).
func (c *Client) Invalidate(userID, provider string) {
	c.mu.Lock()
	delete(c.cache, credentialPath(userID, provider))
	c.mu.Unlock()
}

// Get returns a single string field of a provider credential set. The
// provider is the path segment before the first underscore of key when the
// key follows the "<provider>_<field>" convention, otherwise the key names
// the provider directly.
func (c *Client) Get(ctx context.Context, userID, key string) (string, error) {
	provider, field := splitKey(key)
	values, err := c.Read(ctx, userID, provider)
	if err != nil {
		return "", err
	}
	v, ok := values[field].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("credential %s not set for user %s", key, userID)
	}
	return v, nil
}

// Warm prefetches the provider credential sets tools commonly read, so the
// first tool call of a fresh connection skips the backend round trip.
// Errors are swallowed: a missing credential surfaces when a tool asks.
func (c *Client) Warm(ctx context.Context, userID string) {
	for _, provider := range []string{"bitbucket", "jenkins"} {
		_, _ = c.Read(ctx, userID, provider)
	}
}

func splitKey(key string) (provider, field string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '_' {
			return key[:i], key[i+1:]
		}
	}
	return key, "value"
}

// expiryHint reads an expiry timestamp from a credential set. Accepts
// "expires_at" as RFC3339 or "expires_in" seconds.
func expiryHint(values map[string]any) time.Time {
	if raw, ok := values["expires_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
	}
	if secs, ok := values["expires_in"].(float64); ok && secs > 0 {
		return time.Now().Add(time.Duration(secs) * time.Second)
	}
	return time.Time{}
}
