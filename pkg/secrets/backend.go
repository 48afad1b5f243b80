package secrets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// HTTPBackend talks to a KV-v2 style secret service over HTTP. The service
// address and token come from deployment configuration.
type HTTPBackend struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewHTTPBackend(baseURL, token string) *HTTPBackend {
	return &HTTPBackend{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Client:  http.DefaultClient,
	}
}

func (b *HTTPBackend) Read(ctx context.Context, path string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.BaseURL+"/v1/secret/data/"+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Vault-Token", b.Token)

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no credentials at %s", path)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("secret store returned %d for %s", resp.StatusCode, path)
	}

	var envelope struct {
		Data struct {
			Data map[string]any `json:"data"`
		} `json:"data"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode secret at %s: %w", path, err)
	}
	return envelope.Data.Data, nil
}

func (b *HTTPBackend) Write(ctx context.Context, path string, value map[string]any) error {
	payload, err := json.Marshal(map[string]any{"data": value})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+"/v1/secret/data/"+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("X-Vault-Token", b.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("secret store returned %d writing %s", resp.StatusCode, path)
	}
	return nil
}

// MemoryBackend is an in-process Backend for tests and local development.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]map[string]any
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]map[string]any)}
}

func (m *MemoryBackend) Read(ctx context.Context, path string) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[path]
	if !ok {
		return nil, fmt.Errorf("no credentials at %s", path)
	}
	out := make(map[string]any, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out, nil
}

func (m *MemoryBackend) Write(ctx context.Context, path string, value map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make(map[string]any, len(value))
	for k, v := range value {
		copied[k] = v
	}
	m.data[path] = copied
	return nil
}
