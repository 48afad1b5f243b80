package secrets

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingBackend struct {
	*MemoryBackend
	reads atomic.Int64
	gate  chan struct{}
}

func (c *countingBackend) Read(ctx context.Context, path string) (map[string]any, error) {
	c.reads.Add(1)
	if c.gate != nil {
		<-c.gate
	}
	return c.MemoryBackend.Read(ctx, path)
}

func TestReadCachesUntilExpiry(t *testing.T) {
	backend := &countingBackend{MemoryBackend: NewMemoryBackend()}
	require.NoError(t, backend.Write(context.Background(),
		"users/u1/providers/gcp", map[string]any{"token": "tok-1"}))

	c := NewClient(backend, time.Hour)
	for i := 0; i < 5; i++ {
		values, err := c.Read(context.Background(), "u1", "gcp")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", values["token"])
	}
	assert.Equal(t, int64(1), backend.reads.Load())
}

func TestExpiryHintForcesRefresh(t *testing.T) {
	backend := &countingBackend{MemoryBackend: NewMemoryBackend()}
	require.NoError(t, backend.Write(context.Background(),
		"users/u1/providers/aws", map[string]any{
			"token":      "tok-1",
			"expires_at": time.Now().Add(-time.Minute).Format(time.RFC3339),
		}))

	c := NewClient(backend, time.Hour)
	_, err := c.Read(context.Background(), "u1", "aws")
	require.NoError(t, err)
	_, err = c.Read(context.Background(), "u1", "aws")
	require.NoError(t, err)
	assert.Equal(t, int64(2), backend.reads.Load(), "expired entries must re-read the backend")
}

func TestConcurrentReadsSingleFlighted(t *testing.T) {
	backend := &countingBackend{
		MemoryBackend: NewMemoryBackend(),
		gate:          make(chan struct{}),
	}
	require.NoError(t, backend.MemoryBackend.Write(context.Background(),
		"users/u1/providers/gcp", map[string]any{"token": "tok-1"}))

	c := NewClient(backend, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Read(context.Background(), "u1", "gcp")
			assert.NoError(t, err)
		}()
	}
	// Let the goroutines pile up behind the gate, then release.
	time.Sleep(20 * time.Millisecond)
	close(backend.gate)
	wg.Wait()

	assert.Equal(t, int64(1), backend.reads.Load(), "one flight per path")
}

func TestWriteInvalidatesCache(t *testing.T) {
	backend := &countingBackend{MemoryBackend: NewMemoryBackend()}
	require.NoError(t, backend.MemoryBackend.Write(context.Background(),
		"users/u1/providers/gcp", map[string]any{"token": "tok-1"}))

	c := NewClient(backend, time.Hour)
	_, err := c.Read(context.Background(), "u1", "gcp")
	require.NoError(t, err)

	require.NoError(t, c.Write(context.Background(), "u1", "gcp", map[string]any{"token": "tok-2"}))
	values, err := c.Read(context.Background(), "u1", "gcp")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", values["token"])
}

func TestGetSplitsProviderAndField(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Write(context.Background(),
		"users/u1/providers/bitbucket", map[string]any{"token": "bb-tok"}))

	c := NewClient(backend, time.Hour)
	v, err := c.Get(context.Background(), "u1", "bitbucket_token")
	require.NoError(t, err)
	assert.Equal(t, "bb-tok", v)

	_, err = c.Get(context.Background(), "u1", "bitbucket_password")
	assert.Error(t, err)
}
