package rediscache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Requiere un Redis real: REDIS_TEST_ADDR=localhost:6379 go test ./...
func TestCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	ctx := context.Background()
	c := New(Options{Addr: addr, DB: 15})
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, c.Ping(ctx))

	key := "test:" + time.Now().Format(time.RFC3339Nano)

	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, key, []byte(`[{"animal_id":"JSM-001"}]`), time.Minute))

	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `[{"animal_id":"JSM-001"}]`, string(got))
}

func TestCache_GetFailsWhenUnreachable(t *testing.T) {
	c := New(Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok, err := c.Get(ctx, "anything")
	require.Error(t, err)
	require.False(t, ok)
}
