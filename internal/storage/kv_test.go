package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	kv := NewMemoryKV(func() time.Time { return now })

	require.NoError(t, kv.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, kv.Set(ctx, "b", "2", 0))

	value, ok, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	now = now.Add(time.Minute)

	_, ok, err = kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire after its ttl")

	_, ok, err = kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok, "entry without ttl never expires")
}

func TestMemoryKV_Delete(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV(nil)

	require.NoError(t, kv.Set(ctx, "a", "1", 0))
	require.NoError(t, kv.Set(ctx, "b", "2", 0))
	require.NoError(t, kv.Delete(ctx, "a", "b", "missing"))

	_, ok, _ := kv.Get(ctx, "a")
	assert.False(t, ok)
	_, ok, _ = kv.Get(ctx, "b")
	assert.False(t, ok)
}

func TestRedisKV(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	kv := NewRedisKV(client, "outreach:")

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "session", "true", time.Minute))
	assert.True(t, server.Exists("outreach:session"))

	value, ok, err := kv.Get(ctx, "session")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)

	server.FastForward(2 * time.Minute)
	_, ok, err = kv.Get(ctx, "session")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "a", "1", 0))
	require.NoError(t, kv.Delete(ctx, "a"))
	assert.False(t, server.Exists("outreach:a"))
	require.NoError(t, kv.Delete(ctx))
}
