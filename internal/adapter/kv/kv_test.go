package kv

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-ads/internal/config/configs"
	"jobboard-ads/internal/core/port"
)

func exerciseStore(t *testing.T, s port.KeyValueStore) {
	t.Helper()
	ctx := context.Background()
	key := "test:" + uuid.NewString()

	_, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, key, `{"version":2}`))
	v, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"version":2}`, v)

	require.NoError(t, s.Set(ctx, key, "replaced"))
	v, _, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "replaced", v)

	require.NoError(t, s.Delete(ctx, key))
	_, ok, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Delete(ctx, key))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory(0))
}

func TestMemoryStoreEntryLimit(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(1)
	assert.Equal(t, 512, m.MaxEntrySize())

	require.NoError(t, m.Set(ctx, "small", strings.Repeat("x", 100)))

	err := m.Set(ctx, "large", strings.Repeat("x", 4096))
	require.ErrorIs(t, err, freecache.ErrLargeEntry)
	assert.Contains(t, err.Error(), "CACHE_MEMORY_SIZE")
}

// TestRedisStore runs against a live Redis when TEST_REDIS_ADDRESS is set.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDRESS")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDRESS not set")
	}
	s, err := NewRedis(context.Background(), configs.Redis{Addr: addr, KeyPrefix: "jobboard-ads-test:"})
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}
