package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 11, 19, 10, 0, 0, 0, time.UTC)
	c := NewMemory()
	c.now = func() time.Time { return now }

	_, ok, err := c.Get(ctx, "catalog")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "catalog", []byte(`[]`), time.Minute))
	val, ok, err := c.Get(ctx, "catalog")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), val)

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "catalog")
	assert.False(t, ok, "entry expires after its ttl")

	require.NoError(t, c.Set(ctx, "catalog", []byte(`[1]`), 0))
	require.NoError(t, c.Delete(ctx, "catalog"))
	_, ok, _ = c.Get(ctx, "catalog")
	assert.False(t, ok)
}

func TestNewRedisCacheWithoutURI(t *testing.T) {
	c, err := NewRedisCache(context.Background(), "")
	require.NoError(t, err)
	assert.IsType(t, Noop{}, c)

	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), time.Second))
	_, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedisCacheInvalidURI(t *testing.T) {
	_, err := NewRedisCache(context.Background(), "not-a-redis-uri")
	assert.Error(t, err)
}
