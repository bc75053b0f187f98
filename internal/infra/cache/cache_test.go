package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(func() time.Time { return now })

	_, ok, err := c.Get(ctx, "BST-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "BST-1", "Bestop", time.Minute))
	require.NoError(t, c.Set(ctx, "UNKNOWN", "", time.Minute))
	require.NoError(t, c.Set(ctx, "FOREVER", "Omix", 0))

	brand, ok, err := c.Get(ctx, "BST-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Bestop", brand)

	// An empty brand is a cached answer
	brand, ok, err = c.Get(ctx, "UNKNOWN")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, brand)

	now = now.Add(time.Minute)
	_, ok, err = c.Get(ctx, "BST-1")
	require.NoError(t, err)
	assert.False(t, ok)

	brand, ok, err = c.Get(ctx, "FOREVER")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Omix", brand)
}

// fakeRedis answers Get and Set from a map. Other commands are not used by the cache.
type fakeRedis struct {
	redis.Cmdable

	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = value.(string)
	f.ttls[key] = expiration

	return redis.NewStatusResult("OK", nil)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	client := &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
	c := NewRedisCache(client)

	_, ok, err := c.Get(ctx, "BST-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "BST-1", "Bestop", time.Hour))
	assert.Equal(t, "Bestop", client.values["backoffice:brand:BST-1"])
	assert.Equal(t, time.Hour, client.ttls["backoffice:brand:BST-1"])

	brand, ok, err := c.Get(ctx, "BST-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Bestop", brand)

	client.err = errors.New("connection refused")
	_, _, err = c.Get(ctx, "BST-1")
	assert.Error(t, err)
	assert.Error(t, c.Set(ctx, "BST-1", "Bestop", time.Hour))
}
