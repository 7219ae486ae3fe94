package ratelimiter

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisStore(rdb), mr
}

func TestRedisStore_IncrCounts(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	for want := int64(1); want <= 3; want++ {
		count, resetAt, err := store.Incr(ctx, "tool:abc", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
		assert.True(t, resetAt.After(time.Now()))
	}
}

func TestRedisStore_WindowExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	count, _, err := store.Incr(ctx, "tool:abc", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	mr.FastForward(2 * time.Minute)

	count, _, err = store.Incr(ctx, "tool:abc", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(rdb)
	mr.Close()

	_, _, err = store.Incr(context.Background(), "tool:abc", time.Minute)
	assert.Error(t, err)
}
