package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisBlacklist(t *testing.T) (*RedisTokenBlacklist, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisTokenBlacklistWithClient(client), mr
}

func TestRedisTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	blacklist, mr := newTestRedisBlacklist(t)

	t.Run("unknown jti is not blacklisted", func(t *testing.T) {
		blacklisted, err := blacklist.IsBlacklisted(ctx, "unknown")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("added jti is blacklisted", func(t *testing.T) {
		require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-1", time.Minute))

		blacklisted, err := blacklist.IsBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("entry expires with ttl", func(t *testing.T) {
		require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-2", time.Second))
		mr.FastForward(2 * time.Second)

		blacklisted, err := blacklist.IsBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("non-positive ttl is a no-op", func(t *testing.T) {
		require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-3", 0))

		blacklisted, err := blacklist.IsBlacklisted(ctx, "jti-3")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})
}

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	blacklist := NewInMemoryTokenBlacklist()

	t.Run("add and check", func(t *testing.T) {
		require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-1", time.Minute))

		blacklisted, err := blacklist.IsBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("expired entry is pruned", func(t *testing.T) {
		require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-2", time.Nanosecond))
		time.Sleep(10 * time.Millisecond)

		blacklisted, err := blacklist.IsBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("unknown jti", func(t *testing.T) {
		blacklisted, err := blacklist.IsBlacklisted(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})
}
