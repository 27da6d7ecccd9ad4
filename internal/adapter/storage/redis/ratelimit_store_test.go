package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_AllowWithinLimit(t *testing.T) {
	store := NewRateLimitStore(newTestClient(t))
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		res, err := store.Allow(ctx, "client-a", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, int64(3), res.Limit)
		assert.Equal(t, 3-i, res.Remaining)
	}

	res, err := store.Allow(ctx, "client-a", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(0), res.Remaining)
}

func TestRateLimitStore_KeysAreIndependent(t *testing.T) {
	store := NewRateLimitStore(newTestClient(t))
	ctx := context.Background()

	_, err := store.Allow(ctx, "client-a", 1, time.Minute)
	require.NoError(t, err)

	res, err := store.Allow(ctx, "client-b", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRateLimitStore_ResetAtIsWindowEnd(t *testing.T) {
	store := NewRateLimitStore(newTestClient(t))

	res, err := store.Allow(context.Background(), "client-a", 5, time.Minute)
	require.NoError(t, err)
	assert.Greater(t, res.ResetAt, time.Now().Unix())
	assert.LessOrEqual(t, res.ResetAt, time.Now().Add(time.Minute+time.Second).Unix())
}
