package redis

import (
	"context"
	"testing"

	"agentpay-gateway/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *goredis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
}

func TestWebhookStore_PutGetDelete(t *testing.T) {
	store := NewWebhookStore(newTestClient(t))
	ctx := context.Background()

	got, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)

	sub := &domain.WebhookSubscription{
		AgentName: "alice",
		URL:       "https://example.com/hook",
		Secret:    "deadbeef",
		Events:    []string{domain.EventPaymentReceived, domain.EventInvoicePaid},
		CreatedAt: 1_700_000_000,
	}
	require.NoError(t, store.Put(ctx, sub))

	got, err = store.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *sub, *got)

	deleted, err := store.Delete(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestWebhookStore_SecretSurvivesRoundTrip(t *testing.T) {
	// The domain type hides the secret from JSON; the store must not.
	store := NewWebhookStore(newTestClient(t))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &domain.WebhookSubscription{
		AgentName: "alice",
		URL:       "https://example.com/hook",
		Secret:    "supersecret",
	}))

	got, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "supersecret", got.Secret)
}

func TestWebhookStore_UpsertReplaces(t *testing.T) {
	store := NewWebhookStore(newTestClient(t))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &domain.WebhookSubscription{AgentName: "alice", URL: "a", Secret: "1"}))
	require.NoError(t, store.Put(ctx, &domain.WebhookSubscription{AgentName: "alice", URL: "b", Secret: "2"}))

	got, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "b", got.URL)
	assert.Equal(t, "2", got.Secret)
}
