package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWebhookService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockWebhookStore(ctrl)
	svc := NewWebhookService(mockStore, http.DefaultClient, 5*time.Second, zerolog.Nop())

	var stored *domain.WebhookSubscription
	mockStore.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sub *domain.WebhookSubscription) error {
			stored = sub
			return nil
		})

	reg, err := svc.Register(context.Background(), "alice", "https://example.com/hook", []string{domain.EventPaymentReceived})
	require.NoError(t, err)
	require.NotNil(t, stored)

	// 32 bytes of entropy, hex encoded, surfaced exactly once.
	assert.Len(t, reg.Secret, 64)
	assert.Equal(t, stored.Secret, reg.Secret)

	raw, err := json.Marshal(reg.Subscription)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), reg.Secret)
}

func TestWebhookService_Register_RotatesSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		mu      sync.Mutex
		gotBody []byte
		gotSig  string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotBody = body
		gotSig = r.Header.Get(HeaderSignature)
		mu.Unlock()
	}))
	defer srv.Close()

	mockStore := mocks.NewMockWebhookStore(ctrl)
	svc := NewWebhookService(mockStore, http.DefaultClient, 5*time.Second, zerolog.Nop())

	var stored []*domain.WebhookSubscription
	mockStore.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sub *domain.WebhookSubscription) error {
			stored = append(stored, sub)
			return nil
		}).Times(2)

	first, err := svc.Register(context.Background(), "alice", srv.URL, []string{domain.EventPaymentReceived})
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), "alice", srv.URL, []string{domain.EventPaymentReceived})
	require.NoError(t, err)

	// Re-registration replaces the stored record and mints a fresh secret.
	require.Len(t, stored, 2)
	assert.NotEqual(t, first.Secret, second.Secret)
	assert.Equal(t, second.Secret, stored[1].Secret)

	// Deliveries after the rotation are signed with the new secret only.
	mockStore.EXPECT().Get(gomock.Any(), "alice").Return(stored[1], nil)
	svc.send(ports.Notification{AgentName: "alice", Event: domain.EventPaymentReceived})

	mu.Lock()
	defer mu.Unlock()
	mac := hmac.New(sha256.New, []byte(second.Secret))
	mac.Write(gotBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSig)

	old := hmac.New(sha256.New, []byte(first.Secret))
	old.Write(gotBody)
	assert.NotEqual(t, hex.EncodeToString(old.Sum(nil)), gotSig)
}

func TestWebhookService_Register_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewWebhookService(mocks.NewMockWebhookStore(ctrl), http.DefaultClient, 5*time.Second, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "ftp://example.com", []string{domain.EventPaymentReceived})
	assertAppCode(t, err, "VAL_001")

	_, err = svc.Register(ctx, "alice", "https://example.com/hook", nil)
	assertAppCode(t, err, "VAL_001")

	_, err = svc.Register(ctx, "alice", "https://example.com/hook", []string{"asteroid_strike"})
	assertAppCode(t, err, "VAL_008")
}

func TestWebhookService_GetAndRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockWebhookStore(ctrl)
	svc := NewWebhookService(mockStore, http.DefaultClient, 5*time.Second, zerolog.Nop())
	ctx := context.Background()

	mockStore.EXPECT().Get(gomock.Any(), "alice").Return(&domain.WebhookSubscription{AgentName: "alice"}, nil)
	sub, err := svc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", sub.AgentName)

	mockStore.EXPECT().Get(gomock.Any(), "ghost").Return(nil, nil)
	_, err = svc.Get(ctx, "ghost")
	assertAppCode(t, err, "ENT_001")

	mockStore.EXPECT().Delete(gomock.Any(), "alice").Return(true, nil)
	assert.NoError(t, svc.Remove(ctx, "alice"))

	mockStore.EXPECT().Delete(gomock.Any(), "ghost").Return(false, nil)
	assertAppCode(t, svc.Remove(ctx, "ghost"), "ENT_001")
}

func TestWebhookService_Send_SignsAndDelivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		mu       sync.Mutex
		gotBody  []byte
		gotSig   string
		gotEvent string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotBody = body
		gotSig = r.Header.Get(HeaderSignature)
		gotEvent = r.Header.Get(HeaderEvent)
		mu.Unlock()
	}))
	defer srv.Close()

	mockStore := mocks.NewMockWebhookStore(ctrl)
	svc := NewWebhookService(mockStore, http.DefaultClient, 5*time.Second, zerolog.Nop())
	svc.now = func() int64 { return 1_700_000_000 }

	secret := "a1b2c3"
	mockStore.EXPECT().Get(gomock.Any(), "alice").Return(&domain.WebhookSubscription{
		AgentName: "alice",
		URL:       srv.URL,
		Secret:    secret,
		Events:    []string{domain.EventPaymentReceived},
	}, nil)

	svc.send(ports.Notification{
		AgentName: "alice",
		Event:     domain.EventPaymentReceived,
		Data:      map[string]interface{}{"amount": 5.0, "from": "bob"},
	})

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, domain.EventPaymentReceived, gotEvent)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(gotBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSig)

	var payload WebhookPayload
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "alice", payload.Agent)
	assert.Equal(t, int64(1_700_000_000), payload.Timestamp)
	assert.Equal(t, "bob", payload.Data["from"])
}

func TestWebhookService_Send_SkipsUnsubscribedEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	delivered := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivered = true
	}))
	defer srv.Close()

	mockStore := mocks.NewMockWebhookStore(ctrl)
	svc := NewWebhookService(mockStore, http.DefaultClient, 5*time.Second, zerolog.Nop())

	mockStore.EXPECT().Get(gomock.Any(), "alice").Return(&domain.WebhookSubscription{
		AgentName: "alice",
		URL:       srv.URL,
		Events:    []string{domain.EventInvoicePaid},
	}, nil)

	svc.send(ports.Notification{AgentName: "alice", Event: domain.EventPaymentReceived})
	assert.False(t, delivered)
}

func TestWebhookService_Send_SwallowsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockWebhookStore(ctrl)
	svc := NewWebhookService(mockStore, http.DefaultClient, 100*time.Millisecond, zerolog.Nop())

	// Lookup failure: nothing escapes.
	mockStore.EXPECT().Get(gomock.Any(), "alice").Return(nil, errors.New("store down"))
	svc.send(ports.Notification{AgentName: "alice", Event: domain.EventPaymentReceived})

	// Unreachable endpoint: nothing escapes either.
	mockStore.EXPECT().Get(gomock.Any(), "alice").Return(&domain.WebhookSubscription{
		AgentName: "alice",
		URL:       "http://127.0.0.1:1",
		Secret:    "s",
		Events:    []string{domain.EventPaymentReceived},
	}, nil)
	svc.send(ports.Notification{AgentName: "alice", Event: domain.EventPaymentReceived})
}

func TestWebhookService_NotifyAll_FansOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		mu   sync.Mutex
		seen = map[string]int{}
		done = make(chan struct{}, 2)
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen[r.Header.Get(HeaderEvent)]++
		mu.Unlock()
		done <- struct{}{}
	}))
	defer srv.Close()

	mockStore := mocks.NewMockWebhookStore(ctrl)
	svc := NewWebhookService(mockStore, http.DefaultClient, 5*time.Second, zerolog.Nop())

	sub := &domain.WebhookSubscription{
		AgentName: "alice",
		URL:       srv.URL,
		Secret:    "s",
		Events:    domain.ValidEvents(),
	}
	mockStore.EXPECT().Get(gomock.Any(), "alice").Return(sub, nil).Times(2)

	svc.NotifyAll([]ports.Notification{
		{AgentName: "alice", Event: domain.EventPaymentSent},
		{AgentName: "alice", Event: domain.EventPaymentReceived},
	})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for deliveries")
		}
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, seen[domain.EventPaymentSent])
	assert.Equal(t, 1, seen[domain.EventPaymentReceived])
}
