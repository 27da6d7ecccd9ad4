package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// Webhook delivery headers.
const (
	HeaderSignature = "X-AgentPay-Signature"
	HeaderEvent     = "X-AgentPay-Event"
)

// webhookSecretBytes is the entropy of a registration secret (hex-encoded on
// return, shown exactly once).
const webhookSecretBytes = 32

// WebhookPayload is the JSON body POSTed to a registered URL.
type WebhookPayload struct {
	Event     string                 `json:"event"`
	Agent     string                 `json:"agent"`
	Timestamp int64                  `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookServiceImpl implements ports.WebhookService. Delivery is strictly
// best-effort: one attempt, bounded timeout, failures logged and swallowed.
type WebhookServiceImpl struct {
	store      ports.WebhookStore
	httpClient HTTPClient
	timeout    time.Duration
	log        zerolog.Logger
	now        func() int64
}

// NewWebhookService creates a new WebhookServiceImpl.
func NewWebhookService(store ports.WebhookStore, httpClient HTTPClient, timeout time.Duration, log zerolog.Logger) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		store:      store,
		httpClient: httpClient,
		timeout:    timeout,
		log:        log,
		now:        func() int64 { return time.Now().Unix() },
	}
}

func validWebhookURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Register stores (or replaces) an agent's webhook registration and mints a
// fresh signing secret. The secret is returned here and never again.
func (s *WebhookServiceImpl) Register(ctx context.Context, agentName, rawURL string, events []string) (*ports.RegisteredWebhook, error) {
	if !domain.ValidName(agentName) {
		return nil, apperror.ErrInvalidName()
	}
	if !validWebhookURL(rawURL) {
		return nil, apperror.Validation("Webhook URL must be a valid http(s) URL")
	}
	if len(events) == 0 {
		return nil, apperror.Validation("At least one event is required")
	}
	for _, e := range events {
		if !domain.ValidEvent(e) {
			return nil, apperror.ErrInvalidEvent(e)
		}
	}

	secret := make([]byte, webhookSecretBytes)
	if _, err := rand.Read(secret); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generating webhook secret: %w", err))
	}
	sub := &domain.WebhookSubscription{
		AgentName: agentName,
		URL:       rawURL,
		Secret:    hex.EncodeToString(secret),
		Events:    events,
		CreatedAt: s.now(),
	}
	if err := s.store.Put(ctx, sub); err != nil {
		return nil, apperror.InternalError(err)
	}
	s.log.Info().Str("agent", agentName).Str("url", rawURL).Strs("events", events).Msg("webhook registered")
	return &ports.RegisteredWebhook{Subscription: *sub, Secret: sub.Secret}, nil
}

// Get returns an agent's registration, without the secret.
func (s *WebhookServiceImpl) Get(ctx context.Context, agentName string) (*domain.WebhookSubscription, error) {
	sub, err := s.store.Get(ctx, agentName)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if sub == nil {
		return nil, apperror.ErrNotFound("Webhook")
	}
	return sub, nil
}

// Remove deletes an agent's registration.
func (s *WebhookServiceImpl) Remove(ctx context.Context, agentName string) error {
	deleted, err := s.store.Delete(ctx, agentName)
	if err != nil {
		return apperror.InternalError(err)
	}
	if !deleted {
		return apperror.ErrNotFound("Webhook")
	}
	s.log.Info().Str("agent", agentName).Msg("webhook removed")
	return nil
}

// Notify fires one delivery attempt in the background and returns
// immediately. Callers on the request path are never blocked and never see
// delivery errors.
func (s *WebhookServiceImpl) Notify(agentName, event string, data map[string]interface{}) {
	go s.send(ports.Notification{AgentName: agentName, Event: event, Data: data})
}

// NotifyAll fans out one concurrent delivery per notification and returns
// immediately. The deliveries are joined in the background so completion can
// be logged as one event.
func (s *WebhookServiceImpl) NotifyAll(notifications []ports.Notification) {
	go func() {
		var wg sync.WaitGroup
		for _, n := range notifications {
			wg.Add(1)
			go func(n ports.Notification) {
				defer wg.Done()
				s.send(n)
			}(n)
		}
		wg.Wait()
		s.log.Debug().Int("count", len(notifications)).Msg("webhook batch settled")
	}()
}

// send performs one complete delivery: registration lookup, event filter,
// HMAC signing, single POST. Every failure path logs and returns.
func (s *WebhookServiceImpl) send(n ports.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	sub, err := s.store.Get(ctx, n.AgentName)
	if err != nil {
		s.log.Warn().Err(err).Str("agent", n.AgentName).Msg("webhook: registration lookup failed")
		return
	}
	if sub == nil || !sub.Subscribed(n.Event) {
		return
	}

	body, err := json.Marshal(WebhookPayload{
		Event:     n.Event,
		Agent:     n.AgentName,
		Timestamp: s.now(),
		Data:      n.Data,
	})
	if err != nil {
		s.log.Error().Err(err).Str("agent", n.AgentName).Msg("webhook: failed to marshal payload")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.URL, bytes.NewReader(body))
	if err != nil {
		s.log.Error().Err(err).Str("agent", n.AgentName).Msg("webhook: failed to create request")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSignature, signPayload(sub.Secret, body))
	req.Header.Set(HeaderEvent, n.Event)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Warn().Err(apperror.ErrDelivery(err)).Str("agent", n.AgentName).Str("event", n.Event).Msg("webhook: delivery failed")
		return
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.log.Warn().Str("agent", n.AgentName).Str("event", n.Event).Int("status", resp.StatusCode).Msg("webhook: non-2xx response")
		return
	}
	s.log.Info().Str("agent", n.AgentName).Str("event", n.Event).Int("status", resp.StatusCode).Msg("webhook: delivered")
}

// signPayload computes the hex HMAC-SHA256 of the body under the
// registration secret.
func signPayload(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
