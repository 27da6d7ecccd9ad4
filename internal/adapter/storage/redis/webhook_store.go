package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"agentpay-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// storedWebhook is the Redis value. A separate struct because the domain
// type hides the secret from JSON and the store must keep it.
type storedWebhook struct {
	AgentName string   `json:"agent_name"`
	URL       string   `json:"url"`
	Secret    string   `json:"secret"`
	Events    []string `json:"events"`
	CreatedAt int64    `json:"created_at"`
}

// WebhookStore implements ports.WebhookStore using Redis, one JSON value per
// agent. No TTL: registrations live until removed.
type WebhookStore struct {
	client *goredis.Client
	prefix string
}

// NewWebhookStore creates a new Redis-backed webhook store.
func NewWebhookStore(client *goredis.Client) *WebhookStore {
	return &WebhookStore{
		client: client,
		prefix: "webhook:",
	}
}

// Put upserts an agent's registration.
func (s *WebhookStore) Put(ctx context.Context, sub *domain.WebhookSubscription) error {
	val, err := json.Marshal(storedWebhook{
		AgentName: sub.AgentName,
		URL:       sub.URL,
		Secret:    sub.Secret,
		Events:    sub.Events,
		CreatedAt: sub.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshaling webhook registration: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+sub.AgentName, val, 0).Err(); err != nil {
		return fmt.Errorf("redis webhook put: %w", err)
	}
	return nil
}

// Get returns the agent's registration. Returns nil, nil if none exists.
func (s *WebhookStore) Get(ctx context.Context, agentName string) (*domain.WebhookSubscription, error) {
	val, err := s.client.Get(ctx, s.prefix+agentName).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis webhook get: %w", err)
	}
	var stored storedWebhook
	if err := json.Unmarshal(val, &stored); err != nil {
		return nil, fmt.Errorf("unmarshaling webhook registration: %w", err)
	}
	return &domain.WebhookSubscription{
		AgentName: stored.AgentName,
		URL:       stored.URL,
		Secret:    stored.Secret,
		Events:    stored.Events,
		CreatedAt: stored.CreatedAt,
	}, nil
}

// Delete removes the agent's registration, reporting whether one existed.
func (s *WebhookStore) Delete(ctx context.Context, agentName string) (bool, error) {
	n, err := s.client.Del(ctx, s.prefix+agentName).Result()
	if err != nil {
		return false, fmt.Errorf("redis webhook delete: %w", err)
	}
	return n > 0, nil
}
