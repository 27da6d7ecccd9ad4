package memory

import (
	"context"
	"sync"

	"agentpay-gateway/internal/core/domain"
)

// WebhookStore implements ports.WebhookStore in process memory. The default
// backend: registrations do not survive a restart.
type WebhookStore struct {
	mu   sync.RWMutex
	subs map[string]domain.WebhookSubscription
}

// NewWebhookStore creates an empty in-memory store.
func NewWebhookStore() *WebhookStore {
	return &WebhookStore{subs: make(map[string]domain.WebhookSubscription)}
}

// Put upserts an agent's registration, last writer wins.
func (s *WebhookStore) Put(_ context.Context, sub *domain.WebhookSubscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.AgentName] = *sub
	return nil
}

// Get returns the agent's registration, nil when absent.
func (s *WebhookStore) Get(_ context.Context, agentName string) (*domain.WebhookSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subs[agentName]
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

// Delete removes the agent's registration, reporting whether one existed.
func (s *WebhookStore) Delete(_ context.Context, agentName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.subs[agentName]
	delete(s.subs, agentName)
	return ok, nil
}
