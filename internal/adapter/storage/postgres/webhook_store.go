package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"agentpay-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WebhookStore implements ports.WebhookStore on PostgreSQL, the durable
// backend. Events are stored as a JSON array in a text column.
//
// Expected schema:
//
//	CREATE TABLE webhook_registrations (
//	    agent_name TEXT PRIMARY KEY,
//	    url        TEXT NOT NULL,
//	    secret     TEXT NOT NULL,
//	    events     TEXT NOT NULL,
//	    created_at BIGINT NOT NULL
//	);
type WebhookStore struct {
	pool Pool
}

// NewWebhookStore creates a new PostgreSQL-backed webhook store.
func NewWebhookStore(pool Pool) *WebhookStore {
	return &WebhookStore{pool: pool}
}

// Put upserts an agent's registration.
func (s *WebhookStore) Put(ctx context.Context, sub *domain.WebhookSubscription) error {
	events, err := json.Marshal(sub.Events)
	if err != nil {
		return fmt.Errorf("marshaling webhook events: %w", err)
	}

	query := `INSERT INTO webhook_registrations (agent_name, url, secret, events, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (agent_name) DO UPDATE
		SET url = EXCLUDED.url, secret = EXCLUDED.secret, events = EXCLUDED.events, created_at = EXCLUDED.created_at`

	if _, err := s.pool.Exec(ctx, query, sub.AgentName, sub.URL, sub.Secret, string(events), sub.CreatedAt); err != nil {
		return fmt.Errorf("upsert webhook registration: %w", err)
	}
	return nil
}

// Get returns the agent's registration. Returns nil, nil if none exists.
func (s *WebhookStore) Get(ctx context.Context, agentName string) (*domain.WebhookSubscription, error) {
	query := `SELECT agent_name, url, secret, events, created_at
		FROM webhook_registrations WHERE agent_name = $1`

	sub := &domain.WebhookSubscription{}
	var events string
	err := s.pool.QueryRow(ctx, query, agentName).Scan(
		&sub.AgentName, &sub.URL, &sub.Secret, &events, &sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook registration: %w", err)
	}
	if err := json.Unmarshal([]byte(events), &sub.Events); err != nil {
		return nil, fmt.Errorf("unmarshaling webhook events: %w", err)
	}
	return sub, nil
}

// Delete removes the agent's registration, reporting whether one existed.
func (s *WebhookStore) Delete(ctx context.Context, agentName string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM webhook_registrations WHERE agent_name = $1`, agentName)
	if err != nil {
		return false, fmt.Errorf("delete webhook registration: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
