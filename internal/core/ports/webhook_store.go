package ports

import (
	"context"

	"agentpay-gateway/internal/core/domain"
)

// WebhookStore persists per-agent notification registrations, keyed by agent
// name. Put is a last-writer-wins upsert; Get returns (nil, nil) when no
// registration exists. Implementations must be safe for concurrent use.
//
// The in-memory backend lives for the process only; callers must not assume
// durability across restarts unless a persistent backend is configured.
//
//go:generate mockgen -source=webhook_store.go -destination=mocks/webhook_store_mock.go -package=mocks
type WebhookStore interface {
	Put(ctx context.Context, sub *domain.WebhookSubscription) error
	Get(ctx context.Context, agentName string) (*domain.WebhookSubscription, error)
	Delete(ctx context.Context, agentName string) (bool, error)
}
