package ports

import (
	"context"

	"agentpay-gateway/internal/core/domain"
)

// AgentView is an agent plus its live vault balance.
type AgentView struct {
	Agent        domain.Agent   `json:"agent"`
	Record       domain.Address `json:"record"`
	VaultBalance uint64         `json:"vault_balance"`
}

// AgentService resolves and lists agents and assembles agent-level
// instructions.
type AgentService interface {
	Resolve(ctx context.Context, name string) (*AgentView, error)
	Balance(ctx context.Context, name string) (uint64, error)
	List(ctx context.Context) ([]domain.Agent, error)
	RegisterInstruction(ctx context.Context, name string, authority domain.Address) (*domain.Instruction, error)
	SetDailyLimitInstruction(ctx context.Context, name string, limit uint64, authority domain.Address) (*domain.Instruction, error)
}

// BatchEntry is one payment within a batch.
type BatchEntry struct {
	RecipientName string
	Amount        uint64
	Memo          string
}

// SplitEntry is one recipient of a proportional split.
type SplitEntry struct {
	Name     string
	ShareBps uint16
}

// PaymentService assembles transfer, deposit/withdraw, and batch/split
// instructions after validating both endpoints exist.
type PaymentService interface {
	TransferInstruction(ctx context.Context, from, to string, amount uint64, memo string, authority domain.Address) (*domain.Instruction, error)
	DepositInstruction(ctx context.Context, name string, amount uint64, source, authority domain.Address) (*domain.Instruction, error)
	WithdrawInstruction(ctx context.Context, name string, amount uint64, destination, authority domain.Address) (*domain.Instruction, error)
	BatchInstruction(ctx context.Context, from string, entries []BatchEntry, authority domain.Address) (*domain.Instruction, error)
	SplitInstruction(ctx context.Context, from string, total uint64, entries []SplitEntry, memo string, authority domain.Address) (*domain.Instruction, error)
}

// DueSubscription is a subscription that is ready to execute.
type DueSubscription struct {
	Subscription domain.Subscription `json:"subscription"`
	OverdueSecs  int64               `json:"overdue_secs"`
}

// SubscriptionService reconstructs subscriptions and assembles their
// lifecycle instructions.
type SubscriptionService interface {
	Get(ctx context.Context, sender, receiver string) (*domain.Subscription, error)
	ListBySender(ctx context.Context, sender string) ([]domain.Subscription, error)
	ListDue(ctx context.Context) ([]DueSubscription, error)
	CreateInstruction(ctx context.Context, sender, receiver string, amount uint64, intervalSeconds int64, authority domain.Address) (*domain.Instruction, error)
	ExecuteInstruction(ctx context.Context, sender, receiver string, cranker domain.Address) (*domain.Instruction, error)
	CancelInstruction(ctx context.Context, sender, receiver string, authority domain.Address) (*domain.Instruction, error)
}

// AllowanceService reconstructs allowances and assembles approve / pull /
// revoke instructions.
type AllowanceService interface {
	Get(ctx context.Context, owner, spender string) (*domain.Allowance, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.Allowance, error)
	ApproveInstruction(ctx context.Context, owner, spender string, amount uint64, authority domain.Address) (*domain.Instruction, error)
	IncreaseInstruction(ctx context.Context, owner, spender string, additional uint64, authority domain.Address) (*domain.Instruction, error)
	RevokeInstruction(ctx context.Context, owner, spender string, authority domain.Address) (*domain.Instruction, error)
	TransferFromInstruction(ctx context.Context, owner, spender string, amount uint64, memo string, spenderAuthority domain.Address) (*domain.Instruction, error)
}

// InvoiceView is an invoice with its lazily computed effective status.
type InvoiceView struct {
	Invoice domain.Invoice `json:"invoice"`
	Status  string         `json:"status"`
}

// InvoiceService reconstructs invoices (applying lazy expiry everywhere an
// invoice is surfaced) and assembles invoice lifecycle instructions.
type InvoiceService interface {
	Get(ctx context.Context, id uint64) (*InvoiceView, error)
	ListByAgent(ctx context.Context, name, role, status string) ([]InvoiceView, error)
	NextID(ctx context.Context) (uint64, error)
	InitCounterInstruction(ctx context.Context, payer domain.Address) (*domain.Instruction, error)
	CreateInstruction(ctx context.Context, requester, payer string, amount uint64, memo string, expiresInSeconds int64, authority domain.Address) (*domain.Instruction, error)
	PayInstruction(ctx context.Context, id uint64, authority domain.Address) (*domain.Instruction, error)
	RejectInstruction(ctx context.Context, id uint64, authority domain.Address) (*domain.Instruction, error)
	CancelInstruction(ctx context.Context, id uint64, authority domain.Address) (*domain.Instruction, error)
	RefundInstruction(ctx context.Context, id uint64, issuer string, amount uint64, reason string, authority domain.Address) (*domain.Instruction, error)
}

// Reputation is a scored agent profile.
type Reputation struct {
	Agent     string           `json:"agent"`
	Score     int              `json:"score"`
	Tier      string           `json:"tier"`
	Badges    []string         `json:"badges"`
	Breakdown ReputationInputs `json:"breakdown"`
}

// ReputationInputs are the observable components the score was computed from.
type ReputationInputs struct {
	VolumeUSDC          float64 `json:"volume_usdc"`
	TenureDays          int64   `json:"tenure_days"`
	InvoiceReliability  int     `json:"invoice_reliability"`
	Connections         int     `json:"connections"`
	HasSpendingCap      bool    `json:"has_spending_cap"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	AllowancesGranted   int     `json:"allowances_granted"`
}

// LeaderboardRow is one ranked agent, scored with the simplified variant.
type LeaderboardRow struct {
	Name          string   `json:"name"`
	Score         int      `json:"score"`
	Tier          string   `json:"tier"`
	Badges        []string `json:"badges"`
	TotalSent     float64  `json:"total_sent"`
	TotalReceived float64  `json:"total_received"`
	TotalVolume   float64  `json:"total_volume"`
}

// ReputationService computes agent reputation. Score runs the full
// computation with per-agent invoice/subscription/allowance lookups;
// Leaderboard uses the cheap variant that skips them.
type ReputationService interface {
	Score(ctx context.Context, name string) (*Reputation, error)
	Leaderboard(ctx context.Context, sort string, limit int) ([]LeaderboardRow, error)
}

// Notification is one (agent, event, data) delivery request.
type Notification struct {
	AgentName string
	Event     string
	Data      map[string]interface{}
}

// RegisteredWebhook is what registration returns: the secret appears exactly
// once, here.
type RegisteredWebhook struct {
	Subscription domain.WebhookSubscription `json:"subscription"`
	Secret       string                     `json:"secret"`
}

// WebhookService manages the notification registry and performs best-effort
// signed deliveries. Notify and NotifyAll never block the caller's request
// path and never surface delivery failures.
type WebhookService interface {
	Register(ctx context.Context, agentName, url string, events []string) (*RegisteredWebhook, error)
	Get(ctx context.Context, agentName string) (*domain.WebhookSubscription, error)
	Remove(ctx context.Context, agentName string) error
	Notify(agentName, event string, data map[string]interface{})
	NotifyAll(notifications []Notification)
}
