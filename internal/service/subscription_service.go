package service

import (
	"context"
	"errors"
	"time"

	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/internal/derive"
	"agentpay-gateway/internal/txbuild"
	"agentpay-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// subscriptionSenderOffset is the sender agent record address within a
// subscription record: 8 bytes of discriminator, then sender.
const subscriptionSenderOffset = 8

// SubscriptionServiceImpl implements ports.SubscriptionService.
type SubscriptionServiceImpl struct {
	ledger  ports.LedgerReader
	deriver *derive.Deriver
	builder *txbuild.Builder
	log     zerolog.Logger
	now     func() int64
}

// NewSubscriptionService creates a new SubscriptionServiceImpl.
func NewSubscriptionService(ledger ports.LedgerReader, deriver *derive.Deriver, builder *txbuild.Builder, log zerolog.Logger) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{
		ledger:  ledger,
		deriver: deriver,
		builder: builder,
		log:     log,
		now:     func() int64 { return time.Now().Unix() },
	}
}

func (s *SubscriptionServiceImpl) fetch(ctx context.Context, sender, receiver string) (*domain.Subscription, error) {
	if !domain.ValidName(sender) || !domain.ValidName(receiver) {
		return nil, apperror.ErrInvalidName()
	}
	addr := s.deriver.SubscriptionAddress(sender, receiver)
	raw, err := s.ledger.FetchRaw(ctx, addr)
	if errors.Is(err, ports.ErrAccountNotFound) {
		return nil, apperror.ErrNotFound("Subscription")
	}
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	sub, err := decodeSubscription(raw)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return sub, nil
}

// Get returns the subscription for a (sender, receiver) pair.
func (s *SubscriptionServiceImpl) Get(ctx context.Context, sender, receiver string) (*domain.Subscription, error) {
	return s.fetch(ctx, sender, receiver)
}

// ListBySender returns all subscriptions where the named agent pays.
func (s *SubscriptionServiceImpl) ListBySender(ctx context.Context, sender string) ([]domain.Subscription, error) {
	if !domain.ValidName(sender) {
		return nil, apperror.ErrInvalidName()
	}
	record, _ := s.deriver.AgentAddresses(sender)
	raws, err := s.ledger.FetchAllOfKind(ctx, ports.KindSubscription, &ports.MemcmpFilter{
		Offset: subscriptionSenderOffset,
		Bytes:  record.Bytes(),
	})
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	subs := make([]domain.Subscription, 0, len(raws))
	for _, ra := range raws {
		sub, err := decodeSubscription(ra.Data)
		if err != nil {
			s.log.Warn().Err(err).Str("address", ra.Address.String()).Msg("skipping undecodable subscription record")
			continue
		}
		subs = append(subs, *sub)
	}
	return subs, nil
}

// ListDue returns every active subscription whose next period has arrived,
// with how far overdue it is. Anyone may crank these.
func (s *SubscriptionServiceImpl) ListDue(ctx context.Context) ([]ports.DueSubscription, error) {
	raws, err := s.ledger.FetchAllOfKind(ctx, ports.KindSubscription, nil)
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	now := s.now()
	due := make([]ports.DueSubscription, 0)
	for _, ra := range raws {
		sub, err := decodeSubscription(ra.Data)
		if err != nil {
			s.log.Warn().Err(err).Str("address", ra.Address.String()).Msg("skipping undecodable subscription record")
			continue
		}
		if sub.IsDue(now) {
			due = append(due, ports.DueSubscription{Subscription: *sub, OverdueSecs: sub.OverdueSecs(now)})
		}
	}
	return due, nil
}

// CreateInstruction assembles the agreement-opening instruction. The pair
// must not already have one.
func (s *SubscriptionServiceImpl) CreateInstruction(ctx context.Context, sender, receiver string, amount uint64, intervalSeconds int64, authority domain.Address) (*domain.Instruction, error) {
	if !domain.ValidName(sender) || !domain.ValidName(receiver) {
		return nil, apperror.ErrInvalidName()
	}
	if sender == receiver {
		return nil, apperror.Validation("Sender and receiver must differ")
	}
	if amount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if intervalSeconds < domain.MinSubscriptionInterval {
		return nil, apperror.ErrInvalidInterval()
	}
	for _, name := range []string{sender, receiver} {
		record, _ := s.deriver.AgentAddresses(name)
		exists, err := s.ledger.AccountExists(ctx, record)
		if err != nil {
			return nil, apperror.ErrUpstream(err)
		}
		if !exists {
			return nil, apperror.ErrNotFound("Agent")
		}
	}
	addr := s.deriver.SubscriptionAddress(sender, receiver)
	exists, err := s.ledger.AccountExists(ctx, addr)
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	if exists {
		return nil, apperror.ErrConflict("Subscription already exists for this pair")
	}
	return s.builder.CreateSubscription(sender, receiver, amount, intervalSeconds, authority), nil
}

// ExecuteInstruction assembles the settlement instruction for a due period.
// Permissionless: any cranker may sign it.
func (s *SubscriptionServiceImpl) ExecuteInstruction(ctx context.Context, sender, receiver string, cranker domain.Address) (*domain.Instruction, error) {
	sub, err := s.fetch(ctx, sender, receiver)
	if err != nil {
		return nil, err
	}
	if !sub.IsActive {
		return nil, apperror.ErrConflict("Subscription is not active")
	}
	if !sub.IsDue(s.now()) {
		return nil, apperror.ErrConflict("Subscription is not due yet")
	}
	return s.builder.ExecuteSubscription(sender, receiver, cranker), nil
}

// CancelInstruction assembles the deactivation instruction.
func (s *SubscriptionServiceImpl) CancelInstruction(ctx context.Context, sender, receiver string, authority domain.Address) (*domain.Instruction, error) {
	sub, err := s.fetch(ctx, sender, receiver)
	if err != nil {
		return nil, err
	}
	if !sub.IsActive {
		return nil, apperror.ErrConflict("Subscription is already cancelled")
	}
	return s.builder.CancelSubscription(sender, receiver, authority), nil
}
