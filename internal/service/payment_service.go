package service

import (
	"context"
	"errors"

	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/internal/derive"
	"agentpay-gateway/internal/txbuild"
	"agentpay-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// Batch size bounds enforced before assembly.
const (
	minBatchSize = 1
	maxBatchSize = 10
	minSplitSize = 2
	maxSplitSize = 10
	totalBps     = 10_000
)

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	ledger  ports.LedgerReader
	deriver *derive.Deriver
	builder *txbuild.Builder
	log     zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(ledger ports.LedgerReader, deriver *derive.Deriver, builder *txbuild.Builder, log zerolog.Logger) *PaymentServiceImpl {
	return &PaymentServiceImpl{ledger: ledger, deriver: deriver, builder: builder, log: log}
}

func validMemo(memo string) bool {
	return len(memo) <= domain.MaxMemoBytes
}

// requireAgent fails with not-found when the name has no registry record.
func (s *PaymentServiceImpl) requireAgent(ctx context.Context, name string) error {
	if !domain.ValidName(name) {
		return apperror.ErrInvalidName()
	}
	record, _ := s.deriver.AgentAddresses(name)
	exists, err := s.ledger.AccountExists(ctx, record)
	if err != nil {
		return apperror.ErrUpstream(err)
	}
	if !exists {
		return apperror.ErrNotFound("Agent")
	}
	return nil
}

// TransferInstruction assembles a vault-to-vault payment between two
// registered agents.
func (s *PaymentServiceImpl) TransferInstruction(ctx context.Context, from, to string, amount uint64, memo string, authority domain.Address) (*domain.Instruction, error) {
	if amount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !validMemo(memo) {
		return nil, apperror.ErrMemoTooLong()
	}
	if from == to {
		return nil, apperror.Validation("Sender and recipient must differ")
	}
	if err := s.requireAgent(ctx, from); err != nil {
		return nil, err
	}
	if err := s.requireAgent(ctx, to); err != nil {
		return nil, err
	}
	return s.builder.TransferByName(from, to, amount, memo, authority), nil
}

// DepositInstruction assembles a vault funding instruction from an external
// token account.
func (s *PaymentServiceImpl) DepositInstruction(ctx context.Context, name string, amount uint64, source, authority domain.Address) (*domain.Instruction, error) {
	if amount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := s.requireAgent(ctx, name); err != nil {
		return nil, err
	}
	return s.builder.Deposit(name, amount, source, authority), nil
}

// WithdrawInstruction assembles a vault drain instruction to an external
// token account.
func (s *PaymentServiceImpl) WithdrawInstruction(ctx context.Context, name string, amount uint64, destination, authority domain.Address) (*domain.Instruction, error) {
	if amount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := s.requireAgent(ctx, name); err != nil {
		return nil, err
	}
	return s.builder.Withdraw(name, amount, destination, authority), nil
}

// BatchInstruction assembles one instruction paying up to ten recipients.
// Every endpoint is verified before assembly so a single unknown name fails
// the whole batch locally.
func (s *PaymentServiceImpl) BatchInstruction(ctx context.Context, from string, entries []ports.BatchEntry, authority domain.Address) (*domain.Instruction, error) {
	if len(entries) < minBatchSize || len(entries) > maxBatchSize {
		return nil, apperror.ErrInvalidBatchSize()
	}
	for _, e := range entries {
		if e.Amount == 0 {
			return nil, apperror.ErrInvalidAmount()
		}
		if !validMemo(e.Memo) {
			return nil, apperror.ErrMemoTooLong()
		}
	}
	if err := s.requireAgent(ctx, from); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.RecipientName == from {
			return nil, apperror.Validation("Batch cannot pay the sender")
		}
		if err := s.requireAgent(ctx, e.RecipientName); err != nil {
			return nil, describeRecipient(err, e.RecipientName)
		}
	}
	return s.builder.BatchPayment(from, entries, authority), nil
}

// SplitInstruction assembles a proportional split of a total amount. Shares
// are basis points and must cover the whole total exactly.
func (s *PaymentServiceImpl) SplitInstruction(ctx context.Context, from string, total uint64, entries []ports.SplitEntry, memo string, authority domain.Address) (*domain.Instruction, error) {
	if total == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !validMemo(memo) {
		return nil, apperror.ErrMemoTooLong()
	}
	if len(entries) < minSplitSize || len(entries) > maxSplitSize {
		return nil, apperror.Validation("Split must have 2-10 recipients")
	}
	var sum int
	for _, e := range entries {
		if e.ShareBps == 0 {
			return nil, apperror.ErrInvalidSplitShares()
		}
		sum += int(e.ShareBps)
	}
	if sum != totalBps {
		return nil, apperror.ErrInvalidSplitShares()
	}
	if err := s.requireAgent(ctx, from); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Name == from {
			return nil, apperror.Validation("Split cannot pay the sender")
		}
		if err := s.requireAgent(ctx, e.Name); err != nil {
			return nil, describeRecipient(err, e.Name)
		}
	}
	return s.builder.SplitPayment(from, total, entries, memo, authority), nil
}

// describeRecipient qualifies a not-found error with the recipient's name so
// batch callers learn which entry failed.
func describeRecipient(err error, name string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code == "ENT_001" {
		return apperror.ErrNotFound("Recipient " + name)
	}
	return err
}
