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

// allowanceOwnerOffset is the owner agent record address within an allowance
// record: 8 bytes of discriminator, then owner.
const allowanceOwnerOffset = 8

// AllowanceServiceImpl implements ports.AllowanceService.
type AllowanceServiceImpl struct {
	ledger  ports.LedgerReader
	deriver *derive.Deriver
	builder *txbuild.Builder
	log     zerolog.Logger
}

// NewAllowanceService creates a new AllowanceServiceImpl.
func NewAllowanceService(ledger ports.LedgerReader, deriver *derive.Deriver, builder *txbuild.Builder, log zerolog.Logger) *AllowanceServiceImpl {
	return &AllowanceServiceImpl{ledger: ledger, deriver: deriver, builder: builder, log: log}
}

func (s *AllowanceServiceImpl) fetch(ctx context.Context, owner, spender string) (*domain.Allowance, error) {
	if !domain.ValidName(owner) || !domain.ValidName(spender) {
		return nil, apperror.ErrInvalidName()
	}
	addr := s.deriver.AllowanceAddress(owner, spender)
	raw, err := s.ledger.FetchRaw(ctx, addr)
	if errors.Is(err, ports.ErrAccountNotFound) {
		return nil, apperror.ErrNotFound("Allowance")
	}
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	al, err := decodeAllowance(raw)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return al, nil
}

// Get returns the allowance for an (owner, spender) pair.
func (s *AllowanceServiceImpl) Get(ctx context.Context, owner, spender string) (*domain.Allowance, error) {
	return s.fetch(ctx, owner, spender)
}

// ListByOwner returns every allowance the named agent has granted.
func (s *AllowanceServiceImpl) ListByOwner(ctx context.Context, owner string) ([]domain.Allowance, error) {
	if !domain.ValidName(owner) {
		return nil, apperror.ErrInvalidName()
	}
	record, _ := s.deriver.AgentAddresses(owner)
	raws, err := s.ledger.FetchAllOfKind(ctx, ports.KindAllowance, &ports.MemcmpFilter{
		Offset: allowanceOwnerOffset,
		Bytes:  record.Bytes(),
	})
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	allowances := make([]domain.Allowance, 0, len(raws))
	for _, ra := range raws {
		al, err := decodeAllowance(ra.Data)
		if err != nil {
			s.log.Warn().Err(err).Str("address", ra.Address.String()).Msg("skipping undecodable allowance record")
			continue
		}
		allowances = append(allowances, *al)
	}
	return allowances, nil
}

// ApproveInstruction assembles the grant-creating instruction. The pair must
// not already have an allowance record.
func (s *AllowanceServiceImpl) ApproveInstruction(ctx context.Context, owner, spender string, amount uint64, authority domain.Address) (*domain.Instruction, error) {
	if !domain.ValidName(owner) || !domain.ValidName(spender) {
		return nil, apperror.ErrInvalidName()
	}
	if owner == spender {
		return nil, apperror.Validation("Owner and spender must differ")
	}
	if amount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	for _, name := range []string{owner, spender} {
		record, _ := s.deriver.AgentAddresses(name)
		exists, err := s.ledger.AccountExists(ctx, record)
		if err != nil {
			return nil, apperror.ErrUpstream(err)
		}
		if !exists {
			return nil, apperror.ErrNotFound("Agent")
		}
	}
	addr := s.deriver.AllowanceAddress(owner, spender)
	exists, err := s.ledger.AccountExists(ctx, addr)
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	if exists {
		return nil, apperror.ErrConflict("Allowance already exists for this pair")
	}
	return s.builder.Approve(owner, spender, amount, authority), nil
}

// IncreaseInstruction assembles the budget-raising instruction for an active
// allowance.
func (s *AllowanceServiceImpl) IncreaseInstruction(ctx context.Context, owner, spender string, additional uint64, authority domain.Address) (*domain.Instruction, error) {
	if additional == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	al, err := s.fetch(ctx, owner, spender)
	if err != nil {
		return nil, err
	}
	if !al.IsActive {
		return nil, apperror.ErrConflict("Allowance is not active")
	}
	return s.builder.IncreaseAllowance(owner, spender, additional, authority), nil
}

// RevokeInstruction assembles the deactivation instruction.
func (s *AllowanceServiceImpl) RevokeInstruction(ctx context.Context, owner, spender string, authority domain.Address) (*domain.Instruction, error) {
	al, err := s.fetch(ctx, owner, spender)
	if err != nil {
		return nil, err
	}
	if !al.IsActive {
		return nil, apperror.ErrConflict("Allowance is already revoked")
	}
	return s.builder.RevokeAllowance(owner, spender, authority), nil
}

// TransferFromInstruction assembles a pull against the owner's vault, within
// the remaining budget, signed by the spender's authority.
func (s *AllowanceServiceImpl) TransferFromInstruction(ctx context.Context, owner, spender string, amount uint64, memo string, spenderAuthority domain.Address) (*domain.Instruction, error) {
	if amount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !validMemo(memo) {
		return nil, apperror.ErrMemoTooLong()
	}
	al, err := s.fetch(ctx, owner, spender)
	if err != nil {
		return nil, err
	}
	if !al.IsActive {
		return nil, apperror.ErrConflict("Allowance is not active")
	}
	if amount > al.Amount {
		return nil, apperror.Validation("Pull amount exceeds remaining allowance")
	}
	return s.builder.TransferFrom(owner, spender, amount, memo, spenderAuthority), nil
}
