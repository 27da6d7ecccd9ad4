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

// AgentServiceImpl implements ports.AgentService.
type AgentServiceImpl struct {
	ledger  ports.LedgerReader
	deriver *derive.Deriver
	builder *txbuild.Builder
	log     zerolog.Logger
}

// NewAgentService creates a new AgentServiceImpl.
func NewAgentService(ledger ports.LedgerReader, deriver *derive.Deriver, builder *txbuild.Builder, log zerolog.Logger) *AgentServiceImpl {
	return &AgentServiceImpl{ledger: ledger, deriver: deriver, builder: builder, log: log}
}

// fetchAgent reads and decodes an agent's registry record by name.
func (s *AgentServiceImpl) fetchAgent(ctx context.Context, name string) (*domain.Agent, domain.Address, error) {
	record, _ := s.deriver.AgentAddresses(name)
	raw, err := s.ledger.FetchRaw(ctx, record)
	if errors.Is(err, ports.ErrAccountNotFound) {
		return nil, record, apperror.ErrNotFound("Agent")
	}
	if err != nil {
		return nil, record, apperror.ErrUpstream(err)
	}
	agent, err := decodeAgent(raw)
	if err != nil {
		return nil, record, apperror.InternalError(err)
	}
	return agent, record, nil
}

// Resolve returns the agent's reconstructed record plus its live vault
// balance.
func (s *AgentServiceImpl) Resolve(ctx context.Context, name string) (*ports.AgentView, error) {
	if !domain.ValidName(name) {
		return nil, apperror.ErrInvalidName()
	}
	agent, record, err := s.fetchAgent(ctx, name)
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.TokenBalance(ctx, agent.Vault)
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	return &ports.AgentView{Agent: *agent, Record: record, VaultBalance: balance}, nil
}

// Balance returns the agent's vault balance in minor units.
func (s *AgentServiceImpl) Balance(ctx context.Context, name string) (uint64, error) {
	if !domain.ValidName(name) {
		return 0, apperror.ErrInvalidName()
	}
	agent, _, err := s.fetchAgent(ctx, name)
	if err != nil {
		return 0, err
	}
	balance, err := s.ledger.TokenBalance(ctx, agent.Vault)
	if err != nil {
		return 0, apperror.ErrUpstream(err)
	}
	return balance, nil
}

// List returns every registered agent. Records that fail to decode are
// skipped, not fatal: one corrupt record must not hide the rest.
func (s *AgentServiceImpl) List(ctx context.Context) ([]domain.Agent, error) {
	raws, err := s.ledger.FetchAllOfKind(ctx, ports.KindAgent, nil)
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	agents := make([]domain.Agent, 0, len(raws))
	for _, ra := range raws {
		agent, err := decodeAgent(ra.Data)
		if err != nil {
			s.log.Warn().Err(err).Str("address", ra.Address.String()).Msg("skipping undecodable agent record")
			continue
		}
		agents = append(agents, *agent)
	}
	return agents, nil
}

// RegisterInstruction assembles the instruction that claims a name. The name
// must be free.
func (s *AgentServiceImpl) RegisterInstruction(ctx context.Context, name string, authority domain.Address) (*domain.Instruction, error) {
	if !domain.ValidName(name) {
		return nil, apperror.ErrInvalidName()
	}
	record, _ := s.deriver.AgentAddresses(name)
	exists, err := s.ledger.AccountExists(ctx, record)
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	if exists {
		return nil, apperror.ErrConflict("Agent name already taken")
	}
	return s.builder.RegisterAgent(name, authority), nil
}

// SetDailyLimitInstruction assembles the spending-cap instruction for an
// existing agent.
func (s *AgentServiceImpl) SetDailyLimitInstruction(ctx context.Context, name string, limit uint64, authority domain.Address) (*domain.Instruction, error) {
	if !domain.ValidName(name) {
		return nil, apperror.ErrInvalidName()
	}
	if _, _, err := s.fetchAgent(ctx, name); err != nil {
		return nil, err
	}
	return s.builder.SetDailyLimit(name, limit, authority), nil
}
