package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/internal/derive"
	"agentpay-gateway/internal/txbuild"
	"agentpay-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// Invoice list role selectors.
const (
	RoleRequester = "requester"
	RolePayer     = "payer"
)

// InvoiceServiceImpl implements ports.InvoiceService.
type InvoiceServiceImpl struct {
	ledger  ports.LedgerReader
	deriver *derive.Deriver
	builder *txbuild.Builder
	log     zerolog.Logger
	now     func() int64
}

// NewInvoiceService creates a new InvoiceServiceImpl.
func NewInvoiceService(ledger ports.LedgerReader, deriver *derive.Deriver, builder *txbuild.Builder, log zerolog.Logger) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{
		ledger:  ledger,
		deriver: deriver,
		builder: builder,
		log:     log,
		now:     func() int64 { return time.Now().Unix() },
	}
}

func (s *InvoiceServiceImpl) fetch(ctx context.Context, id uint64) (*domain.Invoice, error) {
	addr := s.deriver.InvoiceAddress(id)
	raw, err := s.ledger.FetchRaw(ctx, addr)
	if errors.Is(err, ports.ErrAccountNotFound) {
		return nil, apperror.ErrNotFound("Invoice")
	}
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	inv, err := decodeInvoice(raw)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return inv, nil
}

func (s *InvoiceServiceImpl) view(inv *domain.Invoice) ports.InvoiceView {
	return ports.InvoiceView{Invoice: *inv, Status: inv.EffectiveStatus(s.now()).String()}
}

// Get returns one invoice with its effective status.
func (s *InvoiceServiceImpl) Get(ctx context.Context, id uint64) (*ports.InvoiceView, error) {
	inv, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	v := s.view(inv)
	return &v, nil
}

// ListByAgent returns the agent's invoices in one role, optionally filtered
// by effective status. Expiry is applied before the status filter so a
// lapsed pending invoice matches "expired", not "pending".
func (s *InvoiceServiceImpl) ListByAgent(ctx context.Context, name, role, status string) ([]ports.InvoiceView, error) {
	if !domain.ValidName(name) {
		return nil, apperror.ErrInvalidName()
	}
	var offset int
	switch role {
	case RoleRequester:
		offset = invoiceRequesterOffset
	case RolePayer:
		offset = invoicePayerOffset
	default:
		return nil, apperror.Validation("Role must be requester or payer")
	}
	if status != "" {
		if _, ok := domain.ParseInvoiceStatus(status); !ok {
			return nil, apperror.Validation("Unknown invoice status: " + status)
		}
	}
	record, _ := s.deriver.AgentAddresses(name)
	raws, err := s.ledger.FetchAllOfKind(ctx, ports.KindInvoice, &ports.MemcmpFilter{
		Offset: offset,
		Bytes:  record.Bytes(),
	})
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	views := make([]ports.InvoiceView, 0, len(raws))
	for _, ra := range raws {
		inv, err := decodeInvoice(ra.Data)
		if err != nil {
			s.log.Warn().Err(err).Str("address", ra.Address.String()).Msg("skipping undecodable invoice record")
			continue
		}
		v := s.view(inv)
		if status != "" && v.Status != status {
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

// NextID reads the shared counter, which holds the id the next invoice will
// be assigned.
func (s *InvoiceServiceImpl) NextID(ctx context.Context) (uint64, error) {
	raw, err := s.ledger.FetchRaw(ctx, s.deriver.InvoiceCounterAddress())
	if errors.Is(err, ports.ErrAccountNotFound) {
		return 0, apperror.ErrNotFound("Invoice counter")
	}
	if err != nil {
		return 0, apperror.ErrUpstream(err)
	}
	count, err := decodeInvoiceCounter(raw)
	if err != nil {
		return 0, apperror.InternalError(err)
	}
	return count, nil
}

// InitCounterInstruction assembles the one-time counter bootstrap.
func (s *InvoiceServiceImpl) InitCounterInstruction(ctx context.Context, payer domain.Address) (*domain.Instruction, error) {
	exists, err := s.ledger.AccountExists(ctx, s.deriver.InvoiceCounterAddress())
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	if exists {
		return nil, apperror.ErrConflict("Invoice counter already initialized")
	}
	return s.builder.InitInvoiceCounter(payer), nil
}

// CreateInstruction assembles the invoice-opening instruction under the
// counter's current next id. The id is read fresh on every call; a stale id
// is rejected by the ledger program, never silently reassigned.
func (s *InvoiceServiceImpl) CreateInstruction(ctx context.Context, requester, payer string, amount uint64, memo string, expiresInSeconds int64, authority domain.Address) (*domain.Instruction, error) {
	if !domain.ValidName(requester) || !domain.ValidName(payer) {
		return nil, apperror.ErrInvalidName()
	}
	if requester == payer {
		return nil, apperror.Validation("Requester and payer must differ")
	}
	if amount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !validMemo(memo) {
		return nil, apperror.ErrMemoTooLong()
	}
	if expiresInSeconds < 0 {
		return nil, apperror.Validation("Expiry must not be negative")
	}
	for _, name := range []string{requester, payer} {
		record, _ := s.deriver.AgentAddresses(name)
		exists, err := s.ledger.AccountExists(ctx, record)
		if err != nil {
			return nil, apperror.ErrUpstream(err)
		}
		if !exists {
			return nil, apperror.ErrNotFound("Agent")
		}
	}
	id, err := s.NextID(ctx)
	if err != nil {
		return nil, err
	}
	return s.builder.CreateInvoice(id, requester, payer, amount, memo, expiresInSeconds, authority), nil
}

// requirePending fetches an invoice and rejects any non-pending effective
// status. Lazy expiry applies here too: a lapsed invoice cannot be paid.
func (s *InvoiceServiceImpl) requirePending(ctx context.Context, id uint64) (*domain.Invoice, error) {
	inv, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if status := inv.EffectiveStatus(s.now()); status != domain.InvoicePending {
		return nil, apperror.ErrInvoiceNotPending(status.String())
	}
	return inv, nil
}

// PayInstruction assembles settlement of a pending invoice.
func (s *InvoiceServiceImpl) PayInstruction(ctx context.Context, id uint64, authority domain.Address) (*domain.Instruction, error) {
	inv, err := s.requirePending(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.builder.PayInvoice(id, inv.RequesterName, inv.PayerName, authority), nil
}

// RejectInstruction assembles the payer's decline of a pending invoice.
func (s *InvoiceServiceImpl) RejectInstruction(ctx context.Context, id uint64, authority domain.Address) (*domain.Instruction, error) {
	inv, err := s.requirePending(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.builder.RejectInvoice(id, inv.PayerName, authority), nil
}

// CancelInstruction assembles the requester's withdrawal of a pending
// invoice.
func (s *InvoiceServiceImpl) CancelInstruction(ctx context.Context, id uint64, authority domain.Address) (*domain.Instruction, error) {
	if _, err := s.requirePending(ctx, id); err != nil {
		return nil, err
	}
	return s.builder.CancelInvoice(id, authority), nil
}

// RefundInstruction assembles a reversed transfer returning some or all of a
// settled invoice's amount to its payer. Only the requester, who received the
// original payment, may issue it. Amount 0 refunds in full.
func (s *InvoiceServiceImpl) RefundInstruction(ctx context.Context, id uint64, issuer string, amount uint64, reason string, authority domain.Address) (*domain.Instruction, error) {
	if !domain.ValidName(issuer) {
		return nil, apperror.ErrInvalidName()
	}
	inv, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvoicePaid {
		return nil, apperror.ErrConflict(fmt.Sprintf("Only paid invoices can be refunded (status: %s)", inv.Status.String()))
	}
	if issuer != inv.RequesterName {
		return nil, apperror.ErrConflict(fmt.Sprintf("Only %s (the payment receiver) can issue a refund", inv.RequesterName))
	}
	if amount == 0 {
		amount = inv.Amount
	}
	if amount > inv.Amount {
		return nil, apperror.Validation("Refund amount exceeds original payment")
	}
	return s.builder.TransferByName(inv.RequesterName, inv.PayerName, amount, refundMemo(id, reason), authority), nil
}

// refundMemo references the settled invoice so the reversal stays traceable
// on-ledger. Oversized reasons are truncated to fit the memo limit.
func refundMemo(id uint64, reason string) string {
	memo := fmt.Sprintf("Refund (ref: invoice#%d)", id)
	if reason != "" {
		memo = fmt.Sprintf("Refund: %s (ref: invoice#%d)", reason, id)
	}
	if len(memo) > domain.MaxMemoBytes {
		memo = memo[:120] + "..."
	}
	return memo
}
