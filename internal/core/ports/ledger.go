package ports

import (
	"context"
	"errors"

	"agentpay-gateway/internal/core/domain"
)

// ErrAccountNotFound is returned by LedgerReader when the ledger explicitly
// reports a record absent. Any other error is a transient upstream failure
// and must never be conflated with absence.
var ErrAccountNotFound = errors.New("ledger: account not found")

// AccountKind names a ledger record layout. The reader uses it to filter
// program-owned records by their kind discriminator.
type AccountKind string

const (
	KindAgent          AccountKind = "AgentRegistry"
	KindSubscription   AccountKind = "Subscription"
	KindAllowance      AccountKind = "Allowance"
	KindInvoiceCounter AccountKind = "InvoiceCounter"
	KindInvoice        AccountKind = "Invoice"
)

// RawAccount is an undecoded ledger record.
type RawAccount struct {
	Address domain.Address
	Data    []byte
}

// MemcmpFilter narrows a kind scan to records whose bytes at Offset equal
// Bytes. Used to find invoices where an agent record address appears as
// requester or payer.
type MemcmpFilter struct {
	Offset int
	Bytes  []byte
}

// LedgerReader fetches raw records from the external ledger. All methods are
// network I/O and may fail transiently; implementations report absence only
// via ErrAccountNotFound.
//
//go:generate mockgen -source=ledger.go -destination=mocks/ledger_mock.go -package=mocks
type LedgerReader interface {
	AccountExists(ctx context.Context, addr domain.Address) (bool, error)
	FetchRaw(ctx context.Context, addr domain.Address) ([]byte, error)
	FetchAllOfKind(ctx context.Context, kind AccountKind, filter *MemcmpFilter) ([]RawAccount, error)
	TokenBalance(ctx context.Context, vault domain.Address) (uint64, error)
}
