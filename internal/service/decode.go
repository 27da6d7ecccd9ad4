package service

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
)

// Ledger records are length-prefixed borsh after an 8-byte kind
// discriminator. Layouts are fixed and versioned by the ledger program;
// every field below is read in declaration order, no duck typing.

// DecodeError reports raw bytes that do not match the expected layout.
type DecodeError struct {
	Kind ports.AccountKind
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s record: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// accountDiscriminator is the 8-byte kind prefix of every ledger record.
func accountDiscriminator(kind ports.AccountKind) [8]byte {
	sum := sha256.Sum256([]byte("account:" + string(kind)))
	var disc [8]byte
	copy(disc[:], sum[:8])
	return disc
}

// byteReader walks a record sequentially, latching the first error.
type byteReader struct {
	data []byte
	off  int
	err  error
}

func (r *byteReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.data) {
		r.err = fmt.Errorf("truncated record: need %d bytes at offset %d, have %d", n, r.off, len(r.data))
		return nil
	}
	out := r.data[r.off : r.off+n]
	r.off += n
	return out
}

func (r *byteReader) u8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *byteReader) boolean() bool {
	return r.u8() != 0
}

func (r *byteReader) u64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *byteReader) i64() int64 {
	return int64(r.u64())
}

func (r *byteReader) address() domain.Address {
	var a domain.Address
	b := r.take(32)
	if b != nil {
		copy(a[:], b)
	}
	return a
}

func (r *byteReader) str(maxLen int) string {
	n := int(binary.LittleEndian.Uint32(nonNil(r.take(4), 4)))
	if r.err != nil {
		return ""
	}
	if n > maxLen {
		r.err = fmt.Errorf("string length %d exceeds layout maximum %d", n, maxLen)
		return ""
	}
	b := r.take(n)
	if b == nil {
		return ""
	}
	return string(b)
}

func nonNil(b []byte, n int) []byte {
	if b == nil {
		return make([]byte, n)
	}
	return b
}

func newReader(kind ports.AccountKind, data []byte) (*byteReader, error) {
	want := accountDiscriminator(kind)
	if len(data) < 8 {
		return nil, &DecodeError{Kind: kind, Err: fmt.Errorf("record too short: %d bytes", len(data))}
	}
	var got [8]byte
	copy(got[:], data[:8])
	if got != want {
		return nil, &DecodeError{Kind: kind, Err: fmt.Errorf("kind discriminator mismatch")}
	}
	return &byteReader{data: data, off: 8}, nil
}

func decodeAgent(data []byte) (*domain.Agent, error) {
	r, err := newReader(ports.KindAgent, data)
	if err != nil {
		return nil, err
	}
	r.take(32) // name hash, redundant with name
	agent := &domain.Agent{}
	agent.Name = r.str(domain.MaxNameLen)
	agent.Authority = r.address()
	agent.Vault = r.address()
	agent.CreatedAt = r.i64()
	agent.TotalSent = r.u64()
	agent.TotalReceived = r.u64()
	r.u8() // record bump
	r.u8() // vault bump
	agent.DailyLimit = r.u64()
	agent.DailySpent = r.u64()
	agent.LastSpendDay = r.i64()
	if r.err != nil {
		return nil, &DecodeError{Kind: ports.KindAgent, Err: r.err}
	}
	return agent, nil
}

func decodeSubscription(data []byte) (*domain.Subscription, error) {
	r, err := newReader(ports.KindSubscription, data)
	if err != nil {
		return nil, err
	}
	sub := &domain.Subscription{}
	sub.Sender = r.address()
	sub.Receiver = r.address()
	sub.SenderName = r.str(domain.MaxNameLen)
	sub.ReceiverName = r.str(domain.MaxNameLen)
	sub.Amount = r.u64()
	sub.IntervalSeconds = r.i64()
	sub.LastExecuted = r.i64()
	sub.NextDue = r.i64()
	sub.IsActive = r.boolean()
	sub.Authority = r.address()
	sub.TotalPaid = r.u64()
	sub.ExecutionCount = r.u64()
	if r.err != nil {
		return nil, &DecodeError{Kind: ports.KindSubscription, Err: r.err}
	}
	return sub, nil
}

func decodeAllowance(data []byte) (*domain.Allowance, error) {
	r, err := newReader(ports.KindAllowance, data)
	if err != nil {
		return nil, err
	}
	al := &domain.Allowance{}
	al.Owner = r.address()
	al.Spender = r.address()
	al.OwnerName = r.str(domain.MaxNameLen)
	al.SpenderName = r.str(domain.MaxNameLen)
	al.Amount = r.u64()
	al.TotalPulled = r.u64()
	al.PullCount = r.u64()
	al.IsActive = r.boolean()
	al.Authority = r.address()
	if r.err != nil {
		return nil, &DecodeError{Kind: ports.KindAllowance, Err: r.err}
	}
	return al, nil
}

func decodeInvoiceCounter(data []byte) (uint64, error) {
	r, err := newReader(ports.KindInvoiceCounter, data)
	if err != nil {
		return 0, err
	}
	count := r.u64()
	if r.err != nil {
		return 0, &DecodeError{Kind: ports.KindInvoiceCounter, Err: r.err}
	}
	return count, nil
}

func decodeInvoice(data []byte) (*domain.Invoice, error) {
	r, err := newReader(ports.KindInvoice, data)
	if err != nil {
		return nil, err
	}
	inv := &domain.Invoice{}
	inv.ID = r.u64()
	inv.Requester = r.address()
	inv.Payer = r.address()
	inv.RequesterName = r.str(domain.MaxNameLen)
	inv.PayerName = r.str(domain.MaxNameLen)
	inv.Amount = r.u64()
	inv.Memo = r.str(domain.MaxMemoBytes)
	inv.Status = domain.InvoiceStatus(r.u8())
	inv.CreatedAt = r.i64()
	inv.ExpiresAt = r.i64()
	inv.PaidAt = r.i64()
	inv.Authority = r.address()
	if r.err != nil {
		return nil, &DecodeError{Kind: ports.KindInvoice, Err: r.err}
	}
	return inv, nil
}

// Invoice record offsets of the requester and payer agent record addresses,
// used as memcmp filters when listing invoices by agent:
// 8 (discriminator) + 8 (id) = 16 for requester, +32 = 48 for payer.
const (
	invoiceRequesterOffset = 16
	invoicePayerOffset     = 48
)
