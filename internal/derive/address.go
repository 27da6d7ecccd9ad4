package derive

import (
	"crypto/sha256"
	"encoding/binary"

	"agentpay-gateway/internal/core/domain"

	"filippo.io/edwards25519"
)

// Seed tags under which the ledger program derives its record addresses.
const (
	TagAgent          = "agent"
	TagVault          = "vault"
	TagSubscription   = "subscription"
	TagAllowance      = "allowance"
	TagInvoiceCounter = "invoice_counter"
	TagInvoice        = "invoice"
)

// pdaMarker terminates the derivation preimage, per the ledger's program
// address scheme.
const pdaMarker = "ProgramDerivedAddress"

// Deriver computes deterministic record addresses under a fixed program
// namespace. It performs no I/O and has no failure modes for valid input;
// name validation is the caller's concern.
type Deriver struct {
	programID domain.Address
}

// New creates a Deriver scoped to the given program namespace.
func New(programID domain.Address) *Deriver {
	return &Deriver{programID: programID}
}

// ProgramID returns the namespace all addresses are derived under.
func (d *Deriver) ProgramID() domain.Address {
	return d.programID
}

// Derive maps a tag plus seed parts to the first off-curve address found by
// walking the bump from 255 downward. Same inputs always yield the same
// address.
func (d *Deriver) Derive(tag string, parts ...[]byte) domain.Address {
	seeds := make([][]byte, 0, len(parts)+1)
	seeds = append(seeds, []byte(tag))
	seeds = append(seeds, parts...)
	addr, _ := d.find(seeds)
	return addr
}

// DeriveWithBump is Derive plus the bump seed the address was found at,
// needed by signers that re-derive vault authority seeds.
func (d *Deriver) DeriveWithBump(tag string, parts ...[]byte) (domain.Address, uint8) {
	seeds := make([][]byte, 0, len(parts)+1)
	seeds = append(seeds, []byte(tag))
	seeds = append(seeds, parts...)
	return d.find(seeds)
}

func (d *Deriver) find(seeds [][]byte) (domain.Address, uint8) {
	for bump := 255; bump >= 0; bump-- {
		h := sha256.New()
		for _, s := range seeds {
			h.Write(s)
		}
		h.Write([]byte{byte(bump)})
		h.Write(d.programID[:])
		h.Write([]byte(pdaMarker))

		var addr domain.Address
		copy(addr[:], h.Sum(nil))
		if offCurve(addr) {
			return addr, uint8(bump)
		}
	}
	// 256 consecutive on-curve digests cannot happen for real seeds.
	panic("derive: no valid bump for seeds")
}

// offCurve reports whether the digest is not a valid edwards25519 point.
// Only off-curve addresses have no private key and are usable as program
// records.
func offCurve(addr domain.Address) bool {
	_, err := new(edwards25519.Point).SetBytes(addr[:])
	return err != nil
}

// AgentAddresses returns the agent's record and vault addresses for a name.
func (d *Deriver) AgentAddresses(name string) (record, vault domain.Address) {
	record = d.Derive(TagAgent, []byte(name))
	vault = d.Derive(TagVault, []byte(name))
	return record, vault
}

// SubscriptionAddress derives the subscription record for a (sender,
// receiver) pair. Parts are the already-derived agent records, sender first,
// so the two orderings of a pair never collide.
func (d *Deriver) SubscriptionAddress(senderName, receiverName string) domain.Address {
	sender := d.Derive(TagAgent, []byte(senderName))
	receiver := d.Derive(TagAgent, []byte(receiverName))
	return d.Derive(TagSubscription, sender.Bytes(), receiver.Bytes())
}

// AllowanceAddress derives the allowance record for an (owner, spender)
// pair, owner's agent record first.
func (d *Deriver) AllowanceAddress(ownerName, spenderName string) domain.Address {
	owner := d.Derive(TagAgent, []byte(ownerName))
	spender := d.Derive(TagAgent, []byte(spenderName))
	return d.Derive(TagAllowance, owner.Bytes(), spender.Bytes())
}

// InvoiceCounterAddress derives the single shared invoice counter record.
func (d *Deriver) InvoiceCounterAddress() domain.Address {
	return d.Derive(TagInvoiceCounter)
}

// InvoiceAddress derives an invoice record from its id. The sole part is the
// 8-byte little-endian id, so the address is a pure function of the id.
func (d *Deriver) InvoiceAddress(id uint64) domain.Address {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], id)
	return d.Derive(TagInvoice, buf[:])
}
