package domain

// InvoiceStatus is the stored lifecycle state of an invoice.
type InvoiceStatus uint8

const (
	InvoicePending   InvoiceStatus = 0
	InvoicePaid      InvoiceStatus = 1
	InvoiceRejected  InvoiceStatus = 2
	InvoiceCancelled InvoiceStatus = 3
	InvoiceExpired   InvoiceStatus = 4
)

func (s InvoiceStatus) String() string {
	switch s {
	case InvoicePending:
		return "pending"
	case InvoicePaid:
		return "paid"
	case InvoiceRejected:
		return "rejected"
	case InvoiceCancelled:
		return "cancelled"
	case InvoiceExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// ParseInvoiceStatus maps a status name back to its code. ok is false for
// unrecognized names.
func ParseInvoiceStatus(name string) (InvoiceStatus, bool) {
	switch name {
	case "pending":
		return InvoicePending, true
	case "paid":
		return InvoicePaid, true
	case "rejected":
		return InvoiceRejected, true
	case "cancelled":
		return InvoiceCancelled, true
	case "expired":
		return InvoiceExpired, true
	}
	return 0, false
}

// Invoice is a payment request from a requester to a payer. IDs come from a
// single shared counter record, so the id space is dense and an invoice's
// address is a pure function of its id.
type Invoice struct {
	ID            uint64        `json:"id"`
	Requester     Address       `json:"requester"`
	Payer         Address       `json:"payer"`
	RequesterName string        `json:"requester_name"`
	PayerName     string        `json:"payer_name"`
	Amount        uint64        `json:"amount"`
	Memo          string        `json:"memo"`
	Status        InvoiceStatus `json:"status_code"`
	CreatedAt     int64         `json:"created_at"`
	ExpiresAt     int64         `json:"expires_at"` // 0 = never expires
	PaidAt        int64         `json:"paid_at"`
	Authority     Address       `json:"authority"`
}

// EffectiveStatus applies the lazy expiry transition: a stored pending
// invoice whose expiry has passed reads as expired. Nothing is written back
// to the ledger. Every code path that surfaces invoice status must go
// through this method.
func (i *Invoice) EffectiveStatus(now int64) InvoiceStatus {
	if i.Status == InvoicePending && i.ExpiresAt > 0 && now > i.ExpiresAt {
		return InvoiceExpired
	}
	return i.Status
}

// IsDecided reports whether the invoice reached a terminal payer decision
// (paid, rejected, or expired) at the given instant. Cancellations are the
// requester's doing and do not count.
func (i *Invoice) IsDecided(now int64) bool {
	switch i.EffectiveStatus(now) {
	case InvoicePaid, InvoiceRejected, InvoiceExpired:
		return true
	}
	return false
}
