package domain

// Webhook event names. The set is closed: registering with any other name is
// a validation error.
const (
	EventPaymentReceived      = "payment_received"
	EventPaymentSent          = "payment_sent"
	EventInvoiceCreated       = "invoice_created"
	EventInvoicePaid          = "invoice_paid"
	EventInvoiceRejected      = "invoice_rejected"
	EventAllowancePulled      = "allowance_pulled"
	EventSubscriptionExecuted = "subscription_executed"
)

// ValidEvents lists every recognized webhook event name.
func ValidEvents() []string {
	return []string{
		EventPaymentReceived,
		EventPaymentSent,
		EventInvoiceCreated,
		EventInvoicePaid,
		EventInvoiceRejected,
		EventAllowancePulled,
		EventSubscriptionExecuted,
	}
}

// ValidEvent reports whether event is in the closed event set.
func ValidEvent(event string) bool {
	for _, e := range ValidEvents() {
		if e == event {
			return true
		}
	}
	return false
}

// WebhookSubscription is an agent's notification registration. The secret is
// generated once at registration and never re-exposed afterwards.
type WebhookSubscription struct {
	AgentName string   `json:"agent_name"`
	URL       string   `json:"url"`
	Secret    string   `json:"-"`
	Events    []string `json:"events"`
	CreatedAt int64    `json:"created_at"`
}

// Subscribed reports whether the registration covers the given event.
func (w *WebhookSubscription) Subscribed(event string) bool {
	for _, e := range w.Events {
		if e == event {
			return true
		}
	}
	return false
}
