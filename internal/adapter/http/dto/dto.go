package dto

// Addresses travel as base58 strings in request bodies; handlers parse them
// into domain.Address before calling services.

// RegisterAgentRequest is the request body for agent registration.
type RegisterAgentRequest struct {
	Name      string `json:"name" binding:"required,agent_name"`
	Authority string `json:"authority" binding:"required"`
}

// DailyLimitRequest is the request body for configuring a spending cap.
// Limit 0 removes the cap.
type DailyLimitRequest struct {
	Limit     float64 `json:"limit" binding:"gte=0"`
	Authority string  `json:"authority" binding:"required"`
}

// TransferRequest is the request body for a name-to-name payment.
type TransferRequest struct {
	From      string  `json:"from" binding:"required,agent_name"`
	To        string  `json:"to" binding:"required,agent_name"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Memo      string  `json:"memo" binding:"max=128"`
	Authority string  `json:"authority" binding:"required"`
}

// DepositRequest is the request body for funding an agent's vault from an
// external token account.
type DepositRequest struct {
	Name      string  `json:"name" binding:"required,agent_name"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Source    string  `json:"source" binding:"required"`
	Authority string  `json:"authority" binding:"required"`
}

// WithdrawRequest is the request body for moving vault funds to an external
// token account.
type WithdrawRequest struct {
	Name        string  `json:"name" binding:"required,agent_name"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Destination string  `json:"destination" binding:"required"`
	Authority   string  `json:"authority" binding:"required"`
}

// BatchPaymentEntry is one payment within a batch request.
type BatchPaymentEntry struct {
	To     string  `json:"to" binding:"required,agent_name"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Memo   string  `json:"memo" binding:"max=128"`
}

// BatchPaymentRequest is the request body for a multi-recipient payment.
type BatchPaymentRequest struct {
	From      string              `json:"from" binding:"required,agent_name"`
	Payments  []BatchPaymentEntry `json:"payments" binding:"required,min=1,max=10,dive"`
	Authority string              `json:"authority" binding:"required"`
}

// SplitRecipient is one recipient of a proportional split.
type SplitRecipient struct {
	Name     string `json:"name" binding:"required,agent_name"`
	ShareBps uint16 `json:"share_bps" binding:"required,gt=0"`
}

// SplitPaymentRequest is the request body for splitting a total across
// recipients by basis points.
type SplitPaymentRequest struct {
	From        string           `json:"from" binding:"required,agent_name"`
	TotalAmount float64          `json:"total_amount" binding:"required,gt=0"`
	Recipients  []SplitRecipient `json:"recipients" binding:"required,min=2,max=10,dive"`
	Memo        string           `json:"memo" binding:"max=128"`
	Authority   string           `json:"authority" binding:"required"`
}

// CreateSubscriptionRequest is the request body for a recurring payment
// agreement.
type CreateSubscriptionRequest struct {
	Sender          string  `json:"sender" binding:"required,agent_name"`
	Receiver        string  `json:"receiver" binding:"required,agent_name"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	IntervalSeconds int64   `json:"interval_seconds" binding:"required,gt=0"`
	Authority       string  `json:"authority" binding:"required"`
}

// ExecuteSubscriptionRequest is the request body for cranking a due
// subscription. Any party may crank.
type ExecuteSubscriptionRequest struct {
	Cranker string `json:"cranker" binding:"required"`
}

// AuthorityRequest is the request body for operations that need only the
// acting authority: cancels, rejects, revokes.
type AuthorityRequest struct {
	Authority string `json:"authority" binding:"required"`
}

// ApproveAllowanceRequest is the request body for granting a pull allowance.
type ApproveAllowanceRequest struct {
	Owner     string  `json:"owner" binding:"required,agent_name"`
	Spender   string  `json:"spender" binding:"required,agent_name"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Authority string  `json:"authority" binding:"required"`
}

// IncreaseAllowanceRequest is the request body for topping up an allowance.
type IncreaseAllowanceRequest struct {
	AdditionalAmount float64 `json:"additional_amount" binding:"required,gt=0"`
	Authority        string  `json:"authority" binding:"required"`
}

// PullAllowanceRequest is the request body for a spender-initiated pull.
type PullAllowanceRequest struct {
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	Memo             string  `json:"memo" binding:"max=128"`
	SpenderAuthority string  `json:"spender_authority" binding:"required"`
}

// InitInvoiceCounterRequest is the request body for initializing the global
// invoice counter.
type InitInvoiceCounterRequest struct {
	Payer string `json:"payer" binding:"required"`
}

// CreateInvoiceRequest is the request body for issuing an invoice.
// ExpiresInSeconds 0 means the invoice never expires.
type CreateInvoiceRequest struct {
	Requester        string  `json:"requester" binding:"required,agent_name"`
	Payer            string  `json:"payer" binding:"required,agent_name"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	Memo             string  `json:"memo" binding:"max=128"`
	ExpiresInSeconds int64   `json:"expires_in_seconds" binding:"gte=0"`
	Authority        string  `json:"authority" binding:"required"`
}

// RefundRequest is the request body for returning a paid invoice's funds.
// Amount 0 (or omitted) refunds the full original payment.
type RefundRequest struct {
	From      string  `json:"from" binding:"required,agent_name"`
	Amount    float64 `json:"amount" binding:"gte=0"`
	Reason    string  `json:"reason" binding:"max=128"`
	Authority string  `json:"authority" binding:"required"`
}

// RegisterWebhookRequest is the request body for webhook registration.
type RegisterWebhookRequest struct {
	AgentName string   `json:"agent_name" binding:"required,agent_name"`
	URL       string   `json:"url" binding:"required,safe_url"`
	Events    []string `json:"events" binding:"required,min=1"`
}

// TestWebhookRequest is the request body for a test delivery.
type TestWebhookRequest struct {
	Event string                 `json:"event" binding:"required"`
	Data  map[string]interface{} `json:"data"`
}

// NextInvoiceIDResponse is the response for the invoice counter query.
type NextInvoiceIDResponse struct {
	NextID uint64 `json:"next_id"`
}

// BalanceResponse is the response for a vault balance query.
type BalanceResponse struct {
	Name    string `json:"name"`
	Balance uint64 `json:"balance"`
}
