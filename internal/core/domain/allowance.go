package domain

// Allowance lets a spender pull funds from an owner's vault, up to the
// remaining approved amount. At most one per ordered (owner, spender) pair.
type Allowance struct {
	Owner       Address `json:"owner"`
	Spender     Address `json:"spender"`
	OwnerName   string  `json:"owner_name"`
	SpenderName string  `json:"spender_name"`
	Amount      uint64  `json:"amount"`
	TotalPulled uint64  `json:"total_pulled"`
	PullCount   uint64  `json:"pull_count"`
	IsActive    bool    `json:"is_active"`
	Authority   Address `json:"authority"`
}
