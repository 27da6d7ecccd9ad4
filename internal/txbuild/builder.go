package txbuild

import (
	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/internal/derive"
)

// Well-known ledger program addresses referenced by assembled instructions.
var (
	TokenProgram  = domain.MustAddress("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	SystemProgram = domain.MustAddress("11111111111111111111111111111111")
	RentSysvar    = domain.MustAddress("SysvarRent111111111111111111111111111111111")
)

// Builder assembles unsigned instructions for the ledger program. Account
// order and writability follow the program's declared layouts; callers
// validate inputs before assembly.
type Builder struct {
	deriver  *derive.Deriver
	usdcMint domain.Address
}

// NewBuilder creates a Builder over the given derivation namespace and
// settlement mint.
func NewBuilder(deriver *derive.Deriver, usdcMint domain.Address) *Builder {
	return &Builder{deriver: deriver, usdcMint: usdcMint}
}

// RegisterAgent claims a name and creates its registry record and vault.
func (b *Builder) RegisterAgent(name string, authority domain.Address) *domain.Instruction {
	record, vault := b.deriver.AgentAddresses(name)
	return &domain.Instruction{
		Name: "register_agent",
		Accounts: []domain.AccountMeta{
			domain.Meta(record, true),
			domain.Meta(vault, true),
			domain.Meta(b.usdcMint, false),
			domain.SignerMeta(authority, true),
			domain.Meta(SystemProgram, false),
			domain.Meta(TokenProgram, false),
			domain.Meta(RentSysvar, false),
		},
		Args: map[string]interface{}{"name": name},
	}
}

// SetDailyLimit caps the agent's rolling daily spend. A limit of 0 removes
// the cap.
func (b *Builder) SetDailyLimit(name string, limit uint64, authority domain.Address) *domain.Instruction {
	record, _ := b.deriver.AgentAddresses(name)
	return &domain.Instruction{
		Name: "set_daily_limit",
		Accounts: []domain.AccountMeta{
			domain.Meta(record, true),
			domain.SignerMeta(authority, false),
		},
		Args: map[string]interface{}{"limit": limit},
	}
}

// Deposit moves tokens from an external token account into the agent's vault.
// The registry record is read-only here: the program only checks seeds, it
// does not track deposits.
func (b *Builder) Deposit(name string, amount uint64, source, authority domain.Address) *domain.Instruction {
	record, vault := b.deriver.AgentAddresses(name)
	return &domain.Instruction{
		Name: "deposit",
		Accounts: []domain.AccountMeta{
			domain.Meta(record, false),
			domain.Meta(vault, true),
			domain.Meta(source, true),
			domain.SignerMeta(authority, false),
			domain.Meta(TokenProgram, false),
		},
		Args: map[string]interface{}{"amount": amount},
	}
}

// Withdraw moves tokens from the agent's vault to an external token account.
// Like Deposit, the registry record stays read-only.
func (b *Builder) Withdraw(name string, amount uint64, destination, authority domain.Address) *domain.Instruction {
	record, vault := b.deriver.AgentAddresses(name)
	return &domain.Instruction{
		Name: "withdraw",
		Accounts: []domain.AccountMeta{
			domain.Meta(record, false),
			domain.Meta(vault, true),
			domain.Meta(destination, true),
			domain.SignerMeta(authority, false),
			domain.Meta(TokenProgram, false),
		},
		Args: map[string]interface{}{"amount": amount},
	}
}

// TransferByName pays another agent by name, vault to vault.
func (b *Builder) TransferByName(from, to string, amount uint64, memo string, authority domain.Address) *domain.Instruction {
	senderRecord, senderVault := b.deriver.AgentAddresses(from)
	receiverRecord, receiverVault := b.deriver.AgentAddresses(to)
	return &domain.Instruction{
		Name: "transfer_by_name",
		Accounts: []domain.AccountMeta{
			domain.Meta(senderRecord, true),
			domain.Meta(senderVault, true),
			domain.Meta(receiverRecord, true),
			domain.Meta(receiverVault, true),
			domain.SignerMeta(authority, false),
			domain.Meta(TokenProgram, false),
		},
		Args: map[string]interface{}{"amount": amount, "memo": memo},
	}
}

// BatchPayment pays several recipients in one instruction. Recipient
// registry/vault pairs trail the fixed accounts in entry order.
func (b *Builder) BatchPayment(from string, entries []ports.BatchEntry, authority domain.Address) *domain.Instruction {
	senderRecord, senderVault := b.deriver.AgentAddresses(from)
	accounts := []domain.AccountMeta{
		domain.Meta(senderRecord, true),
		domain.Meta(senderVault, true),
		domain.SignerMeta(authority, false),
		domain.Meta(TokenProgram, false),
	}
	amounts := make([]uint64, 0, len(entries))
	memos := make([]string, 0, len(entries))
	for _, e := range entries {
		record, vault := b.deriver.AgentAddresses(e.RecipientName)
		accounts = append(accounts, domain.Meta(record, true), domain.Meta(vault, true))
		amounts = append(amounts, e.Amount)
		memos = append(memos, e.Memo)
	}
	return &domain.Instruction{
		Name:     "batch_payment",
		Accounts: accounts,
		Args:     map[string]interface{}{"amounts": amounts, "memos": memos},
	}
}

// SplitPayment divides a total among recipients by basis-point shares.
// Recipient registry/vault pairs trail the fixed accounts in entry order.
func (b *Builder) SplitPayment(from string, total uint64, entries []ports.SplitEntry, memo string, authority domain.Address) *domain.Instruction {
	senderRecord, senderVault := b.deriver.AgentAddresses(from)
	accounts := []domain.AccountMeta{
		domain.Meta(senderRecord, true),
		domain.Meta(senderVault, true),
		domain.SignerMeta(authority, false),
		domain.Meta(TokenProgram, false),
	}
	shares := make([]uint16, 0, len(entries))
	for _, e := range entries {
		record, vault := b.deriver.AgentAddresses(e.Name)
		accounts = append(accounts, domain.Meta(record, true), domain.Meta(vault, true))
		shares = append(shares, e.ShareBps)
	}
	return &domain.Instruction{
		Name:     "split_payment",
		Accounts: accounts,
		Args:     map[string]interface{}{"total_amount": total, "shares_bps": shares, "memo": memo},
	}
}

// CreateSubscription opens a recurring payment agreement. The authority also
// pays the record's rent.
func (b *Builder) CreateSubscription(sender, receiver string, amount uint64, intervalSeconds int64, authority domain.Address) *domain.Instruction {
	senderRecord, _ := b.deriver.AgentAddresses(sender)
	receiverRecord, _ := b.deriver.AgentAddresses(receiver)
	sub := b.deriver.SubscriptionAddress(sender, receiver)
	return &domain.Instruction{
		Name: "create_subscription",
		Accounts: []domain.AccountMeta{
			domain.Meta(sub, true),
			domain.Meta(senderRecord, false),
			domain.Meta(receiverRecord, false),
			domain.SignerMeta(authority, false),
			domain.SignerMeta(authority, true),
			domain.Meta(SystemProgram, false),
		},
		Args: map[string]interface{}{"amount": amount, "interval_seconds": intervalSeconds},
	}
}

// ExecuteSubscription settles one due period. Any party may crank it.
func (b *Builder) ExecuteSubscription(sender, receiver string, cranker domain.Address) *domain.Instruction {
	senderRecord, senderVault := b.deriver.AgentAddresses(sender)
	receiverRecord, receiverVault := b.deriver.AgentAddresses(receiver)
	sub := b.deriver.SubscriptionAddress(sender, receiver)
	return &domain.Instruction{
		Name: "execute_subscription",
		Accounts: []domain.AccountMeta{
			domain.Meta(sub, true),
			domain.Meta(senderRecord, true),
			domain.Meta(receiverRecord, true),
			domain.Meta(senderVault, true),
			domain.Meta(receiverVault, true),
			domain.Meta(TokenProgram, false),
			domain.SignerMeta(cranker, false),
		},
		Args: map[string]interface{}{},
	}
}

// CancelSubscription deactivates an agreement.
func (b *Builder) CancelSubscription(sender, receiver string, authority domain.Address) *domain.Instruction {
	sub := b.deriver.SubscriptionAddress(sender, receiver)
	return &domain.Instruction{
		Name: "cancel_subscription",
		Accounts: []domain.AccountMeta{
			domain.Meta(sub, true),
			domain.SignerMeta(authority, false),
		},
		Args: map[string]interface{}{},
	}
}

// Approve grants a spender a pull allowance. The authority also pays the
// record's rent.
func (b *Builder) Approve(owner, spender string, amount uint64, authority domain.Address) *domain.Instruction {
	ownerRecord, _ := b.deriver.AgentAddresses(owner)
	spenderRecord, _ := b.deriver.AgentAddresses(spender)
	allowance := b.deriver.AllowanceAddress(owner, spender)
	return &domain.Instruction{
		Name: "approve",
		Accounts: []domain.AccountMeta{
			domain.Meta(allowance, true),
			domain.Meta(ownerRecord, false),
			domain.Meta(spenderRecord, false),
			domain.SignerMeta(authority, false),
			domain.SignerMeta(authority, true),
			domain.Meta(SystemProgram, false),
		},
		Args: map[string]interface{}{"amount": amount},
	}
}

// IncreaseAllowance raises the remaining pull budget.
func (b *Builder) IncreaseAllowance(owner, spender string, additional uint64, authority domain.Address) *domain.Instruction {
	allowance := b.deriver.AllowanceAddress(owner, spender)
	return &domain.Instruction{
		Name: "increase_allowance",
		Accounts: []domain.AccountMeta{
			domain.Meta(allowance, true),
			domain.SignerMeta(authority, false),
		},
		Args: map[string]interface{}{"additional_amount": additional},
	}
}

// RevokeAllowance deactivates an allowance.
func (b *Builder) RevokeAllowance(owner, spender string, authority domain.Address) *domain.Instruction {
	allowance := b.deriver.AllowanceAddress(owner, spender)
	return &domain.Instruction{
		Name: "revoke_allowance",
		Accounts: []domain.AccountMeta{
			domain.Meta(allowance, true),
			domain.SignerMeta(authority, false),
		},
		Args: map[string]interface{}{},
	}
}

// TransferFrom pulls from the owner's vault under an allowance, signed by the
// spender's authority.
func (b *Builder) TransferFrom(owner, spender string, amount uint64, memo string, spenderAuthority domain.Address) *domain.Instruction {
	ownerRecord, ownerVault := b.deriver.AgentAddresses(owner)
	spenderRecord, spenderVault := b.deriver.AgentAddresses(spender)
	allowance := b.deriver.AllowanceAddress(owner, spender)
	return &domain.Instruction{
		Name: "transfer_from",
		Accounts: []domain.AccountMeta{
			domain.Meta(allowance, true),
			domain.Meta(ownerRecord, true),
			domain.Meta(spenderRecord, true),
			domain.Meta(ownerVault, true),
			domain.Meta(spenderVault, true),
			domain.SignerMeta(spenderAuthority, false),
			domain.Meta(TokenProgram, false),
		},
		Args: map[string]interface{}{"amount": amount, "memo": memo},
	}
}

// InitInvoiceCounter creates the shared invoice id counter. Runs once per
// deployment.
func (b *Builder) InitInvoiceCounter(payer domain.Address) *domain.Instruction {
	counter := b.deriver.InvoiceCounterAddress()
	return &domain.Instruction{
		Name: "init_invoice_counter",
		Accounts: []domain.AccountMeta{
			domain.Meta(counter, true),
			domain.SignerMeta(payer, true),
			domain.Meta(SystemProgram, false),
		},
		Args: map[string]interface{}{},
	}
}

// CreateInvoice opens a payment request under the next counter id. The id
// must be read from the counter immediately before assembly.
func (b *Builder) CreateInvoice(id uint64, requester, payer string, amount uint64, memo string, expiresInSeconds int64, authority domain.Address) *domain.Instruction {
	requesterRecord, _ := b.deriver.AgentAddresses(requester)
	payerRecord, _ := b.deriver.AgentAddresses(payer)
	invoice := b.deriver.InvoiceAddress(id)
	counter := b.deriver.InvoiceCounterAddress()
	return &domain.Instruction{
		Name: "create_invoice",
		Accounts: []domain.AccountMeta{
			domain.Meta(invoice, true),
			domain.Meta(counter, true),
			domain.Meta(requesterRecord, false),
			domain.Meta(payerRecord, false),
			domain.SignerMeta(authority, false),
			domain.SignerMeta(authority, true),
			domain.Meta(SystemProgram, false),
		},
		Args: map[string]interface{}{
			"amount":             amount,
			"memo":               memo,
			"expires_in_seconds": expiresInSeconds,
		},
	}
}

// PayInvoice settles a pending invoice from the payer's vault.
func (b *Builder) PayInvoice(id uint64, requester, payer string, authority domain.Address) *domain.Instruction {
	requesterRecord, requesterVault := b.deriver.AgentAddresses(requester)
	payerRecord, payerVault := b.deriver.AgentAddresses(payer)
	invoice := b.deriver.InvoiceAddress(id)
	return &domain.Instruction{
		Name: "pay_invoice",
		Accounts: []domain.AccountMeta{
			domain.Meta(invoice, true),
			domain.Meta(payerRecord, true),
			domain.Meta(requesterRecord, true),
			domain.Meta(payerVault, true),
			domain.Meta(requesterVault, true),
			domain.SignerMeta(authority, false),
			domain.Meta(TokenProgram, false),
		},
		Args: map[string]interface{}{},
	}
}

// RejectInvoice lets the payer decline a pending invoice.
func (b *Builder) RejectInvoice(id uint64, payer string, authority domain.Address) *domain.Instruction {
	payerRecord, _ := b.deriver.AgentAddresses(payer)
	invoice := b.deriver.InvoiceAddress(id)
	return &domain.Instruction{
		Name: "reject_invoice",
		Accounts: []domain.AccountMeta{
			domain.Meta(invoice, true),
			domain.Meta(payerRecord, false),
			domain.SignerMeta(authority, false),
		},
		Args: map[string]interface{}{},
	}
}

// CancelInvoice lets the requester withdraw a pending invoice.
func (b *Builder) CancelInvoice(id uint64, authority domain.Address) *domain.Instruction {
	invoice := b.deriver.InvoiceAddress(id)
	return &domain.Instruction{
		Name: "cancel_invoice",
		Accounts: []domain.AccountMeta{
			domain.Meta(invoice, true),
			domain.SignerMeta(authority, false),
		},
		Args: map[string]interface{}{},
	}
}
