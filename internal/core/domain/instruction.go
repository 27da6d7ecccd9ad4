package domain

// AccountMeta is one entry in an instruction's ordered account list. Order,
// signer flags, and writability must match the ledger program's expected
// layout exactly or the instruction is rejected on submission.
type AccountMeta struct {
	Address    Address `json:"address"`
	IsSigner   bool    `json:"is_signer"`
	IsWritable bool    `json:"is_writable"`
}

// Instruction is an unsigned operation descriptor. An external signer turns
// it into a submittable transaction; the gateway never signs or submits.
type Instruction struct {
	Name     string                 `json:"name"`
	Accounts []AccountMeta          `json:"accounts"`
	Args     map[string]interface{} `json:"args"`
}

// Meta builds a non-signer AccountMeta.
func Meta(addr Address, writable bool) AccountMeta {
	return AccountMeta{Address: addr, IsWritable: writable}
}

// SignerMeta builds a signer AccountMeta.
func SignerMeta(addr Address, writable bool) AccountMeta {
	return AccountMeta{Address: addr, IsSigner: true, IsWritable: writable}
}
