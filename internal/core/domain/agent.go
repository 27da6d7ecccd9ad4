package domain

import "math"

// MinorUnitScale converts display-unit USDC amounts to the smallest
// indivisible unit (6 decimals).
const MinorUnitScale = 1_000_000

// Name length bounds enforced by the ledger program.
const (
	MinNameLen = 1
	MaxNameLen = 32
)

// MaxMemoBytes is the memo limit in bytes (UTF-8), enforced on every
// memo-carrying operation.
const MaxMemoBytes = 128

// Agent is a named participant reconstructed from its ledger record.
// Totals are in minor units and only ever grow; the ledger program is the
// sole writer.
type Agent struct {
	Name          string  `json:"name"`
	Authority     Address `json:"authority"`
	Vault         Address `json:"vault"`
	CreatedAt     int64   `json:"created_at"`
	TotalSent     uint64  `json:"total_sent"`
	TotalReceived uint64  `json:"total_received"`
	DailyLimit    uint64  `json:"daily_limit"`
	DailySpent    uint64  `json:"daily_spent"`
	LastSpendDay  int64   `json:"last_spend_day"`
}

// HasSpendingCap reports whether a daily limit is configured (0 = unlimited).
func (a *Agent) HasSpendingCap() bool {
	return a.DailyLimit > 0
}

// VolumeUSDC is combined sent+received volume in display units.
func (a *Agent) VolumeUSDC() float64 {
	return FromMinorUnits(a.TotalSent) + FromMinorUnits(a.TotalReceived)
}

// TenureDays is whole days since registration, at the given instant.
func (a *Agent) TenureDays(now int64) int64 {
	return (now - a.CreatedAt) / 86400
}

// ValidName reports whether a name is within the 1-32 character bounds.
func ValidName(name string) bool {
	return len(name) >= MinNameLen && len(name) <= MaxNameLen
}

// ToMinorUnits converts a display-unit amount to minor units, always
// flooring. Never rounds up: 1.9999999 USDC is 1999999 units.
func ToMinorUnits(amount float64) uint64 {
	return uint64(math.Floor(amount * MinorUnitScale))
}

// FromMinorUnits converts minor units back to display units.
func FromMinorUnits(units uint64) float64 {
	return float64(units) / MinorUnitScale
}
