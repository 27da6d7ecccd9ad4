package domain

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Address is a 32-byte ledger account address, displayed in base58.
type Address [32]byte

// ParseAddress decodes a base58 address string.
func ParseAddress(s string) (Address, error) {
	var a Address
	raw, err := base58.Decode(s)
	if err != nil {
		return a, fmt.Errorf("decoding address %q: %w", s, err)
	}
	if len(raw) != 32 {
		return a, fmt.Errorf("address %q: expected 32 bytes, got %d", s, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

// MustAddress parses a base58 address and panics on failure.
// Intended for protocol constants only.
func MustAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

// Bytes returns the raw 32-byte form.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero reports whether the address is all zero bytes.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *Address) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("address: expected JSON string")
	}
	parsed, err := ParseAddress(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
