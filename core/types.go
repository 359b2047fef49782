package core

// Core identifiers and the fixed-width balance type shared by every
// package under core. Balances are tracked as 256-bit unsigned
// integers (github.com/holiman/uint256) so that intermediate products
// in the pricing kernel never overflow, then narrowed to 128 bits at
// the storage boundary.

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Address represents a 20-byte account identifier, the vault, a pool
// account, or any holder in the external ledgers.
type Address [20]byte

// AddressZero is the sentinel mint/burn source address.
var AddressZero Address

func (a Address) String() string { return fmt.Sprintf("0x%x", [20]byte(a)) }

func (a Address) MarshalJSON() ([]byte, error) { return []byte(`"` + a.String() + `"`), nil }

func (h Handle) String() string { return fmt.Sprintf("0x%x", [20]byte(h)) }

func (h Handle) MarshalJSON() ([]byte, error) { return []byte(`"` + h.String() + `"`), nil }

// TokenId selects one item within a multi-token collection.
type TokenId uint64

// PoolIndex is the monotonically increasing pool counter (§6: u32).
type PoolIndex uint32

// Handle identifies a ledger instance (a fungible-token or multi-token
// collection) in an external ledger component.
type Handle [20]byte

// maxBalanceBits is the narrowing boundary: Balance is a 128-bit
// unsigned quantity even though arithmetic is carried out in 256 bits.
const maxBalanceBits = 128

// Balance is a 128-bit unsigned quantity backed by a 256-bit integer so
// that callers can freely multiply two Balances together without
// overflow before narrowing the final result.
type Balance struct {
	v uint256.Int
}

// NewBalance builds a Balance from a uint64, always representable.
func NewBalance(v uint64) Balance {
	var b Balance
	b.v.SetUint64(v)
	return b
}

// ZeroBalance is the additive identity.
func ZeroBalance() Balance { return Balance{} }

// Int returns a copy of the underlying 256-bit integer for use in the
// pricing kernel; mutating the result leaves the Balance unchanged.
func (b Balance) Int() *uint256.Int { return new(uint256.Int).Set(&b.v) }

// FromInt narrows a 256-bit intermediate result to a Balance. It fails
// with ErrOverflow if the value does not fit in 128 bits.
func FromInt(n *uint256.Int) (Balance, error) {
	if n.BitLen() > maxBalanceBits {
		return Balance{}, ErrOverflow
	}
	var b Balance
	b.v.Set(n)
	return b, nil
}

// FromIntSaturating narrows a 256-bit intermediate result to a
// Balance, returning zero instead of an error if it overflows 128
// bits. Used only where spec.md §9 documents that behavior
// explicitly (remove_liquidity's share-of-reserve division).
func FromIntSaturating(n *uint256.Int) Balance {
	if n.BitLen() > maxBalanceBits {
		return Balance{}
	}
	var b Balance
	b.v.Set(n)
	return b
}

// IsZero reports whether the balance is zero.
func (b Balance) IsZero() bool { return b.v.IsZero() }

// Cmp compares two balances the way uint256.Int.Cmp does.
func (b Balance) Cmp(o Balance) int { return b.v.Cmp(&o.v) }

// LessThan reports whether b < o.
func (b Balance) LessThan(o Balance) bool { return b.Cmp(o) < 0 }

// Add returns a checked sum, failing ErrOverflow on a 128-bit wrap.
func (b Balance) Add(o Balance) (Balance, error) {
	sum := new(uint256.Int).Add(&b.v, &o.v)
	return FromInt(sum)
}

// Sub returns a checked difference, failing ErrOverflow if o > b.
func (b Balance) Sub(o Balance) (Balance, error) {
	if b.v.Lt(&o.v) {
		return Balance{}, ErrOverflow
	}
	diff := new(uint256.Int).Sub(&b.v, &o.v)
	return FromInt(diff)
}

// SaturatingSub returns b - o, clamped to zero instead of erroring.
// Used only for the local `refund` accumulator in swap_currency_to_token
// (spec.md §9) — every other mutation uses the checked Sub above.
func (b Balance) SaturatingSub(o Balance) Balance {
	if b.v.Lt(&o.v) {
		return Balance{}
	}
	diff := new(uint256.Int).Sub(&b.v, &o.v)
	return Balance{v: *diff}
}

func (b Balance) String() string { return b.v.Dec() }

// MarshalJSON renders the balance as a quoted decimal string, since a
// 128-bit value does not fit a JSON number without precision loss.
func (b Balance) MarshalJSON() ([]byte, error) { return []byte(`"` + b.v.Dec() + `"`), nil }

// Uint64 narrows to a uint64, for callers (CLI, JSON views) that know
// the value fits. Values above 2^64-1 are clamped to MaxUint64.
func (b Balance) Uint64() uint64 {
	if !b.v.IsUint64() {
		return ^uint64(0)
	}
	return b.v.Uint64()
}

// ParseBalance parses a base-10 string into a Balance.
func ParseBalance(s string) (Balance, error) {
	n, err := uint256.FromDecimal(s)
	if err != nil {
		return Balance{}, fmt.Errorf("parse balance %q: %w", s, err)
	}
	if n.BitLen() > maxBalanceBits {
		return Balance{}, fmt.Errorf("parse balance %q: %w", s, ErrOverflow)
	}
	return Balance{v: *n}, nil
}
