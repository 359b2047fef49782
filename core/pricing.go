package core

// Fixed-point pricing kernel (spec.md §4.1, C1). Every intermediate
// product is computed in 256-bit arithmetic before narrowing, mirroring
// original_source/pallets/exchange/nft-pool's use of sp_core::U256
// around get_buy_price/get_sell_price/div_round.

import "github.com/holiman/uint256"

// feeNum/feeDen express the 0.5% swap fee as a 995/1000 multiplier,
// i.e. FEE_NUM/FEE_DEN from spec.md §6.
const (
	feeNum = 995
	feeDen = 1000
)

// DivRound returns ceil(num/den) and whether any remainder existed.
// den must be nonzero; callers are expected to have already checked
// reserves are nonzero (EmptyReserve) before calling this.
func DivRound(num, den *uint256.Int) (quotient *uint256.Int, rounded bool) {
	q, r := new(uint256.Int), new(uint256.Int)
	q.DivMod(num, den, r)
	if r.IsZero() {
		return q, false
	}
	return new(uint256.Int).AddUint64(q, 1), true
}

// BuyPrice returns the currency cost of buying amountOut of the
// id-indexed token, given the id's reserves. Rounds up in favor of the
// pool. Fails EmptyReserve if either reserve is zero, or Overflow if
// amountOut >= reserveOut (the pool cannot fulfill the trade).
func BuyPrice(amountOut, reserveIn, reserveOut Balance) (Balance, error) {
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return Balance{}, ErrEmptyReserve
	}
	if !amountOut.LessThan(reserveOut) {
		return Balance{}, ErrOverflow
	}

	num := new(uint256.Int).Mul(reserveIn.Int(), amountOut.Int())
	num.Mul(num, uint256.NewInt(feeDen))

	denBase := new(uint256.Int).Sub(reserveOut.Int(), amountOut.Int())
	den := new(uint256.Int).Mul(denBase, uint256.NewInt(feeNum))

	q, _ := DivRound(num, den)
	return FromInt(q)
}

// SellPrice returns the currency received for selling amountIn of the
// id-indexed token, given the id's reserves. Rounds down in favor of
// the pool.
func SellPrice(amountIn, reserveIn, reserveOut Balance) (Balance, error) {
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return Balance{}, ErrEmptyReserve
	}

	amountInWithFee := new(uint256.Int).Mul(amountIn.Int(), uint256.NewInt(feeNum))

	num := new(uint256.Int).Mul(amountInWithFee, reserveOut.Int())

	den := new(uint256.Int).Mul(reserveIn.Int(), uint256.NewInt(feeDen))
	den.Add(den, amountInWithFee)

	out := new(uint256.Int).Div(num, den)
	return FromInt(out)
}
