package core

import "errors"

// Error taxonomy (spec.md §7). Every public operation fails with
// exactly one of these sentinels, optionally wrapped with fmt.Errorf
// for caller context (as ParseBalance does); errors.Is matches both.
var (
	ErrCurrencyAccountNotFound     = errors.New("currency account not found")
	ErrTokenAccountNotFound        = errors.New("token account not found")
	ErrOverflow                    = errors.New("overflow")
	ErrInvalidPoolAccount          = errors.New("invalid pool account")
	ErrNullMaxCurrency             = errors.New("max currency is zero")
	ErrNullTokensAmount            = errors.New("token amount is zero")
	ErrInsufficientCurrencyAmount  = errors.New("insufficient currency amount")
	ErrInsufficientTokens          = errors.New("insufficient tokens")
	ErrMaxCurrencyAmountExceeded   = errors.New("max currency amount exceeded")
	ErrInvalidCurrencyAmount       = errors.New("invalid currency amount")
	ErrNullTotalLiquidity          = errors.New("null total liquidity")
	ErrNullTokensBought            = errors.New("null tokens bought")
	ErrNullTokensSold              = errors.New("null tokens sold")
	ErrEmptyReserve                = errors.New("empty reserve")
	ErrUnsortedOrDuplicateTokenIds = errors.New("unsorted or duplicate token ids")
)
