package core

// Token-reserve reader (spec.md §4.4, C4): validates a caller-supplied
// id batch (sorted, no duplicates, per spec.md I3) and resolves the
// currency reserve and total supply for each id in one pass. Grounded
// on core/syn1155.go's BatchBalanceOf, which validates its id slice the
// same way before looping.

// checkSortedNoDup enforces spec.md I3: ids must be strictly increasing.
func checkSortedNoDup(ids []TokenId) error {
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			return ErrUnsortedOrDuplicateTokenIds
		}
	}
	return nil
}

// TokenReserves is the per-id (currencyReserve, totalSupply) pair a
// swap or liquidity call needs to price against.
type TokenReserves struct {
	Id              TokenId
	CurrencyReserve Balance
	TotalSupply     Balance
}

// reservesFor validates ids and returns their current reserves, in the
// same order as the input. It never mutates the store.
func (s *ReserveStore) reservesFor(pool Address, ids []TokenId) ([]TokenReserves, error) {
	if len(ids) == 0 {
		return nil, ErrNullTokensAmount
	}
	if err := checkSortedNoDup(ids); err != nil {
		return nil, err
	}
	out := make([]TokenReserves, len(ids))
	for i, id := range ids {
		out[i] = TokenReserves{
			Id:              id,
			CurrencyReserve: s.CurrencyReserve(pool, id),
			TotalSupply:     s.TotalSupply(pool, id),
		}
	}
	return out, nil
}
