package core

// Liquidity engine (spec.md §4.6, C6). Grounded on
// core/liquidity_pools.go's AddLiquidity/RemoveLiquidity, generalized
// from one reserve pair to a batch of (pool, id) reserves, per the
// original pallet's do_add_liquidity / do_remove_liquidity.

import "github.com/holiman/uint256"

// minInitialCurrency is MIN_INITIAL_CURRENCY from spec.md §6: the
// minimum max_currencies[i] accepted for a pool's first provision of an
// id, bounding second-deposit rounding error.
var minInitialCurrency = NewBalance(1_000_000_000)

// AddLiquidity deposits token_amounts[i] of ids[i] for each i, minting
// LP shares proportionally (or bootstrapping the id if this is its
// first provision) (spec.md §4.6.1).
func (a *AMM) AddLiquidity(lp, poolAccount Address, ids []TokenId, tokenAmounts, maxCurrencies []Balance) ([]Balance, error) {
	if len(ids) != len(tokenAmounts) || len(ids) != len(maxCurrencies) {
		return nil, ErrNullTokensAmount
	}

	pool, err := a.lookupPool(poolAccount)
	if err != nil {
		return nil, err
	}
	if err := checkSortedNoDup(ids); err != nil {
		return nil, err
	}

	currencyAmounts := make([]Balance, len(ids))
	sharesToMint := make([]Balance, len(ids))

	err = a.withStaged(func() error {
		if err := a.token.BatchTransferFrom(lp, pool.TokenHandle, lp, pool.Vault, ids, tokenAmounts); err != nil {
			return err
		}

		vaultBalances, err := a.token.BalanceOfBatch(pool.TokenHandle, repeatAddr(pool.Vault, len(ids)), ids)
		if err != nil {
			return err
		}

		for i, id := range ids {
			amt := tokenAmounts[i]
			maxCurrency := maxCurrencies[i]
			if maxCurrency.IsZero() {
				return ErrNullMaxCurrency
			}
			if amt.IsZero() {
				return ErrNullTokensAmount
			}

			supply := a.reserves.TotalSupply(poolAccount, id)
			if supply.IsZero() {
				if maxCurrency.LessThan(minInitialCurrency) {
					return ErrInvalidCurrencyAmount
				}
				a.reserves.SetCurrencyReserve(poolAccount, id, maxCurrency)
				a.reserves.SetTotalSupply(poolAccount, id, maxCurrency)
				sharesToMint[i] = maxCurrency
				currencyAmounts[i] = maxCurrency
				continue
			}

			currencyReserve := a.reserves.CurrencyReserve(poolAccount, id)
			postTransferTokenReserve := vaultBalances[i]
			preTransferTokenReserve, err := postTransferTokenReserve.Sub(amt)
			if err != nil {
				return err
			}

			num := new(uint256.Int).Mul(amt.Int(), currencyReserve.Int())
			q, rounded := DivRound(num, preTransferTokenReserve.Int())
			c, err := FromInt(q)
			if err != nil {
				return err
			}
			if maxCurrency.Cmp(c) < 0 {
				return ErrMaxCurrencyAmountExceeded
			}

			if err := a.reserves.AddCurrencyReserve(poolAccount, id, c); err != nil {
				return err
			}

			cFloor := c
			if rounded {
				cFloor, err = c.Sub(NewBalance(1))
				if err != nil {
					return err
				}
			}

			mintNum := new(uint256.Int).Mul(cFloor.Int(), supply.Int())
			minted, err := FromInt(new(uint256.Int).Div(mintNum, currencyReserve.Int()))
			if err != nil {
				return err
			}

			if err := a.reserves.AddTotalSupply(poolAccount, id, minted); err != nil {
				return err
			}

			sharesToMint[i] = minted
			currencyAmounts[i] = c
		}

		if err := a.token.BatchMint(pool.Vault, pool.LPHandle, lp, ids, sharesToMint); err != nil {
			return err
		}

		total := ZeroBalance()
		for _, c := range currencyAmounts {
			total, err = total.Add(c)
			if err != nil {
				return err
			}
		}
		return a.currency.TransferFrom(pool.Vault, pool.CurrencyHandle, lp, pool.Vault, total)
	})
	if err != nil {
		return nil, err
	}

	a.events.EmitLiquidityAdded(LiquidityAdded{
		ID:              newEventID(),
		Provider:        lp,
		Pool:            poolAccount,
		Ids:             ids,
		TokenAmounts:    tokenAmounts,
		CurrencyAmounts: currencyAmounts,
		Timestamp:       nowFunc(),
	})
	metricLiquidityAdds.WithLabelValues(poolAccount.String()).Inc()
	return sharesToMint, nil
}

// RemoveLiquidity burns shares[i] of ids[i] for each i, returning
// proportional currency and tokens (spec.md §4.6.2). If a payout
// shares[i]*reserve/supply does not fit in 128 bits it is taken as zero
// (FromIntSaturating) rather than failing ErrOverflow.
func (a *AMM) RemoveLiquidity(lp, poolAccount Address, ids []TokenId, shares, minCurrencies, minTokens []Balance) ([]Balance, []Balance, error) {
	if len(ids) != len(shares) || len(ids) != len(minCurrencies) || len(ids) != len(minTokens) {
		return nil, nil, ErrNullTokensAmount
	}

	pool, err := a.lookupPool(poolAccount)
	if err != nil {
		return nil, nil, err
	}
	if err := checkSortedNoDup(ids); err != nil {
		return nil, nil, err
	}

	currencyOut := make([]Balance, len(ids))
	tokensOut := make([]Balance, len(ids))

	err = a.withStaged(func() error {
		if err := a.token.BatchTransferFrom(lp, pool.LPHandle, lp, pool.Vault, ids, shares); err != nil {
			return err
		}

		vaultBalances, err := a.token.BalanceOfBatch(pool.TokenHandle, repeatAddr(pool.Vault, len(ids)), ids)
		if err != nil {
			return err
		}

		for i, id := range ids {
			supply := a.reserves.TotalSupply(poolAccount, id)
			if supply.IsZero() {
				return ErrNullTotalLiquidity
			}
			currencyReserve := a.reserves.CurrencyReserve(poolAccount, id)
			tokenReserve := vaultBalances[i]

			cNum := new(uint256.Int).Mul(shares[i].Int(), currencyReserve.Int())
			cOut := FromIntSaturating(new(uint256.Int).Div(cNum, supply.Int()))

			tNum := new(uint256.Int).Mul(shares[i].Int(), tokenReserve.Int())
			tOut := FromIntSaturating(new(uint256.Int).Div(tNum, supply.Int()))

			if cOut.Cmp(minCurrencies[i]) < 0 {
				return ErrInsufficientCurrencyAmount
			}
			if tOut.Cmp(minTokens[i]) < 0 {
				return ErrInsufficientTokens
			}

			if err := a.reserves.SubTotalSupply(poolAccount, id, shares[i]); err != nil {
				return err
			}
			if err := a.reserves.SubCurrencyReserve(poolAccount, id, cOut); err != nil {
				return err
			}

			currencyOut[i] = cOut
			tokensOut[i] = tOut
		}

		if err := a.token.BatchBurn(pool.Vault, pool.LPHandle, pool.Vault, ids, shares); err != nil {
			return err
		}

		total := ZeroBalance()
		for _, c := range currencyOut {
			total, err = total.Add(c)
			if err != nil {
				return err
			}
		}
		if err := a.currency.TransferFrom(pool.Vault, pool.CurrencyHandle, pool.Vault, lp, total); err != nil {
			return err
		}

		return a.token.BatchTransferFrom(pool.Vault, pool.TokenHandle, pool.Vault, lp, ids, tokensOut)
	})
	if err != nil {
		return nil, nil, err
	}

	a.events.EmitLiquidityRemoved(LiquidityRemoved{
		ID:              newEventID(),
		Provider:        lp,
		Pool:            poolAccount,
		Ids:             ids,
		TokenAmounts:    tokensOut,
		CurrencyAmounts: currencyOut,
		Timestamp:       nowFunc(),
	})
	metricLiquidityRemoves.WithLabelValues(poolAccount.String()).Inc()
	return currencyOut, tokensOut, nil
}
