package core

// Swap engine (spec.md §4.5, C5). Grounded on core/liquidity_pools.go's
// Swap method, generalized from a single-pair swap to the batched
// per-id settlement the original pallet's do_swap_currency_to_token /
// do_swap_token_to_currency implement.

// SwapCurrencyToToken buys amountsOut[i] of ids[i] for each i, escrowing
// up to maxCurrency and refunding the unspent remainder (spec.md §4.5.1).
func (a *AMM) SwapCurrencyToToken(buyer, poolAccount Address, ids []TokenId, amountsOut []Balance, maxCurrency Balance, recipient Address) (Balance, error) {
	if len(ids) != len(amountsOut) {
		return Balance{}, ErrNullTokensBought
	}
	if maxCurrency.IsZero() {
		return Balance{}, ErrNullMaxCurrency
	}

	pool, err := a.lookupPool(poolAccount)
	if err != nil {
		return Balance{}, err
	}
	if err := checkSortedNoDup(ids); err != nil {
		return Balance{}, err
	}

	var spent Balance

	err = a.withStaged(func() error {
		if err := a.currency.TransferFrom(pool.Vault, pool.CurrencyHandle, buyer, pool.Vault, maxCurrency); err != nil {
			return err
		}

		tokenReserves, err := a.reserves.reservesFor(poolAccount, ids)
		if err != nil {
			return err
		}
		vaultBalances, err := a.token.BalanceOfBatch(pool.TokenHandle, repeatAddr(pool.Vault, len(ids)), ids)
		if err != nil {
			return err
		}

		refund := maxCurrency
		for i, id := range ids {
			amountOut := amountsOut[i]
			if amountOut.IsZero() {
				return ErrNullTokensBought
			}

			cost, err := BuyPrice(amountOut, tokenReserves[i].CurrencyReserve, vaultBalances[i])
			if err != nil {
				return err
			}
			if cost.Cmp(refund) > 0 {
				return ErrMaxCurrencyAmountExceeded
			}
			refund = refund.SaturatingSub(cost)

			if err := a.reserves.AddCurrencyReserve(poolAccount, id, cost); err != nil {
				return err
			}
		}

		if !refund.IsZero() {
			if err := a.currency.TransferFrom(pool.Vault, pool.CurrencyHandle, pool.Vault, buyer, refund); err != nil {
				return err
			}
		}

		if err := a.token.BatchTransferFrom(pool.Vault, pool.TokenHandle, pool.Vault, recipient, ids, amountsOut); err != nil {
			return err
		}

		spent, err = maxCurrency.Sub(refund)
		return err
	})
	if err != nil {
		return Balance{}, err
	}

	a.events.EmitSwapCurrencyToToken(SwapCurrencyToToken{
		ID:         newEventID(),
		Buyer:      buyer,
		Pool:       poolAccount,
		Ids:        ids,
		AmountsOut: amountsOut,
		Spent:      spent,
		Recipient:  recipient,
		Timestamp:  nowFunc(),
	})
	metricSwapsBuy.WithLabelValues(poolAccount.String()).Inc()
	return spent, nil
}

// SwapTokenToCurrency sells amountsIn[i] of ids[i] for each i, requiring
// the total proceeds meet minCurrency (spec.md §4.5.2).
func (a *AMM) SwapTokenToCurrency(seller, poolAccount Address, ids []TokenId, amountsIn []Balance, minCurrency Balance, recipient Address) (Balance, error) {
	if len(ids) != len(amountsIn) {
		return Balance{}, ErrNullTokensSold
	}

	pool, err := a.lookupPool(poolAccount)
	if err != nil {
		return Balance{}, err
	}
	if err := checkSortedNoDup(ids); err != nil {
		return Balance{}, err
	}

	var total Balance

	err = a.withStaged(func() error {
		if err := a.token.BatchTransferFrom(seller, pool.TokenHandle, seller, pool.Vault, ids, amountsIn); err != nil {
			return err
		}

		currencyReserves, err := a.reserves.reservesFor(poolAccount, ids)
		if err != nil {
			return err
		}
		vaultBalances, err := a.token.BalanceOfBatch(pool.TokenHandle, repeatAddr(pool.Vault, len(ids)), ids)
		if err != nil {
			return err
		}

		total = ZeroBalance()
		for i, id := range ids {
			amountIn := amountsIn[i]
			if amountIn.IsZero() {
				return ErrNullTokensSold
			}

			preTradeTokenReserve, err := vaultBalances[i].Sub(amountIn)
			if err != nil {
				return err
			}

			proceeds, err := SellPrice(amountIn, preTradeTokenReserve, currencyReserves[i].CurrencyReserve)
			if err != nil {
				return err
			}

			total, err = total.Add(proceeds)
			if err != nil {
				return err
			}
			if err := a.reserves.SubCurrencyReserve(poolAccount, id, proceeds); err != nil {
				return err
			}
		}

		if total.Cmp(minCurrency) < 0 {
			return ErrInsufficientCurrencyAmount
		}

		return a.currency.TransferFrom(pool.Vault, pool.CurrencyHandle, pool.Vault, recipient, total)
	})
	if err != nil {
		return Balance{}, err
	}

	a.events.EmitSwapTokenToCurrency(SwapTokenToCurrency{
		ID:        newEventID(),
		Seller:    seller,
		Pool:      poolAccount,
		Ids:       ids,
		AmountsIn: amountsIn,
		Received:  total,
		Recipient: recipient,
		Timestamp: nowFunc(),
	})
	metricSwapsSell.WithLabelValues(poolAccount.String()).Inc()
	return total, nil
}

func repeatAddr(a Address, n int) []Address {
	out := make([]Address, n)
	for i := range out {
		out[i] = a
	}
	return out
}
