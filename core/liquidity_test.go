package core

import "testing"

func fundTrader(native *InMemoryNativeLedger, currency *InMemoryCurrencyLedger, token *InMemoryMultiTokenLedger, currencyHandle Handle, tokenHandle Handle, who Address, currencyAmt, tokenAmt Balance) error {
	if err := currency.Mint(currencyHandle, who, currencyAmt); err != nil {
		return err
	}
	return token.BatchMint(Address{}, tokenHandle, who, []TokenId{1}, []Balance{tokenAmt})
}

func TestAddLiquidityBootstrapsFirstDeposit(t *testing.T) {
	a, native, currency, token := newTestEngine()
	owner := Address{0x01}
	lp := Address{0x02}
	poolAccount, tokenHandle, err := newTestPool(a, native, currency, token, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	currencyHandle := Handle{0xC0}

	if err := fundTrader(native, currency, token, currencyHandle, tokenHandle, lp, NewBalance(2_000_000_000), NewBalance(1_000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	shares, err := a.AddLiquidity(lp, poolAccount, []TokenId{1}, []Balance{NewBalance(1_000)}, []Balance{NewBalance(2_000_000_000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shares) != 1 || shares[0].Uint64() != 2_000_000_000 {
		t.Fatalf("expected bootstrap shares to equal maxCurrency, got %v", shares)
	}
	if got := a.reserves.CurrencyReserve(poolAccount, 1); got.Uint64() != 2_000_000_000 {
		t.Fatalf("expected currency reserve 2e9, got %s", got)
	}
	if got := a.reserves.TotalSupply(poolAccount, 1); got.Uint64() != 2_000_000_000 {
		t.Fatalf("expected total supply 2e9, got %s", got)
	}
}

func TestAddLiquidityBootstrapRejectsBelowMinimum(t *testing.T) {
	a, native, currency, token := newTestEngine()
	owner := Address{0x01}
	lp := Address{0x02}
	poolAccount, tokenHandle, err := newTestPool(a, native, currency, token, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	currencyHandle := Handle{0xC0}

	if err := fundTrader(native, currency, token, currencyHandle, tokenHandle, lp, NewBalance(100), NewBalance(1_000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := a.AddLiquidity(lp, poolAccount, []TokenId{1}, []Balance{NewBalance(1_000)}, []Balance{NewBalance(100)}); err != ErrInvalidCurrencyAmount {
		t.Fatalf("expected ErrInvalidCurrencyAmount below minInitialCurrency, got %v", err)
	}
}

func TestAddLiquiditySecondDepositMintsProportionalShares(t *testing.T) {
	a, native, currency, token := newTestEngine()
	owner := Address{0x01}
	lp1 := Address{0x02}
	lp2 := Address{0x03}
	poolAccount, tokenHandle, err := newTestPool(a, native, currency, token, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	currencyHandle := Handle{0xC0}

	if err := fundTrader(native, currency, token, currencyHandle, tokenHandle, lp1, NewBalance(2_000_000_000), NewBalance(1_000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.AddLiquidity(lp1, poolAccount, []TokenId{1}, []Balance{NewBalance(1_000)}, []Balance{NewBalance(2_000_000_000)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := fundTrader(native, currency, token, currencyHandle, tokenHandle, lp2, NewBalance(10_000_000_000), NewBalance(500)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	shares, err := a.AddLiquidity(lp2, poolAccount, []TokenId{1}, []Balance{NewBalance(500)}, []Balance{NewBalance(10_000_000_000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// depositing half the existing token reserve should mint roughly
	// half the existing LP supply.
	if shares[0].Uint64() < 900_000_000 || shares[0].Uint64() > 1_000_000_000 {
		t.Fatalf("expected shares near 1e9, got %s", shares[0])
	}
}

func TestRemoveLiquidityReturnsProportionalShare(t *testing.T) {
	a, native, currency, token := newTestEngine()
	owner := Address{0x01}
	lp := Address{0x02}
	poolAccount, tokenHandle, err := newTestPool(a, native, currency, token, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	currencyHandle := Handle{0xC0}

	if err := fundTrader(native, currency, token, currencyHandle, tokenHandle, lp, NewBalance(2_000_000_000), NewBalance(1_000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	shares, err := a.AddLiquidity(lp, poolAccount, []TokenId{1}, []Balance{NewBalance(1_000)}, []Balance{NewBalance(2_000_000_000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	currencyOut, tokensOut, err := a.RemoveLiquidity(lp, poolAccount, []TokenId{1}, shares, []Balance{ZeroBalance()}, []Balance{ZeroBalance()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if currencyOut[0].Uint64() != 2_000_000_000 || tokensOut[0].Uint64() != 1_000 {
		t.Fatalf("expected full withdrawal of bootstrap deposit, got currency=%s tokens=%s", currencyOut[0], tokensOut[0])
	}
	if got := a.reserves.TotalSupply(poolAccount, 1); !got.IsZero() {
		t.Fatalf("expected total supply to drain to zero, got %s", got)
	}
}

func TestRemoveLiquidityRejectsBelowMinimums(t *testing.T) {
	a, native, currency, token := newTestEngine()
	owner := Address{0x01}
	lp := Address{0x02}
	poolAccount, tokenHandle, err := newTestPool(a, native, currency, token, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	currencyHandle := Handle{0xC0}

	if err := fundTrader(native, currency, token, currencyHandle, tokenHandle, lp, NewBalance(2_000_000_000), NewBalance(1_000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	shares, err := a.AddLiquidity(lp, poolAccount, []TokenId{1}, []Balance{NewBalance(1_000)}, []Balance{NewBalance(2_000_000_000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err = a.RemoveLiquidity(lp, poolAccount, []TokenId{1}, shares, []Balance{NewBalance(3_000_000_000)}, []Balance{ZeroBalance()})
	if err != ErrInsufficientCurrencyAmount {
		t.Fatalf("expected ErrInsufficientCurrencyAmount, got %v", err)
	}
}

func TestRemoveLiquidityUnknownPoolId(t *testing.T) {
	a, native, currency, token := newTestEngine()
	owner := Address{0x01}
	lp := Address{0x02}
	poolAccount, _, err := newTestPool(a, native, currency, token, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := a.pools.Lookup(poolAccount)
	// mint an LP share for an id the pool never bootstrapped reserves
	// for, so BatchTransferFrom succeeds but the total-supply lookup
	// still finds nothing.
	if err := token.BatchMint(p.Vault, p.LPHandle, lp, []TokenId{7}, []Balance{NewBalance(1)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err = a.RemoveLiquidity(lp, poolAccount, []TokenId{7}, []Balance{NewBalance(1)}, []Balance{ZeroBalance()}, []Balance{ZeroBalance()})
	if err != ErrNullTotalLiquidity {
		t.Fatalf("expected ErrNullTotalLiquidity for an id with no liquidity, got %v", err)
	}
}
