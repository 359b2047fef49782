package core

import "testing"

func TestInitAMMSingletonWiresOnce(t *testing.T) {
	if Initialized() {
		t.Skip("AMM already initialized by another test in this binary; singleton behavior covered elsewhere")
	}
	native := NewInMemoryNativeLedger()
	currency := NewInMemoryCurrencyLedger()
	token := NewInMemoryMultiTokenLedger()
	first := InitAMM(native, currency, token, nil, nil)

	// a second call with different collaborators must be a no-op: the
	// process-wide engine is wired exactly once.
	second := InitAMM(NewInMemoryNativeLedger(), NewInMemoryCurrencyLedger(), NewInMemoryMultiTokenLedger(), nil, nil)
	if first != second {
		t.Fatal("expected InitAMM to return the same instance on a second call")
	}
	if Manager() != first {
		t.Fatal("expected Manager to return the singleton wired by InitAMM")
	}
}

func TestWithStagedRollsBackReservesOnFailure(t *testing.T) {
	a, _, _, _ := newTestEngine()
	pool := Address{0x01}
	a.reserves.SetCurrencyReserve(pool, 1, NewBalance(100))

	err := a.withStaged(func() error {
		a.reserves.SetCurrencyReserve(pool, 1, NewBalance(999))
		return ErrOverflow
	})
	if err != ErrOverflow {
		t.Fatalf("expected the staged error to propagate, got %v", err)
	}
	if got := a.reserves.CurrencyReserve(pool, 1); got.Uint64() != 100 {
		t.Fatalf("expected reserves to roll back to 100, got %s", got)
	}
}

func TestWithStagedCommitsOnSuccess(t *testing.T) {
	a, _, _, _ := newTestEngine()
	pool := Address{0x01}

	err := a.withStaged(func() error {
		a.reserves.SetCurrencyReserve(pool, 1, NewBalance(42))
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := a.reserves.CurrencyReserve(pool, 1); got.Uint64() != 42 {
		t.Fatalf("expected committed value 42, got %s", got)
	}
}
