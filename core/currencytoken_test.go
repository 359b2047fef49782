package core

import "testing"

func TestCurrencyLedgerMintBurnTransfer(t *testing.T) {
	l := NewInMemoryCurrencyLedger()
	h := Handle{0xC0}
	l.Register(h)
	if !l.Exists(h) {
		t.Fatal("expected handle to exist after Register")
	}

	a := Address{0x01}
	b := Address{0x02}
	if err := l.Mint(h, a, NewBalance(100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.TransferFrom(Address{}, h, a, b, NewBalance(40)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.BalanceOf(h, a); got.Uint64() != 60 {
		t.Fatalf("expected 60, got %s", got)
	}
	if got := l.BalanceOf(h, b); got.Uint64() != 40 {
		t.Fatalf("expected 40, got %s", got)
	}

	if err := l.Burn(h, a, NewBalance(60)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.BalanceOf(h, a); !got.IsZero() {
		t.Fatalf("expected zero after burn, got %s", got)
	}
}

func TestCurrencyLedgerInsufficientBalance(t *testing.T) {
	l := NewInMemoryCurrencyLedger()
	h := Handle{0xC0}
	l.Register(h)
	a := Address{0x01}
	if err := l.TransferFrom(Address{}, h, a, Address{0x02}, NewBalance(1)); err != ErrInsufficientCurrencyAmount {
		t.Fatalf("expected ErrInsufficientCurrencyAmount, got %v", err)
	}
	if err := l.Burn(h, a, NewBalance(1)); err != ErrInsufficientCurrencyAmount {
		t.Fatalf("expected ErrInsufficientCurrencyAmount, got %v", err)
	}
}

func TestCurrencyLedgerUnknownHandle(t *testing.T) {
	l := NewInMemoryCurrencyLedger()
	if l.Exists(Handle{0xFF}) {
		t.Fatal("expected unregistered handle to not exist")
	}
	if err := l.Mint(Handle{0xFF}, Address{0x01}, NewBalance(1)); err != ErrCurrencyAccountNotFound {
		t.Fatalf("expected ErrCurrencyAccountNotFound, got %v", err)
	}
}

func TestCurrencyLedgerSnapshotRestore(t *testing.T) {
	l := NewInMemoryCurrencyLedger()
	h := Handle{0xC0}
	l.Register(h)
	a := Address{0x01}
	if err := l.Mint(h, a, NewBalance(100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := l.Snapshot(func() error {
		if err := l.Mint(h, a, NewBalance(900)); err != nil {
			return err
		}
		return ErrOverflow
	})
	if err != ErrOverflow {
		t.Fatalf("expected staged error to propagate, got %v", err)
	}
	if got := l.BalanceOf(h, a); got.Uint64() != 100 {
		t.Fatalf("expected rollback to 100, got %s", got)
	}
}
