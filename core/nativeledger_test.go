package core

import "testing"

func TestNativeLedgerFundAndTransfer(t *testing.T) {
	l := NewInMemoryNativeLedger()
	a := Address{0x01}
	b := Address{0x02}
	if err := l.Fund(a, NewBalance(100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Transfer(a, b, NewBalance(30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.BalanceOf(a); got.Uint64() != 70 {
		t.Fatalf("expected 70, got %s", got)
	}
	if got := l.BalanceOf(b); got.Uint64() != 30 {
		t.Fatalf("expected 30, got %s", got)
	}
}

func TestNativeLedgerInsufficientBalance(t *testing.T) {
	l := NewInMemoryNativeLedger()
	if err := l.Transfer(Address{0x01}, Address{0x02}, NewBalance(1)); err != ErrInsufficientCurrencyAmount {
		t.Fatalf("expected ErrInsufficientCurrencyAmount, got %v", err)
	}
}

func TestNativeLedgerSnapshotRestore(t *testing.T) {
	l := NewInMemoryNativeLedger()
	a := Address{0x01}
	if err := l.Fund(a, NewBalance(100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := l.Snapshot(func() error {
		if err := l.Fund(a, NewBalance(900)); err != nil {
			return err
		}
		return ErrOverflow
	})
	if err != ErrOverflow {
		t.Fatalf("expected staged error to propagate, got %v", err)
	}
	if got := l.BalanceOf(a); got.Uint64() != 100 {
		t.Fatalf("expected rollback to 100, got %s", got)
	}
}
