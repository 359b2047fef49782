package core

// In-memory native-currency ledger: a reference implementation of the
// NativeLedger collaborator (spec.md §6), adapted from core/ledger.go's
// Transfer/Mint and its WithinBlock staging hook — generalized here
// into a real snapshot/restore pair instead of a no-op passthrough,
// since this ledger must actually participate in spec.md §5 atomicity.

import "sync"

// InMemoryNativeLedger is the process-local NativeLedger used by the
// CLI's offline mode and by tests; it funds CreatePoolDeposit transfers.
type InMemoryNativeLedger struct {
	mu       sync.Mutex
	balances map[Address]Balance
}

func NewInMemoryNativeLedger() *InMemoryNativeLedger {
	return &InMemoryNativeLedger{balances: make(map[Address]Balance)}
}

func (l *InMemoryNativeLedger) BalanceOf(addr Address) Balance {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[addr]
}

// Fund credits addr directly; used only by test fixtures and CLI
// genesis setup, never by the AMM core itself.
func (l *InMemoryNativeLedger) Fund(addr Address, amount Balance) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	next, err := l.balances[addr].Add(amount)
	if err != nil {
		return err
	}
	l.balances[addr] = next
	return nil
}

func (l *InMemoryNativeLedger) Transfer(from, to Address, amount Balance) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[from].LessThan(amount) {
		return ErrInsufficientCurrencyAmount
	}
	fromNext, err := l.balances[from].Sub(amount)
	if err != nil {
		return err
	}
	toNext, err := l.balances[to].Add(amount)
	if err != nil {
		return err
	}
	l.balances[from] = fromNext
	l.balances[to] = toNext
	return nil
}

// Snapshot deep-copies the balance table, runs fn, and restores the
// pre-call state if fn fails (spec.md §5).
func (l *InMemoryNativeLedger) Snapshot(fn func() error) error {
	l.mu.Lock()
	snap := make(map[Address]Balance, len(l.balances))
	for addr, bal := range l.balances {
		snap[addr] = bal
	}
	l.mu.Unlock()

	if err := fn(); err != nil {
		l.mu.Lock()
		l.balances = snap
		l.mu.Unlock()
		return err
	}
	return nil
}
