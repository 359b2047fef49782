package core

// In-memory fungible currency token ledger: a reference implementation
// of the CurrencyLedger collaborator (spec.md §6), adapted from
// core/tokens.go's BaseToken/BalanceTable pair, narrowed to the single
// operation the AMM core needs (transfer_from) and generalized to many
// independently registered handles instead of the 50 fixed standards.

import "sync"

type currencyAccount struct {
	balances map[Address]Balance
}

func newCurrencyAccount() *currencyAccount {
	return &currencyAccount{balances: make(map[Address]Balance)}
}

// InMemoryCurrencyLedger is the process-local CurrencyLedger used by
// the CLI's offline mode and by tests. The wrap-currency collaborator
// (wrapcurrency package) is the only component that mints into it.
type InMemoryCurrencyLedger struct {
	mu       sync.Mutex
	accounts map[Handle]*currencyAccount
}

func NewInMemoryCurrencyLedger() *InMemoryCurrencyLedger {
	return &InMemoryCurrencyLedger{accounts: make(map[Handle]*currencyAccount)}
}

// Register creates an empty account table for handle, used at genesis
// by the wrap-currency collaborator (spec.md §6).
func (l *InMemoryCurrencyLedger) Register(handle Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[handle]; !ok {
		l.accounts[handle] = newCurrencyAccount()
	}
}

func (l *InMemoryCurrencyLedger) Exists(handle Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.accounts[handle]
	return ok
}

func (l *InMemoryCurrencyLedger) BalanceOf(handle Handle, addr Address) Balance {
	l.mu.Lock()
	defer l.mu.Unlock()
	acc, ok := l.accounts[handle]
	if !ok {
		return ZeroBalance()
	}
	return acc.balances[addr]
}

// Mint credits addr, used by the wrap-currency collaborator's deposit
// and by test fixtures that fund an account directly.
func (l *InMemoryCurrencyLedger) Mint(handle Handle, addr Address, amount Balance) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	acc, ok := l.accounts[handle]
	if !ok {
		return ErrCurrencyAccountNotFound
	}
	next, err := acc.balances[addr].Add(amount)
	if err != nil {
		return err
	}
	acc.balances[addr] = next
	return nil
}

// Burn debits addr, used by the wrap-currency collaborator's withdraw.
func (l *InMemoryCurrencyLedger) Burn(handle Handle, addr Address, amount Balance) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	acc, ok := l.accounts[handle]
	if !ok {
		return ErrCurrencyAccountNotFound
	}
	if acc.balances[addr].LessThan(amount) {
		return ErrInsufficientCurrencyAmount
	}
	next, err := acc.balances[addr].Sub(amount)
	if err != nil {
		return err
	}
	acc.balances[addr] = next
	return nil
}

// TransferFrom moves amount from `from` to `to` on handle. operator is
// accepted for interface parity with spec.md §6 but unchecked here: the
// AMM engine is the sole trusted caller of this in-memory ledger.
func (l *InMemoryCurrencyLedger) TransferFrom(operator Address, handle Handle, from, to Address, amount Balance) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	acc, ok := l.accounts[handle]
	if !ok {
		return ErrCurrencyAccountNotFound
	}
	if acc.balances[from].LessThan(amount) {
		return ErrInsufficientCurrencyAmount
	}
	fromNext, err := acc.balances[from].Sub(amount)
	if err != nil {
		return err
	}
	toNext, err := acc.balances[to].Add(amount)
	if err != nil {
		return err
	}
	acc.balances[from] = fromNext
	acc.balances[to] = toNext
	return nil
}

// Snapshot deep-copies every handle's balance table, runs fn, and
// restores the pre-call state if fn fails (spec.md §5).
func (l *InMemoryCurrencyLedger) Snapshot(fn func() error) error {
	l.mu.Lock()
	snap := make(map[Handle]*currencyAccount, len(l.accounts))
	for h, acc := range l.accounts {
		cp := newCurrencyAccount()
		for addr, bal := range acc.balances {
			cp.balances[addr] = bal
		}
		snap[h] = cp
	}
	l.mu.Unlock()

	if err := fn(); err != nil {
		l.mu.Lock()
		l.accounts = snap
		l.mu.Unlock()
		return err
	}
	return nil
}
