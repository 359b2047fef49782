package core

// In-memory multi-token ledger: a reference implementation of the
// MultiTokenLedger collaborator (spec.md §6), adapted from
// core/syn1155.go's SYN1155Token. Generalized from one fixed asset to
// many independently created collections (handles), each with its own
// per-id, per-holder balance table — the shape both the tradable
// token_handle and the per-pool lp_handle need.

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"
)

type collection struct {
	owner    Address
	balances map[TokenId]map[Address]Balance
}

func newCollection(owner Address) *collection {
	return &collection{owner: owner, balances: make(map[TokenId]map[Address]Balance)}
}

func (c *collection) balanceOf(holder Address, id TokenId) Balance {
	m, ok := c.balances[id]
	if !ok {
		return ZeroBalance()
	}
	return m[holder]
}

func (c *collection) credit(holder Address, id TokenId, amount Balance) error {
	m, ok := c.balances[id]
	if !ok {
		m = make(map[Address]Balance)
		c.balances[id] = m
	}
	next, err := m[holder].Add(amount)
	if err != nil {
		return err
	}
	m[holder] = next
	return nil
}

func (c *collection) debit(holder Address, id TokenId, amount Balance) error {
	m := c.balances[id]
	if m[holder].LessThan(amount) {
		return ErrInsufficientTokens
	}
	next, err := m[holder].Sub(amount)
	if err != nil {
		return err
	}
	m[holder] = next
	return nil
}

// InMemoryMultiTokenLedger is the process-local MultiTokenLedger used
// by the CLI's offline mode and by tests; production deployments wire
// InitAMM to a real external ledger instead.
type InMemoryMultiTokenLedger struct {
	mu          sync.Mutex
	collections map[Handle]*collection
	nextSeq     uint64
}

func NewInMemoryMultiTokenLedger() *InMemoryMultiTokenLedger {
	return &InMemoryMultiTokenLedger{collections: make(map[Handle]*collection)}
}

func (l *InMemoryMultiTokenLedger) Exists(handle Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.collections[handle]
	return ok
}

func (l *InMemoryMultiTokenLedger) CreateCollection(owner Address, metadata []byte) (Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextSeq++
	buf := make([]byte, 8, 8+len(metadata))
	binary.BigEndian.PutUint64(buf, l.nextSeq)
	buf = append(buf, metadata...)
	sum := sha256.Sum256(buf)
	var h Handle
	copy(h[:], sum[:len(h)])
	l.collections[h] = newCollection(owner)
	return h, nil
}

func (l *InMemoryMultiTokenLedger) BalanceOf(holder Address, handle Handle, id TokenId) Balance {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.collections[handle]
	if !ok {
		return ZeroBalance()
	}
	return c.balanceOf(holder, id)
}

func (l *InMemoryMultiTokenLedger) BalanceOfBatch(handle Handle, holders []Address, ids []TokenId) ([]Balance, error) {
	if len(holders) != len(ids) {
		return nil, ErrUnsortedOrDuplicateTokenIds
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.collections[handle]
	if !ok {
		return nil, ErrTokenAccountNotFound
	}
	out := make([]Balance, len(ids))
	for i := range ids {
		out[i] = c.balanceOf(holders[i], ids[i])
	}
	return out, nil
}

// BatchTransferFrom debits `from` and credits `to` for every id,
// checking every debit before applying any of them so a single
// insufficient balance aborts the whole batch untouched.
func (l *InMemoryMultiTokenLedger) BatchTransferFrom(operator Address, handle Handle, from, to Address, ids []TokenId, amounts []Balance) error {
	if len(ids) != len(amounts) {
		return ErrUnsortedOrDuplicateTokenIds
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.collections[handle]
	if !ok {
		return ErrTokenAccountNotFound
	}
	for i, id := range ids {
		if c.balanceOf(from, id).LessThan(amounts[i]) {
			return ErrInsufficientTokens
		}
	}
	for i, id := range ids {
		if err := c.debit(from, id, amounts[i]); err != nil {
			return err
		}
		if err := c.credit(to, id, amounts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (l *InMemoryMultiTokenLedger) BatchMint(operator Address, handle Handle, to Address, ids []TokenId, amounts []Balance) error {
	if len(ids) != len(amounts) {
		return ErrUnsortedOrDuplicateTokenIds
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.collections[handle]
	if !ok {
		return ErrTokenAccountNotFound
	}
	for i, id := range ids {
		if err := c.credit(to, id, amounts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (l *InMemoryMultiTokenLedger) BatchBurn(operator Address, handle Handle, from Address, ids []TokenId, amounts []Balance) error {
	if len(ids) != len(amounts) {
		return ErrUnsortedOrDuplicateTokenIds
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.collections[handle]
	if !ok {
		return ErrTokenAccountNotFound
	}
	for i, id := range ids {
		if c.balanceOf(from, id).LessThan(amounts[i]) {
			return ErrInsufficientTokens
		}
	}
	for i, id := range ids {
		if err := c.debit(from, id, amounts[i]); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot deep-copies every collection's balance table, runs fn, and
// restores the pre-call state if fn fails (spec.md §5).
func (l *InMemoryMultiTokenLedger) Snapshot(fn func() error) error {
	l.mu.Lock()
	snap := make(map[Handle]*collection, len(l.collections))
	for h, c := range l.collections {
		cp := newCollection(c.owner)
		for id, holders := range c.balances {
			m := make(map[Address]Balance, len(holders))
			for addr, bal := range holders {
				m[addr] = bal
			}
			cp.balances[id] = m
		}
		snap[h] = cp
	}
	l.mu.Unlock()

	if err := fn(); err != nil {
		l.mu.Lock()
		l.collections = snap
		l.mu.Unlock()
		return err
	}
	return nil
}
