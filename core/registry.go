package core

// Pool registry (spec.md §4.3, C3): deterministic pool-account
// derivation and pool metadata lookup. Grounded on
// core/liquidity_pools.go's poolAccount() helper and the original
// pallet's pool_account_id/account_id, which derive sub-accounts from
// a fixed pallet seed plus the pool index.

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"
)

// Pool is the unit of trading (spec.md §3). Created once by CreatePool,
// never mutated or destroyed afterward.
type Pool struct {
	Owner          Address
	CurrencyHandle Handle
	TokenHandle    Handle
	LPHandle       Handle
	Vault          Address
}

// palletSeed is the fixed derivation seed (PALLET_SEED in spec.md §4.3),
// analogous to a Substrate PalletId.
var palletSeed = [8]byte{'i', 'd', 's', 'w', 'a', 'p', '/', '1'}

// deriveAccount derives the singleton vault shared by all pools.
func deriveAccount(seed [8]byte) Address {
	sum := sha256.Sum256(append([]byte("vault:"), seed[:]...))
	var a Address
	copy(a[:], sum[:len(a)])
	return a
}

// deriveSubaccount derives a collision-free pool account from the seed
// and a strictly increasing pool index (spec.md I4).
func deriveSubaccount(seed [8]byte, index PoolIndex) Address {
	buf := make([]byte, 0, len(seed)+4)
	buf = append(buf, seed[:]...)
	var idxBytes [4]byte
	binary.BigEndian.PutUint32(idxBytes[:], uint32(index))
	buf = append(buf, idxBytes[:]...)
	sum := sha256.Sum256(buf)
	var a Address
	copy(a[:], sum[:len(a)])
	return a
}

// PoolRegistry holds the Pools map and the monotonically increasing
// PoolIndex (spec.md §3). The vault is a singleton shared across every
// pool (spec.md §4.3, §9 "common vault").
type PoolRegistry struct {
	mu        sync.Mutex
	pools     map[Address]Pool
	poolCount PoolIndex
	vault     Address
}

func newPoolRegistry() *PoolRegistry {
	return &PoolRegistry{
		pools: make(map[Address]Pool),
		vault: deriveAccount(palletSeed),
	}
}

// Vault returns the singleton escrow account shared by every pool.
func (r *PoolRegistry) Vault() Address { return r.vault }

// PoolCount returns the number of pools created so far.
func (r *PoolRegistry) PoolCount() PoolIndex {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.poolCount
}

// Lookup returns the pool registered under a pool account.
func (r *PoolRegistry) Lookup(poolAccount Address) (Pool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pools[poolAccount]
	return p, ok
}

// All returns a snapshot of every (account, pool) pair, for read views.
func (r *PoolRegistry) All() map[Address]Pool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[Address]Pool, len(r.pools))
	for k, v := range r.pools {
		out[k] = v
	}
	return out
}

// insert registers a newly created pool and bumps PoolCount, failing
// ErrOverflow if the counter would wrap (spec.md §4.7 step 2).
func (r *PoolRegistry) insert(p Pool) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.poolCount + 1
	if next < r.poolCount {
		return Address{}, ErrOverflow
	}
	r.poolCount = next
	account := deriveSubaccount(palletSeed, r.poolCount)
	r.pools[account] = p
	return account, nil
}

// snapshot/restore give CreatePool the same atomicity the reserve
// store offers (spec.md §5): a failed deposit transfer must not leave
// PoolCount incremented or a partial Pool entry behind.
type registrySnapshot struct {
	pools     map[Address]Pool
	poolCount PoolIndex
}

func (r *PoolRegistry) snapshot() registrySnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make(map[Address]Pool, len(r.pools))
	for k, v := range r.pools {
		cp[k] = v
	}
	return registrySnapshot{pools: cp, poolCount: r.poolCount}
}

func (r *PoolRegistry) restore(snap registrySnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pools = snap.pools
	r.poolCount = snap.poolCount
}
