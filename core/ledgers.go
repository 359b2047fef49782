package core

// External collaborators (spec.md §1, §6) and the AMM engine that
// drives them. Grounded on core/liquidity_pools.go's AMM struct and its
// InitAMM/Manager() singleton wiring, and on the StateRW-shaped
// ledger dependency core/common_structs.go declares for other engines
// in the teacher; here it is narrowed to exactly the three surfaces
// spec.md §1 names as out of scope to implement directly.

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// NativeLedger moves the chain's native balance, used only to fund a
// pool's vault allocation bookkeeping; the AMM never mints or burns it.
type NativeLedger interface {
	Transfer(from, to Address, amount Balance) error
	BalanceOf(addr Address) Balance
	Snapshot(fn func() error) error
}

// CurrencyLedger is the single fungible currency token every pool
// trades against (spec.md §1's "currency token").
type CurrencyLedger interface {
	Exists(handle Handle) bool
	TransferFrom(operator Address, handle Handle, from, to Address, amount Balance) error
	BalanceOf(handle Handle, addr Address) Balance
	Snapshot(fn func() error) error
}

// MultiTokenLedger is the ERC-1155-shaped ledger backing both the
// tradable token ids and each pool's LP-share ids (spec.md §1).
type MultiTokenLedger interface {
	Exists(handle Handle) bool
	BalanceOf(holder Address, handle Handle, id TokenId) Balance
	BalanceOfBatch(handle Handle, holders []Address, ids []TokenId) ([]Balance, error)
	BatchTransferFrom(operator Address, handle Handle, from, to Address, ids []TokenId, amounts []Balance) error
	BatchMint(operator Address, handle Handle, to Address, ids []TokenId, amounts []Balance) error
	BatchBurn(operator Address, handle Handle, from Address, ids []TokenId, amounts []Balance) error
	CreateCollection(owner Address, metadata []byte) (Handle, error)
	Snapshot(fn func() error) error
}

// AMM is the engine's manager struct, mirroring core/liquidity_pools.go's
// AMM: a handful of collaborator handles guarded by one mutex. Every
// mutating call runs under that mutex (see withStaged); the read views
// (Snapshot, PoolCount, CurrencyReserveOf, TotalSupplyOf) do not take
// it and read the stores directly.
type AMM struct {
	mu sync.Mutex

	reserves *ReserveStore
	pools    *PoolRegistry

	native   NativeLedger
	currency CurrencyLedger
	token    MultiTokenLedger

	events EventSink
	log    *logrus.Logger
}

var (
	ammOnce sync.Once
	amm     *AMM
)

// InitAMM wires the engine to its three external collaborators, exactly
// once per process, mirroring core/liquidity_pools.go's InitAMM. A nil
// sink installs noopEventSink; a nil logger installs logrus.StandardLogger().
func InitAMM(native NativeLedger, currency CurrencyLedger, token MultiTokenLedger, sink EventSink, log *logrus.Logger) *AMM {
	ammOnce.Do(func() {
		if sink == nil {
			sink = noopEventSink{}
		}
		if log == nil {
			log = logrus.StandardLogger()
		}
		amm = &AMM{
			reserves: newReserveStore(),
			pools:    newPoolRegistry(),
			native:   native,
			currency: currency,
			token:    token,
			events:   sink,
			log:      log,
		}
	})
	return amm
}

// Manager returns the process-wide AMM instance. Panics if InitAMM has
// not run yet, matching core/liquidity_pools.go's Manager().
func Manager() *AMM {
	if amm == nil {
		panic("core: AMM not initialized, call InitAMM first")
	}
	return amm
}

// Initialized reports whether InitAMM has already run, so callers like
// the CLI's bootstrap middleware can decide whether to wire an offline
// in-memory engine before calling Manager().
func Initialized() bool { return amm != nil }

// withStaged runs fn under the engine lock inside a nested three-ledger
// transaction boundary (spec.md §5): the reserve store and pool
// registry are snapshotted here, the three external ledgers stage
// themselves via their own Snapshot methods, and everything restores
// together if fn returns a non-nil error.
func (a *AMM) withStaged(fn func() error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	resSnap := a.reserves.snapshot()
	poolSnap := a.pools.snapshot()

	err := a.native.Snapshot(func() error {
		return a.currency.Snapshot(func() error {
			return a.token.Snapshot(fn)
		})
	})
	if err != nil {
		a.reserves.restore(resSnap)
		a.pools.restore(poolSnap)
	}
	return err
}
