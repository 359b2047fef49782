package core

// Pool lifecycle (spec.md §4.7, C7). Grounded on core/liquidity_pools.go's
// CreatePool, generalized from a fixed two-token pair to an arbitrary
// (currency_handle, token_handle) pair plus a freshly minted LP
// collection, per the original pallet's create_pool extrinsic.

import "github.com/sirupsen/logrus"

// CreatePoolDeposit is the anti-spam bond moved from caller to vault on
// pool creation (spec.md §6 "Constants (host-configurable)"). Non-
// refundable in this core.
var CreatePoolDeposit = NewBalance(1_000_000)

// CreatePool registers a new pool trading currencyHandle against
// tokenHandle, minting a fresh LP collection owned by the vault.
func (a *AMM) CreatePool(caller Address, currencyHandle, tokenHandle Handle) (Address, error) {
	if !a.currency.Exists(currencyHandle) {
		return Address{}, ErrCurrencyAccountNotFound
	}
	if !a.token.Exists(tokenHandle) {
		return Address{}, ErrTokenAccountNotFound
	}

	vault := a.pools.Vault()
	var poolAccount Address

	err := a.withStaged(func() error {
		if err := a.native.Transfer(caller, vault, CreatePoolDeposit); err != nil {
			return err
		}

		lpHandle, err := a.token.CreateCollection(vault, []byte("lp"))
		if err != nil {
			return err
		}

		account, err := a.pools.insert(Pool{
			Owner:          caller,
			CurrencyHandle: currencyHandle,
			TokenHandle:    tokenHandle,
			LPHandle:       lpHandle,
			Vault:          vault,
		})
		if err != nil {
			return err
		}
		poolAccount = account
		return nil
	})
	if err != nil {
		return Address{}, err
	}

	a.events.EmitPoolCreated(PoolCreated{
		ID:        newEventID(),
		Pool:      poolAccount,
		Caller:    caller,
		Timestamp: nowFunc(),
	})
	a.log.WithFields(logrus.Fields{
		"pool":   poolAccount,
		"caller": caller,
	}).Info("pool created")
	metricPoolsCreated.Inc()

	return poolAccount, nil
}

// lookupPool resolves a pool account or fails InvalidPoolAccount.
func (a *AMM) lookupPool(poolAccount Address) (Pool, error) {
	p, ok := a.pools.Lookup(poolAccount)
	if !ok {
		return Pool{}, ErrInvalidPoolAccount
	}
	return p, nil
}
