// Package wrapcurrency implements the non-core "wrap-currency"
// collaborator (spec.md §6, original_source/pallets/wrap-currency): a
// trivial 1:1 wrapper that moves native currency into a singleton
// vault and mints equal fungible-currency-token units in exchange. The
// AMM core never imports this package directly — users wrap externally
// before trading, exactly as the original pallet's account_id/do_deposit
// stand apart from the exchange pallet.
package wrapcurrency

import (
	"crypto/sha256"

	"github.com/sirupsen/logrus"

	"idswap/core"
)

// vaultSeed is this collaborator's own PalletId-equivalent derivation
// seed, distinct from the AMM's vault so wrapped-currency accounting
// never mixes with pool accounting.
var vaultSeed = [8]byte{'w', 'r', 'a', 'p', 'w', '3', 'g', '/'}

// Wrapper deposits/withdraws native currency 1:1 against a single
// fungible-currency-token handle created at genesis.
type Wrapper struct {
	native   core.NativeLedger
	currency *core.InMemoryCurrencyLedger
	vault    core.Address
	handle   core.Handle
	log      *logrus.Logger
}

// New creates the wrap-currency collaborator and registers the genesis
// wrapped-token handle on currency. It moves no native currency: no
// token-creation deposit is bonded.
func New(native core.NativeLedger, currency *core.InMemoryCurrencyLedger, log *logrus.Logger) *Wrapper {
	if log == nil {
		log = logrus.StandardLogger()
	}
	vault := deriveVault()
	var handle core.Handle
	copy(handle[:], vault[:])
	currency.Register(handle)

	w := &Wrapper{native: native, currency: currency, vault: vault, handle: handle, log: log}
	log.WithField("vault", vault).Info("wrap-currency token created")
	return w
}

// Handle returns the genesis wrapped-currency-token handle, for use as
// a pool's currency_handle.
func (w *Wrapper) Handle() core.Handle { return w.handle }

// Deposit moves amount of native currency from who into the vault and
// mints an equal amount of the wrapped token to who.
func (w *Wrapper) Deposit(who core.Address, amount core.Balance) error {
	if err := w.native.Transfer(who, w.vault, amount); err != nil {
		return err
	}
	if err := w.currency.Mint(w.handle, who, amount); err != nil {
		return err
	}
	w.log.WithFields(logrus.Fields{"who": who, "amount": amount.String()}).Info("deposited")
	return nil
}

// Withdraw burns amount of the wrapped token from who and moves an
// equal amount of native currency from the vault back to who.
func (w *Wrapper) Withdraw(who core.Address, amount core.Balance) error {
	if err := w.currency.Burn(w.handle, who, amount); err != nil {
		return err
	}
	if err := w.native.Transfer(w.vault, who, amount); err != nil {
		return err
	}
	w.log.WithFields(logrus.Fields{"who": who, "amount": amount.String()}).Info("withdrawn")
	return nil
}

func deriveVault() core.Address {
	sum := sha256.Sum256(append([]byte("vault:"), vaultSeed[:]...))
	var a core.Address
	copy(a[:], sum[:len(a)])
	return a
}
