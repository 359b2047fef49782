package core

import (
	"github.com/sirupsen/logrus"
)

// newTestEngine builds an AMM directly against fresh in-memory ledgers,
// bypassing InitAMM's process-wide sync.Once so each test gets an
// isolated engine instead of sharing the package singleton.
func newTestEngine() (*AMM, *InMemoryNativeLedger, *InMemoryCurrencyLedger, *InMemoryMultiTokenLedger) {
	native := NewInMemoryNativeLedger()
	currency := NewInMemoryCurrencyLedger()
	token := NewInMemoryMultiTokenLedger()
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	a := &AMM{
		reserves: newReserveStore(),
		pools:    newPoolRegistry(),
		native:   native,
		currency: currency,
		token:    token,
		events:   NewMemoryEventSink(),
		log:      log,
	}
	return a, native, currency, token
}

// newTestPool wires a currency handle and a tradable-token collection,
// funds caller's native balance for the CreatePoolDeposit, and creates
// a pool trading the two against each other.
func newTestPool(a *AMM, native *InMemoryNativeLedger, currency *InMemoryCurrencyLedger, token *InMemoryMultiTokenLedger, caller Address) (Address, Handle, error) {
	currencyHandle := Handle{0xC0}
	currency.Register(currencyHandle)

	tokenHandle, err := token.CreateCollection(caller, []byte("tradable"))
	if err != nil {
		return Address{}, Handle{}, err
	}

	if err := native.Fund(caller, CreatePoolDeposit); err != nil {
		return Address{}, Handle{}, err
	}

	poolAccount, err := a.CreatePool(caller, currencyHandle, tokenHandle)
	return poolAccount, tokenHandle, err
}
