package core

import (
	"time"

	"github.com/google/uuid"
)

// Observable outputs (spec.md §6, §8 S1-S7). An EventSink receives
// every event the engine emits; the default sink used by tests and the
// CLI just appends to a slice, mirroring how the teacher's
// ledger.EmitTransfer/EmitApproval push onto an in-memory log.

type PoolCreated struct {
	ID        string
	Pool      Address
	Caller    Address
	Timestamp time.Time
}

type SwapCurrencyToToken struct {
	ID        string
	Buyer     Address
	Pool      Address
	Ids       []TokenId
	AmountsOut []Balance
	Spent     Balance
	Recipient Address
	Timestamp time.Time
}

type SwapTokenToCurrency struct {
	ID        string
	Seller    Address
	Pool      Address
	Ids       []TokenId
	AmountsIn []Balance
	Received  Balance
	Recipient Address
	Timestamp time.Time
}

type LiquidityAdded struct {
	ID             string
	Provider       Address
	Pool           Address
	Ids            []TokenId
	TokenAmounts   []Balance
	CurrencyAmounts []Balance
	Timestamp      time.Time
}

type LiquidityRemoved struct {
	ID              string
	Provider        Address
	Pool            Address
	Ids             []TokenId
	TokenAmounts    []Balance
	CurrencyAmounts []Balance
	Timestamp       time.Time
}

// EventSink receives events dispatched by the engine. Implementations
// must not block or return an error that could be used to roll back
// an already-committed call — event delivery is best-effort logging,
// not part of the atomicity contract in spec.md §5.
type EventSink interface {
	EmitPoolCreated(PoolCreated)
	EmitSwapCurrencyToToken(SwapCurrencyToToken)
	EmitSwapTokenToCurrency(SwapTokenToCurrency)
	EmitLiquidityAdded(LiquidityAdded)
	EmitLiquidityRemoved(LiquidityRemoved)
}

func newEventID() string { return uuid.NewString() }

// nowFunc is indirected so tests can pin event timestamps; the engine
// itself has no wall-clock dependency (spec.md §5).
var nowFunc = time.Now

// MemoryEventSink records every event in-process; used by tests and by
// the in-memory engines the CLI and apiserver bootstrap. No HTTP
// endpoint reads the recorded events.
type MemoryEventSink struct {
	PoolsCreated         []PoolCreated
	SwapsCurrencyToToken []SwapCurrencyToToken
	SwapsTokenToCurrency []SwapTokenToCurrency
	LiquidityAdds        []LiquidityAdded
	LiquidityRemoves     []LiquidityRemoved
}

func NewMemoryEventSink() *MemoryEventSink { return &MemoryEventSink{} }

func (s *MemoryEventSink) EmitPoolCreated(e PoolCreated) {
	s.PoolsCreated = append(s.PoolsCreated, e)
}
func (s *MemoryEventSink) EmitSwapCurrencyToToken(e SwapCurrencyToToken) {
	s.SwapsCurrencyToToken = append(s.SwapsCurrencyToToken, e)
}
func (s *MemoryEventSink) EmitSwapTokenToCurrency(e SwapTokenToCurrency) {
	s.SwapsTokenToCurrency = append(s.SwapsTokenToCurrency, e)
}
func (s *MemoryEventSink) EmitLiquidityAdded(e LiquidityAdded) {
	s.LiquidityAdds = append(s.LiquidityAdds, e)
}
func (s *MemoryEventSink) EmitLiquidityRemoved(e LiquidityRemoved) {
	s.LiquidityRemoves = append(s.LiquidityRemoves, e)
}

// noopEventSink discards events; used when the caller passes nil to
// InitAMM.
type noopEventSink struct{}

func (noopEventSink) EmitPoolCreated(PoolCreated)                 {}
func (noopEventSink) EmitSwapCurrencyToToken(SwapCurrencyToToken)   {}
func (noopEventSink) EmitSwapTokenToCurrency(SwapTokenToCurrency)   {}
func (noopEventSink) EmitLiquidityAdded(LiquidityAdded)             {}
func (noopEventSink) EmitLiquidityRemoved(LiquidityRemoved)         {}
