package core

import "testing"

func TestMemoryEventSinkRecordsEveryEventKind(t *testing.T) {
	s := NewMemoryEventSink()
	s.EmitPoolCreated(PoolCreated{ID: "1"})
	s.EmitSwapCurrencyToToken(SwapCurrencyToToken{ID: "2"})
	s.EmitSwapTokenToCurrency(SwapTokenToCurrency{ID: "3"})
	s.EmitLiquidityAdded(LiquidityAdded{ID: "4"})
	s.EmitLiquidityRemoved(LiquidityRemoved{ID: "5"})

	if len(s.PoolsCreated) != 1 || len(s.SwapsCurrencyToToken) != 1 ||
		len(s.SwapsTokenToCurrency) != 1 || len(s.LiquidityAdds) != 1 || len(s.LiquidityRemoves) != 1 {
		t.Fatalf("expected exactly one recorded event per kind, got %+v", s)
	}
}

func TestNewEventIDUnique(t *testing.T) {
	a := newEventID()
	b := newEventID()
	if a == b {
		t.Fatal("expected successive event ids to differ")
	}
}

func TestNoopEventSinkDiscardsSilently(t *testing.T) {
	var sink EventSink = noopEventSink{}
	sink.EmitPoolCreated(PoolCreated{})
	sink.EmitSwapCurrencyToToken(SwapCurrencyToToken{})
	sink.EmitSwapTokenToCurrency(SwapTokenToCurrency{})
	sink.EmitLiquidityAdded(LiquidityAdded{})
	sink.EmitLiquidityRemoved(LiquidityRemoved{})
}
