package core

// Prometheus metrics (ambient concern, SPEC_FULL.md §3). The AMM
// increments these counters inline with the events it already emits;
// apiserver exposes them at /metrics. Unregistered at package init so
// that multiple InitAMM calls across tests don't panic on duplicate
// registration.

import "github.com/prometheus/client_golang/prometheus"

var (
	metricPoolsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "idswap",
		Name:      "pools_created_total",
		Help:      "Number of pools created.",
	})
	metricSwapsBuy = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "idswap",
		Name:      "swaps_currency_to_token_total",
		Help:      "Number of currency-to-token swap batches executed.",
	}, []string{"pool"})
	metricSwapsSell = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "idswap",
		Name:      "swaps_token_to_currency_total",
		Help:      "Number of token-to-currency swap batches executed.",
	}, []string{"pool"})
	metricLiquidityAdds = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "idswap",
		Name:      "liquidity_added_total",
		Help:      "Number of add_liquidity batches executed.",
	}, []string{"pool"})
	metricLiquidityRemoves = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "idswap",
		Name:      "liquidity_removed_total",
		Help:      "Number of remove_liquidity batches executed.",
	}, []string{"pool"})
)

// RegisterMetrics registers the engine's counters with reg. Call once
// per process, typically from the apiserver's Prometheus handler setup.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		metricPoolsCreated,
		metricSwapsBuy,
		metricSwapsSell,
		metricLiquidityAdds,
		metricLiquidityRemoves,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
