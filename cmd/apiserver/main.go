// Command apiserver exposes the per-id AMM engine's state over HTTP,
// mirroring walletserver/main.go's config-load/router-register/listen
// shape. It bootstraps its own in-memory engine since it runs standalone
// rather than embedded in a host process (unlike cmd/idswap, which
// defers to core.Initialized() so an embedding host can wire its own
// ledgers first).
package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"idswap/apiserver/controllers"
	"idswap/apiserver/routes"
	"idswap/config"
	"idswap/core"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	log := logrus.StandardLogger()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	if cfg.CreatePoolDeposit != 0 {
		core.CreatePoolDeposit = core.NewBalance(cfg.CreatePoolDeposit)
	}

	if !core.Initialized() {
		native := core.NewInMemoryNativeLedger()
		currency := core.NewInMemoryCurrencyLedger()
		token := core.NewInMemoryMultiTokenLedger()
		sink := core.NewMemoryEventSink()
		core.InitAMM(native, currency, token, sink, log)
	}

	if cfg.MetricsEnabled {
		if err := core.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
			log.WithError(err).Fatal("register metrics")
		}
	}

	ctrl := controllers.NewPoolsController()
	r := mux.NewRouter()
	routes.Register(r, ctrl, cfg.MetricsEnabled)

	log.Infof("apiserver listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
