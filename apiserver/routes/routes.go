// Package routes wires gorilla/mux routes for the read-only apiserver,
// mirroring walletserver/routes/routes.go's Register function.
package routes

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"idswap/apiserver/controllers"
	"idswap/apiserver/middleware"
)

// Register mounts every apiserver route onto r. metricsEnabled controls
// whether /metrics is exposed (config.Config.MetricsEnabled).
func Register(r *mux.Router, pc *controllers.PoolsController, metricsEnabled bool) {
	r.Use(middleware.Logger)
	r.HandleFunc("/api/pools", pc.List).Methods("GET")
	r.HandleFunc("/api/pools/count", pc.PoolCount).Methods("GET")
	r.HandleFunc("/api/pools/{account}", pc.Get).Methods("GET")
	r.HandleFunc("/api/pools/{account}/reserves/{tokenId}", pc.Reserve).Methods("GET")
	if metricsEnabled {
		r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}
}
