// Package middleware holds gorilla/mux middleware for the read-only
// HTTP surface, adapted from walletserver/middleware/logger.go.
package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger logs method, path, and latency for every request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.RequestURI,
			"elapsed": time.Since(start),
		}).Info("request")
	})
}
