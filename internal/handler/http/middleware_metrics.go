package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const transportHTTP = "http"

// withMetrics records the status and latency of every request under its
// route pattern, so that /api/wines/{id} is a single series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		h.metrics.ObserveRequest(transportHTTP, route, mw.Status(), time.Since(start))
	})
}
