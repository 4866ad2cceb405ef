package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRateLimit)
	router.Use(h.withMetrics)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)
	router.Method("GET", "/metrics", h.metricsHandler())

	// reads are public
	router.Get("/api/wines", h.listWines)
	router.Get("/api/wines/{id}", h.getWine)

	// writes need a token when a sign key is configured
	writes := chi.Router(router)
	if h.authRequired {
		writes = router.With(h.auth)
	}
	writes.Post("/api/wines", h.createWine)
	writes.Patch("/api/wines/{id}", h.updateWine)
	writes.Delete("/api/wines/{id}", h.deleteWine)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
