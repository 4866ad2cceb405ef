// Package http implements the HTTP transport of the wine catalog.
//
// It exposes the /api/wines resource, the version endpoint and the prometheus
// scrape endpoint. Tracing, access logging, rate limiting, metrics,
// compression and bearer-token checks on writes are handled by middlewares
// before requests reach the service layer.
package http
