package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("http", "/api/wines", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest("http", "/api/wines", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("grpc", "GetWine", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("http", "/api/wines", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("grpc", "GetWine", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestNew_IndependentRegistries(t *testing.T) {
	first, second := New(), New()

	first.CatalogSize.Set(7)

	assert.Equal(t, 7.0, testutil.ToFloat64(first.CatalogSize))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.CatalogSize))
	assert.NotSame(t, first.Registry(), second.Registry())
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.CatalogSize.Set(3)
	m.RateLimited.Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "winecellar_catalog_wines 3")
	assert.Contains(t, body, "winecellar_rate_limited_total 1")
	assert.Contains(t, body, "go_goroutines")
}
