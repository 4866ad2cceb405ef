package utils

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/go-resty/resty/v2"
)

// Retry settings of catalog requests. Only idempotent methods are retried.
const (
	httpClientRetryCount   = 2
	httpClientRetryWait    = 200 * time.Millisecond
	httpClientRetryMaxWait = 2 * time.Second
)

// HTTPClient embeds *resty.Client so all of its methods are available
// directly, configured for talking to the catalog server.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that sends every request to baseURL, gives
// up after timeout and retries idempotent requests that failed with a
// transport error, 429 or 503.
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration, log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(httpClientRetryCount).
		SetRetryWaitTime(httpClientRetryWait).
		SetRetryMaxWaitTime(httpClientRetryMaxWait).
		AddRetryCondition(retryIdempotent).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			log.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Msg("catalog request done")
			return nil
		})

	return &HTTPClient{Client: client}
}

func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return err != nil
	}

	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
	default:
		return false
	}

	if err != nil {
		return true
	}
	return resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() == http.StatusServiceUnavailable
}
