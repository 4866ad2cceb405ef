// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-wine-cellar/internal/service"
)

// ErrNoCatalogService is returned by New when the client services carry no
// catalog service.
var ErrNoCatalogService = errors.New("catalog service is not configured")

// humanizeError turns a client service error into a status line.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWineNotFound):
		return "Wine no longer exists"
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Server rejected the credentials, check APP_TOKEN_SIGN_KEY"
	case errors.Is(err, service.ErrTooManyRequests):
		return "Too many requests, try again in a moment"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Server rejected the request: " + err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") ||
		errors.Is(err, service.ErrServerUnavailable) {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
