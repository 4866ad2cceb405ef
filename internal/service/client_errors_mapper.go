// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wine-cellar/internal/adapter"
	"github.com/MKhiriev/go-wine-cellar/internal/app"
	"github.com/google/uuid"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. id is reported in a *NotFoundError for single-wine calls.
func mapAdapterError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if strings.HasPrefix(msg, app.MsgMissingMandatoryField) {
			return fmt.Errorf("%w: %s", ErrMissingMandatoryField, msg)
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgTokenIsExpiredOrInvalid {
			return ErrTokenIsExpiredOrInvalid
		}
		return ErrUnauthorized

	case errors.Is(err, adapter.ErrNotFound):
		return &NotFoundError{ID: id}

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrTooManyRequests

	case errors.Is(err, adapter.ErrRequestFailed), errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
