// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks catalog requests at the service boundary: search
// criteria ranges, page requests and create payloads. Values outside their
// domain are rejected, never clamped.
package validators

import "context"

// Validator validates obj. When fields are given, only those named fields of
// obj are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
