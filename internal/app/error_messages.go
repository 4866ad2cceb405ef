// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// wine cellar transports and the catalog client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or gRPC status messages. The client matches on the same
// strings to turn a response back into a service error.
package app

const (
	// MsgInvalidDataProvided is returned when the request body or query
	// cannot be decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidWineID is returned when the {id} path segment is not a UUID.
	MsgInvalidWineID = "invalid wine id"

	// MsgMissingMandatoryField is returned when a create request leaves a
	// mandatory field unset or blank.
	MsgMissingMandatoryField = "missing mandatory field"

	// MsgInvalidSortDirection is returned for a sortOrder other than ASC or DESC.
	MsgInvalidSortDirection = "invalid sort direction"

	// MsgInvalidSortField is returned for a sortBy naming a column that cannot
	// be sorted on.
	MsgInvalidSortField = "invalid sort field"

	// MsgInvalidCriteriaRange is returned when a numeric filter lies outside
	// its domain.
	MsgInvalidCriteriaRange = "criteria value out of range"

	// MsgInvalidPage is returned for a pageNo or pageSize outside the
	// accepted bounds.
	MsgInvalidPage = "invalid page request"

	// MsgWineNotFound is returned when the requested wine does not exist.
	MsgWineNotFound = "wine not found"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
