// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// wine cellar server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic access to the wine catalog.
// Implementations are responsible for serialisation, the authentication
// header and mapping transport-level errors to the sentinel values defined in
// this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every mutating request.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// GetWine fetches a single wine.
	GetWine(ctx context.Context, id uuid.UUID) (models.Wine, error)

	// ListWines fetches one page of the wines matching criteria.
	ListWines(ctx context.Context, criteria models.SearchCriteria, pageRequest models.PageRequest) (models.PageResult[models.Wine], error)

	// CreateWine stores a new wine and returns it with its server-assigned ID.
	CreateWine(ctx context.Context, request models.CreateWineRequest) (models.Wine, error)

	// UpdateWine sends a partial update and returns the updated wine.
	UpdateWine(ctx context.Context, id uuid.UUID, update models.WineUpdate) (models.Wine, error)

	// DeleteWine removes a wine.
	DeleteWine(ctx context.Context, id uuid.UUID) error

	// GetVersion returns the server version string.
	GetVersion(ctx context.Context) (string, error)
}
