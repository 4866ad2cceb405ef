// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/utils"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

func (h *Handler) GetWine(ctx context.Context, req *GetWineRequest) (*models.Wine, error) {
	id, err := parseWineID(req.ID)
	if err != nil {
		return nil, h.fail(ctx, err, "Handler.GetWine")
	}

	wine, err := h.services.WineService.GetWine(ctx, id)
	if err != nil {
		return nil, h.fail(ctx, err, "Handler.GetWine")
	}

	return &wine, nil
}

func (h *Handler) ListWines(ctx context.Context, req *ListWinesRequest) (*models.PageResult[models.Wine], error) {
	pageRequest, err := req.PageRequest(h.defaultPageSize)
	if err != nil {
		return nil, h.fail(ctx, err, "Handler.ListWines")
	}

	page, err := h.services.WineService.ListWines(ctx, req.Criteria, pageRequest)
	if err != nil {
		return nil, h.fail(ctx, err, "Handler.ListWines")
	}

	return &page, nil
}

func (h *Handler) CreateWine(ctx context.Context, req *CreateWineRequest) (*models.Wine, error) {
	wine, err := h.services.WineService.CreateWine(ctx, req.Wine)
	if err != nil {
		return nil, h.fail(ctx, err, "Handler.CreateWine")
	}

	operator, _ := utils.GetOperatorFromContext(ctx)
	logger.FromContext(ctx).Info().Str("id", wine.ID.String()).Str("operator", operator).Msg("wine created")

	return &wine, nil
}

func (h *Handler) UpdateWine(ctx context.Context, req *UpdateWineRequest) (*models.Wine, error) {
	id, err := parseWineID(req.ID)
	if err != nil {
		return nil, h.fail(ctx, err, "Handler.UpdateWine")
	}

	wine, err := h.services.WineService.UpdateWine(ctx, id, req.Update)
	if err != nil {
		return nil, h.fail(ctx, err, "Handler.UpdateWine")
	}

	operator, _ := utils.GetOperatorFromContext(ctx)
	logger.FromContext(ctx).Info().Str("id", id.String()).Str("operator", operator).Msg("wine updated")

	return &wine, nil
}

func (h *Handler) DeleteWine(ctx context.Context, req *DeleteWineRequest) (*DeleteWineResponse, error) {
	id, err := parseWineID(req.ID)
	if err != nil {
		return nil, h.fail(ctx, err, "Handler.DeleteWine")
	}

	deleted, err := h.services.WineService.DeleteWine(ctx, id)
	if err != nil {
		return nil, h.fail(ctx, err, "Handler.DeleteWine")
	}

	operator, _ := utils.GetOperatorFromContext(ctx)
	logger.FromContext(ctx).Info().Str("id", id.String()).Str("operator", operator).Int64("deleted", deleted).Msg("wine deleted")

	return &DeleteWineResponse{Deleted: deleted}, nil
}

func (h *Handler) fail(ctx context.Context, err error, fn string) error {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("catalog call failed")
	return statusError(err)
}

func parseWineID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", errInvalidWineID, err)
	}
	return id, nil
}
