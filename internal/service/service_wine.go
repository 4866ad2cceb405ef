// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/query"
	"github.com/MKhiriev/go-wine-cellar/internal/store"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

// wineService implements WineService on top of a store.WineRepository.
// It keeps no state of its own; the repository is the only shared resource.
type wineService struct {
	wineRepository store.WineRepository
	logger         *logger.Logger
}

// NewWineService constructs a WineService backed by wineRepository.
func NewWineService(wineRepository store.WineRepository, logger *logger.Logger) WineService {
	return &wineService{
		wineRepository: wineRepository,
		logger:         logger,
	}
}

func (s *wineService) GetWine(ctx context.Context, id uuid.UUID) (models.Wine, error) {
	log := logger.FromContext(ctx)

	wine, err := s.wineRepository.GetWineByID(ctx, id)
	if errors.Is(err, store.ErrWineNotFound) {
		return models.Wine{}, &NotFoundError{ID: id}
	}
	if err != nil {
		log.Err(err).Str("func", "wineService.GetWine").Stringer("id", id).Msg("error getting wine")
		return models.Wine{}, fmt.Errorf("error getting wine: %w", err)
	}

	return wine, nil
}

// ListWines composes the criteria into a predicate, turns the 1-based page
// request into a store page and converts the store page back. A request
// without a sort field is ordered by name; a page or size below 1 is rejected.
func (s *wineService) ListWines(ctx context.Context, criteria *models.SearchCriteria, pageRequest models.PageRequest) (models.PageResult[models.Wine], error) {
	log := logger.FromContext(ctx)

	pageRequest = pageRequest.WithDefaultSort()

	predicate := query.Compose(criteria)
	pageQuery, err := query.ToStoreRequest(pageRequest.Page, pageRequest.Size, pageRequest.Sort)
	if err != nil {
		log.Err(err).Str("func", "wineService.ListWines").Any("page_request", pageRequest).Msg("invalid page request")
		return models.PageResult[models.Wine]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	page, err := s.wineRepository.FindWines(ctx, predicate, pageQuery)
	if err != nil {
		log.Err(err).Str("func", "wineService.ListWines").Msg("error listing wines")
		return models.PageResult[models.Wine]{}, fmt.Errorf("error listing wines: %w", err)
	}

	return query.ToPageResult(page), nil
}

// CreateWine refuses a request with any unset field before touching the store.
func (s *wineService) CreateWine(ctx context.Context, request models.CreateWineRequest) (models.Wine, error) {
	log := logger.FromContext(ctx)

	if missing := request.MissingField(); missing != "" {
		log.Error().Str("func", "wineService.CreateWine").Str("field", missing).Msg("mandatory field is missing")
		return models.Wine{}, fmt.Errorf("%w: %s", ErrMissingMandatoryField, missing)
	}

	wine, err := s.wineRepository.SaveWine(ctx, request.ToWine())
	if err != nil {
		log.Err(err).Str("func", "wineService.CreateWine").Msg("error saving wine")
		return models.Wine{}, fmt.Errorf("error saving wine: %w", err)
	}

	return wine, nil
}

// UpdateWine loads the wine, merges update into it and writes it back. The
// load bypasses any read cache so the merge starts from the stored record.
//
// Concurrent updates of the same wine are last-writer-wins. A wine deleted
// between the load and the write is reported as not found.
func (s *wineService) UpdateWine(ctx context.Context, id uuid.UUID, update models.WineUpdate) (models.Wine, error) {
	log := logger.FromContext(ctx)

	wine, err := s.GetWine(store.SkipCache(ctx), id)
	if err != nil {
		return models.Wine{}, err
	}

	mergeWine(&wine, update)

	affected, err := s.wineRepository.UpdateWine(ctx, wine)
	if err != nil {
		log.Err(err).Str("func", "wineService.UpdateWine").Stringer("id", id).Msg("error updating wine")
		return models.Wine{}, fmt.Errorf("error updating wine: %w", err)
	}
	if affected == 0 {
		log.Warn().Str("func", "wineService.UpdateWine").Stringer("id", id).Msg("wine deleted before update")
		return models.Wine{}, &NotFoundError{ID: id}
	}

	return wine, nil
}

// DeleteWine removes the wine with a single count-returning delete.
func (s *wineService) DeleteWine(ctx context.Context, id uuid.UUID) (int64, error) {
	log := logger.FromContext(ctx)

	affected, err := s.wineRepository.DeleteWineByID(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "wineService.DeleteWine").Stringer("id", id).Msg("error deleting wine")
		return 0, fmt.Errorf("error deleting wine: %w", err)
	}
	if affected == 0 {
		return 0, &NotFoundError{ID: id}
	}

	return affected, nil
}
