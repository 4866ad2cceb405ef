// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/query"
	"github.com/MKhiriev/go-wine-cellar/internal/utils"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

// wineRepository is the SQL implementation of [WineRepository]. Statements are
// rendered by squirrel with the placeholder format of the connection dialect.
type wineRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewWineRepository constructs a [WineRepository] backed by db.
func NewWineRepository(db *DB, logger *logger.Logger) WineRepository {
	return &wineRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (r *wineRepository) GetWineByID(ctx context.Context, id uuid.UUID) (models.Wine, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildGetWineByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "wineRepository.GetWineByID").Msg("failed to build query")
		return models.Wine{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var wine models.Wine
	err = r.DB.QueryRowContext(ctx, sqlQuery, args...).Scan(wineScanTargets(&wine)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Wine{}, ErrWineNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "wineRepository.GetWineByID").
			Str("id", id.String()).
			Str("class", r.errorClassificator.Classify(err).String()).
			Msg("failed to get wine")
		return models.Wine{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return wine, nil
}

func (r *wineRepository) SaveWine(ctx context.Context, wine models.Wine) (models.Wine, error) {
	log := logger.FromContext(ctx)

	wine.ID = r.ids.Generate()

	sqlQuery, args, err := buildSaveWineQuery(r.builder, wine)
	if err != nil {
		log.Err(err).Str("func", "wineRepository.SaveWine").Msg("failed to build query")
		return models.Wine{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "wineRepository.SaveWine").
			Str("id", wine.ID.String()).
			Str("class", r.errorClassificator.Classify(err).String()).
			Msg("failed to insert wine")
		if isConstraintViolation(err) {
			return models.Wine{}, fmt.Errorf("%w: %w", ErrWineConstraintViolation, err)
		}
		return models.Wine{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Wine{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Error().Str("func", "wineRepository.SaveWine").Str("id", wine.ID.String()).Msg("no rows inserted")
		return models.Wine{}, ErrWineNotSaved
	}

	return wine, nil
}

func (r *wineRepository) FindWines(ctx context.Context, predicate query.Predicate, page query.PageQuery) (query.Page[models.Wine], error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountWinesQuery(r.builder, predicate)
	if err != nil {
		log.Err(err).Str("func", "wineRepository.FindWines").Msg("failed to build count query")
		return query.Page[models.Wine]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "wineRepository.FindWines").
			Int("clauses", len(predicate.Clauses())).
			Msg("failed to count wines")
		return query.Page[models.Wine]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if total == 0 || page.Offset() >= uint64(total) {
		return query.NewPage[models.Wine](nil, page, total), nil
	}

	selectQuery, selectArgs, err := buildFindWinesQuery(r.builder, predicate, page)
	if err != nil {
		log.Err(err).Str("func", "wineRepository.FindWines").Msg("failed to build select query")
		return query.Page[models.Wine]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, selectQuery, selectArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "wineRepository.FindWines").
			Int("page", page.Index).
			Int("size", page.Size).
			Msg("failed to execute query for finding wines")
		return query.Page[models.Wine]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	wines := make([]models.Wine, 0, page.Size)
	for rows.Next() {
		var wine models.Wine
		if scanErr := rows.Scan(wineScanTargets(&wine)...); scanErr != nil {
			log.Err(scanErr).Str("func", "wineRepository.FindWines").Msg("failed to scan wine row")
			return query.Page[models.Wine]{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		wines = append(wines, wine)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "wineRepository.FindWines").Msg("error occurred during rows iteration")
		return query.Page[models.Wine]{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return query.NewPage(wines, page, total), nil
}

func (r *wineRepository) UpdateWine(ctx context.Context, wine models.Wine) (int64, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildUpdateWineQuery(r.builder, wine)
	if err != nil {
		log.Err(err).Str("func", "wineRepository.UpdateWine").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "wineRepository.UpdateWine").
			Str("id", wine.ID.String()).
			Str("class", r.errorClassificator.Classify(err).String()).
			Msg("failed to update wine")
		if isConstraintViolation(err) {
			return 0, fmt.Errorf("%w: %w", ErrWineConstraintViolation, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func (r *wineRepository) DeleteWineByID(ctx context.Context, id uuid.UUID) (int64, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildDeleteWineQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "wineRepository.DeleteWineByID").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "wineRepository.DeleteWineByID").Str("id", id.String()).Msg("failed to delete wine")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}
