package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/validators"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

// WineValidationService checks inbound listing and create requests before
// they reach the wrapped WineService. Updates are passed through unchecked.
type WineValidationService struct {
	inner     WineService
	validator validators.Validator
}

func NewWineValidationService(cfg config.App) WineServiceWrapper {
	return &WineValidationService{
		validator: validators.NewWineValidator(cfg.MaxPageSize),
	}
}

func (v *WineValidationService) GetWine(ctx context.Context, id uuid.UUID) (models.Wine, error) {
	return v.inner.GetWine(ctx, id)
}

func (v *WineValidationService) ListWines(ctx context.Context, criteria *models.SearchCriteria, pageRequest models.PageRequest) (models.PageResult[models.Wine], error) {
	if err := v.validator.Validate(ctx, criteria); err != nil {
		return models.PageResult[models.Wine]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, pageRequest); err != nil {
		return models.PageResult[models.Wine]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListWines(ctx, criteria, pageRequest)
}

func (v *WineValidationService) CreateWine(ctx context.Context, request models.CreateWineRequest) (models.Wine, error) {
	err := v.validator.Validate(ctx, request)
	if errors.Is(err, validators.ErrMissingField) || errors.Is(err, validators.ErrBlankField) {
		return models.Wine{}, fmt.Errorf("%w: %w", ErrMissingMandatoryField, err)
	}
	if err != nil {
		return models.Wine{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateWine(ctx, request)
}

func (v *WineValidationService) UpdateWine(ctx context.Context, id uuid.UUID, update models.WineUpdate) (models.Wine, error) {
	return v.inner.UpdateWine(ctx, id, update)
}

func (v *WineValidationService) DeleteWine(ctx context.Context, id uuid.UUID) (int64, error) {
	return v.inner.DeleteWine(ctx, id)
}

func (v *WineValidationService) Wrap(wrapped WineService) WineService {
	v.inner = wrapped
	return v
}
