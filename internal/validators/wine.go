package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wine-cellar/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// Search criteria fields.
	FieldYear       = "year"
	FieldMinScore   = "min_score"
	FieldMaxScore   = "max_score"
	FieldMinAlcohol = "min_alcohol"
	FieldMaxAlcohol = "max_alcohol"

	// Page request fields.
	FieldPage     = "page"
	FieldPageSize = "size"

	// Create request fields. FieldMandatory checks presence and non-blank
	// text; FieldValues checks the numeric domains.
	FieldMandatory = "mandatory"
	FieldValues    = "values"
)

var (
	criteriaFields     = []string{FieldYear, FieldMinScore, FieldMaxScore, FieldMinAlcohol, FieldMaxAlcohol}
	pageRequestFields  = []string{FieldPage, FieldPageSize}
	createRequestField = []string{FieldMandatory, FieldValues}
)

// WineValidator validates the inbound wine catalog models: search criteria,
// page requests and create requests.
type WineValidator struct {
	maxPageSize int
}

// NewWineValidator returns a Validator that rejects page sizes above
// maxPageSize. A non-positive maxPageSize disables the upper bound.
func NewWineValidator(maxPageSize int) Validator {
	return &WineValidator{maxPageSize: maxPageSize}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms are
// accepted; a nil *models.SearchCriteria is valid and means "no filter".
func (v *WineValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SearchCriteria:
		return v.validateSearchCriteria(ctx, value, fields...)
	case *models.SearchCriteria:
		if value == nil {
			return nil
		}
		return v.validateSearchCriteria(ctx, *value, fields...)

	case models.PageRequest:
		return v.validatePageRequest(ctx, value, fields...)
	case *models.PageRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePageRequest(ctx, *value, fields...)

	case models.CreateWineRequest:
		return v.validateCreateWineRequest(ctx, value, fields...)
	case *models.CreateWineRequest:
		if value == nil {
			return ErrNilCreateWineRequest
		}
		return v.validateCreateWineRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSearchCriteria checks the domain of every present bound. Min and max
// are not compared with each other: an inverted pair simply matches nothing.
func (v *WineValidator) validateSearchCriteria(_ context.Context, c models.SearchCriteria, fields ...string) error {
	if len(fields) == 0 {
		fields = criteriaFields
	}

	for _, f := range fields {
		switch f {
		case FieldYear:
			if c.Year != nil && !yearInDomain(*c.Year) {
				return fmt.Errorf("%w: %w: %d", ErrInvalidCriteriaRange, ErrInvalidYear, *c.Year)
			}
		case FieldMinScore:
			if err := checkPercent(c.MinScore, ErrInvalidMinScore); err != nil {
				return err
			}
		case FieldMaxScore:
			if err := checkPercent(c.MaxScore, ErrInvalidMaxScore); err != nil {
				return err
			}
		case FieldMinAlcohol:
			if err := checkPercent(c.MinAlcohol, ErrInvalidMinAlcohol); err != nil {
				return err
			}
		case FieldMaxAlcohol:
			if err := checkPercent(c.MaxAlcohol, ErrInvalidMaxAlcohol); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WineValidator) validatePageRequest(_ context.Context, r models.PageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = pageRequestFields
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if r.Page < 1 {
				return fmt.Errorf("%w: %d", ErrInvalidPage, r.Page)
			}
		case FieldPageSize:
			if r.Size < 1 || (v.maxPageSize > 0 && r.Size > v.maxPageSize) {
				return fmt.Errorf("%w: %d", ErrInvalidPageSize, r.Size)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateWineRequest requires every field of the request. Text fields
// must also be non-blank after trimming.
func (v *WineValidator) validateCreateWineRequest(_ context.Context, r models.CreateWineRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = createRequestField
	}

	for _, f := range fields {
		switch f {
		case FieldMandatory:
			if err := checkMandatory(r); err != nil {
				return err
			}
		case FieldValues:
			if r.Year != nil && *r.Year <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidWineYear, *r.Year)
			}
			if err := checkWinePercent("sugar", r.Sugar); err != nil {
				return err
			}
			if err := checkWinePercent("alcohol", r.Alcohol); err != nil {
				return err
			}
			if err := checkWinePercent("score", r.Score); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkMandatory(r models.CreateWineRequest) error {
	if missing := r.MissingField(); missing != "" {
		return fmt.Errorf("%w: %s", ErrMissingField, missing)
	}

	texts := []struct {
		name  string
		value string
	}{
		{"name", *r.Name},
		{"color", *r.Color},
		{"state", *r.State},
		{"winery", *r.Winery},
		{"kind", *r.Kind},
		{"country", *r.Country},
		{"region", *r.Region},
		{"description", *r.Description},
		{"picture", *r.Picture},
	}
	for _, t := range texts {
		if strings.TrimSpace(t.value) == "" {
			return fmt.Errorf("%w: %s", ErrBlankField, t.name)
		}
	}

	return nil
}

func yearInDomain(year int) bool {
	return year >= models.MinCriteriaYear && year <= models.MaxCriteriaYear
}

func checkPercent(p *float64, fieldErr error) error {
	if p == nil {
		return nil
	}
	if *p < models.MinCriteriaPercent || *p > models.MaxCriteriaPercent {
		return fmt.Errorf("%w: %w: %v", ErrInvalidCriteriaRange, fieldErr, *p)
	}
	return nil
}

func checkWinePercent(name string, p *float64) error {
	if p != nil && (*p < models.MinCriteriaPercent || *p > models.MaxCriteriaPercent) {
		return fmt.Errorf("%w: %s=%v", ErrInvalidWinePercent, name, *p)
	}
	return nil
}
