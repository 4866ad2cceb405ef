package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidCriteriaRange is the parent of every out-of-domain criteria
	// bound. Bounds are rejected, never clamped.
	ErrInvalidCriteriaRange = errors.New("criteria value out of range")

	ErrInvalidYear          = errors.New("year must be within [1900, 2100]")
	ErrInvalidMinScore      = errors.New("minimal score must be within [0, 100]")
	ErrInvalidMaxScore      = errors.New("maximal score must be within [0, 100]")
	ErrInvalidMinAlcohol    = errors.New("minimal alcohol must be within [0, 100]")
	ErrInvalidMaxAlcohol    = errors.New("maximal alcohol must be within [0, 100]")
	ErrInvalidPage          = errors.New("page number must be at least 1")
	ErrInvalidPageSize      = errors.New("invalid page size")
	ErrMissingField         = errors.New("mandatory field is missing")
	ErrBlankField           = errors.New("mandatory field is blank")
	ErrInvalidWineYear      = errors.New("invalid vintage year")
	ErrInvalidWinePercent   = errors.New("invalid percentage value")
	ErrNilCreateWineRequest = errors.New("create wine request is nil")
)
