package query

import "errors"

var (
	// ErrInvalidSortField is returned when a listing is sorted by a field that
	// is not a sortable wine column.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidPageRequest is returned when a page number or page size is
	// below one.
	ErrInvalidPageRequest = errors.New("invalid page request")
)
