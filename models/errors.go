package models

import "errors"

// ErrInvalidSortDirection is returned by [ParseSortDirection] for any token
// other than "ASC" or "DESC".
var ErrInvalidSortDirection = errors.New("invalid sort direction")
