package models

import (
	"fmt"
	"strings"
)

// SortDirection is the ordering of a sorted listing.
type SortDirection int

const (
	SortAscending SortDirection = iota
	SortDescending
)

// String returns the canonical token of the direction.
func (d SortDirection) String() string {
	if d == SortDescending {
		return "DESC"
	}
	return "ASC"
}

// ParseSortDirection parses "ASC" or "DESC" in any letter case.
// Any other token yields ErrInvalidSortDirection.
func ParseSortDirection(token string) (SortDirection, error) {
	switch strings.ToUpper(token) {
	case "ASC":
		return SortAscending, nil
	case "DESC":
		return SortDescending, nil
	default:
		return SortAscending, fmt.Errorf("%w: %q", ErrInvalidSortDirection, token)
	}
}

// SortSpec names the field a listing is ordered by and its direction.
type SortSpec struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}

// PageRequest is a 1-based page request as seen by API callers.
type PageRequest struct {
	Page int      `json:"page"`
	Size int      `json:"size"`
	Sort SortSpec `json:"sort"`
}

// Listing defaults.
const (
	DefaultPage          = 1
	DefaultPageSize      = 12
	DefaultSortField     = "name"
	DefaultSortDirection = SortAscending
)

// PageResult is one page of a listing in caller-facing, 1-based terms.
//
// Size echoes the requested page size even when the last page is shorter.
type PageResult[T any] struct {
	Content       []T   `json:"content"`
	CurrentPage   int   `json:"current_page"`
	TotalPages    int   `json:"total_pages"`
	TotalElements int64 `json:"total_elements"`
	Size          int   `json:"size"`
}

// NewPageRequest returns the request a listing gets when the caller names no
// page: the first page of size entries, ascending by name.
func NewPageRequest(size int) PageRequest {
	return PageRequest{
		Page: DefaultPage,
		Size: size,
		Sort: SortSpec{Field: DefaultSortField, Direction: DefaultSortDirection},
	}
}

// WithDefaultSort orders the request ascending by name when no sort field is
// set. Page and size are left alone: a zero page or size is invalid, not
// absent.
func (r PageRequest) WithDefaultSort() PageRequest {
	if r.Sort.Field == "" {
		r.Sort = SortSpec{Field: DefaultSortField, Direction: DefaultSortDirection}
	}
	return r
}
