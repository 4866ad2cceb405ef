package query

import (
	"fmt"

	"github.com/MKhiriev/go-wine-cellar/models"
)

// PageQuery is the 0-based page a store is asked for.
type PageQuery struct {
	Index int
	Size  int
	Sort  SortQuery
}

// SortQuery is a validated sort column with its direction.
type SortQuery struct {
	Field     Field
	Direction models.SortDirection
}

// Offset is the number of rows to skip before the page starts.
func (q PageQuery) Offset() uint64 {
	return uint64(q.Index) * uint64(q.Size)
}

// Limit is the maximum number of rows on the page.
func (q PageQuery) Limit() uint64 {
	return uint64(q.Size)
}

// Page is one 0-based page returned by a store.
type Page[T any] struct {
	Content       []T
	Index         int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NewPage assembles a store page and computes its page count.
func NewPage[T any](content []T, q PageQuery, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		Index:         q.Index,
		Size:          q.Size,
		TotalElements: total,
		TotalPages:    TotalPages(total, q.Size),
	}
}

// TotalPages is ceil(total/size), and 0 when total is 0.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// ToStoreRequest converts a 1-based caller page into a 0-based store page.
// The sort field must be a sortable wine column.
func ToStoreRequest(page, size int, sort models.SortSpec) (PageQuery, error) {
	if page < 1 || size < 1 {
		return PageQuery{}, fmt.Errorf("%w: page=%d size=%d", ErrInvalidPageRequest, page, size)
	}

	field, ok := ParseSortField(sort.Field)
	if !ok {
		return PageQuery{}, fmt.Errorf("%w: %q", ErrInvalidSortField, sort.Field)
	}

	return PageQuery{
		Index: page - 1,
		Size:  size,
		Sort:  SortQuery{Field: field, Direction: sort.Direction},
	}, nil
}

// ToPageResult converts a store page into the caller-facing 1-based form.
func ToPageResult[T any](p Page[T]) models.PageResult[T] {
	content := p.Content
	if content == nil {
		content = []T{}
	}

	return models.PageResult[T]{
		Content:       content,
		CurrentPage:   p.Index + 1,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
		Size:          p.Size,
	}
}
