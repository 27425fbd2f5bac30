package roster

import (
	"errors"
	"fmt"
)

// PageSizes are the page sizes the dashboard offers.
var PageSizes = []int{10, 25, 50, 100}

var (
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrInvalidPageSize = errors.New("page size not allowed")
)

// ValidPageSize reports whether size is one of PageSizes.
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}

	return false
}

// Page is one slice of a filtered list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Paginate returns items [(page-1)*size, page*size) of list and the page count.
// A page past the end yields an empty slice; it is not clamped.
func Paginate[T any](list []T, page, size int) (Page[T], error) {
	if page < 1 {
		return Page[T]{}, ErrInvalidPage
	}

	if !ValidPageSize(size) {
		return Page[T]{}, fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
	}

	total := len(list)
	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: (total + size - 1) / size,
	}

	start := (page - 1) * size
	if start >= total {
		return p, nil
	}

	end := start + size
	if end > total {
		end = total
	}

	p.Items = list[start:end]

	return p, nil
}
