// Package request holds the validated search request types. Handlers build
// them from raw query parameters; executors operate only on these.
package request

import (
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 512
	DefaultPage    = 1
	DefaultLimit   = 25
	MaxLimit       = 100
)

// FilterAny is the sentinel filter value meaning "no restriction".
const FilterAny = "any"

// Pagination is a normalized page/limit pair.
// Non-positive values fall back to defaults; limit is capped at MaxLimit.
type Pagination struct {
	page  int
	limit int
}

// NewPagination normalizes raw page/limit values.
func NewPagination(page, limit int) Pagination {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{page: page, limit: limit}
}

// Page returns the 1-based page number.
func (p Pagination) Page() int {
	if p.page <= 0 {
		return DefaultPage
	}
	return p.page
}

// Limit returns the page size.
func (p Pagination) Limit() int {
	if p.limit <= 0 {
		return DefaultLimit
	}
	return p.limit
}

// Offset returns the zero-based record offset of the page start.
func (p Pagination) Offset() int {
	return (p.Page() - 1) * p.Limit()
}

func validateQuery(q string) error {
	if len(q) > MaxQueryLength {
		return fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidRequest, MaxQueryLength)
	}
	return nil
}

// normalizeFilter maps the "any" sentinel to an empty (inactive) filter.
func normalizeFilter(v string) string {
	if v == FilterAny {
		return ""
	}
	return v
}
