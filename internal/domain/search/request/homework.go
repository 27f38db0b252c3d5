package request

import (
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

// HomeworkSort enumerates the allowed sort keys for homework search.
type HomeworkSort string

const (
	HomeworkSortName        HomeworkSort = "name"
	HomeworkSortDescription HomeworkSort = "description"
)

// IsValid reports whether the sort key is a known value.
func (s HomeworkSort) IsValid() bool {
	return s == HomeworkSortName || s == HomeworkSortDescription
}

// HomeworkParams are the raw inputs to NewHomework.
type HomeworkParams struct {
	Query string
	Sort  string
	Page  int
	Limit int
}

// Homework is a validated homework search request.
type Homework struct {
	query      string
	sort       HomeworkSort
	pagination Pagination
}

// NewHomework validates and normalizes homework search parameters.
func NewHomework(p HomeworkParams) (Homework, error) {
	if err := validateQuery(p.Query); err != nil {
		return Homework{}, err
	}

	sort := HomeworkSort(p.Sort)
	if sort == "" {
		sort = HomeworkSortName
	}
	if !sort.IsValid() {
		return Homework{}, fmt.Errorf("%w: invalid sort key %q", domain.ErrInvalidRequest, p.Sort)
	}

	return Homework{
		query:      p.Query,
		sort:       sort,
		pagination: NewPagination(p.Page, p.Limit),
	}, nil
}

// Query returns the free-text query.
func (r *Homework) Query() string { return r.query }

// Sort returns the requested sort key.
func (r *Homework) Sort() HomeworkSort { return r.sort }

// Pagination returns the normalized page/limit pair.
func (r *Homework) Pagination() Pagination { return r.pagination }
