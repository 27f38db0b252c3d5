package request

import (
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

// UserSort enumerates the allowed sort keys for people search.
type UserSort string

const (
	UserSortFirst UserSort = "first"
	UserSortLast  UserSort = "last"
)

// IsValid reports whether the sort key is a known value.
func (s UserSort) IsValid() bool {
	return s == UserSortFirst || s == UserSortLast
}

// UsersParams are the raw inputs to NewUsers.
type UsersParams struct {
	Query string
	Sort  string
	Page  int
	Limit int
}

// Users is a validated people search request.
type Users struct {
	query      string
	sort       UserSort
	pagination Pagination
}

// NewUsers validates and normalizes people search parameters.
func NewUsers(p UsersParams) (Users, error) {
	if err := validateQuery(p.Query); err != nil {
		return Users{}, err
	}

	sort := UserSort(p.Sort)
	if sort == "" {
		sort = UserSortFirst
	}
	if !sort.IsValid() {
		return Users{}, fmt.Errorf("%w: invalid sort key %q", domain.ErrInvalidRequest, p.Sort)
	}

	return Users{
		query:      p.Query,
		sort:       sort,
		pagination: NewPagination(p.Page, p.Limit),
	}, nil
}

// Query returns the free-text query.
func (r *Users) Query() string { return r.query }

// Sort returns the requested sort key.
func (r *Users) Sort() UserSort { return r.sort }

// Pagination returns the normalized page/limit pair.
func (r *Users) Pagination() Pagination { return r.pagination }
