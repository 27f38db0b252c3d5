package request

import (
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

// BookSort enumerates the allowed sort keys for book search.
type BookSort string

const (
	BookSortTitle       BookSort = "title"
	BookSortAuthor      BookSort = "author"
	BookSortLibrary     BookSort = "library"
	BookSortSubject     BookSort = "subject"
	BookSortAffiliation BookSort = "affiliation"
)

// IsValid reports whether the sort key is a known value.
func (s BookSort) IsValid() bool {
	switch s {
	case BookSortTitle, BookSortAuthor, BookSortLibrary, BookSortSubject, BookSortAffiliation:
		return true
	}
	return false
}

// Book location values.
const (
	LocationCentral = "central"
	LocationCampus  = "campus"
)

// BooksParams are the raw inputs to NewBooks.
type BooksParams struct {
	Query       string
	Library     string
	Subject     string
	Location    string // central | campus
	License     string
	Author      string
	Course      string
	Publisher   string // aliased to the book's program field
	Affiliation string
	Sort        string
	Page        int
	Limit       int
}

// Books is a validated book search request.
type Books struct {
	query       string
	library     string
	subject     string
	location    string
	license     string
	author      string
	course      string
	publisher   string
	affiliation string
	sort        BookSort
	pagination  Pagination
}

// NewBooks validates and normalizes book search parameters.
// Defaults: sort=title, page=1, limit=25.
func NewBooks(p BooksParams) (Books, error) {
	if err := validateQuery(p.Query); err != nil {
		return Books{}, err
	}

	sort := BookSort(p.Sort)
	if sort == "" {
		sort = BookSortTitle
	}
	if !sort.IsValid() {
		return Books{}, fmt.Errorf("%w: invalid sort key %q", domain.ErrInvalidRequest, p.Sort)
	}

	switch p.Location {
	case "", LocationCentral, LocationCampus:
	default:
		return Books{}, fmt.Errorf("%w: invalid location %q", domain.ErrInvalidRequest, p.Location)
	}

	return Books{
		query:       p.Query,
		library:     normalizeFilter(p.Library),
		subject:     normalizeFilter(p.Subject),
		location:    normalizeFilter(p.Location),
		license:     normalizeFilter(p.License),
		author:      normalizeFilter(p.Author),
		course:      normalizeFilter(p.Course),
		publisher:   normalizeFilter(p.Publisher),
		affiliation: normalizeFilter(p.Affiliation),
		sort:        sort,
		pagination:  NewPagination(p.Page, p.Limit),
	}, nil
}

// Query returns the free-text query ("" means filter-only search).
func (r *Books) Query() string { return r.query }

// Library returns the library filter ("" means inactive).
func (r *Books) Library() string { return r.library }

// Subject returns the subject filter.
func (r *Books) Subject() string { return r.subject }

// Location returns the location filter.
func (r *Books) Location() string { return r.location }

// License returns the license filter.
func (r *Books) License() string { return r.license }

// Author returns the author filter.
func (r *Books) Author() string { return r.author }

// Course returns the course filter.
func (r *Books) Course() string { return r.course }

// Publisher returns the publisher filter (matched against the program field).
func (r *Books) Publisher() string { return r.publisher }

// Affiliation returns the affiliation filter.
func (r *Books) Affiliation() string { return r.affiliation }

// Sort returns the requested sort key.
func (r *Books) Sort() BookSort { return r.sort }

// Pagination returns the normalized page/limit pair.
func (r *Books) Pagination() Pagination { return r.pagination }
