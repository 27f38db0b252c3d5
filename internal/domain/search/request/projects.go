package request

import (
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

// ProjectSort enumerates the allowed sort keys for project search.
type ProjectSort string

const (
	ProjectSortTitle          ProjectSort = "title"
	ProjectSortClassification ProjectSort = "classification"
	ProjectSortVisibility     ProjectSort = "visibility"
)

// IsValid reports whether the sort key is a known value.
func (s ProjectSort) IsValid() bool {
	switch s {
	case ProjectSortTitle, ProjectSortClassification, ProjectSortVisibility:
		return true
	}
	return false
}

// Visibility scope values.
const (
	ScopeLocal  = "local"
	ScopeGlobal = "global"
)

// ProjectsParams are the raw inputs to NewProjects.
type ProjectsParams struct {
	Query           string
	Status          string
	Classification  string
	VisibilityScope string // local | global (default global)
	Sort            string
	Page            int
	Limit           int
	Caller          *domain.CallerIdentity
}

// Projects is a validated project search request.
type Projects struct {
	query          string
	status         string
	classification string
	localScope     bool
	sort           ProjectSort
	pagination     Pagination
	caller         *domain.CallerIdentity
}

// NewProjects validates and normalizes project search parameters.
// Defaults: sort=title, page=1, limit=25, scope=global. The "any" filter
// sentinel deactivates status/classification filters.
func NewProjects(p ProjectsParams) (Projects, error) {
	if err := validateQuery(p.Query); err != nil {
		return Projects{}, err
	}

	sort := ProjectSort(p.Sort)
	if sort == "" {
		sort = ProjectSortTitle
	}
	if !sort.IsValid() {
		return Projects{}, fmt.Errorf("%w: invalid sort key %q", domain.ErrInvalidRequest, p.Sort)
	}

	var local bool
	switch p.VisibilityScope {
	case "", ScopeGlobal:
	case ScopeLocal:
		local = true
	default:
		return Projects{}, fmt.Errorf("%w: invalid visibility scope %q", domain.ErrInvalidRequest, p.VisibilityScope)
	}

	return Projects{
		query:          p.Query,
		status:         normalizeFilter(p.Status),
		classification: normalizeFilter(p.Classification),
		localScope:     local,
		sort:           sort,
		pagination:     NewPagination(p.Page, p.Limit),
		caller:         p.Caller,
	}, nil
}

// Query returns the free-text query ("" means filter-only search).
func (r *Projects) Query() string { return r.query }

// Status returns the status filter ("" means inactive).
func (r *Projects) Status() string { return r.status }

// Classification returns the classification filter ("" means inactive).
func (r *Projects) Classification() string { return r.classification }

// LocalScope reports whether results are restricted to the deployment org.
func (r *Projects) LocalScope() bool { return r.localScope }

// Sort returns the requested sort key.
func (r *Projects) Sort() ProjectSort { return r.sort }

// Pagination returns the normalized page/limit pair.
func (r *Projects) Pagination() Pagination { return r.pagination }

// Caller returns the caller identity (nil for anonymous).
func (r *Projects) Caller() *domain.CallerIdentity { return r.caller }
