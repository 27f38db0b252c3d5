// Package project reads projects from the catalog store.
package project

import (
	"context"
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/db"
	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/domain"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
)

// store is the consumer interface for project reads (ISP).
type store interface {
	Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	TagValues(ctx context.Context, index, field string) ([]string, error)
}

// Repo implements the project side of usecase/search.
type Repo struct {
	store store
}

// New creates a project repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search runs the compiled predicate against the projects index and joins
// lead users onto each hit for display.
func (r *Repo) Search(ctx context.Context, q query.Node) ([]domain.Project, error) {
	sr, err := r.store.Search(ctx, &db.SearchQuery{
		IndexName: catalog.ProjectsIndex,
		Query:     q,
	})
	if err != nil {
		return nil, fmt.Errorf("search projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		projects = append(projects, projectFromHash(e.Fields))
	}

	if err := r.joinLeadUsers(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// DistinctAssociatedOrgs returns every distinct associated-organization name.
func (r *Repo) DistinctAssociatedOrgs(ctx context.Context) ([]string, error) {
	values, err := r.store.TagValues(ctx, catalog.ProjectsIndex, catalog.FieldAssociatedOrgs)
	if err != nil {
		return nil, fmt.Errorf("distinct orgs: %w", err)
	}
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// joinLeadUsers resolves each project's lead IDs to user summaries in one
// batched read. Missing users are skipped rather than failing the search.
func (r *Repo) joinLeadUsers(ctx context.Context, projects []domain.Project) error {
	var keys []string
	seen := make(map[string]bool)
	for i := range projects {
		for _, id := range projects[i].Leads {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			keys = append(keys, catalog.UserKey(id))
		}
	}
	if len(keys) == 0 {
		return nil
	}

	rows, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return fmt.Errorf("join lead users: %w", err)
	}

	byID := make(map[string]domain.UserSummary, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		u := userSummaryFromHash(row)
		byID[u.UUID] = u
	}

	for i := range projects {
		for _, id := range projects[i].Leads {
			if u, ok := byID[id]; ok {
				projects[i].LeadUsers = append(projects[i].LeadUsers, u)
			}
		}
	}
	return nil
}
