// Package homework reads external homework listings from the store.
package homework

import (
	"context"
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/db"
	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/domain"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
)

// store is the consumer interface for homework reads (ISP).
type store interface {
	Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
}

// Repo implements the homework side of usecase/search.
type Repo struct {
	store store
}

// New creates a homework repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search runs the compiled predicate against the homework index.
func (r *Repo) Search(ctx context.Context, q query.Node) ([]domain.Homework, error) {
	sr, err := r.store.Search(ctx, &db.SearchQuery{
		IndexName: catalog.HomeworkIndex,
		Query:     q,
	})
	if err != nil {
		return nil, fmt.Errorf("search homework: %w", err)
	}

	items := make([]domain.Homework, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		items = append(items, homeworkFromHash(e.Fields))
	}
	return items, nil
}

func homeworkFromHash(m map[string]string) domain.Homework {
	return domain.Homework{
		HomeworkID:  m[catalog.FieldHomeworkID],
		Title:       m[catalog.FieldTitle],
		Kind:        m[catalog.FieldKind],
		Description: m[catalog.FieldDescription],
		ExternalURL: m["externalURL"],
	}
}
