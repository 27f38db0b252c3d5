// Package user reads platform accounts from the store.
package user

import (
	"context"
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/db"
	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/domain"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
)

// store is the consumer interface for user reads (ISP).
type store interface {
	Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
}

// Repo implements the people-search side of usecase/search.
type Repo struct {
	store store
}

// New creates a user repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search runs the compiled predicate against the users index.
func (r *Repo) Search(ctx context.Context, q query.Node) ([]domain.User, error) {
	sr, err := r.store.Search(ctx, &db.SearchQuery{
		IndexName: catalog.UsersIndex,
		Query:     q,
	})
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	users := make([]domain.User, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		users = append(users, userFromHash(e.Fields))
	}
	return users, nil
}

func userFromHash(m map[string]string) domain.User {
	return domain.User{
		UUID:      m[catalog.FieldUUID],
		FirstName: m[catalog.FieldFirstName],
		LastName:  m[catalog.FieldLastName],
		Email:     m[catalog.FieldEmail],
		Avatar:    m["avatar"],
		IsSystem:  m[catalog.FieldIsSystem] == "true",
	}
}
