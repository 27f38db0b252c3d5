// Package book reads catalog books from the store.
package book

import (
	"context"
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/db"
	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/domain"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
)

// store is the consumer interface for book reads (ISP).
type store interface {
	Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
}

// Repo implements the book side of usecase/search.
type Repo struct {
	store store
}

// New creates a book repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search runs the compiled predicate against the books index.
func (r *Repo) Search(ctx context.Context, q query.Node) ([]domain.Book, error) {
	sr, err := r.store.Search(ctx, &db.SearchQuery{
		IndexName: catalog.BooksIndex,
		Query:     q,
	})
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}

	books := make([]domain.Book, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		books = append(books, bookFromHash(e.Fields))
	}
	return books, nil
}

func bookFromHash(m map[string]string) domain.Book {
	return domain.Book{
		BookID:      m[catalog.FieldBookID],
		Title:       m[catalog.FieldTitle],
		Author:      m[catalog.FieldAuthor],
		Library:     m[catalog.FieldLibrary],
		Subject:     m[catalog.FieldSubject],
		Location:    m[catalog.FieldLocation],
		License:     m[catalog.FieldLicense],
		Course:      m[catalog.FieldCourse],
		Program:     m[catalog.FieldProgram],
		Affiliation: m[catalog.FieldAffiliation],
		Thumbnail:   m["thumbnail"],
	}
}
