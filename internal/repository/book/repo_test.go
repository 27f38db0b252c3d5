package book

import (
	"context"
	"errors"
	"testing"

	"github.com/ethanaturner/libretexts-pts/internal/db"
	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
)

type mockStore struct {
	searchFn func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
}

func (m *mockStore) Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func TestSearch_HydratesBooks(t *testing.T) {
	ms := &mockStore{
		searchFn: func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
			if q.IndexName != catalog.BooksIndex {
				t.Errorf("index = %q, want %q", q.IndexName, catalog.BooksIndex)
			}
			return &db.SearchResult{
				Total: 2,
				Entries: []db.SearchEntry{
					{Fields: map[string]string{"bookID": "b1", "title": "Calculus I", "author": "Jane Doe", "library": "math"}},
					{Fields: map[string]string{"bookID": "b2", "title": "Calculus II", "author": "John Roe", "library": "math"}},
				},
			}, nil
		},
	}

	books, err := New(ms).Search(context.Background(), query.Tag{Field: "library", Value: "math"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("books count = %d, want 2", len(books))
	}
	if books[0].Title != "Calculus I" || books[1].Author != "John Roe" {
		t.Errorf("unexpected books: %+v", books)
	}
}

func TestSearch_StoreError(t *testing.T) {
	boom := errors.New("boom")
	ms := &mockStore{
		searchFn: func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
			return nil, boom
		},
	}

	if _, err := New(ms).Search(context.Background(), query.All{}); !errors.Is(err, boom) {
		t.Errorf("expected wrapped boom, got %v", err)
	}
}
