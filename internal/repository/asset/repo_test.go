package asset

import (
	"context"
	"errors"
	"testing"

	"github.com/ethanaturner/libretexts-pts/internal/db"
	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
)

func TestSearchFiles_ScoredAndJoined(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchFn = func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		if q.IndexName != catalog.FilesIndex {
			t.Errorf("index = %q, want %q", q.IndexName, catalog.FilesIndex)
		}
		if !q.WithScores {
			t.Error("expected scored search")
		}
		e := fileEntry("f1", "p1", map[string]string{"name": "syllabus.pdf", "tags": "t1"})
		e.Score = 3.2
		return &db.SearchResult{Total: 1, Entries: []db.SearchEntry{e}}, nil
	}
	ms.hGetAllMultiFn = func(ctx context.Context, keys []string) ([]map[string]string, error) {
		switch keys[0] {
		case catalog.ProjectKey("p1"):
			return []map[string]string{{
				"projectID":      "p1",
				"title":          "Chem Project",
				"visibility":     "public",
				"associatedOrgs": "LibreTexts",
			}}, nil
		case catalog.TagKey("t1"):
			return []map[string]string{{
				"tagID":  "t1",
				"keyID":  "k1",
				"values": "Accessibility,OpenAccess",
			}}, nil
		case catalog.TagKeyKey("k1"):
			return []map[string]string{{"keyID": "k1", "title": "Topic"}}, nil
		}
		t.Fatalf("unexpected keys: %v", keys)
		return nil, nil
	}

	hits, err := repo.SearchFiles(context.Background(), query.All{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("hits count = %d, want 1", len(hits))
	}
	h := hits[0]
	if h.Score != 3.2 || h.File.Name != "syllabus.pdf" {
		t.Errorf("unexpected hit: %+v", h)
	}
	if h.Project.Title != "Chem Project" || h.Project.Visibility != "public" {
		t.Errorf("project join missing: %+v", h.Project)
	}
	if len(h.Tags) != 1 || h.Tags[0].Key.Title != "Topic" || len(h.Tags[0].Values) != 2 {
		t.Errorf("tag join missing: %+v", h.Tags)
	}
}

func TestSearchFiles_MissingProjectLeavesZeroJoin(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchFn = func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		return &db.SearchResult{Total: 1, Entries: []db.SearchEntry{fileEntry("f1", "ghost", nil)}}, nil
	}

	hits, err := repo.SearchFiles(context.Background(), query.All{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits[0].Project.ProjectID != "" {
		t.Errorf("expected zero project join, got %+v", hits[0].Project)
	}
}

func TestSearchByTag_ExpandsAndScores(t *testing.T) {
	repo, ms := newTestRepo(t)

	calls := 0
	ms.searchFn = func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		calls++
		if calls == 1 {
			if q.IndexName != catalog.TagsIndex || !q.WithScores {
				t.Errorf("first search should be scored tags query: %+v", q)
			}
			return &db.SearchResult{Total: 2, Entries: []db.SearchEntry{
				{Score: 2.0, Fields: map[string]string{"tagID": "t1", "fileID": "f1"}},
				{Score: 1.6, Fields: map[string]string{"tagID": "t2", "fileID": "f1"}},
			}}, nil
		}
		if q.IndexName != catalog.FilesIndex {
			t.Errorf("second search index = %q", q.IndexName)
		}
		return &db.SearchResult{Total: 1, Entries: []db.SearchEntry{fileEntry("f1", "p1", nil)}}, nil
	}

	hits, err := repo.SearchByTag(context.Background(),
		query.Text{Fields: []string{"values"}, Term: "access", Mode: query.Fuzzy},
		query.Tag{Field: "access", Value: "public"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("hits count = %d, want 1", len(hits))
	}
	if hits[0].Score != 2.0 {
		t.Errorf("score = %v, want best tag score 2.0", hits[0].Score)
	}
}

func TestSearchByTag_NoMatchesSkipsExpansion(t *testing.T) {
	repo, ms := newTestRepo(t)

	calls := 0
	ms.searchFn = func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		calls++
		return &db.SearchResult{}, nil
	}

	hits, err := repo.SearchByTag(context.Background(), query.All{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != nil {
		t.Errorf("expected nil hits, got %v", hits)
	}
	if calls != 1 {
		t.Errorf("search calls = %d, want 1", calls)
	}
}

func TestSearchByAuthor_ScoresByBestAuthor(t *testing.T) {
	repo, ms := newTestRepo(t)

	calls := 0
	ms.searchFn = func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		calls++
		if calls == 1 {
			if q.IndexName != catalog.AuthorsIndex {
				t.Errorf("first search index = %q", q.IndexName)
			}
			return &db.SearchResult{Total: 2, Entries: []db.SearchEntry{
				{Score: 1.8, Fields: map[string]string{"authorID": "a1"}},
				{Score: 0.9, Fields: map[string]string{"authorID": "a2"}},
			}}, nil
		}
		return &db.SearchResult{Total: 1, Entries: []db.SearchEntry{
			fileEntry("f1", "p1", map[string]string{"authors": "a2,a1"}),
		}}, nil
	}

	hits, err := repo.SearchByAuthor(context.Background(),
		query.Text{Fields: []string{"firstName", "lastName"}, Term: "smith", Mode: query.Fuzzy},
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 || hits[0].Score != 1.8 {
		t.Errorf("unexpected hits: %+v", hits)
	}
}

func TestAutocompleteTagValues_Flattens(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchFn = func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		if len(q.ReturnFields) != 1 || q.ReturnFields[0] != catalog.FieldValues {
			t.Errorf("return fields = %v", q.ReturnFields)
		}
		return &db.SearchResult{Total: 2, Entries: []db.SearchEntry{
			{Fields: map[string]string{"values": "Accessibility,Acc"}},
			{Fields: map[string]string{"values": "Accounting"}},
		}}, nil
	}

	values, err := repo.AutocompleteTagValues(context.Background(), query.All{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Accessibility", "Acc", "Accounting"}
	if len(values) != len(want) {
		t.Fatalf("values = %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("values[%d] = %q, want %q", i, values[i], want[i])
		}
	}
}

func TestDistinct_DropsEmpty(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.tagValuesFn = func(ctx context.Context, index, field string) ([]string, error) {
		return []string{"cc-by", "", "gnu"}, nil
	}

	names, err := repo.DistinctLicenseNames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("names = %v, want 2 entries", names)
	}
}

func TestSearchFiles_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)

	boom := errors.New("boom")
	ms.searchFn = func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		return nil, boom
	}

	if _, err := repo.SearchFiles(context.Background(), query.All{}, false); !errors.Is(err, boom) {
		t.Errorf("expected wrapped boom, got %v", err)
	}
}
