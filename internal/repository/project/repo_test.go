package project

import (
	"context"
	"errors"
	"testing"

	"github.com/ethanaturner/libretexts-pts/internal/db"
	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
)

func TestSearch_HydratesProjects(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchFn = func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		if q.IndexName != catalog.ProjectsIndex {
			t.Errorf("index = %q, want %q", q.IndexName, catalog.ProjectsIndex)
		}
		return &db.SearchResult{
			Total: 1,
			Entries: []db.SearchEntry{{
				Key: catalog.ProjectKey("p1"),
				Fields: map[string]string{
					"projectID":      "p1",
					"title":          "Intro Chemistry",
					"visibility":     "public",
					"status":         "open",
					"associatedOrgs": "LibreTexts,CalState",
					"leads":          "u1",
				},
			}},
		}, nil
	}
	ms.hGetAllMultiFn = func(ctx context.Context, keys []string) ([]map[string]string, error) {
		if len(keys) != 1 || keys[0] != catalog.UserKey("u1") {
			t.Errorf("unexpected keys: %v", keys)
		}
		return []map[string]string{{
			"uuid":      "u1",
			"firstName": "Ada",
			"lastName":  "Lovelace",
		}}, nil
	}

	projects, err := repo.Search(context.Background(), query.Tag{Field: "visibility", Value: "public"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("projects count = %d, want 1", len(projects))
	}
	p := projects[0]
	if p.ProjectID != "p1" || p.Title != "Intro Chemistry" {
		t.Errorf("unexpected project: %+v", p)
	}
	if len(p.AssociatedOrgs) != 2 || p.AssociatedOrgs[1] != "CalState" {
		t.Errorf("associated orgs = %v", p.AssociatedOrgs)
	}
	if len(p.LeadUsers) != 1 || p.LeadUsers[0].FirstName != "Ada" {
		t.Errorf("lead users = %v", p.LeadUsers)
	}
}

func TestSearch_SkipsMissingLeadUsers(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchFn = func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		return &db.SearchResult{
			Total: 1,
			Entries: []db.SearchEntry{{
				Key: catalog.ProjectKey("p1"),
				Fields: map[string]string{
					"projectID": "p1",
					"leads":     "ghost",
				},
			}},
		}, nil
	}
	ms.hGetAllMultiFn = func(ctx context.Context, keys []string) ([]map[string]string, error) {
		return []map[string]string{{}}, nil
	}

	projects, err := repo.Search(context.Background(), query.All{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects[0].LeadUsers) != 0 {
		t.Errorf("expected no lead users, got %v", projects[0].LeadUsers)
	}
}

func TestSearch_NoLeadsSkipsJoin(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchFn = func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		return &db.SearchResult{
			Total:   1,
			Entries: []db.SearchEntry{{Fields: map[string]string{"projectID": "p1"}}},
		}, nil
	}
	ms.hGetAllMultiFn = func(ctx context.Context, keys []string) ([]map[string]string, error) {
		t.Fatal("join should not run without lead IDs")
		return nil, nil
	}

	if _, err := repo.Search(context.Background(), query.All{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSearch_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)

	boom := errors.New("boom")
	ms.searchFn = func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		return nil, boom
	}

	if _, err := repo.Search(context.Background(), query.All{}); !errors.Is(err, boom) {
		t.Errorf("expected wrapped boom, got %v", err)
	}
}

func TestDistinctAssociatedOrgs_DropsEmpty(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.tagValuesFn = func(ctx context.Context, index, field string) ([]string, error) {
		if index != catalog.ProjectsIndex || field != catalog.FieldAssociatedOrgs {
			t.Errorf("unexpected tagvals target: %s/%s", index, field)
		}
		return []string{"LibreTexts", "", "CalState"}, nil
	}

	orgs, err := repo.DistinctAssociatedOrgs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orgs) != 2 {
		t.Errorf("orgs = %v, want 2 entries", orgs)
	}
}
