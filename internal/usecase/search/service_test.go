package search

import (
	"context"
	"errors"
	"testing"

	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/domain"
	"github.com/ethanaturner/libretexts-pts/internal/domain/search/request"
)

func TestSearchBooks_OrderedByNormalizedTitle(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	m.books.searchFn = func(ctx context.Context, q query.Node) ([]domain.Book, error) {
		return []domain.Book{
			{BookID: "b2", Title: "Calculus II", Author: "John Roe", Library: "math"},
			{BookID: "b1", Title: "Calculus I", Author: "Jane Doe", Library: "math"},
		}, nil
	}

	req, _ := request.NewBooks(request.BooksParams{Query: "calculus", Library: "math", Sort: "title"})
	page, err := svc.SearchBooks(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.NumResults != 2 {
		t.Errorf("numResults = %d, want 2", page.NumResults)
	}
	if page.Results[0].Title != "Calculus I" || page.Results[1].Title != "Calculus II" {
		t.Errorf("order = %v", []string{page.Results[0].Title, page.Results[1].Title})
	}
}

func TestSearchProjects_VisibilityScenario(t *testing.T) {
	public := domain.Project{ProjectID: "pub", Title: "Public", Visibility: domain.VisibilityPublic}
	private := domain.Project{
		ProjectID:  "priv",
		Title:      "Private",
		Visibility: domain.VisibilityPrivate,
		Members:    []string{"U1"},
	}

	svc, m := newTestService(t, domain.OrgContext{})
	m.projects.searchFn = func(ctx context.Context, q query.Node) ([]domain.Project, error) {
		// Emulate the store applying the compiled visibility predicate.
		caller := callerFromClause(q)
		out := []domain.Project{public}
		if private.HasTeamMember(caller) {
			out = append(out, private)
		}
		return out, nil
	}

	anon, _ := request.NewProjects(request.ProjectsParams{})
	page, err := svc.SearchProjects(context.Background(), &anon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.NumResults != 1 || page.Results[0].ProjectID != "pub" {
		t.Errorf("anonymous results = %+v, want only public", page.Results)
	}

	member, _ := request.NewProjects(request.ProjectsParams{
		Caller: &domain.CallerIdentity{UUID: "U1"},
	})
	page, err = svc.SearchProjects(context.Background(), &member)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.NumResults != 2 {
		t.Errorf("member numResults = %d, want 2", page.NumResults)
	}
}

// callerFromClause extracts the team-member UUID from a compiled visibility
// predicate, or "" when the clause only admits public projects.
func callerFromClause(n query.Node) string {
	switch v := n.(type) {
	case query.Tag:
		if v.Field == "members" || v.Field == "leads" || v.Field == "liaisons" || v.Field == "auditors" {
			return v.Value
		}
	case query.And:
		for _, c := range v.Children {
			if id := callerFromClause(c); id != "" {
				return id
			}
		}
	case query.Or:
		for _, c := range v.Children {
			if id := callerFromClause(c); id != "" {
				return id
			}
		}
	}
	return ""
}

func TestSearchUsers_SortByLast(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	m.users.searchFn = func(ctx context.Context, q query.Node) ([]domain.User, error) {
		return []domain.User{
			{UUID: "u1", FirstName: "Ada", LastName: "Zuse"},
			{UUID: "u2", FirstName: "Zoe", LastName: "Aiken"},
		}, nil
	}

	req, _ := request.NewUsers(request.UsersParams{Sort: "last"})
	page, err := svc.SearchUsers(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Results[0].UUID != "u2" {
		t.Errorf("order = %+v, want Aiken first", page.Results)
	}
}

func TestSearchAssets_DedupeAcrossPipelines(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	m.assets.searchFilesFn = func(ctx context.Context, q query.Node, withScores bool) ([]domain.AssetHit, error) {
		if !withScores {
			t.Error("scored search expected when query present")
		}
		return []domain.AssetHit{publicHit("f1", "p1", 2.4)}, nil
	}
	m.assets.searchByTagFn = func(ctx context.Context, valueQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
		// Same file reached via one of its tags.
		return []domain.AssetHit{publicHit("f1", "p1", 1.8)}, nil
	}

	req, _ := request.NewAssets(request.AssetsParams{Query: "chem"})
	page, err := svc.SearchAssets(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.NumResults != 1 {
		t.Fatalf("numResults = %d, want 1 after dedupe", page.NumResults)
	}
	if page.Results[0].Score != 2.4 {
		t.Errorf("direct pipeline should win: %+v", page.Results[0])
	}
}

func TestSearchAssets_ScoreFloorsPerPipeline(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	m.assets.searchFilesFn = func(ctx context.Context, q query.Node, withScores bool) ([]domain.AssetHit, error) {
		return []domain.AssetHit{publicHit("weak", "p1", 1.9)}, nil // below 2.0
	}
	m.assets.searchByTagFn = func(ctx context.Context, valueQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
		return []domain.AssetHit{publicHit("tagged", "p1", 1.6)}, nil // above 1.5
	}
	m.assets.searchByAuthorFn = func(ctx context.Context, authorQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
		return []domain.AssetHit{publicHit("authored", "p1", 0.4)}, nil // below 0.5
	}

	req, _ := request.NewAssets(request.AssetsParams{Query: "chem"})
	page, err := svc.SearchAssets(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.NumResults != 1 || page.Results[0].File.FileID != "tagged" {
		t.Errorf("results = %+v, want only the tag hit", page.Results)
	}
}

func TestSearchAssets_FilterOnlySkipsTextPipelines(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	m.assets.searchFilesFn = func(ctx context.Context, q query.Node, withScores bool) ([]domain.AssetHit, error) {
		if withScores {
			t.Error("filter-only browsing should not request scores")
		}
		return []domain.AssetHit{publicHit("f1", "p1", 0)}, nil
	}
	m.assets.searchByTagFn = func(ctx context.Context, valueQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
		t.Error("tag pipeline should be skipped without a query")
		return nil, nil
	}
	m.assets.searchByAuthorFn = func(ctx context.Context, authorQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
		t.Error("author pipeline should be skipped without a query")
		return nil, nil
	}

	req, _ := request.NewAssets(request.AssetsParams{License: "cc-by"})
	page, err := svc.SearchAssets(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.NumResults != 1 {
		t.Errorf("numResults = %d, want 1", page.NumResults)
	}
}

func TestSearchAssets_PipelineFailureFailsRequest(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	boom := errors.New("boom")
	m.assets.searchByAuthorFn = func(ctx context.Context, authorQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
		return nil, boom
	}

	req, _ := request.NewAssets(request.AssetsParams{Query: "chem"})
	if _, err := svc.SearchAssets(context.Background(), &req); !errors.Is(err, boom) {
		t.Errorf("expected wrapped boom, got %v", err)
	}
}

func TestSearchAssets_OrgSubstringPostFilter(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	h1 := publicHit("f1", "p1", 3)
	h1.Project.AssociatedOrgs = []string{"LibreTexts"}
	h2 := publicHit("f2", "p2", 3)
	h2.Project.AssociatedOrgs = []string{"Elsewhere U"}

	m.assets.searchFilesFn = func(ctx context.Context, q query.Node, withScores bool) ([]domain.AssetHit, error) {
		return []domain.AssetHit{h1, h2}, nil
	}

	req, _ := request.NewAssets(request.AssetsParams{Org: "libre"})
	page, err := svc.SearchAssets(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.NumResults != 1 || page.Results[0].File.FileID != "f1" {
		t.Errorf("results = %+v, want only f1", page.Results)
	}
}

func TestSearchAssets_PaginationBoundary(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	m.assets.searchFilesFn = func(ctx context.Context, q query.Node, withScores bool) ([]domain.AssetHit, error) {
		return []domain.AssetHit{
			publicHit("f1", "p1", 0),
			publicHit("f2", "p1", 0),
			publicHit("f3", "p1", 0),
		}, nil
	}

	req, _ := request.NewAssets(request.AssetsParams{Page: 5, Limit: 25})
	page, err := svc.SearchAssets(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.NumResults != 3 {
		t.Errorf("numResults = %d, want total 3 on out-of-range page", page.NumResults)
	}
	if len(page.Results) != 0 {
		t.Errorf("results = %v, want empty", page.Results)
	}
}

func TestAutocomplete_BoundaryAndDedupe(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	m.assets.autocompleteFn = func(ctx context.Context, q query.Node) ([]string, error) {
		return []string{"Accessibility", "Acc", "Accessibility", "Accounting"}, nil
	}

	req, _ := request.NewAutocomplete(request.AutocompleteParams{Query: "acc"})
	got, err := svc.Autocomplete(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Accessibility", "Accounting"}
	if len(got) != len(want) {
		t.Fatalf("suggestions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestions[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAutocomplete_CapsAtLimit(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	m.assets.autocompleteFn = func(ctx context.Context, q query.Node) ([]string, error) {
		return []string{"Algebra", "Anatomy", "Astronomy", "Agronomy", "Acoustics", "Aviation"}, nil
	}

	req, _ := request.NewAutocomplete(request.AutocompleteParams{Query: "a", Limit: 5})
	got, err := svc.Autocomplete(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("suggestions = %d, want 5", len(got))
	}
}

func TestAssetFilterOptions_SortedCaseInsensitively(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	m.assets.licensesFn = func(ctx context.Context) ([]string, error) {
		return []string{"GNU FDL", "cc-by", "CC-BY-SA"}, nil
	}
	m.assets.mimeTypesFn = func(ctx context.Context) ([]string, error) {
		return []string{"image/png", "application/pdf"}, nil
	}
	m.projects.distinctFn = func(ctx context.Context) ([]string, error) {
		return []string{"zeta", "Alpha"}, nil
	}

	opts, err := svc.AssetFilterOptions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Licenses[0] != "cc-by" || opts.Licenses[1] != "CC-BY-SA" {
		t.Errorf("licenses = %v", opts.Licenses)
	}
	if opts.MimeTypes[0] != "application/pdf" {
		t.Errorf("mimeTypes = %v", opts.MimeTypes)
	}
	if opts.Orgs[0] != "Alpha" {
		t.Errorf("orgs = %v", opts.Orgs)
	}
}

func TestAssetFilterOptions_Error(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	boom := errors.New("boom")
	m.assets.mimeTypesFn = func(ctx context.Context) ([]string, error) {
		return nil, boom
	}

	if _, err := svc.AssetFilterOptions(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped boom, got %v", err)
	}
}

func TestSearchHomework_SortByDescription(t *testing.T) {
	svc, m := newTestService(t, domain.OrgContext{})

	m.homework.searchFn = func(ctx context.Context, q query.Node) ([]domain.Homework, error) {
		return []domain.Homework{
			{HomeworkID: "h1", Title: "Set A", Description: "z problems"},
			{HomeworkID: "h2", Title: "Set B", Description: "a problems"},
		}, nil
	}

	req, _ := request.NewHomework(request.HomeworkParams{Sort: "description"})
	page, err := svc.SearchHomework(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Results[0].HomeworkID != "h2" {
		t.Errorf("order = %+v", page.Results)
	}
}

func TestSearchProjects_CustomThresholdsOption(t *testing.T) {
	svc, _ := newTestService(t, domain.OrgContext{}, WithThresholds(Thresholds{Direct: 9, Tag: 9, Author: 9}))
	if svc.thresholds.Direct != 9 {
		t.Errorf("thresholds not applied: %+v", svc.thresholds)
	}
}
