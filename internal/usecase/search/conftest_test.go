package search

import (
	"context"
	"testing"

	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

// mockProjects implements ProjectRepository for tests.
type mockProjects struct {
	searchFn   func(ctx context.Context, q query.Node) ([]domain.Project, error)
	distinctFn func(ctx context.Context) ([]string, error)
}

func (m *mockProjects) Search(ctx context.Context, q query.Node) ([]domain.Project, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return nil, nil
}

func (m *mockProjects) DistinctAssociatedOrgs(ctx context.Context) ([]string, error) {
	if m.distinctFn != nil {
		return m.distinctFn(ctx)
	}
	return nil, nil
}

// mockBooks implements BookRepository for tests.
type mockBooks struct {
	searchFn func(ctx context.Context, q query.Node) ([]domain.Book, error)
}

func (m *mockBooks) Search(ctx context.Context, q query.Node) ([]domain.Book, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return nil, nil
}

// mockHomework implements HomeworkRepository for tests.
type mockHomework struct {
	searchFn func(ctx context.Context, q query.Node) ([]domain.Homework, error)
}

func (m *mockHomework) Search(ctx context.Context, q query.Node) ([]domain.Homework, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return nil, nil
}

// mockUsers implements UserRepository for tests.
type mockUsers struct {
	searchFn func(ctx context.Context, q query.Node) ([]domain.User, error)
}

func (m *mockUsers) Search(ctx context.Context, q query.Node) ([]domain.User, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return nil, nil
}

// mockAssets implements AssetRepository for tests.
type mockAssets struct {
	searchFilesFn    func(ctx context.Context, q query.Node, withScores bool) ([]domain.AssetHit, error)
	searchByTagFn    func(ctx context.Context, valueQuery, fileFilter query.Node) ([]domain.AssetHit, error)
	searchByAuthorFn func(ctx context.Context, authorQuery, fileFilter query.Node) ([]domain.AssetHit, error)
	autocompleteFn   func(ctx context.Context, q query.Node) ([]string, error)
	licensesFn       func(ctx context.Context) ([]string, error)
	mimeTypesFn      func(ctx context.Context) ([]string, error)
}

func (m *mockAssets) SearchFiles(ctx context.Context, q query.Node, withScores bool) ([]domain.AssetHit, error) {
	if m.searchFilesFn != nil {
		return m.searchFilesFn(ctx, q, withScores)
	}
	return nil, nil
}

func (m *mockAssets) SearchByTag(ctx context.Context, valueQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
	if m.searchByTagFn != nil {
		return m.searchByTagFn(ctx, valueQuery, fileFilter)
	}
	return nil, nil
}

func (m *mockAssets) SearchByAuthor(ctx context.Context, authorQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
	if m.searchByAuthorFn != nil {
		return m.searchByAuthorFn(ctx, authorQuery, fileFilter)
	}
	return nil, nil
}

func (m *mockAssets) AutocompleteTagValues(ctx context.Context, q query.Node) ([]string, error) {
	if m.autocompleteFn != nil {
		return m.autocompleteFn(ctx, q)
	}
	return nil, nil
}

func (m *mockAssets) DistinctLicenseNames(ctx context.Context) ([]string, error) {
	if m.licensesFn != nil {
		return m.licensesFn(ctx)
	}
	return nil, nil
}

func (m *mockAssets) DistinctMimeTypes(ctx context.Context) ([]string, error) {
	if m.mimeTypesFn != nil {
		return m.mimeTypesFn(ctx)
	}
	return nil, nil
}

type testMocks struct {
	projects *mockProjects
	books    *mockBooks
	homework *mockHomework
	users    *mockUsers
	assets   *mockAssets
}

func newTestService(t *testing.T, org domain.OrgContext, opts ...Option) (*Service, *testMocks) {
	t.Helper()
	m := &testMocks{
		projects: &mockProjects{},
		books:    &mockBooks{},
		homework: &mockHomework{},
		users:    &mockUsers{},
		assets:   &mockAssets{},
	}
	svc := New(m.projects, m.books, m.homework, m.users, m.assets, org, opts...)
	return svc, m
}

// publicHit builds a visible asset hit for merge/executor tests.
func publicHit(fileID, projectID string, score float64) domain.AssetHit {
	return domain.AssetHit{
		File:    domain.ProjectFile{FileID: fileID, ProjectID: projectID},
		Project: domain.ProjectSummary{ProjectID: projectID, Visibility: domain.VisibilityPublic},
		Score:   score,
	}
}
