package chi

import (
	"context"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/domain"
	healthuc "github.com/ethanaturner/libretexts-pts/internal/usecase/health"
	searchuc "github.com/ethanaturner/libretexts-pts/internal/usecase/search"
)

type stubProjects struct {
	searchFn func(ctx context.Context, q query.Node) ([]domain.Project, error)
	orgsFn   func(ctx context.Context) ([]string, error)
}

func (s *stubProjects) Search(ctx context.Context, q query.Node) ([]domain.Project, error) {
	if s.searchFn == nil {
		return nil, nil
	}
	return s.searchFn(ctx, q)
}

func (s *stubProjects) DistinctAssociatedOrgs(ctx context.Context) ([]string, error) {
	if s.orgsFn == nil {
		return nil, nil
	}
	return s.orgsFn(ctx)
}

type stubBooks struct {
	searchFn func(ctx context.Context, q query.Node) ([]domain.Book, error)
}

func (s *stubBooks) Search(ctx context.Context, q query.Node) ([]domain.Book, error) {
	if s.searchFn == nil {
		return nil, nil
	}
	return s.searchFn(ctx, q)
}

type stubHomework struct {
	searchFn func(ctx context.Context, q query.Node) ([]domain.Homework, error)
}

func (s *stubHomework) Search(ctx context.Context, q query.Node) ([]domain.Homework, error) {
	if s.searchFn == nil {
		return nil, nil
	}
	return s.searchFn(ctx, q)
}

type stubUsers struct {
	searchFn func(ctx context.Context, q query.Node) ([]domain.User, error)
}

func (s *stubUsers) Search(ctx context.Context, q query.Node) ([]domain.User, error) {
	if s.searchFn == nil {
		return nil, nil
	}
	return s.searchFn(ctx, q)
}

type stubAssets struct {
	searchFilesFn  func(ctx context.Context, q query.Node, withScores bool) ([]domain.AssetHit, error)
	byTagFn        func(ctx context.Context, valueQuery, fileFilter query.Node) ([]domain.AssetHit, error)
	byAuthorFn     func(ctx context.Context, authorQuery, fileFilter query.Node) ([]domain.AssetHit, error)
	autocompleteFn func(ctx context.Context, q query.Node) ([]string, error)
	licensesFn     func(ctx context.Context) ([]string, error)
	mimeTypesFn    func(ctx context.Context) ([]string, error)
}

func (s *stubAssets) SearchFiles(ctx context.Context, q query.Node, withScores bool) ([]domain.AssetHit, error) {
	if s.searchFilesFn == nil {
		return nil, nil
	}
	return s.searchFilesFn(ctx, q, withScores)
}

func (s *stubAssets) SearchByTag(ctx context.Context, valueQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
	if s.byTagFn == nil {
		return nil, nil
	}
	return s.byTagFn(ctx, valueQuery, fileFilter)
}

func (s *stubAssets) SearchByAuthor(ctx context.Context, authorQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
	if s.byAuthorFn == nil {
		return nil, nil
	}
	return s.byAuthorFn(ctx, authorQuery, fileFilter)
}

func (s *stubAssets) AutocompleteTagValues(ctx context.Context, q query.Node) ([]string, error) {
	if s.autocompleteFn == nil {
		return nil, nil
	}
	return s.autocompleteFn(ctx, q)
}

func (s *stubAssets) DistinctLicenseNames(ctx context.Context) ([]string, error) {
	if s.licensesFn == nil {
		return nil, nil
	}
	return s.licensesFn(ctx)
}

func (s *stubAssets) DistinctMimeTypes(ctx context.Context) ([]string, error) {
	if s.mimeTypesFn == nil {
		return nil, nil
	}
	return s.mimeTypesFn(ctx)
}

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(_ context.Context) error { return s.err }

type testStubs struct {
	projects *stubProjects
	books    *stubBooks
	homework *stubHomework
	users    *stubUsers
	assets   *stubAssets
	pinger   *stubPinger
}

func newTestStubs() *testStubs {
	return &testStubs{
		projects: &stubProjects{},
		books:    &stubBooks{},
		homework: &stubHomework{},
		users:    &stubUsers{},
		assets:   &stubAssets{},
		pinger:   &stubPinger{},
	}
}

// newTestHandler wires the stubs into a full router, optionally with an
// identity middleware.
func newTestHandler(stubs *testStubs, resolver IdentityResolver) http.Handler {
	searchSvc := searchuc.New(
		stubs.projects, stubs.books, stubs.homework, stubs.users, stubs.assets,
		domain.OrgContext{},
	)
	healthSvc := healthuc.New(stubs.pinger)
	server := NewServer(searchSvc, healthSvc, zap.NewNop())

	r := chirouter.NewRouter()
	if resolver != nil {
		r.Use(IdentityMiddleware(resolver))
	}
	server.RegisterRoutes(r)
	return r
}
