// Package search orchestrates the per-entity catalog search executors:
// predicate building, store queries, access filtering, merging, sorting,
// and pagination.
package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
	"github.com/ethanaturner/libretexts-pts/internal/domain/search/request"
)

// minSuggestionLength drops autocomplete suggestions of three or fewer
// characters; short tokens produce noisy suggestions.
const minSuggestionLength = 3

// Service handles catalog search across all entity types.
type Service struct {
	projects ProjectRepository
	books    BookRepository
	homework HomeworkRepository
	users    UserRepository
	assets   AssetRepository

	org        domain.OrgContext
	thresholds Thresholds
}

// Option customizes a Service.
type Option func(*Service)

// WithThresholds overrides the default asset pipeline score floors.
func WithThresholds(t Thresholds) Option {
	return func(s *Service) { s.thresholds = t }
}

// New creates a search service scoped to the given deployment org.
func New(
	projects ProjectRepository,
	books BookRepository,
	homework HomeworkRepository,
	users UserRepository,
	assets AssetRepository,
	org domain.OrgContext,
	opts ...Option,
) *Service {
	s := &Service{
		projects:   projects,
		books:      books,
		homework:   homework,
		users:      users,
		assets:     assets,
		org:        org,
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchProjects returns projects visible to the caller, sorted and paged.
func (s *Service) SearchProjects(ctx context.Context, req *request.Projects) (Page[domain.Project], error) {
	items, err := s.projects.Search(ctx, projectMatch(req, s.org))
	if err != nil {
		return Page[domain.Project]{}, fmt.Errorf("search projects: %w", err)
	}

	sortByNormalized(items, func(p domain.Project) string {
		switch req.Sort() {
		case request.ProjectSortClassification:
			return p.Classification
		case request.ProjectSortVisibility:
			return string(p.Visibility)
		default:
			return p.Title
		}
	})

	return paginate(items, req.Pagination()), nil
}

// SearchBooks returns catalog books matching the facets and query.
func (s *Service) SearchBooks(ctx context.Context, req *request.Books) (Page[domain.Book], error) {
	items, err := s.books.Search(ctx, bookMatch(req))
	if err != nil {
		return Page[domain.Book]{}, fmt.Errorf("search books: %w", err)
	}

	sortByNormalized(items, func(b domain.Book) string {
		switch req.Sort() {
		case request.BookSortAuthor:
			return b.Author
		case request.BookSortLibrary:
			return b.Library
		case request.BookSortSubject:
			return b.Subject
		case request.BookSortAffiliation:
			return b.Affiliation
		default:
			return b.Title
		}
	})

	return paginate(items, req.Pagination()), nil
}

// SearchHomework returns homework listings matching the query.
func (s *Service) SearchHomework(ctx context.Context, req *request.Homework) (Page[domain.Homework], error) {
	items, err := s.homework.Search(ctx, homeworkMatch(req))
	if err != nil {
		return Page[domain.Homework]{}, fmt.Errorf("search homework: %w", err)
	}

	sortByNormalized(items, func(h domain.Homework) string {
		if req.Sort() == request.HomeworkSortDescription {
			return h.Description
		}
		return h.Title
	})

	return paginate(items, req.Pagination()), nil
}

// SearchUsers returns non-system accounts matching the query.
func (s *Service) SearchUsers(ctx context.Context, req *request.Users) (Page[domain.User], error) {
	items, err := s.users.Search(ctx, userMatch(req))
	if err != nil {
		return Page[domain.User]{}, fmt.Errorf("search users: %w", err)
	}

	sortByNormalized(items, func(u domain.User) string {
		if req.Sort() == request.UserSortLast {
			return u.LastName
		}
		return u.FirstName
	})

	return paginate(items, req.Pagination()), nil
}

// SearchAssets merges the direct, tag, and author pipelines into one
// deduplicated, access-filtered page. The pipelines are independent and run
// concurrently; a failing pipeline fails the whole request.
func (s *Service) SearchAssets(ctx context.Context, req *request.Assets) (Page[domain.AssetHit], error) {
	fileFilter := assetFileFilter(req)
	scored := req.Query() != ""

	var direct, byTag, byAuthor []domain.AssetHit

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hits, err := s.assets.SearchFiles(gctx, assetDirectQuery(req), scored)
		if err != nil {
			return fmt.Errorf("direct pipeline: %w", err)
		}
		if scored {
			hits = filterByScore(hits, s.thresholds.Direct)
		}
		direct = hits
		return nil
	})

	// The tag and author pipelines exist purely to surface text-driven
	// matches; filter-only browsing skips them.
	if scored {
		g.Go(func() error {
			hits, err := s.assets.SearchByTag(gctx, tagValueQuery(req.Query()), fileFilter)
			if err != nil {
				return fmt.Errorf("tag pipeline: %w", err)
			}
			byTag = filterByScore(hits, s.thresholds.Tag)
			return nil
		})
		g.Go(func() error {
			hits, err := s.assets.SearchByAuthor(gctx, authorQuery(req.Query()), fileFilter)
			if err != nil {
				return fmt.Errorf("author pipeline: %w", err)
			}
			byAuthor = filterByScore(hits, s.thresholds.Author)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Page[domain.AssetHit]{}, fmt.Errorf("search assets: %w", err)
	}

	merged := mergeAssetHits(direct, byTag, byAuthor)
	merged = filterVisibleAssets(merged, s.org)
	merged = filterByOrgSubstring(merged, req.Org())

	return paginate(merged, req.Pagination()), nil
}

// Autocomplete suggests tag values for a prefix, deduplicated and trimmed
// of short noisy tokens.
func (s *Service) Autocomplete(ctx context.Context, req *request.Autocomplete) ([]string, error) {
	values, err := s.assets.AutocompleteTagValues(ctx, autocompleteQuery(req.Query()))
	if err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}

	suggestions := make([]string, 0, req.Limit())
	seen := make(map[string]bool)
	for _, v := range values {
		if len([]rune(v)) <= minSuggestionLength || seen[v] {
			continue
		}
		seen[v] = true
		suggestions = append(suggestions, v)
		if len(suggestions) >= req.Limit() {
			break
		}
	}
	return suggestions, nil
}

// AssetFilterOptions aggregates the distinct license names, mime types, and
// associated organizations used to populate filter dropdowns.
func (s *Service) AssetFilterOptions(ctx context.Context) (domain.AssetFilterOptions, error) {
	var opts domain.AssetFilterOptions

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.assets.DistinctLicenseNames(gctx)
		if err != nil {
			return err
		}
		opts.Licenses = v
		return nil
	})
	g.Go(func() error {
		v, err := s.assets.DistinctMimeTypes(gctx)
		if err != nil {
			return err
		}
		opts.MimeTypes = v
		return nil
	})
	g.Go(func() error {
		v, err := s.projects.DistinctAssociatedOrgs(gctx)
		if err != nil {
			return err
		}
		opts.Orgs = v
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.AssetFilterOptions{}, fmt.Errorf("filter options: %w", err)
	}

	sortCaseInsensitive(opts.Licenses)
	sortCaseInsensitive(opts.MimeTypes)
	sortCaseInsensitive(opts.Orgs)
	return opts, nil
}
