package search

import (
	"context"

	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

// ProjectRepository defines the storage contract for project search.
type ProjectRepository interface {
	Search(ctx context.Context, q query.Node) ([]domain.Project, error)
	DistinctAssociatedOrgs(ctx context.Context) ([]string, error)
}

// BookRepository defines the storage contract for book search.
type BookRepository interface {
	Search(ctx context.Context, q query.Node) ([]domain.Book, error)
}

// HomeworkRepository defines the storage contract for homework search.
type HomeworkRepository interface {
	Search(ctx context.Context, q query.Node) ([]domain.Homework, error)
}

// UserRepository defines the storage contract for people search.
type UserRepository interface {
	Search(ctx context.Context, q query.Node) ([]domain.User, error)
}

// AssetRepository defines the storage contract for the asset pipelines.
type AssetRepository interface {
	SearchFiles(ctx context.Context, q query.Node, withScores bool) ([]domain.AssetHit, error)
	SearchByTag(ctx context.Context, valueQuery, fileFilter query.Node) ([]domain.AssetHit, error)
	SearchByAuthor(ctx context.Context, authorQuery, fileFilter query.Node) ([]domain.AssetHit, error)
	AutocompleteTagValues(ctx context.Context, q query.Node) ([]string, error)
	DistinctLicenseNames(ctx context.Context) ([]string, error)
	DistinctMimeTypes(ctx context.Context) ([]string, error)
}
