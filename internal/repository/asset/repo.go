// Package asset reads project files and their tag/author/project context
// from the store. The document store has no cross-collection joins, so the
// tag and author pipelines expand to files through back-reference queries
// and hashes are joined here with batched reads.
package asset

import (
	"context"
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/db"
	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/domain"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
)

// store is the consumer interface for asset reads (ISP).
type store interface {
	Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	TagValues(ctx context.Context, index, field string) ([]string, error)
}

// Repo implements the asset side of usecase/search.
type Repo struct {
	store store
}

// New creates an asset repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// SearchFiles runs the direct file pipeline. withScores carries the store's
// text relevance score onto each hit; filter-only browsing leaves it zero.
func (r *Repo) SearchFiles(ctx context.Context, q query.Node, withScores bool) ([]domain.AssetHit, error) {
	sr, err := r.store.Search(ctx, &db.SearchQuery{
		IndexName:  catalog.FilesIndex,
		Query:      q,
		WithScores: withScores,
	})
	if err != nil {
		return nil, fmt.Errorf("search files: %w", err)
	}

	hits := make([]domain.AssetHit, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		hits = append(hits, domain.AssetHit{
			File:  fileFromHash(e.Fields),
			Score: e.Score,
		})
	}

	if err := r.hydrate(ctx, hits); err != nil {
		return nil, err
	}
	return hits, nil
}

// SearchByTag runs the tag-value pipeline: a scored text search over tag
// values, expanded to the referencing files via the tag's fileID
// back-reference, restricted by fileFilter. A file matched by several tags
// keeps its highest tag score.
func (r *Repo) SearchByTag(ctx context.Context, valueQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
	sr, err := r.store.Search(ctx, &db.SearchQuery{
		IndexName:  catalog.TagsIndex,
		Query:      valueQuery,
		WithScores: true,
	})
	if err != nil {
		return nil, fmt.Errorf("search tag values: %w", err)
	}

	scores, order := scoresByField(sr.Entries, catalog.FieldFileID)
	if len(order) == 0 {
		return nil, nil
	}

	return r.expandToFiles(ctx, scores, order, catalog.FieldFileID, fileFilter)
}

// SearchByAuthor runs the author pipeline: a scored text search over author
// names/emails, expanded to files listing a matched author. A file keeps the
// highest score among its matched authors.
func (r *Repo) SearchByAuthor(ctx context.Context, authorQuery, fileFilter query.Node) ([]domain.AssetHit, error) {
	sr, err := r.store.Search(ctx, &db.SearchQuery{
		IndexName:  catalog.AuthorsIndex,
		Query:      authorQuery,
		WithScores: true,
	})
	if err != nil {
		return nil, fmt.Errorf("search authors: %w", err)
	}

	scores, order := scoresByField(sr.Entries, catalog.FieldAuthorID)
	if len(order) == 0 {
		return nil, nil
	}

	return r.expandToFiles(ctx, scores, order, catalog.FieldAuthors, fileFilter)
}

// AutocompleteTagValues returns the raw value lists of tags matching the
// query; the caller flattens and filters them.
func (r *Repo) AutocompleteTagValues(ctx context.Context, q query.Node) ([]string, error) {
	sr, err := r.store.Search(ctx, &db.SearchQuery{
		IndexName:    catalog.TagsIndex,
		Query:        q,
		ReturnFields: []string{catalog.FieldValues},
	})
	if err != nil {
		return nil, fmt.Errorf("autocomplete tags: %w", err)
	}

	var values []string
	for _, e := range sr.Entries {
		values = append(values, catalog.SplitList(e.Fields[catalog.FieldValues])...)
	}
	return values, nil
}

// DistinctLicenseNames returns every distinct non-empty file license name.
func (r *Repo) DistinctLicenseNames(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, catalog.FieldLicenseName)
}

// DistinctMimeTypes returns every distinct non-empty file mime type.
func (r *Repo) DistinctMimeTypes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, catalog.FieldMimeType)
}

func (r *Repo) distinct(ctx context.Context, field string) ([]string, error) {
	values, err := r.store.TagValues(ctx, catalog.FilesIndex, field)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// expandToFiles fetches the files referencing any of the matched IDs via a
// tag clause on refField, ANDed with fileFilter, and scores each file by its
// best matching reference.
func (r *Repo) expandToFiles(
	ctx context.Context,
	scores map[string]float64, order []string,
	refField string, fileFilter query.Node,
) ([]domain.AssetHit, error) {
	refs := make([]query.Node, 0, len(order))
	for _, id := range order {
		refs = append(refs, query.Tag{Field: refField, Value: id})
	}

	sr, err := r.store.Search(ctx, &db.SearchQuery{
		IndexName: catalog.FilesIndex,
		Query:     query.AndOf(query.OrOf(refs...), fileFilter),
	})
	if err != nil {
		return nil, fmt.Errorf("expand %s to files: %w", refField, err)
	}

	hits := make([]domain.AssetHit, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		f := fileFromHash(e.Fields)
		hits = append(hits, domain.AssetHit{
			File:  f,
			Score: bestRefScore(f, refField, scores),
		})
	}

	if err := r.hydrate(ctx, hits); err != nil {
		return nil, err
	}
	return hits, nil
}

// bestRefScore picks the highest score among the file's matched references.
func bestRefScore(f domain.ProjectFile, refField string, scores map[string]float64) float64 {
	var refs []string
	switch refField {
	case catalog.FieldFileID:
		refs = []string{f.FileID}
	case catalog.FieldAuthors:
		refs = f.Authors
	}

	var best float64
	for _, id := range refs {
		if s, ok := scores[id]; ok && s > best {
			best = s
		}
	}
	return best
}

// scoresByField collapses scored entries onto the given hash field, keeping
// the highest score per value and the first-seen order.
func scoresByField(entries []db.SearchEntry, field string) (map[string]float64, []string) {
	scores := make(map[string]float64, len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		id := e.Fields[field]
		if id == "" {
			continue
		}
		if prev, ok := scores[id]; !ok {
			scores[id] = e.Score
			order = append(order, id)
		} else if e.Score > prev {
			scores[id] = e.Score
		}
	}
	return scores, order
}

// hydrate joins parent projects and tags onto the hits in batched reads.
// Missing documents leave zero-valued joins; the executor drops those.
func (r *Repo) hydrate(ctx context.Context, hits []domain.AssetHit) error {
	if len(hits) == 0 {
		return nil
	}

	if err := r.joinProjects(ctx, hits); err != nil {
		return err
	}
	return r.joinTags(ctx, hits)
}

func (r *Repo) joinProjects(ctx context.Context, hits []domain.AssetHit) error {
	var keys []string
	seen := make(map[string]bool)
	for i := range hits {
		id := hits[i].File.ProjectID
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		keys = append(keys, catalog.ProjectKey(id))
	}
	if len(keys) == 0 {
		return nil
	}

	rows, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return fmt.Errorf("join projects: %w", err)
	}

	byID := make(map[string]domain.ProjectSummary, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		p := projectSummaryFromHash(row)
		byID[p.ProjectID] = p
	}

	for i := range hits {
		hits[i].Project = byID[hits[i].File.ProjectID]
	}
	return nil
}

func (r *Repo) joinTags(ctx context.Context, hits []domain.AssetHit) error {
	var tagKeys []string
	seen := make(map[string]bool)
	for i := range hits {
		for _, id := range hits[i].File.TagIDs {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			tagKeys = append(tagKeys, catalog.TagKey(id))
		}
	}
	if len(tagKeys) == 0 {
		return nil
	}

	rows, err := r.store.HGetAllMulti(ctx, tagKeys)
	if err != nil {
		return fmt.Errorf("join tags: %w", err)
	}

	tagsByID := make(map[string]domain.AssetTag, len(rows))
	var keyIDs []string
	seenKey := make(map[string]bool)
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		tag := tagFromHash(row)
		tagsByID[tag.TagID] = tag
		if id := tag.Key.KeyID; id != "" && !seenKey[id] {
			seenKey[id] = true
			keyIDs = append(keyIDs, catalog.TagKeyKey(id))
		}
	}

	keysByID := make(map[string]domain.AssetTagKey)
	if len(keyIDs) > 0 {
		keyRows, err := r.store.HGetAllMulti(ctx, keyIDs)
		if err != nil {
			return fmt.Errorf("join tag keys: %w", err)
		}
		for _, row := range keyRows {
			if len(row) == 0 {
				continue
			}
			k := tagKeyFromHash(row)
			keysByID[k.KeyID] = k
		}
	}

	for i := range hits {
		for _, id := range hits[i].File.TagIDs {
			tag, ok := tagsByID[id]
			if !ok {
				continue
			}
			if k, ok := keysByID[tag.Key.KeyID]; ok {
				tag.Key = k
			}
			hits[i].Tags = append(hits[i].Tags, tag)
		}
	}
	return nil
}
