package asset

import (
	"context"
	"testing"

	"github.com/ethanaturner/libretexts-pts/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchFn       func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
	hGetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	tagValuesFn    func(ctx context.Context, index, field string) ([]string, error)
}

func (m *mockStore) Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hGetAllMultiFn != nil {
		return m.hGetAllMultiFn(ctx, keys)
	}
	out := make([]map[string]string, len(keys))
	for i := range out {
		out[i] = map[string]string{}
	}
	return out, nil
}

func (m *mockStore) TagValues(ctx context.Context, index, field string) ([]string, error) {
	if m.tagValuesFn != nil {
		return m.tagValuesFn(ctx, index, field)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

// fileEntry builds a files-index search entry for tests.
func fileEntry(fileID, projectID string, extra map[string]string) db.SearchEntry {
	fields := map[string]string{
		"fileID":      fileID,
		"projectID":   projectID,
		"access":      "public",
		"storageType": "file",
	}
	for k, v := range extra {
		fields[k] = v
	}
	return db.SearchEntry{Key: "conductor:file:" + fileID, Fields: fields}
}
