package db

import "github.com/ethanaturner/libretexts-pts/internal/db/query"

// DefaultCandidateLimit bounds how many hits a single FT.SEARCH returns when
// the caller does not set one. Executors sort and paginate in memory, so the
// store must return the full candidate set, not a single page.
const DefaultCandidateLimit = 10000

// SearchQuery is the input for an FT.SEARCH execution.
type SearchQuery struct {
	IndexName    string
	Query        query.Node
	WithScores   bool
	Offset       int
	Limit        int // 0 means DefaultCandidateLimit
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
