package search

import "github.com/ethanaturner/libretexts-pts/internal/domain/search/request"

// Page is one page of search results. NumResults is the total candidate
// count before slicing, so a page past the end still reports the total.
type Page[T any] struct {
	NumResults int
	Results    []T
}

// paginate slices one page out of the full, already-sorted candidate set.
func paginate[T any](items []T, p request.Pagination) Page[T] {
	total := len(items)
	offset := p.Offset()
	if offset >= total {
		return Page[T]{NumResults: total, Results: []T{}}
	}

	end := offset + p.Limit()
	if end > total {
		end = total
	}
	return Page[T]{NumResults: total, Results: items[offset:end]}
}
