package search

import (
	"sort"
	"strings"
	"unicode"
)

// normalizeSortKey lowercases and strips non-letter runes so that
// punctuation and casing do not affect textual ordering.
func normalizeSortKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// sortByNormalized orders items by the normalized form of the given key.
// The sort is stable: ties preserve store-returned order.
func sortByNormalized[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return normalizeSortKey(key(items[i])) < normalizeSortKey(key(items[j]))
	})
}

// sortCaseInsensitive orders plain string lists for filter dropdowns.
func sortCaseInsensitive(values []string) {
	sort.SliceStable(values, func(i, j int) bool {
		return strings.ToLower(values[i]) < strings.ToLower(values[j])
	})
}
