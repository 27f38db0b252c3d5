// Package catalog defines the key space and FT index definitions shared by
// the entity repositories. Documents are written by external CRUD
// collaborators; this service only guarantees the indexes exist.
package catalog

import "strings"

// KeyPrefix namespaces every catalog key.
const KeyPrefix = "conductor:"

// Collection key prefixes.
const (
	ProjectKeyPrefix  = KeyPrefix + "project:"
	BookKeyPrefix     = KeyPrefix + "book:"
	FileKeyPrefix     = KeyPrefix + "file:"
	TagKeyPrefix      = KeyPrefix + "tag:"
	TagKeyKeyPrefix   = KeyPrefix + "tagkey:"
	AuthorKeyPrefix   = KeyPrefix + "author:"
	HomeworkKeyPrefix = KeyPrefix + "homework:"
	UserKeyPrefix     = KeyPrefix + "user:"
)

// FT index names.
const (
	ProjectsIndex = KeyPrefix + "projects:idx"
	BooksIndex    = KeyPrefix + "books:idx"
	FilesIndex    = KeyPrefix + "files:idx"
	TagsIndex     = KeyPrefix + "tags:idx"
	AuthorsIndex  = KeyPrefix + "authors:idx"
	HomeworkIndex = KeyPrefix + "homework:idx"
	UsersIndex    = KeyPrefix + "users:idx"
)

// ListSeparator joins multi-valued hash fields (team roles, tag refs, orgs).
const ListSeparator = ","

// ProjectKey returns the hash key for a project ID.
func ProjectKey(id string) string { return ProjectKeyPrefix + id }

// BookKey returns the hash key for a book ID.
func BookKey(id string) string { return BookKeyPrefix + id }

// FileKey returns the hash key for a file ID.
func FileKey(id string) string { return FileKeyPrefix + id }

// TagKey returns the hash key for an asset tag ID.
func TagKey(id string) string { return TagKeyPrefix + id }

// TagKeyKey returns the hash key for an asset tag key ID.
func TagKeyKey(id string) string { return TagKeyKeyPrefix + id }

// AuthorKey returns the hash key for an author ID.
func AuthorKey(id string) string { return AuthorKeyPrefix + id }

// HomeworkKey returns the hash key for a homework ID.
func HomeworkKey(id string) string { return HomeworkKeyPrefix + id }

// UserKey returns the hash key for a user UUID.
func UserKey(uuid string) string { return UserKeyPrefix + uuid }

// SplitList splits a multi-valued hash field. Empty input yields nil.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ListSeparator)
}

// JoinList joins values into a multi-valued hash field.
func JoinList(values []string) string {
	return strings.Join(values, ListSeparator)
}
