package domain

import "time"

// File access levels and storage types.
const (
	FileAccessPublic      = "public"
	FileAccessUsers       = "users"
	FileAccessInstructors = "instructors"
	FileAccessTeam        = "team"
	FileAccessMixed       = "mixed"

	FileStorageFile   = "file"
	FileStorageFolder = "folder"
)

// License describes a content license attached to a project file.
type License struct {
	Name    string
	Version string
	URL     string
}

// ProjectFile is a file ("asset") belonging to a project. Only files with
// StorageType "file" and Access "public" are searchable.
type ProjectFile struct {
	FileID      string
	ProjectID   string
	Name        string
	Description string
	Access      string
	StorageType string
	Size        int64
	MimeType    string
	License     License
	Authors     []string // author IDs
	TagIDs      []string
	CreatedAt   time.Time
}

// AssetTagKey names and styles a tag attached to project files.
type AssetTagKey struct {
	KeyID     string
	Title     string
	Hex       string
	Framework string
}

// AssetTag is a key/value pair attached to a project file. Multi-valued tags
// are normalized to a slice.
type AssetTag struct {
	TagID  string
	Key    AssetTagKey
	Values []string
}

// Author is a content author referenced by project files.
type Author struct {
	AuthorID  string
	FirstName string
	LastName  string
	Email     string
	URL       string
}

// AssetHit is one asset search result: the file plus its joined context and
// the relevance score of the pipeline that produced it.
type AssetHit struct {
	File    ProjectFile
	Project ProjectSummary
	Tags    []AssetTag
	Score   float64
}

// AssetFilterOptions holds the distinct values used to populate asset search
// filter dropdowns.
type AssetFilterOptions struct {
	Licenses  []string
	MimeTypes []string
	Orgs      []string
}
