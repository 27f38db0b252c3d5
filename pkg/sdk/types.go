package conductor

import "time"

// Results is one page of typed search results. NumResults is the total
// candidate count, which can exceed len(Items).
type Results[T any] struct {
	NumResults int
	Items      []T
}

// Project is an OER project returned by project search.
type Project struct {
	ProjectID       string     `json:"projectID"`
	Title           string     `json:"title"`
	Status          string     `json:"status"`
	Classification  string     `json:"classification,omitempty"`
	Visibility      string     `json:"visibility"`
	Author          string     `json:"author,omitempty"`
	CurrentProgress int        `json:"currentProgress"`
	PeerProgress    int        `json:"peerProgress"`
	A11YProgress    int        `json:"a11yProgress"`
	OrgID           string     `json:"orgID,omitempty"`
	AssociatedOrgs  []string   `json:"associatedOrgs,omitempty"`
	LibreLibrary    string     `json:"libreLibrary,omitempty"`
	LibreCoverID    string     `json:"libreCoverID,omitempty"`
	LibreShelf      string     `json:"libreShelf,omitempty"`
	Leads           []UserRef  `json:"leads,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// UserRef is a compact user reference joined onto project results.
type UserRef struct {
	UUID      string `json:"uuid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

// Book is a published library text returned by book search.
type Book struct {
	BookID      string `json:"bookID"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Library     string `json:"library,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Location    string `json:"location,omitempty"`
	License     string `json:"license,omitempty"`
	Course      string `json:"course,omitempty"`
	Program     string `json:"program,omitempty"`
	Affiliation string `json:"affiliation,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// Homework is an external assessment resource returned by homework search.
type Homework struct {
	HomeworkID  string `json:"hwID"`
	Title       string `json:"title"`
	Kind        string `json:"kind,omitempty"`
	Description string `json:"description,omitempty"`
	ExternalURL string `json:"externalURL,omitempty"`
}

// User is a platform account returned by people search.
type User struct {
	UUID      string `json:"uuid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

// License describes the content license of an asset.
type License struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
	URL     string `json:"url,omitempty"`
}

// AssetTag is a framework tag attached to an asset.
type AssetTag struct {
	TagID  string   `json:"tagID"`
	Title  string   `json:"title,omitempty"`
	Hex    string   `json:"hex,omitempty"`
	Values []string `json:"values,omitempty"`
}

// ProjectRef is the parent-project slice joined onto asset results.
type ProjectRef struct {
	ProjectID      string   `json:"projectID"`
	Title          string   `json:"title"`
	AssociatedOrgs []string `json:"associatedOrgs,omitempty"`
}

// Asset is one asset search hit: a project file with its joined context.
type Asset struct {
	FileID      string     `json:"fileID"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	MimeType    string     `json:"mimeType,omitempty"`
	Size        int64      `json:"size"`
	License     License    `json:"license"`
	Project     ProjectRef `json:"project"`
	Tags        []AssetTag `json:"tags,omitempty"`
	Score       float64    `json:"score"`
}

// AssetFilterOptions holds the distinct values for asset filter dropdowns.
type AssetFilterOptions struct {
	Licenses  []string `json:"licenses"`
	MimeTypes []string `json:"mimeTypes"`
	Orgs      []string `json:"orgs"`
}

// HealthReport is the service health snapshot.
type HealthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ProjectSearchParams are the query parameters for project search.
// Zero values are omitted from the request.
type ProjectSearchParams struct {
	Query          string
	Status         string
	Classification string
	Scope          string // local | global
	Sort           string // title | classification | visibility
	Page           int
	Limit          int
}

// BookSearchParams are the query parameters for book search.
type BookSearchParams struct {
	Query       string
	Library     string
	Subject     string
	Location    string // central | campus
	License     string
	Author      string
	Course      string
	Publisher   string
	Affiliation string
	Sort        string // title | author | library | subject | affiliation
	Page        int
	Limit       int
}

// HomeworkSearchParams are the query parameters for homework search.
type HomeworkSearchParams struct {
	Query string
	Sort  string // name | description
	Page  int
	Limit int
}

// UserSearchParams are the query parameters for people search.
type UserSearchParams struct {
	Query string
	Sort  string // first | last
	Page  int
	Limit int
}

// AssetSearchParams are the query parameters for asset search.
type AssetSearchParams struct {
	Query          string
	FileType       string
	License        string
	LicenseVersion string
	Org            string
	Strict         bool
	Page           int
	Limit          int
}
