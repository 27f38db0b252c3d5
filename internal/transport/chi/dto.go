package chi

import (
	"time"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

type projectJSON struct {
	ProjectID       string          `json:"projectID"`
	Title           string          `json:"title"`
	Status          string          `json:"status"`
	Classification  string          `json:"classification,omitempty"`
	Visibility      string          `json:"visibility"`
	Author          string          `json:"author,omitempty"`
	CurrentProgress int             `json:"currentProgress"`
	PeerProgress    int             `json:"peerProgress"`
	A11YProgress    int             `json:"a11yProgress"`
	OrgID           string          `json:"orgID,omitempty"`
	AssociatedOrgs  []string        `json:"associatedOrgs,omitempty"`
	LibreLibrary    string          `json:"libreLibrary,omitempty"`
	LibreCoverID    string          `json:"libreCoverID,omitempty"`
	LibreShelf      string          `json:"libreShelf,omitempty"`
	LeadUsers       []userBriefJSON `json:"leads,omitempty"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
}

type userBriefJSON struct {
	UUID      string `json:"uuid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

type bookJSON struct {
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

type homeworkJSON struct {
	HomeworkID  string `json:"hwID"`
	Title       string `json:"title"`
	Kind        string `json:"kind,omitempty"`
	Description string `json:"description,omitempty"`
	ExternalURL string `json:"externalURL,omitempty"`
}

type userJSON struct {
	UUID      string `json:"uuid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

type licenseJSON struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
	URL     string `json:"url,omitempty"`
}

type assetTagJSON struct {
	TagID  string   `json:"tagID"`
	Title  string   `json:"title,omitempty"`
	Hex    string   `json:"hex,omitempty"`
	Values []string `json:"values,omitempty"`
}

type assetHitJSON struct {
	FileID      string         `json:"fileID"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	MimeType    string         `json:"mimeType,omitempty"`
	Size        int64          `json:"size"`
	License     licenseJSON    `json:"license"`
	Project     projectRefJSON `json:"project"`
	Tags        []assetTagJSON `json:"tags,omitempty"`
	Score       float64        `json:"score"`
}

type projectRefJSON struct {
	ProjectID      string   `json:"projectID"`
	Title          string   `json:"title"`
	AssociatedOrgs []string `json:"associatedOrgs,omitempty"`
}

func projectToJSON(p domain.Project) projectJSON {
	out := projectJSON{
		ProjectID:       p.ProjectID,
		Title:           p.Title,
		Status:          p.Status,
		Classification:  p.Classification,
		Visibility:      string(p.Visibility),
		Author:          p.Author,
		CurrentProgress: p.CurrentProgress,
		PeerProgress:    p.PeerProgress,
		A11YProgress:    p.A11YProgress,
		OrgID:           p.OrgID,
		AssociatedOrgs:  p.AssociatedOrgs,
		LibreLibrary:    p.LibreLibrary,
		LibreCoverID:    p.LibreCoverID,
		LibreShelf:      p.LibreShelf,
	}
	for _, u := range p.LeadUsers {
		out.LeadUsers = append(out.LeadUsers, userBriefJSON{
			UUID:      u.UUID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Avatar:    u.Avatar,
		})
	}
	if !p.CreatedAt.IsZero() {
		t := p.CreatedAt
		out.CreatedAt = &t
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

func bookToJSON(b domain.Book) bookJSON {
	return bookJSON{
		BookID:      b.BookID,
		Title:       b.Title,
		Author:      b.Author,
		Library:     b.Library,
		Subject:     b.Subject,
		Location:    b.Location,
		License:     b.License,
		Course:      b.Course,
		Program:     b.Program,
		Affiliation: b.Affiliation,
		Thumbnail:   b.Thumbnail,
	}
}

func homeworkToJSON(h domain.Homework) homeworkJSON {
	return homeworkJSON{
		HomeworkID:  h.HomeworkID,
		Title:       h.Title,
		Kind:        h.Kind,
		Description: h.Description,
		ExternalURL: h.ExternalURL,
	}
}

func userToJSON(u domain.User) userJSON {
	return userJSON{
		UUID:      u.UUID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
	}
}

func assetHitToJSON(h domain.AssetHit) assetHitJSON {
	out := assetHitJSON{
		FileID:      h.File.FileID,
		Name:        h.File.Name,
		Description: h.File.Description,
		MimeType:    h.File.MimeType,
		Size:        h.File.Size,
		License: licenseJSON{
			Name:    h.File.License.Name,
			Version: h.File.License.Version,
			URL:     h.File.License.URL,
		},
		Project: projectRefJSON{
			ProjectID:      h.Project.ProjectID,
			Title:          h.Project.Title,
			AssociatedOrgs: h.Project.AssociatedOrgs,
		},
		Score: h.Score,
	}
	for _, t := range h.Tags {
		out.Tags = append(out.Tags, assetTagJSON{
			TagID:  t.TagID,
			Title:  t.Key.Title,
			Hex:    t.Key.Hex,
			Values: t.Values,
		})
	}
	return out
}
