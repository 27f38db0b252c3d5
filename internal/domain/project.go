package domain

import "time"

// ProjectVisibility is the access level of a project.
type ProjectVisibility string

const (
	VisibilityPublic  ProjectVisibility = "public"
	VisibilityPrivate ProjectVisibility = "private"
)

// Project is an OER textbook project. Projects are created and mutated by
// external CRUD collaborators; the search core reads them only.
type Project struct {
	ProjectID      string
	Title          string
	Status         string
	Classification string
	Visibility     ProjectVisibility
	Author         string

	CurrentProgress int
	PeerProgress    int
	A11YProgress    int

	OrgID          string
	AssociatedOrgs []string

	LibreLibrary string
	LibreCoverID string
	LibreShelf   string

	Leads    []string
	Liaisons []string
	Members  []string
	Auditors []string

	CreatedAt time.Time
	UpdatedAt time.Time

	// LeadUsers is populated by the repository join over Leads.
	LeadUsers []UserSummary
}

// HasTeamMember reports whether the given user UUID appears in any of the
// project's team-membership roles.
func (p *Project) HasTeamMember(uuid string) bool {
	if uuid == "" {
		return false
	}
	for _, list := range [][]string{p.Leads, p.Liaisons, p.Members, p.Auditors} {
		for _, id := range list {
			if id == uuid {
				return true
			}
		}
	}
	return false
}

// ProjectSummary is the slice of a project joined onto asset results.
type ProjectSummary struct {
	ProjectID      string
	Title          string
	Visibility     ProjectVisibility
	OrgID          string
	AssociatedOrgs []string
}
