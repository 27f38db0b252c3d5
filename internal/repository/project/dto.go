package project

import (
	"strconv"
	"time"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
)

// projectFromHash hydrates a domain Project from an FT.SEARCH hash result.
// Unparsable numeric fields default to zero rather than failing the search.
func projectFromHash(m map[string]string) domain.Project {
	return domain.Project{
		ProjectID:       m[catalog.FieldProjectID],
		Title:           m[catalog.FieldTitle],
		Status:          m[catalog.FieldStatus],
		Classification:  m[catalog.FieldClassification],
		Visibility:      domain.ProjectVisibility(m[catalog.FieldVisibility]),
		Author:          m[catalog.FieldAuthor],
		CurrentProgress: atoi(m["currentProgress"]),
		PeerProgress:    atoi(m["peerProgress"]),
		A11YProgress:    atoi(m["a11yProgress"]),
		OrgID:           m[catalog.FieldOrgID],
		AssociatedOrgs:  catalog.SplitList(m[catalog.FieldAssociatedOrgs]),
		LibreLibrary:    m[catalog.FieldLibreLibrary],
		LibreCoverID:    m[catalog.FieldLibreCoverID],
		LibreShelf:      m[catalog.FieldLibreShelf],
		Leads:           catalog.SplitList(m[catalog.FieldLeads]),
		Liaisons:        catalog.SplitList(m[catalog.FieldLiaisons]),
		Members:         catalog.SplitList(m[catalog.FieldMembers]),
		Auditors:        catalog.SplitList(m[catalog.FieldAuditors]),
		CreatedAt:       unixTime(m["createdAt"]),
		UpdatedAt:       unixTime(m["updatedAt"]),
	}
}

func userSummaryFromHash(m map[string]string) domain.UserSummary {
	return domain.UserSummary{
		UUID:      m[catalog.FieldUUID],
		FirstName: m[catalog.FieldFirstName],
		LastName:  m[catalog.FieldLastName],
		Avatar:    m["avatar"],
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func unixTime(s string) time.Time {
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil || sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
