package search

import (
	"strings"

	"github.com/ethanaturner/libretexts-pts/internal/db/query"
	"github.com/ethanaturner/libretexts-pts/internal/domain"
	"github.com/ethanaturner/libretexts-pts/internal/domain/search/request"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
)

// Match builders. Pure functions translating validated requests into
// predicate trees: one clause per active filter, AND-combined, with the
// free-text clause expressed as an OR across the entity's candidate fields.
// Zero filters and no query collapse to a match-everything node.

// projectMatch builds the project predicate. The visibility clause is
// injected here rather than being a caller-supplied facet because it depends
// on caller identity.
func projectMatch(req *request.Projects, org domain.OrgContext) query.Node {
	clauses := []query.Node{visibilityClause(req.Caller())}

	if req.LocalScope() && org.OrgID != "" {
		clauses = append(clauses, query.Tag{Field: catalog.FieldOrgID, Value: org.OrgID})
	}
	if v := req.Status(); v != "" {
		clauses = append(clauses, query.Tag{Field: catalog.FieldStatus, Value: v})
	}
	if v := req.Classification(); v != "" {
		clauses = append(clauses, query.Tag{Field: catalog.FieldClassification, Value: v})
	}
	if q := req.Query(); q != "" {
		clauses = append(clauses, query.Text{
			Fields: []string{
				catalog.FieldTitle,
				catalog.FieldAuthor,
				catalog.FieldLibreLibrary,
				catalog.FieldLibreCoverID,
				catalog.FieldLibreShelf,
				catalog.FieldAssociatedOrgsTxt,
			},
			Term: q,
			Mode: query.Fuzzy,
		})
	}

	return query.AndOf(clauses...)
}

// visibilityClause restricts projects to what the caller may see:
// public, or private with the caller on the team. Superadmins see all.
func visibilityClause(caller *domain.CallerIdentity) query.Node {
	if caller != nil && caller.IsSuperAdmin {
		return nil
	}

	public := query.Tag{Field: catalog.FieldVisibility, Value: string(domain.VisibilityPublic)}
	if caller == nil || caller.UUID == "" {
		return public
	}

	return query.OrOf(
		public,
		query.AndOf(
			query.Tag{Field: catalog.FieldVisibility, Value: string(domain.VisibilityPrivate)},
			teamMemberClause(caller.UUID),
		),
	)
}

// teamMemberClause matches projects listing the user in any team role.
func teamMemberClause(uuid string) query.Node {
	return query.OrOf(
		query.Tag{Field: catalog.FieldLeads, Value: uuid},
		query.Tag{Field: catalog.FieldLiaisons, Value: uuid},
		query.Tag{Field: catalog.FieldMembers, Value: uuid},
		query.Tag{Field: catalog.FieldAuditors, Value: uuid},
	)
}

// bookMatch builds the book predicate. The publisher facet matches the
// book's program field.
func bookMatch(req *request.Books) query.Node {
	var clauses []query.Node

	tags := []struct{ field, value string }{
		{catalog.FieldLibrary, req.Library()},
		{catalog.FieldSubject, req.Subject()},
		{catalog.FieldLocation, req.Location()},
		{catalog.FieldLicense, req.License()},
		{catalog.FieldAuthor, req.Author()},
		{catalog.FieldCourse, req.Course()},
		{catalog.FieldProgram, req.Publisher()},
		{catalog.FieldAffiliation, req.Affiliation()},
	}
	for _, t := range tags {
		if t.value != "" {
			clauses = append(clauses, query.Tag{Field: t.field, Value: t.value})
		}
	}

	if q := req.Query(); q != "" {
		clauses = append(clauses, query.Text{
			Fields: []string{catalog.FieldTitle, catalog.FieldAuthorText, catalog.FieldCourseText},
			Term:   q,
			Mode:   query.Fuzzy,
		})
	}

	return query.AndOf(clauses...)
}

// homeworkMatch builds the homework predicate (text only, no facets).
func homeworkMatch(req *request.Homework) query.Node {
	if req.Query() == "" {
		return query.All{}
	}
	return query.Text{
		Fields: []string{catalog.FieldTitle, catalog.FieldKind, catalog.FieldDescription},
		Term:   req.Query(),
		Mode:   query.Fuzzy,
	}
}

// userMatch builds the people-search predicate. System accounts are
// excluded unconditionally.
func userMatch(req *request.Users) query.Node {
	clauses := []query.Node{
		query.Not{Child: query.Tag{Field: catalog.FieldIsSystem, Value: "true"}},
	}
	if q := req.Query(); q != "" {
		clauses = append(clauses, query.Text{
			Fields: []string{catalog.FieldFirstName, catalog.FieldLastName},
			Term:   q,
			Mode:   query.Fuzzy,
		})
	}
	return query.AndOf(clauses...)
}

// assetFileFilter builds the hard clauses of the file pipelines: only public
// file-typed documents, plus the mime/license facets when strict mode is on
// or there is no text query to score them.
func assetFileFilter(req *request.Assets) query.Node {
	clauses := []query.Node{
		query.Tag{Field: catalog.FieldAccess, Value: domain.FileAccessPublic},
		query.Tag{Field: catalog.FieldStorageType, Value: domain.FileStorageFile},
	}

	if req.StrictMode() || req.Query() == "" {
		if v := req.FileType(); v != "" {
			clauses = append(clauses, mimeTypeClause(v))
		}
		if v := req.License(); v != "" {
			clauses = append(clauses, query.Tag{Field: catalog.FieldLicenseName, Value: v})
		}
		if v := req.LicenseVersion(); v != "" {
			clauses = append(clauses, query.Tag{Field: catalog.FieldLicenseVersion, Value: v})
		}
	}

	return query.AndOf(clauses...)
}

// mimeTypeClause supports wildcard facets like "image/*" as prefix matches.
func mimeTypeClause(v string) query.Node {
	if strings.HasSuffix(v, "/*") {
		return query.Tag{Field: catalog.FieldMimeType, Value: strings.TrimSuffix(v, "*"), Prefix: true}
	}
	return query.Tag{Field: catalog.FieldMimeType, Value: v}
}

// assetDirectQuery combines the hard file filter with the boosted
// name/description text clause.
func assetDirectQuery(req *request.Assets) query.Node {
	filter := assetFileFilter(req)
	if req.Query() == "" {
		return filter
	}
	return query.AndOf(filter, query.Text{
		Fields: []string{catalog.FieldName, catalog.FieldDescription},
		Term:   req.Query(),
		Mode:   query.Fuzzy,
		Boost:  directTextBoost,
	})
}

// tagValueQuery matches tag values by fuzzy text.
func tagValueQuery(q string) query.Node {
	return query.Text{
		Fields: []string{catalog.FieldValues},
		Term:   q,
		Mode:   query.Fuzzy,
	}
}

// authorQuery matches authors by boosted fuzzy text over names and email.
func authorQuery(q string) query.Node {
	return query.Text{
		Fields: []string{catalog.FieldFirstName, catalog.FieldLastName, catalog.FieldEmail},
		Term:   q,
		Mode:   query.Fuzzy,
		Boost:  authorTextBoost,
	}
}

// autocompleteQuery matches tag values by prefix, falling back to fuzzy for
// slightly misspelled prefixes.
func autocompleteQuery(q string) query.Node {
	return query.OrOf(
		query.Text{Fields: []string{catalog.FieldValues}, Term: q, Mode: query.Prefix},
		query.Text{Fields: []string{catalog.FieldValues}, Term: q, Mode: query.Fuzzy},
	)
}
