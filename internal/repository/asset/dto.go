package asset

import (
	"strconv"
	"time"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
)

// fileFromHash hydrates a domain ProjectFile from an FT.SEARCH hash result.
func fileFromHash(m map[string]string) domain.ProjectFile {
	size, _ := strconv.ParseInt(m[catalog.FieldSize], 10, 64)
	return domain.ProjectFile{
		FileID:      m[catalog.FieldFileID],
		ProjectID:   m[catalog.FieldProjectID],
		Name:        m[catalog.FieldName],
		Description: m[catalog.FieldDescription],
		Access:      m[catalog.FieldAccess],
		StorageType: m[catalog.FieldStorageType],
		Size:        size,
		MimeType:    m[catalog.FieldMimeType],
		License: domain.License{
			Name:    m[catalog.FieldLicenseName],
			Version: m[catalog.FieldLicenseVersion],
			URL:     m["licenseURL"],
		},
		Authors:   catalog.SplitList(m[catalog.FieldAuthors]),
		TagIDs:    catalog.SplitList(m[catalog.FieldTags]),
		CreatedAt: unixTime(m["createdAt"]),
	}
}

func projectSummaryFromHash(m map[string]string) domain.ProjectSummary {
	return domain.ProjectSummary{
		ProjectID:      m[catalog.FieldProjectID],
		Title:          m[catalog.FieldTitle],
		Visibility:     domain.ProjectVisibility(m[catalog.FieldVisibility]),
		OrgID:          m[catalog.FieldOrgID],
		AssociatedOrgs: catalog.SplitList(m[catalog.FieldAssociatedOrgs]),
	}
}

func tagFromHash(m map[string]string) domain.AssetTag {
	return domain.AssetTag{
		TagID:  m[catalog.FieldTagID],
		Key:    domain.AssetTagKey{KeyID: m[catalog.FieldKeyID]},
		Values: catalog.SplitList(m[catalog.FieldValues]),
	}
}

func tagKeyFromHash(m map[string]string) domain.AssetTagKey {
	return domain.AssetTagKey{
		KeyID:     m[catalog.FieldKeyID],
		Title:     m[catalog.FieldTitle],
		Hex:       m["hex"],
		Framework: m["framework"],
	}
}

func unixTime(s string) time.Time {
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil || sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
