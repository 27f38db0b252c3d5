package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/db"
)

// indexManager is the consumer interface for index administration (ISP).
type indexManager interface {
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Indexes returns every FT index definition of the catalog.
func Indexes() []*db.IndexDefinition {
	return []*db.IndexDefinition{
		projectsIndex(),
		booksIndex(),
		filesIndex(),
		tagsIndex(),
		authorsIndex(),
		homeworkIndex(),
		usersIndex(),
	}
}

// EnsureIndexes creates any missing catalog index. Concurrent startups may
// race on FT.CREATE, so "already exists" is not an error.
func EnsureIndexes(ctx context.Context, m indexManager) error {
	for _, def := range Indexes() {
		exists, err := m.IndexExists(ctx, def.Name)
		if err != nil {
			return fmt.Errorf("check index %s: %w", def.Name, err)
		}
		if exists {
			continue
		}
		if err := m.CreateIndex(ctx, def); err != nil {
			if errors.Is(err, db.ErrIndexExists) {
				continue
			}
			return fmt.Errorf("create index %s: %w", def.Name, err)
		}
	}
	return nil
}

func projectsIndex() *db.IndexDefinition {
	b := db.NewIndex(ProjectsIndex).
		Prefix(ProjectKeyPrefix).
		Tag(FieldProjectID).
		TextSortable(FieldTitle).
		Tag(FieldStatus).
		Tag(FieldClassification).
		Tag(FieldVisibility).
		Text(FieldAuthor).
		Tag(FieldOrgID).
		TagWithOpts(FieldAssociatedOrgs, ListSeparator, false).
		Text(FieldLibreLibrary).
		Text(FieldLibreCoverID).
		Text(FieldLibreShelf).
		TagWithOpts(FieldLeads, ListSeparator, false).
		TagWithOpts(FieldLiaisons, ListSeparator, false).
		TagWithOpts(FieldMembers, ListSeparator, false).
		TagWithOpts(FieldAuditors, ListSeparator, false)
	def := b.MustBuild()
	// Index associatedOrgs a second time as TEXT so it participates in the
	// free-text OR clause while the TAG form serves TAGVALS and scoping.
	def.Fields = append(def.Fields, db.IndexField{
		Name:  FieldAssociatedOrgs,
		Alias: FieldAssociatedOrgsTxt,
		Type:  db.IndexFieldText,
	})
	return def
}

func booksIndex() *db.IndexDefinition {
	def := db.NewIndex(BooksIndex).
		Prefix(BookKeyPrefix).
		Tag(FieldBookID).
		TextSortable(FieldTitle).
		Tag(FieldAuthor).
		Tag(FieldLibrary).
		Tag(FieldSubject).
		Tag(FieldLocation).
		Tag(FieldLicense).
		Tag(FieldCourse).
		Tag(FieldProgram).
		Tag(FieldAffiliation).
		MustBuild()
	// author and course also carry TEXT aliases for the free-text OR clause.
	def.Fields = append(def.Fields,
		db.IndexField{Name: FieldAuthor, Alias: FieldAuthorText, Type: db.IndexFieldText},
		db.IndexField{Name: FieldCourse, Alias: FieldCourseText, Type: db.IndexFieldText},
	)
	return def
}

func filesIndex() *db.IndexDefinition {
	return db.NewIndex(FilesIndex).
		Prefix(FileKeyPrefix).
		Tag(FieldFileID).
		Tag(FieldProjectID).
		Text(FieldName).
		Text(FieldDescription).
		Tag(FieldAccess).
		Tag(FieldStorageType).
		Tag(FieldMimeType).
		Tag(FieldLicenseName).
		Tag(FieldLicenseVersion).
		TagWithOpts(FieldAuthors, ListSeparator, false).
		TagWithOpts(FieldTags, ListSeparator, false).
		Numeric(FieldSize).
		MustBuild()
}

func tagsIndex() *db.IndexDefinition {
	return db.NewIndex(TagsIndex).
		Prefix(TagKeyPrefix).
		Tag(FieldTagID).
		Tag(FieldFileID).
		Tag(FieldKeyID).
		Text(FieldValues).
		MustBuild()
}

func authorsIndex() *db.IndexDefinition {
	return db.NewIndex(AuthorsIndex).
		Prefix(AuthorKeyPrefix).
		Tag(FieldAuthorID).
		Text(FieldFirstName).
		Text(FieldLastName).
		Text(FieldEmail).
		MustBuild()
}

func homeworkIndex() *db.IndexDefinition {
	return db.NewIndex(HomeworkIndex).
		Prefix(HomeworkKeyPrefix).
		Tag(FieldHomeworkID).
		TextSortable(FieldTitle).
		Text(FieldKind).
		Text(FieldDescription).
		MustBuild()
}

func usersIndex() *db.IndexDefinition {
	return db.NewIndex(UsersIndex).
		Prefix(UserKeyPrefix).
		Tag(FieldUUID).
		TextSortable(FieldFirstName).
		TextSortable(FieldLastName).
		Tag(FieldIsSystem).
		MustBuild()
}
