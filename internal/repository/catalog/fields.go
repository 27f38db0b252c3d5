package catalog

// Field names shared between index schemas, query builders, and hash DTOs.
// Hash field names double as FT schema attribute names unless aliased.

// Project fields.
const (
	FieldProjectID         = "projectID"
	FieldTitle             = "title"
	FieldStatus            = "status"
	FieldClassification    = "classification"
	FieldVisibility        = "visibility"
	FieldAuthor            = "author"
	FieldOrgID             = "orgID"
	FieldAssociatedOrgs    = "associatedOrgs"
	FieldAssociatedOrgsTxt = "associatedOrgsText" // TEXT alias over the same hash field
	FieldLibreLibrary      = "libreLibrary"
	FieldLibreCoverID      = "libreCoverID"
	FieldLibreShelf        = "libreShelf"
	FieldLeads             = "leads"
	FieldLiaisons          = "liaisons"
	FieldMembers           = "members"
	FieldAuditors          = "auditors"
)

// Book fields.
const (
	FieldBookID      = "bookID"
	FieldLibrary     = "library"
	FieldSubject     = "subject"
	FieldLocation    = "location"
	FieldLicense     = "license"
	FieldCourse      = "course"
	FieldCourseText  = "courseText" // TEXT alias over the course hash field
	FieldAuthorText  = "authorText" // TEXT alias over the author hash field
	FieldProgram     = "program"
	FieldAffiliation = "affiliation"
)

// File fields.
const (
	FieldFileID         = "fileID"
	FieldName           = "name"
	FieldDescription    = "description"
	FieldAccess         = "access"
	FieldStorageType    = "storageType"
	FieldMimeType       = "mimeType"
	FieldLicenseName    = "licenseName"
	FieldLicenseVersion = "licenseVersion"
	FieldAuthors        = "authors"
	FieldTags           = "tags"
	FieldSize           = "size"
)

// Tag fields.
const (
	FieldTagID  = "tagID"
	FieldKeyID  = "keyID"
	FieldValues = "values"
)

// Author fields.
const (
	FieldAuthorID  = "authorID"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
)

// Homework fields.
const (
	FieldHomeworkID = "homeworkID"
	FieldKind       = "kind"
)

// User fields.
const (
	FieldUUID     = "uuid"
	FieldIsSystem = "isSystem"
)
