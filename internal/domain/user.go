package domain

// User is a platform account. IsSystem accounts are excluded from
// people-search unconditionally.
type User struct {
	UUID      string
	FirstName string
	LastName  string
	Email     string
	Avatar    string
	IsSystem  bool
}

// UserSummary is the display slice of a user joined onto project results.
type UserSummary struct {
	UUID      string
	FirstName string
	LastName  string
	Avatar    string
}
