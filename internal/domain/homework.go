package domain

// Homework is an external homework/assessment resource listing.
type Homework struct {
	HomeworkID  string
	Title       string
	Kind        string
	Description string
	ExternalURL string
}
