package domain

// Book is a catalog entry for a published library text.
type Book struct {
	BookID      string
	Title       string
	Author      string
	Library     string
	Subject     string
	Location    string // central | campus
	License     string
	Course      string
	Program     string
	Affiliation string
	Thumbnail   string
}
