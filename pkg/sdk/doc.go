// Package conductor provides a Go client for the conductor-search HTTP API,
// the catalog search service of the Conductor OER platform.
//
// All search calls are plain GETs returning typed result pages:
//
//	client, _ := conductor.New("https://search.example.org",
//	    conductor.WithToken("service-token"),
//	)
//	books, _ := client.SearchBooks(ctx, conductor.BookSearchParams{
//	    Query:   "organic chemistry",
//	    Library: "chem",
//	})
//	for _, b := range books.Items {
//	    fmt.Println(b.Title)
//	}
//
// Anonymous access is supported; a bearer token widens project visibility
// to the caller's team memberships.
package conductor
