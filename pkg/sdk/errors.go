package conductor

import "fmt"

// APIError is a non-2xx response from the search API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("conductor: api error (status %d): %s", e.StatusCode, e.Message)
}
