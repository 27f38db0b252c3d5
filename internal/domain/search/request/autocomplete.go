package request

import (
	"fmt"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

// DefaultAutocompleteLimit caps tag suggestions per request.
const DefaultAutocompleteLimit = 5

// AutocompleteParams are the raw inputs to NewAutocomplete.
type AutocompleteParams struct {
	Query string
	Limit int
}

// Autocomplete is a validated tag-suggestion request.
type Autocomplete struct {
	query string
	limit int
}

// NewAutocomplete validates autocomplete parameters. The query is required.
func NewAutocomplete(p AutocompleteParams) (Autocomplete, error) {
	if p.Query == "" {
		return Autocomplete{}, fmt.Errorf("%w: query is required", domain.ErrInvalidRequest)
	}
	if err := validateQuery(p.Query); err != nil {
		return Autocomplete{}, err
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultAutocompleteLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Autocomplete{query: p.Query, limit: limit}, nil
}

// Query returns the suggestion prefix text.
func (r *Autocomplete) Query() string { return r.query }

// Limit returns the maximum number of suggestions.
func (r *Autocomplete) Limit() int { return r.limit }
