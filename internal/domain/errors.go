package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRequest signals a malformed or out-of-range search request.
	ErrInvalidRequest = errors.New("invalid request")
)
