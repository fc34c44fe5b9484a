package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidListing indicates a listing violates the catalog invariants.
	ErrInvalidListing = errors.New("invalid listing")
	// ErrDuplicateListing indicates two listings share the same id.
	ErrDuplicateListing = errors.New("duplicate listing id")
	// ErrInvalidFilter indicates malformed filter criteria.
	ErrInvalidFilter = errors.New("invalid filter")
)
