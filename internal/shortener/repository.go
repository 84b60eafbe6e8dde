package shortener

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no record matches a code.
	ErrNotFound = errors.New("short link not found")

	// ErrDuplicateCode is returned by a Repository when the code is already taken.
	ErrDuplicateCode = errors.New("short code already exists")

	// ErrInvalidURL is returned when the target does not parse as a URI reference.
	ErrInvalidURL = errors.New("invalid url")

	// ErrCollisionExhausted is returned when every generated code clashed with an existing one.
	ErrCollisionExhausted = errors.New("could not allocate a unique short code")

	// ErrStorage wraps unexpected failures of the backing store.
	ErrStorage = errors.New("storage failure")
)

// Repository is the collection of short links.
type Repository interface {
	// Insert stores a new record and assigns its ID.
	// It returns ErrDuplicateCode if the code is already present.
	Insert(ctx context.Context, link *ShortLink) error

	// FindByCode returns the record with exactly the given code.
	// It returns ErrNotFound if no record matches.
	FindByCode(ctx context.Context, code Code) (*ShortLink, error)
}
