package catalog

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidID     = errors.New("identifier must be positive")
	ErrEmptyName     = errors.New("author name is required")
	ErrEmptyTitle    = errors.New("book title is required")
	ErrNilAuthor     = errors.New("book author is required")
	ErrNegativePrice = errors.New("book price must not be negative")
	ErrInvalidSize   = errors.New("book size must be positive")

	// -- Resource State --
	ErrAuthorExists   = errors.New("author already registered")
	ErrBookExists     = errors.New("book already registered")
	ErrAuthorNotFound = errors.New("author not found")
	ErrBookNotFound   = errors.New("book not found")
)
