package customer

import "errors"

var (
	ErrInvalidID       = errors.New("customer id must be positive")
	ErrEmptyName       = errors.New("customer name is required")
	ErrNegativeBalance = errors.New("starting balance must not be negative")
)
