// Package domain defines the failure kinds shared by the store's business
// rules. Callers can match any of them with errors.Is(err, domain.Err) or
// pick a specific kind with errors.As.
package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Err is the base sentinel every domain error unwraps to.
var Err = errors.New("domain error")

// FormatError reports a book constructed with an unsupported format.
// Attempted keeps the caller's original, non-normalized input.
type FormatError struct {
	Attempted string
	Allowed   []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format %q is not supported, allowed: %s",
		e.Attempted, strings.Join(e.Allowed, ", "))
}

func (e *FormatError) Unwrap() error { return Err }

// InsufficientFundsError reports a checkout total exceeding the customer's
// balance. Amounts are the exact computed total and the pre-checkout balance.
type InsufficientFundsError struct {
	CustomerName string
	Required     decimal.Decimal
	Available    decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s has insufficient funds: needs %s, has %s",
		e.CustomerName, e.Required.StringFixed(2), e.Available.StringFixed(2))
}

func (e *InsufficientFundsError) Unwrap() error { return Err }

// EmptyCartError reports a checkout attempted on a cart with no books.
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string { return "cannot check out an empty cart" }

func (e *EmptyCartError) Unwrap() error { return Err }
