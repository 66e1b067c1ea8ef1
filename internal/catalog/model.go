// Package catalog holds the store's descriptive records: authors, digital
// books and the registry that keeps them. Records are immutable once
// constructed and shared by reference across carts and orders.
package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Frug4l/digital-books-lab/internal/domain"
)

// Format is a digital book distribution format.
type Format string

const (
	FormatPDF  Format = "PDF"
	FormatEPUB Format = "EPUB"
	FormatFB2  Format = "FB2"
	FormatMOBI Format = "MOBI"
)

// AllowedFormats returns the supported formats in their declared order.
func AllowedFormats() []string {
	return []string{string(FormatPDF), string(FormatEPUB), string(FormatFB2), string(FormatMOBI)}
}

// ParseFormat normalizes raw to uppercase and validates it against the
// supported set. The returned FormatError keeps raw as the caller wrote it.
func ParseFormat(raw string) (Format, error) {
	normalized := Format(strings.ToUpper(raw))
	switch normalized {
	case FormatPDF, FormatEPUB, FormatFB2, FormatMOBI:
		return normalized, nil
	}
	return "", &domain.FormatError{Attempted: raw, Allowed: AllowedFormats()}
}

// Author is a book author record.
type Author struct {
	ID   int64
	Name string
	Bio  string
}

// NewAuthor creates an author. Bio may be empty.
func NewAuthor(id int64, name, bio string) (*Author, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Author{ID: id, Name: name, Bio: bio}, nil
}

func (a *Author) String() string {
	return fmt.Sprintf("%s (ID: %d)", a.Name, a.ID)
}

// Book is a digital book record.
type Book struct {
	ID     int64
	Title  string
	Author *Author
	Price  decimal.Decimal
	Format Format
	SizeMB float64
}

// NewBook creates a book, validating every field. The raw format string is
// case-normalized; an unsupported format fails with domain.FormatError.
func NewBook(id int64, title string, author *Author, price decimal.Decimal, rawFormat string, sizeMB float64) (*Book, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if author == nil {
		return nil, ErrNilAuthor
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	format, err := ParseFormat(rawFormat)
	if err != nil {
		return nil, err
	}
	if sizeMB <= 0 {
		return nil, ErrInvalidSize
	}

	return &Book{
		ID:     id,
		Title:  title,
		Author: author,
		Price:  price,
		Format: format,
		SizeMB: sizeMB,
	}, nil
}

// Info renders a one-line human-readable description of the book.
func (b *Book) Info() string {
	return fmt.Sprintf("'%s' - %s | %s | %gMB | Price: %s",
		b.Title, b.Author.Name, b.Format, b.SizeMB, b.Price.StringFixed(2))
}

func (b *Book) String() string { return b.Title }
