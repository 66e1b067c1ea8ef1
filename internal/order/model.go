// Package order models a finalized purchase: the immutable snapshot a
// successful checkout produces, plus its printable receipt.
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Frug4l/digital-books-lab/internal/catalog"
)

// CustomerRef identifies the customer as they were at purchase time.
type CustomerRef struct {
	ID    int64
	Name  string
	Email string
}

// Order is created once by a successful checkout and never mutated. The book
// list is a snapshot of the cart at checkout time; later cart mutations do
// not reach it, and Total is never recomputed from current catalog prices.
type Order struct {
	ID        uuid.UUID
	Number    string
	Customer  CustomerRef
	Total     decimal.Decimal
	CreatedAt time.Time

	books []*catalog.Book
}

// New builds an order from a checkout result. The book slice is copied so
// the caller's cart stays decoupled from the finalized order.
func New(customer CustomerRef, books []*catalog.Book, total decimal.Decimal) *Order {
	snapshot := make([]*catalog.Book, len(books))
	copy(snapshot, books)

	return &Order{
		ID:        uuid.New(),
		Number:    GenerateOrderNumber(),
		Customer:  customer,
		Total:     total,
		CreatedAt: time.Now(),
		books:     snapshot,
	}
}

// Books returns a copy of the purchased books in original cart order.
func (o *Order) Books() []*catalog.Book {
	out := make([]*catalog.Book, len(o.books))
	copy(out, o.books)
	return out
}

const receiptWidth = 40

// Receipt renders the order as a fixed-width multi-line report.
func (o *Order) Receipt() string {
	banner := strings.Repeat("=", receiptWidth)
	rule := strings.Repeat("-", receiptWidth)

	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("ORDER RECEIPT\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "Order #: %s\n", o.Number)
	fmt.Fprintf(&b, "Customer: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt.Format("02.01.2006 15:04"))
	b.WriteString(rule + "\n")
	b.WriteString("Books:\n")

	for i, book := range o.books {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, book.Title, book.Price.StringFixed(2))
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "TOTAL: %s\n", o.Total.StringFixed(2))
	b.WriteString(banner)
	return b.String()
}

func (o *Order) String() string {
	return fmt.Sprintf("order %s for %s", o.Number, o.Total.StringFixed(2))
}
