package customer

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Frug4l/digital-books-lab/internal/catalog"
	"github.com/Frug4l/digital-books-lab/internal/domain"
	"github.com/Frug4l/digital-books-lab/internal/logger"
	"github.com/Frug4l/digital-books-lab/internal/order"
)

// Cart is the customer's mutable selection of books. The same book may
// appear more than once, modeling multiple units. Contents are cleared only
// as part of a successful checkout; a failed checkout changes nothing.
type Cart struct {
	ID    uuid.UUID
	owner *Customer
	books []*catalog.Book
}

func newCart(owner *Customer) *Cart {
	return &Cart{ID: uuid.New(), owner: owner}
}

// Owner returns the customer the cart belongs to.
func (c *Cart) Owner() *Customer { return c.owner }

// AddBook appends a book to the cart. Always succeeds.
func (c *Cart) AddBook(b *catalog.Book) {
	c.owner.mu.Lock()
	defer c.owner.mu.Unlock()
	c.books = append(c.books, b)
}

// RemoveBook removes the first occurrence of b and reports whether it was
// present. Absence is a soft outcome, not an error.
func (c *Cart) RemoveBook(b *catalog.Book) bool {
	c.owner.mu.Lock()
	defer c.owner.mu.Unlock()

	for i, got := range c.books {
		if got == b {
			c.books = append(c.books[:i], c.books[i+1:]...)
			return true
		}
	}
	return false
}

// Books returns a copy of the cart contents in insertion order.
func (c *Cart) Books() []*catalog.Book {
	c.owner.mu.Lock()
	defer c.owner.mu.Unlock()

	out := make([]*catalog.Book, len(c.books))
	copy(out, c.books)
	return out
}

// Size returns the number of books currently in the cart.
func (c *Cart) Size() int {
	c.owner.mu.Lock()
	defer c.owner.mu.Unlock()
	return len(c.books)
}

// TotalPrice sums the prices of all books in the cart, rounded to two
// decimal places (half-up).
func (c *Cart) TotalPrice() decimal.Decimal {
	c.owner.mu.Lock()
	defer c.owner.mu.Unlock()
	return c.totalLocked()
}

func (c *Cart) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, b := range c.books {
		total = total.Add(b.Price)
	}
	return total.Round(2)
}

// Checkout turns the cart into an order. It fails with
// domain.EmptyCartError on an empty cart and domain.InsufficientFundsError
// when the total exceeds the owner's balance; in both cases the cart and
// balance stay untouched. On success the balance is debited, the contents
// are snapshotted into the returned order, and the cart is cleared, all
// under one lock.
func (c *Cart) Checkout(ctx context.Context) (*order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("cart_id", c.ID.String()),
		zap.Int64("customer_id", c.owner.ID),
	)

	c.owner.mu.Lock()
	defer c.owner.mu.Unlock()

	if len(c.books) == 0 {
		log.Warn("checkout attempted on empty cart")
		return nil, &domain.EmptyCartError{}
	}

	total := c.totalLocked()
	if c.owner.balance.LessThan(total) {
		log.Warn("checkout rejected, insufficient funds",
			zap.String("required", total.StringFixed(2)),
			zap.String("available", c.owner.balance.StringFixed(2)),
		)
		return nil, &domain.InsufficientFundsError{
			CustomerName: c.owner.Name,
			Required:     total,
			Available:    c.owner.balance,
		}
	}

	newOrder := order.New(order.CustomerRef{
		ID:    c.owner.ID,
		Name:  c.owner.Name,
		Email: c.owner.Email,
	}, c.books, total)

	c.owner.balance = c.owner.balance.Sub(total)
	c.books = nil

	log.Info("checkout completed",
		zap.String("order_number", newOrder.Number),
		zap.String("total", total.StringFixed(2)),
		zap.String("balance_left", c.owner.balance.StringFixed(2)),
	)

	return newOrder, nil
}
