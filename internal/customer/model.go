// Package customer models a store customer and the single shopping cart
// bound to them. The customer's balance and the cart share one lock, so a
// checkout is observed either not at all or fully applied.
package customer

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Customer is an identity plus a prepaid balance. The balance only changes
// through a successful checkout on the customer's cart.
type Customer struct {
	ID    int64
	Name  string
	Email string

	mu      sync.Mutex
	balance decimal.Decimal
	cart    *Cart
}

// NewCustomer creates a customer together with their cart. A zero balance
// is valid; a negative one is not.
func NewCustomer(id int64, name, email string, balance decimal.Decimal) (*Customer, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if balance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	c := &Customer{
		ID:      id,
		Name:    name,
		Email:   email,
		balance: balance,
	}
	c.cart = newCart(c)
	return c, nil
}

// Balance returns the current prepaid balance.
func (c *Customer) Balance() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance
}

// Cart returns the cart owned by this customer for its whole lifetime.
func (c *Customer) Cart() *Cart { return c.cart }

func (c *Customer) String() string {
	return fmt.Sprintf("customer %s <%s>", c.Name, c.Email)
}
