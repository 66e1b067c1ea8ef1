package customer

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Frug4l/digital-books-lab/internal/catalog"
	"github.com/Frug4l/digital-books-lab/internal/domain"
)

func fixtureBooks(t *testing.T) (*catalog.Book, *catalog.Book) {
	t.Helper()

	author, err := catalog.NewAuthor(1, "Leo Tolstoy", "")
	require.NoError(t, err)

	warAndPeace, err := catalog.NewBook(101, "War and Peace", author,
		decimal.RequireFromString("299.99"), "PDF", 15)
	require.NoError(t, err)

	eugeneOnegin, err := catalog.NewBook(102, "Eugene Onegin", author,
		decimal.RequireFromString("199.50"), "EPUB", 3)
	require.NoError(t, err)

	return warAndPeace, eugeneOnegin
}

func fixtureCustomer(t *testing.T, balance string) *Customer {
	t.Helper()
	c, err := NewCustomer(1, "Ivan Ivanov", "ivanov@example.com",
		decimal.RequireFromString(balance))
	require.NoError(t, err)
	return c
}

func TestAddAndRemoveBook(t *testing.T) {
	first, second := fixtureBooks(t)

	t.Run("AddAppendsInOrder", func(t *testing.T) {
		cart := fixtureCustomer(t, "0").Cart()
		cart.AddBook(first)
		cart.AddBook(second)

		books := cart.Books()
		require.Len(t, books, 2)
		assert.Same(t, first, books[0])
		assert.Same(t, second, books[1])
	})

	t.Run("RemoveAbsentBookIsSoftFailure", func(t *testing.T) {
		cart := fixtureCustomer(t, "0").Cart()
		cart.AddBook(first)

		assert.False(t, cart.RemoveBook(second))
		assert.Equal(t, 1, cart.Size())
	})

	t.Run("RemoveDropsOnlyFirstOfDuplicates", func(t *testing.T) {
		cart := fixtureCustomer(t, "0").Cart()
		cart.AddBook(first)
		cart.AddBook(first)

		assert.True(t, cart.RemoveBook(first))
		require.Equal(t, 1, cart.Size())
		assert.Same(t, first, cart.Books()[0])
	})
}

func TestTotalPrice(t *testing.T) {
	first, second := fixtureBooks(t)

	t.Run("EmptyCartIsZero", func(t *testing.T) {
		cart := fixtureCustomer(t, "0").Cart()
		assert.True(t, cart.TotalPrice().IsZero())
	})

	t.Run("SumsAllBooks", func(t *testing.T) {
		cart := fixtureCustomer(t, "0").Cart()
		cart.AddBook(first)
		cart.AddBook(second)

		assert.Equal(t, "499.49", cart.TotalPrice().StringFixed(2))
	})

	t.Run("CountsDuplicatesAsUnits", func(t *testing.T) {
		cart := fixtureCustomer(t, "0").Cart()
		cart.AddBook(second)
		cart.AddBook(second)

		assert.Equal(t, "399.00", cart.TotalPrice().StringFixed(2))
	})
}

func TestCheckoutEmptyCart(t *testing.T) {
	owner := fixtureCustomer(t, "400")
	cart := owner.Cart()

	_, err := cart.Checkout(context.Background())

	var ece *domain.EmptyCartError
	require.ErrorAs(t, err, &ece)
	assert.ErrorIs(t, err, domain.Err)
	assert.Equal(t, "400.00", owner.Balance().StringFixed(2))
	assert.Zero(t, cart.Size())
}

func TestCheckoutInsufficientFunds(t *testing.T) {
	first, second := fixtureBooks(t)
	owner := fixtureCustomer(t, "400")
	cart := owner.Cart()
	cart.AddBook(first)
	cart.AddBook(second)

	_, err := cart.Checkout(context.Background())

	var ife *domain.InsufficientFundsError
	require.ErrorAs(t, err, &ife)
	assert.Equal(t, "Ivan Ivanov", ife.CustomerName)
	assert.Equal(t, "499.49", ife.Required.StringFixed(2))
	assert.Equal(t, "400.00", ife.Available.StringFixed(2))

	// No partial debit, cart untouched.
	assert.Equal(t, "400.00", owner.Balance().StringFixed(2))
	require.Equal(t, 2, cart.Size())
	assert.Same(t, first, cart.Books()[0])
	assert.Same(t, second, cart.Books()[1])
}

func TestCheckoutSuccess(t *testing.T) {
	first, second := fixtureBooks(t)
	owner := fixtureCustomer(t, "500")
	cart := owner.Cart()
	cart.AddBook(first)
	cart.AddBook(second)

	o, err := cart.Checkout(context.Background())
	require.NoError(t, err)
	require.NotNil(t, o)

	assert.Equal(t, "499.49", o.Total.StringFixed(2))
	assert.Equal(t, "0.51", owner.Balance().StringFixed(2))
	assert.Zero(t, cart.Size(), "cart must be cleared by checkout")

	books := o.Books()
	require.Len(t, books, 2)
	assert.Same(t, first, books[0])
	assert.Same(t, second, books[1])

	assert.Equal(t, owner.ID, o.Customer.ID)
	assert.Equal(t, owner.Name, o.Customer.Name)
	assert.Equal(t, owner.Email, o.Customer.Email)
}

func TestOrderUnaffectedByLaterCartMutation(t *testing.T) {
	first, second := fixtureBooks(t)
	owner := fixtureCustomer(t, "500")
	cart := owner.Cart()
	cart.AddBook(first)

	o, err := cart.Checkout(context.Background())
	require.NoError(t, err)

	// The cart keeps accepting books after checkout; the order is frozen.
	cart.AddBook(second)
	cart.AddBook(second)

	books := o.Books()
	require.Len(t, books, 1)
	assert.Same(t, first, books[0])
	assert.Equal(t, "299.99", o.Total.StringFixed(2))
}

func TestCheckoutDebitsExactTotal(t *testing.T) {
	first, _ := fixtureBooks(t)
	owner := fixtureCustomer(t, "299.99")
	cart := owner.Cart()
	cart.AddBook(first)

	o, err := cart.Checkout(context.Background())
	require.NoError(t, err)

	assert.True(t, owner.Balance().IsZero())
	assert.Equal(t, "299.99", o.Total.StringFixed(2))
}
