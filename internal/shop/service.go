// Package shop wires the catalog, the customers and the file exchange into
// one explicitly constructed application context. Nothing here lives in
// package-level state.
package shop

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Frug4l/digital-books-lab/internal/catalog"
	"github.com/Frug4l/digital-books-lab/internal/customer"
	"github.com/Frug4l/digital-books-lab/internal/exchange"
	"github.com/Frug4l/digital-books-lab/internal/logger"
	"github.com/Frug4l/digital-books-lab/internal/order"
)

// RegisterBookInput carries the fields for adding a book to the catalog.
type RegisterBookInput struct {
	ID       int64
	Title    string
	AuthorID int64
	Price    decimal.Decimal
	Format   string
	SizeMB   float64
}

// Service defines the store's business operations.
type Service interface {
	RegisterAuthor(ctx context.Context, id int64, name, bio string) (*catalog.Author, error)
	RegisterBook(ctx context.Context, input RegisterBookInput) (*catalog.Book, error)
	RegisterCustomer(ctx context.Context, id int64, name, email string, balance decimal.Decimal) (*customer.Customer, error)
	AddToCart(ctx context.Context, customerID, bookID int64) error
	RemoveFromCart(ctx context.Context, customerID, bookID int64) (bool, error)
	CartTotal(ctx context.Context, customerID int64) (decimal.Decimal, error)
	Checkout(ctx context.Context, customerID int64) (*order.Order, error)
	ExportCatalog(ctx context.Context, jsonPath, xmlPath string) error
	ImportBooks(ctx context.Context, jsonPath string) ([]*catalog.Book, error)
	Catalog() *catalog.Catalog
	Customers() []*customer.Customer
}

// service implements the Service interface
type service struct {
	storeName string
	catalog   *catalog.Catalog
	files     exchange.FileExchange

	customers     map[int64]*customer.Customer
	customerOrder []int64
}

// NewService creates a new store service around an empty catalog.
func NewService(storeName string, files exchange.FileExchange) Service {
	return &service{
		storeName: storeName,
		catalog:   catalog.NewCatalog(),
		files:     files,
		customers: make(map[int64]*customer.Customer),
	}
}

func (s *service) Catalog() *catalog.Catalog { return s.catalog }

// Customers returns all registered customers in registration order.
func (s *service) Customers() []*customer.Customer {
	out := make([]*customer.Customer, 0, len(s.customerOrder))
	for _, id := range s.customerOrder {
		out = append(out, s.customers[id])
	}
	return out
}

func (s *service) RegisterAuthor(ctx context.Context, id int64, name, bio string) (*catalog.Author, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RegisterAuthor"),
		zap.Int64("author_id", id),
	)

	author, err := catalog.NewAuthor(id, name, bio)
	if err != nil {
		log.Error("invalid author", zap.Error(err))
		return nil, err
	}
	if err := s.catalog.AddAuthor(author); err != nil {
		log.Error("failed to register author", zap.Error(err))
		return nil, err
	}

	log.Info("author registered", zap.String("name", name))
	return author, nil
}

func (s *service) RegisterBook(ctx context.Context, input RegisterBookInput) (*catalog.Book, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RegisterBook"),
		zap.Int64("book_id", input.ID),
	)

	author, err := s.catalog.Author(input.AuthorID)
	if err != nil {
		log.Error("unknown author", zap.Int64("author_id", input.AuthorID), zap.Error(err))
		return nil, err
	}

	book, err := catalog.NewBook(input.ID, input.Title, author, input.Price, input.Format, input.SizeMB)
	if err != nil {
		log.Error("invalid book", zap.Error(err))
		return nil, err
	}
	if err := s.catalog.AddBook(book); err != nil {
		log.Error("failed to register book", zap.Error(err))
		return nil, err
	}

	log.Info("book registered",
		zap.String("title", book.Title),
		zap.String("format", string(book.Format)),
		zap.String("price", book.Price.StringFixed(2)),
	)
	return book, nil
}

func (s *service) RegisterCustomer(ctx context.Context, id int64, name, email string, balance decimal.Decimal) (*customer.Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RegisterCustomer"),
		zap.Int64("customer_id", id),
	)

	if _, ok := s.customers[id]; ok {
		log.Warn("customer already registered")
		return nil, ErrCustomerExists
	}

	c, err := customer.NewCustomer(id, name, email, balance)
	if err != nil {
		log.Error("invalid customer", zap.Error(err))
		return nil, err
	}

	s.customers[id] = c
	s.customerOrder = append(s.customerOrder, id)

	log.Info("customer registered", zap.String("email", email))
	return c, nil
}

func (s *service) AddToCart(ctx context.Context, customerID, bookID int64) error {
	c, ok := s.customers[customerID]
	if !ok {
		return ErrCustomerNotFound
	}
	book, err := s.catalog.Book(bookID)
	if err != nil {
		return err
	}

	c.Cart().AddBook(book)
	logger.FromCtx(ctx).Info("book added to cart",
		zap.Int64("customer_id", customerID),
		zap.String("title", book.Title),
		zap.Int("cart_size", c.Cart().Size()),
	)
	return nil
}

// RemoveFromCart reports whether the book was actually in the cart. Absence
// is a soft outcome for the caller to inspect, not an error.
func (s *service) RemoveFromCart(ctx context.Context, customerID, bookID int64) (bool, error) {
	c, ok := s.customers[customerID]
	if !ok {
		return false, ErrCustomerNotFound
	}
	book, err := s.catalog.Book(bookID)
	if err != nil {
		return false, err
	}

	removed := c.Cart().RemoveBook(book)
	logger.FromCtx(ctx).Info("book removed from cart",
		zap.Int64("customer_id", customerID),
		zap.String("title", book.Title),
		zap.Bool("was_present", removed),
	)
	return removed, nil
}

func (s *service) CartTotal(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	c, ok := s.customers[customerID]
	if !ok {
		return decimal.Zero, ErrCustomerNotFound
	}
	return c.Cart().TotalPrice(), nil
}

func (s *service) Checkout(ctx context.Context, customerID int64) (*order.Order, error) {
	c, ok := s.customers[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return c.Cart().Checkout(ctx)
}

// ExportCatalog writes the JSON and XML catalog snapshots.
func (s *service) ExportCatalog(ctx context.Context, jsonPath, xmlPath string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ExportCatalog"),
	)

	books := s.catalog.Books()
	doc := exchange.BuildDocument(s.storeName, books, s.Customers())
	if err := s.files.WriteJSON(jsonPath, doc); err != nil {
		log.Error("failed to export json catalog", zap.Error(err))
		return err
	}

	lib := exchange.BuildLibrary(s.storeName, books)
	if err := s.files.WriteXML(xmlPath, lib); err != nil {
		log.Error("failed to export xml catalog", zap.Error(err))
		return err
	}

	log.Info("catalog exported",
		zap.String("json", jsonPath),
		zap.String("xml", xmlPath),
		zap.Int("books", len(books)),
	)
	return nil
}

// ImportBooks parses a JSON snapshot and rebuilds the book entities from it.
// The current catalog is not modified; the caller decides what to do with
// the parsed books.
func (s *service) ImportBooks(ctx context.Context, jsonPath string) ([]*catalog.Book, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ImportBooks"),
		zap.String("path", jsonPath),
	)

	doc, err := s.files.ReadJSON(jsonPath)
	if err != nil {
		log.Error("failed to read json catalog", zap.Error(err))
		return nil, err
	}

	books, err := exchange.BooksFromDocument(doc)
	if err != nil {
		log.Error("failed to rebuild books", zap.Error(err))
		return nil, err
	}

	log.Info("books imported", zap.Int("count", len(books)))
	return books, nil
}
