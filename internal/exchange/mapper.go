package exchange

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Frug4l/digital-books-lab/internal/catalog"
	"github.com/Frug4l/digital-books-lab/internal/customer"
)

// DocumentVersion is the schema version stamped on generated documents.
const DocumentVersion = "1.0"

// Currency is the single currency the store trades in.
const Currency = "RUB"

// BuildDocument maps live catalog entities and customers into the JSON
// document shape.
func BuildDocument(storeName string, books []*catalog.Book, customers []*customer.Customer) *Document {
	now := time.Now()

	bookRecords := make([]BookRecord, 0, len(books))
	for _, b := range books {
		price, _ := b.Price.Float64()
		bookRecords = append(bookRecords, BookRecord{
			BookID: b.ID,
			Title:  b.Title,
			Author: AuthorRecord{
				AuthorID: b.Author.ID,
				Name:     b.Author.Name,
				Bio:      b.Author.Bio,
			},
			Price:    price,
			Currency: Currency,
			Format:   string(b.Format),
			SizeMB:   b.SizeMB,
		})
	}

	customerRecords := make([]CustomerRecord, 0, len(customers))
	for _, c := range customers {
		customerRecords = append(customerRecords, CustomerRecord{
			CustomerID:       c.ID,
			Name:             c.Name,
			Email:            c.Email,
			RegistrationDate: now.Format("2006-01-02"),
		})
	}

	return &Document{
		BookStore: Store{
			Name:         storeName,
			Version:      DocumentVersion,
			CreationDate: now.Format("2006"),
			Books:        bookRecords,
			Customers:    customerRecords,
		},
	}
}

// BooksFromDocument rebuilds Author and Book entities from a parsed JSON
// document. Every record goes back through the catalog constructors, so a
// tampered file surfaces the same validation errors as hand-built entities
// (an unknown format fails with domain.FormatError).
func BooksFromDocument(doc *Document) ([]*catalog.Book, error) {
	authors := make(map[int64]*catalog.Author)
	books := make([]*catalog.Book, 0, len(doc.BookStore.Books))

	for i, rec := range doc.BookStore.Books {
		author, ok := authors[rec.Author.AuthorID]
		if !ok {
			var err error
			author, err = catalog.NewAuthor(rec.Author.AuthorID, rec.Author.Name, rec.Author.Bio)
			if err != nil {
				return nil, fmt.Errorf("book record %d: author: %w", i, err)
			}
			authors[rec.Author.AuthorID] = author
		}

		book, err := catalog.NewBook(rec.BookID, rec.Title, author,
			decimal.NewFromFloat(rec.Price), rec.Format, rec.SizeMB)
		if err != nil {
			return nil, fmt.Errorf("book record %d: %w", i, err)
		}
		books = append(books, book)
	}

	return books, nil
}

// BuildLibrary maps catalog entities into the XML document shape. The
// category attribute carries the book's format in lowercase.
func BuildLibrary(storeName string, books []*catalog.Book) *Library {
	var authors []XMLAuthor
	seen := make(map[int64]bool)
	records := make([]XMLBook, 0, len(books))

	for _, b := range books {
		if !seen[b.Author.ID] {
			seen[b.Author.ID] = true
			authors = append(authors, XMLAuthor{ID: b.Author.ID, Name: b.Author.Name})
		}
		records = append(records, XMLBook{
			Category: strings.ToLower(string(b.Format)),
			ID:       b.ID,
			Title:    b.Title,
			AuthorID: b.Author.ID,
			Price:    b.Price.StringFixed(2),
		})
	}

	return &Library{
		Version:      DocumentVersion,
		CreationDate: time.Now().Format("2006"),
		ShopInfo:     ShopInfo{Name: storeName},
		Authors:      authors,
		Books:        records,
	}
}
