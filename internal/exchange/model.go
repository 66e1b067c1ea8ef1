// Package exchange serializes a catalog snapshot to JSON and XML documents
// with fixed schemas and parses them back. It is pure I/O glue: no business
// rules live here, core entities only pass through as field values.
package exchange

import "encoding/xml"

// Document is the JSON catalog snapshot.
type Document struct {
	BookStore Store `json:"book_store"`
}

// Store is the root object of the JSON document.
type Store struct {
	Name         string           `json:"name"`
	Version      string           `json:"version"`
	CreationDate string           `json:"creation_date"`
	Books        []BookRecord     `json:"books"`
	Customers    []CustomerRecord `json:"customers"`
}

// BookRecord is one book entry in the JSON document.
type BookRecord struct {
	BookID   int64        `json:"book_id"`
	Title    string       `json:"title"`
	Author   AuthorRecord `json:"author"`
	Price    float64      `json:"price"`
	Currency string       `json:"currency"`
	Format   string       `json:"format"`
	SizeMB   float64      `json:"size_mb"`
	Rating   float64      `json:"rating"`
}

// AuthorRecord is the author nested inside a JSON book entry.
type AuthorRecord struct {
	AuthorID int64  `json:"author_id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
}

// CustomerRecord is one customer entry in the JSON document.
type CustomerRecord struct {
	CustomerID       int64  `json:"customer_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registration_date"`
}

// Library is the XML catalog snapshot.
type Library struct {
	XMLName      xml.Name    `xml:"digital_library"`
	Version      string      `xml:"version,attr"`
	CreationDate string      `xml:"creation_date,attr"`
	ShopInfo     ShopInfo    `xml:"shop_info"`
	Authors      []XMLAuthor `xml:"authors>author"`
	Books        []XMLBook   `xml:"book_catalog>book"`
}

// ShopInfo is the store contact block of the XML document.
type ShopInfo struct {
	Name    string `xml:"name"`
	Website string `xml:"website,omitempty"`
	Phone   string `xml:"phone,omitempty"`
}

// XMLAuthor is one author entry in the XML document.
type XMLAuthor struct {
	ID      int64  `xml:"id"`
	Name    string `xml:"name"`
	Country string `xml:"country,omitempty"`
}

// XMLBook is one book entry in the XML catalog section.
type XMLBook struct {
	Category string  `xml:"category,attr"`
	ID       int64   `xml:"id"`
	Title    string  `xml:"title"`
	AuthorID int64   `xml:"author_id"`
	Price    string  `xml:"price"`
	Rating   float64 `xml:"rating"`
}
