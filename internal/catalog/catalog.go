package catalog

// Catalog is the in-memory registry of authors and books known to the store.
// Iteration order follows insertion order so exports stay deterministic.
type Catalog struct {
	authors     map[int64]*Author
	books       map[int64]*Book
	authorOrder []int64
	bookOrder   []int64
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		authors: make(map[int64]*Author),
		books:   make(map[int64]*Book),
	}
}

// AddAuthor registers an author. Author ids are unique within the catalog.
func (c *Catalog) AddAuthor(a *Author) error {
	if _, ok := c.authors[a.ID]; ok {
		return ErrAuthorExists
	}
	c.authors[a.ID] = a
	c.authorOrder = append(c.authorOrder, a.ID)
	return nil
}

// AddBook registers a book. The book's author must already be registered.
func (c *Catalog) AddBook(b *Book) error {
	if _, ok := c.books[b.ID]; ok {
		return ErrBookExists
	}
	if _, ok := c.authors[b.Author.ID]; !ok {
		return ErrAuthorNotFound
	}
	c.books[b.ID] = b
	c.bookOrder = append(c.bookOrder, b.ID)
	return nil
}

// Author looks up an author by id.
func (c *Catalog) Author(id int64) (*Author, error) {
	a, ok := c.authors[id]
	if !ok {
		return nil, ErrAuthorNotFound
	}
	return a, nil
}

// Book looks up a book by id.
func (c *Catalog) Book(id int64) (*Book, error) {
	b, ok := c.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	return b, nil
}

// Authors returns all registered authors in insertion order.
func (c *Catalog) Authors() []*Author {
	out := make([]*Author, 0, len(c.authorOrder))
	for _, id := range c.authorOrder {
		out = append(out, c.authors[id])
	}
	return out
}

// Books returns all registered books in insertion order.
func (c *Catalog) Books() []*Book {
	out := make([]*Book, 0, len(c.bookOrder))
	for _, id := range c.bookOrder {
		out = append(out, c.books[id])
	}
	return out
}
