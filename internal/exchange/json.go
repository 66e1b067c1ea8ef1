package exchange

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Frug4l/digital-books-lab/internal/logger"
)

// Files is the on-disk FileExchange implementation.
type Files struct{}

// NewFiles returns a FileExchange backed by the local filesystem.
func NewFiles() *Files { return &Files{} }

// WriteJSON writes doc to path as indented JSON.
func (f *Files) WriteJSON(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json document: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logger.L().Info("wrote json catalog",
		zap.String("path", path),
		zap.Int("books", len(doc.BookStore.Books)),
		zap.Int("customers", len(doc.BookStore.Customers)),
	)
	return nil
}

// ReadJSON parses the document at path.
func (f *Files) ReadJSON(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	logger.L().Info("read json catalog",
		zap.String("path", path),
		zap.String("store", doc.BookStore.Name),
		zap.Int("books", len(doc.BookStore.Books)),
	)
	return &doc, nil
}
