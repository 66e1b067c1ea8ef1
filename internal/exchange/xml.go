package exchange

import (
	"encoding/xml"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Frug4l/digital-books-lab/internal/logger"
)

// WriteXML writes lib to path as an indented XML document with a header.
func (f *Files) WriteXML(path string, lib *Library) error {
	data, err := xml.MarshalIndent(lib, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding xml document: %w", err)
	}

	payload := append([]byte(xml.Header), data...)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logger.L().Info("wrote xml catalog",
		zap.String("path", path),
		zap.Int("authors", len(lib.Authors)),
		zap.Int("books", len(lib.Books)),
	)
	return nil
}

// ReadXML parses the document at path.
func (f *Files) ReadXML(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var lib Library
	if err := xml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	logger.L().Info("read xml catalog",
		zap.String("path", path),
		zap.String("version", lib.Version),
		zap.Int("books", len(lib.Books)),
	)
	return &lib, nil
}
