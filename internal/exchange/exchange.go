package exchange

import "errors"

var (
	ErrFileNotFound = errors.New("exchange file not found")
	ErrBadDocument  = errors.New("malformed exchange document")
)

// FileExchange reads and writes catalog snapshot documents. The core only
// touches this interface, never the files directly.
type FileExchange interface {
	WriteJSON(path string, doc *Document) error
	ReadJSON(path string) (*Document, error)
	WriteXML(path string, lib *Library) error
	ReadXML(path string) (*Library, error)
}
