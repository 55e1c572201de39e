package tables

import "errors"

var (
	// ErrTableNotFound no data table in page body
	ErrTableNotFound = errors.New("table not found")
)

// Extractor locate the first data table markup in a page body
type Extractor interface {
	Extract(body string) (string, error)
}
