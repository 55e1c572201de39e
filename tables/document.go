package tables

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DocumentExtractor locate table markup by walking the parsed document
type DocumentExtractor struct{}

// NewDocumentExtractor create document table extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract locate the first table in page body
func (s DocumentExtractor) Extract(body string) (string, error) {
	document, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", err
	}

	table := document.Find("table").First()
	if table.Length() == 0 {
		return "", ErrTableNotFound
	}

	return goquery.OuterHtml(table)
}
