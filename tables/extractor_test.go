package tables

import (
	"errors"
	"strings"
	"testing"
)

const page = `<html><body>
<div id="summary">no data here</div>
<table id="first"><tr><td>Mar 15, 2023</td><td>1.00</td></tr></table>
<table id="second"><tr><td>unused</td></tr></table>
</body></html>`

func TestExtractors_Extract(t *testing.T) {
	extractors := map[string]Extractor{
		"regexp":   NewRegexpExtractor(),
		"document": NewDocumentExtractor(),
	}
	for name, extractor := range extractors {
		t.Run(name, func(t *testing.T) {
			markup, err := extractor.Extract(page)
			if err != nil {
				t.Fatalf("Extractor.Extract() error = %v", err)
			}

			if !strings.Contains(markup, "Mar 15, 2023") {
				t.Errorf("Extractor.Extract() = %s, want first table markup", markup)
			}

			if strings.Contains(markup, "unused") {
				t.Errorf("Extractor.Extract() matched the second table")
			}
		})
	}
}

func TestExtractors_Extract_NotFound(t *testing.T) {
	extractors := map[string]Extractor{
		"regexp":   NewRegexpExtractor(),
		"document": NewDocumentExtractor(),
	}
	for name, extractor := range extractors {
		t.Run(name, func(t *testing.T) {
			_, err := extractor.Extract("<html><body><div>tableless</div></body></html>")
			if !errors.Is(err, ErrTableNotFound) {
				t.Errorf("Extractor.Extract() error = %v, want %v", err, ErrTableNotFound)
			}
		})
	}
}
