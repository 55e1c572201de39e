package tables

import "regexp"

// RegexpExtractor locate table markup with pattern matching
type RegexpExtractor struct {
	pattern *regexp.Regexp
}

// NewRegexpExtractor create regexp table extractor
func NewRegexpExtractor() *RegexpExtractor {
	return &RegexpExtractor{regexp.MustCompile(`<table[^>]*>[\s\S]*?</table>`)}
}

// Extract locate the first table in page body
func (s RegexpExtractor) Extract(body string) (string, error) {
	markup := s.pattern.FindString(body)
	if markup == "" {
		return "", ErrTableNotFound
	}

	return markup, nil
}
