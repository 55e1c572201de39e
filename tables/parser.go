package tables

import (
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/nzai/drip/constants"
)

// Row define a structured table row, Date is the 2006-01-02 date key
type Row struct {
	Date   string
	Values []string
}

// Parser convert table markup into structured rows
type Parser struct {
	row      *regexp.Regexp
	cell     *regexp.Regexp
	inner    *regexp.Regexp
	minCells int
	layout   string
}

// NewParser create table row parser, innerPattern narrows value cells to their
// payload when the raw cell carries extra formatting, pass "" to keep cell text
func NewParser(rowPattern, cellPattern, innerPattern string, minCells int, dateLayout string) *Parser {
	var inner *regexp.Regexp
	if innerPattern != "" {
		inner = regexp.MustCompile(innerPattern)
	}

	return &Parser{
		row:      regexp.MustCompile(rowPattern),
		cell:     regexp.MustCompile(cellPattern),
		inner:    inner,
		minCells: minCells,
		layout:   dateLayout,
	}
}

// Parse split table markup into rows, malformed rows are skipped
func (s Parser) Parse(markup string) []Row {
	fragments := s.row.FindAllString(markup, -1)
	rows := make([]Row, 0, len(fragments))
	for _, fragment := range fragments {
		matches := s.cell.FindAllStringSubmatch(fragment, -1)
		if len(matches) < s.minCells {
			continue
		}

		date, err := time.Parse(s.layout, cleanCell(matches[0][1]))
		if err != nil {
			continue
		}

		values := make([]string, 0, len(matches)-1)
		for _, match := range matches[1:] {
			values = append(values, s.cellValue(match[1]))
		}

		rows = append(rows, Row{Date: date.Format(constants.DateKeyPattern), Values: values})
	}

	return rows
}

// cellValue keep only the inner payload when a narrower pattern is configured,
// an empty string marks a cell whose payload is absent
func (s Parser) cellValue(cell string) string {
	if s.inner == nil {
		return cleanCell(cell)
	}

	matches := s.inner.FindStringSubmatch(cell)
	if len(matches) != 2 {
		return ""
	}

	return strings.TrimSpace(matches[1])
}

var nestedTagPattern = regexp.MustCompile(`<[^>]+>`)

// cleanCell strip nested markup and entities from cell text
func cleanCell(cell string) string {
	return strings.TrimSpace(html.UnescapeString(nestedTagPattern.ReplaceAllString(cell, "")))
}
