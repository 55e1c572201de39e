package sources

import (
	"time"

	"github.com/nzai/drip/quotes"
)

// Source define dividend history and closing price source
type Source interface {
	// Dividends query dividend events paid between start and now
	Dividends(ticker string, start, now time.Time) ([]quotes.DividendEvent, error)
	// ClosingPrice query the closing price of a date key, nil when the date has no quote
	ClosingPrice(ticker string, date string) (*quotes.PriceQuote, error)
}
