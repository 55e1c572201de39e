package sources

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nzai/drip/constants"
	"github.com/nzai/drip/fetchers"
	"github.com/nzai/drip/quotes"
	"github.com/nzai/drip/tables"
	"github.com/nzai/drip/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// query modes map to the history page filter parameter
	modeDividends = "div"
	modePrice     = "history"

	rowPattern  = `<tr[^>]*>[\s\S]*?</tr>`
	cellPattern = `<td[^>]*>([\s\S]*?)</td>`
	// dividend amounts are wrapped in an inner marker inside the cell
	dividendPattern = `<strong>([\d\.]+)</strong>`

	// price table cell order: date, open, high, low, close, adj close, volume
	closeColumn = 3
)

// YahooFinance yahoo finance history source
type YahooFinance struct {
	fetcher   fetchers.Fetcher
	extractor tables.Extractor
	dividends *tables.Parser
	prices    *tables.Parser
}

// NewYahooFinance create yahoo finance history source
func NewYahooFinance(fetcher fetchers.Fetcher, extractor tables.Extractor) *YahooFinance {
	return &YahooFinance{
		fetcher:   fetcher,
		extractor: extractor,
		dividends: tables.NewParser(rowPattern, cellPattern, dividendPattern, 2, constants.RowDatePattern),
		prices:    tables.NewParser(rowPattern, cellPattern, "", closeColumn+2, constants.RowDatePattern),
	}
}

// Dividends query dividend events paid between start and now
func (s YahooFinance) Dividends(ticker string, start, now time.Time) ([]quotes.DividendEvent, error) {
	rows, err := s.retrieve(ticker, start, now, modeDividends, s.dividends)
	if err != nil {
		return nil, err
	}

	events := make([]quotes.DividendEvent, 0, len(rows))
	for _, row := range rows {
		amount, err := decimal.NewFromString(row.Values[0])
		if err != nil {
			zap.L().Warn("ignore dividend row due to invalid amount",
				zap.String("ticker", ticker),
				zap.String("date", row.Date),
				zap.String("amount", row.Values[0]))
			continue
		}

		events = append(events, quotes.DividendEvent{Date: row.Date, Amount: amount})
	}

	return events, nil
}

// ClosingPrice query the closing price of a date key, nil when the date has no quote
func (s YahooFinance) ClosingPrice(ticker string, date string) (*quotes.PriceQuote, error) {
	day, err := time.Parse(constants.DateKeyPattern, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date key: %s", date)
	}

	rows, err := s.retrieve(ticker, utils.TodayZero(day), utils.TomorrowZero(day), modePrice, s.prices)
	if err != nil {
		return nil, err
	}

	// last parsed row of the day wins
	var quote *quotes.PriceQuote
	for _, row := range rows {
		if row.Date != date {
			continue
		}

		closing, err := decimal.NewFromString(strings.ReplaceAll(row.Values[closeColumn], ",", ""))
		if err != nil {
			zap.L().Warn("ignore price row due to invalid close",
				zap.String("ticker", ticker),
				zap.String("date", row.Date),
				zap.String("close", row.Values[closeColumn]))
			continue
		}

		quote = &quotes.PriceQuote{Date: row.Date, Close: closing}
	}

	return quote, nil
}

// retrieve download the windowed history page and parse its data table rows
func (s YahooFinance) retrieve(ticker string, start, end time.Time, mode string, parser *tables.Parser) ([]tables.Row, error) {
	pattern := "https://finance.yahoo.com/quote/%s/history?period1=%d&period2=%d&interval=1d&filter=%s&frequency=1d"
	url := fmt.Sprintf(pattern, ticker, start.Unix(), end.Unix(), mode)

	response, err := s.fetcher.Fetch(url)
	if err != nil {
		zap.L().Error("download history page failed", zap.Error(err), zap.String("url", url))
		return nil, &FetchError{URL: url, Err: err}
	}

	if response.StatusCode != http.StatusOK {
		zap.L().Error("history page response status invalid",
			zap.String("url", url),
			zap.Int("status", response.StatusCode))
		return nil, &FetchError{URL: url, StatusCode: response.StatusCode}
	}

	markup, err := s.extractor.Extract(response.Body)
	if err != nil {
		zap.L().Error("extract history table failed", zap.Error(err), zap.String("url", url))
		return nil, &ExtractionError{URL: url, Err: err}
	}

	return parser.Parse(markup), nil
}
