package aggregators

import (
	"sync"
	"time"

	"github.com/nzai/drip/constants"
	"github.com/nzai/drip/quotes"
	"github.com/nzai/drip/sources"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Aggregator join dividend events with the closing prices of their payment dates
type Aggregator struct {
	source   sources.Source
	parallel int
}

// NewAggregator create dividend price aggregator
func NewAggregator(source sources.Source, parallel int) *Aggregator {
	if parallel <= 0 {
		parallel = constants.DefaultParallel
	}

	return &Aggregator{source: source, parallel: parallel}
}

// Aggregate map dividend payment dates to dividend amount and closing price.
// A failed dividend history query fails the whole aggregation, a failed or empty
// price lookup only drops its date. An empty result means no dividends in range.
func (s Aggregator) Aggregate(ticker string, start, now time.Time) (map[string]*quotes.DividendPriceRecord, error) {
	events, err := s.source.Dividends(ticker, start, now)
	if err != nil {
		zap.L().Error("query dividend history failed",
			zap.Error(err),
			zap.String("ticker", ticker),
			zap.Time("start", start))
		return nil, err
	}

	dividends := make(map[string]decimal.Decimal, len(events))
	for _, event := range events {
		dividends[event.Date] = event.Amount
	}

	limiter := NewLimiter(s.parallel)
	wg := new(sync.WaitGroup)
	wg.Add(len(dividends))

	mutex := new(sync.Mutex)
	records := make(map[string]*quotes.DividendPriceRecord, len(dividends))
	for date, amount := range dividends {
		go func(date string, amount decimal.Decimal) {
			quote, err := s.source.ClosingPrice(ticker, date)
			if err != nil {
				// the date is dropped, remaining dates still compound
				zap.L().Warn("query closing price failed",
					zap.Error(err),
					zap.String("ticker", ticker),
					zap.String("date", date))
			} else if quote == nil {
				zap.L().Warn("no closing price for dividend date",
					zap.String("ticker", ticker),
					zap.String("date", date))
			} else {
				mutex.Lock()
				records[date] = &quotes.DividendPriceRecord{Date: date, Dividend: amount, Close: quote.Close}
				mutex.Unlock()
			}

			limiter.Release()
			wg.Done()
		}(date, amount)

		limiter.Set()
	}
	wg.Wait()

	return records, nil
}
