package quotes

import "github.com/shopspring/decimal"

// PriceQuote define the closing price of a trading day
type PriceQuote struct {
	Date  string
	Close decimal.Decimal
}
