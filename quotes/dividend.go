package quotes

import "github.com/shopspring/decimal"

// DividendEvent define a dividend payment parsed from the history table
type DividendEvent struct {
	Date   string
	Amount decimal.Decimal
}
