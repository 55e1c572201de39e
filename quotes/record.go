package quotes

import "github.com/shopspring/decimal"

// DividendPriceRecord join a dividend payment with the closing price of its payment date
type DividendPriceRecord struct {
	Date     string
	Dividend decimal.Decimal
	Close    decimal.Decimal
}
