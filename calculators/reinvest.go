package calculators

import (
	"sort"

	"github.com/nzai/drip/quotes"
	"github.com/shopspring/decimal"
)

// ReinvestCalculator compute dividend reinvestment adjusted share quantity
type ReinvestCalculator struct{}

// NewReinvestCalculator create reinvest calculator
func NewReinvestCalculator() *ReinvestCalculator {
	return &ReinvestCalculator{}
}

// Calculate fold records in ascending date order into the adjusted quantity.
// Compounding is order sensitive, date keys sort chronologically by construction.
func (s *ReinvestCalculator) Calculate(position *quotes.Position, records map[string]*quotes.DividendPriceRecord) decimal.Decimal {
	dates := make([]string, 0, len(records))
	for date := range records {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	quantity := position.Quantity
	for _, date := range dates {
		record := records[date]
		if !record.Close.IsPositive() || record.Dividend.IsNegative() {
			continue
		}

		cash := record.Dividend.Mul(quantity)
		quantity = quantity.Add(cash.Div(record.Close))
	}

	return quantity
}
