package quotes

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nzai/drip/constants"
	"github.com/shopspring/decimal"
)

// Position define a stock position to adjust for reinvested dividends
type Position struct {
	Ticker   string
	Start    string
	Quantity decimal.Decimal
}

// NewPosition create position
func NewPosition(ticker, start string, quantity decimal.Decimal) *Position {
	return &Position{Ticker: ticker, Start: start, Quantity: quantity}
}

// Valid validate position
func (s Position) Valid() error {
	if strings.TrimSpace(s.Ticker) == "" {
		return errors.New("ticker undefined")
	}

	_, err := time.Parse(constants.DateKeyPattern, s.Start)
	if err != nil {
		return fmt.Errorf("invalid start date: %s", s.Start)
	}

	if !s.Quantity.IsPositive() {
		return errors.New("quantity must be positive")
	}

	return nil
}

// StartTime parse start date key
func (s Position) StartTime() time.Time {
	start, _ := time.Parse(constants.DateKeyPattern, s.Start)
	return start
}
