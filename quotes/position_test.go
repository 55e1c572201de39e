package quotes

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPosition_Valid(t *testing.T) {
	tests := []struct {
		name     string
		position *Position
		wantErr  bool
	}{
		{"valid", NewPosition("T", "2023-01-01", decimal.RequireFromString("100")), false},
		{"empty ticker", NewPosition(" ", "2023-01-01", decimal.RequireFromString("100")), true},
		{"invalid start", NewPosition("T", "01/01/2023", decimal.RequireFromString("100")), true},
		{"zero quantity", NewPosition("T", "2023-01-01", decimal.Zero), true},
		{"negative quantity", NewPosition("T", "2023-01-01", decimal.RequireFromString("-1")), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.position.Valid()
			if (err != nil) != tt.wantErr {
				t.Errorf("Position.Valid() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
