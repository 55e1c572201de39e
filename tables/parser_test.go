package tables

import (
	"testing"
)

const dividendTable = `<table class="W(100%) M(0)" data-test="historical-prices">
<thead><tr><th><span>Date</span></th><th><span>Dividends</span></th></tr></thead>
<tbody>
<tr class="BdT"><td><span>Jun 15, 2023</span></td><td><strong>1.10</strong> <span>Dividend</span></td></tr>
<tr class="BdT"><td><span>Mar 15, 2023</span></td><td><strong>1.00</strong> <span>Dividend</span></td></tr>
<tr class="BdT"><td><span>Mar 14, 2023</span></td></tr>
<tr class="BdT"><td><span>Not A Date</span></td><td><strong>0.50</strong> <span>Dividend</span></td></tr>
</tbody>
</table>`

const priceTable = `<table data-test="historical-prices">
<tr><td>Mar 15, 2023</td><td>49.00</td><td>51.00</td><td>48.50</td><td>50.00</td><td>50.00</td><td>1,200,300</td></tr>
<tr><td>Mar 15, 2023</td></tr>
</table>`

func TestParser_Parse_Dividends(t *testing.T) {
	parser := NewParser(`<tr[^>]*>[\s\S]*?</tr>`, `<td[^>]*>([\s\S]*?)</td>`, `<strong>([\d\.]+)</strong>`, 2, "Jan 02, 2006")

	rows := parser.Parse(dividendTable)
	if len(rows) != 2 {
		t.Fatalf("Parser.Parse() rows = %d, want %d", len(rows), 2)
	}

	wants := []Row{
		{Date: "2023-06-15", Values: []string{"1.10"}},
		{Date: "2023-03-15", Values: []string{"1.00"}},
	}
	for index, want := range wants {
		if rows[index].Date != want.Date {
			t.Errorf("rows[%d] date = %s, want %s", index, rows[index].Date, want.Date)
		}

		if rows[index].Values[0] != want.Values[0] {
			t.Errorf("rows[%d] value = %s, want %s", index, rows[index].Values[0], want.Values[0])
		}
	}
}

func TestParser_Parse_DividendWithoutMarker(t *testing.T) {
	parser := NewParser(`<tr[^>]*>[\s\S]*?</tr>`, `<td[^>]*>([\s\S]*?)</td>`, `<strong>([\d\.]+)</strong>`, 2, "Jan 02, 2006")

	markup := `<table><tr><td>Mar 17, 2023</td><td>0.77 Dividend</td></tr></table>`
	rows := parser.Parse(markup)
	if len(rows) != 1 {
		t.Fatalf("Parser.Parse() rows = %d, want %d", len(rows), 1)
	}

	// amount payload absent, the row still parses
	if rows[0].Values[0] != "" {
		t.Errorf("rows[0] value = %q, want empty", rows[0].Values[0])
	}
}

func TestParser_Parse_Prices(t *testing.T) {
	parser := NewParser(`<tr[^>]*>[\s\S]*?</tr>`, `<td[^>]*>([\s\S]*?)</td>`, "", 5, "Jan 02, 2006")

	rows := parser.Parse(priceTable)
	if len(rows) != 1 {
		t.Fatalf("Parser.Parse() rows = %d, want %d", len(rows), 1)
	}

	if rows[0].Date != "2023-03-15" {
		t.Errorf("rows[0] date = %s, want %s", rows[0].Date, "2023-03-15")
	}

	if rows[0].Values[3] != "50.00" {
		t.Errorf("rows[0] close = %s, want %s", rows[0].Values[3], "50.00")
	}
}

func TestParser_Parse_MalformedTolerance(t *testing.T) {
	parser := NewParser(`<tr[^>]*>[\s\S]*?</tr>`, `<td[^>]*>([\s\S]*?)</td>`, "", 2, "Jan 02, 2006")

	tests := []struct {
		name   string
		markup string
		want   int
	}{
		{"empty", "<table></table>", 0},
		{"header only", "<table><tr><th>Date</th><th>Value</th></tr></table>", 0},
		{"mixed", `<table>
<tr><td>Mar 15, 2023</td><td>1.00</td></tr>
<tr><td>broken</td><td>1.00</td></tr>
<tr><td>Mar 16, 2023</td></tr>
<tr><td>Mar 17, 2023</td><td>2.00</td></tr>
</table>`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := parser.Parse(tt.markup)
			if len(rows) != tt.want {
				t.Errorf("Parser.Parse() rows = %d, want %d", len(rows), tt.want)
			}
		})
	}
}
