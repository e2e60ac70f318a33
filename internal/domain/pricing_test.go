package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestComputeBreakdown(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		tax      string
		total    string
		price    int64
		quantity int
	}{
		{name: "two samosas", price: 30, quantity: 2, subtotal: "60", tax: "10.8", total: "70.8"},
		{name: "one biryani", price: 200, quantity: 1, subtotal: "200", tax: "36", total: "236"},
		{name: "zero quantity", price: 170, quantity: 0, subtotal: "0", tax: "0", total: "0"},
		{name: "zero price", price: 0, quantity: 5, subtotal: "0", tax: "0", total: "0"},
		{name: "max quantity", price: 100, quantity: 100, subtotal: "10000", tax: "1800", total: "11800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBreakdown(decimal.NewFromInt(tt.price), tt.quantity, decimal.NewFromInt(GSTRate))
			assertDecimal(t, tt.subtotal, b.Subtotal)
			assertDecimal(t, tt.tax, b.Tax)
			assertDecimal(t, tt.total, b.Total)
		})
	}
}

func TestComputeBreakdown_TotalIsSubtotalPlusTax(t *testing.T) {
	rate := decimal.NewFromInt(GSTRate)
	for price := int64(0); price <= 250; price += 7 {
		for qty := 0; qty <= MaxQuantity; qty += 3 {
			b := ComputeBreakdown(decimal.NewFromInt(price), qty, rate)

			subtotal := decimal.NewFromInt(price * int64(qty))
			if !b.Subtotal.Equal(subtotal) {
				t.Fatalf("price=%d qty=%d: subtotal %s, want %s", price, qty, b.Subtotal, subtotal)
			}
			tax := subtotal.Mul(rate).Div(decimal.NewFromInt(100))
			if !b.Tax.Equal(tax) {
				t.Fatalf("price=%d qty=%d: tax %s, want %s", price, qty, b.Tax, tax)
			}
			if !b.Total.Equal(b.Subtotal.Add(b.Tax)) {
				t.Fatalf("price=%d qty=%d: total %s != %s + %s", price, qty, b.Total, b.Subtotal, b.Tax)
			}
		}
	}
}

func TestPriceBreakdown_Round(t *testing.T) {
	b := ComputeBreakdown(dec("12.34"), 3, decimal.NewFromInt(GSTRate))
	assertDecimal(t, "6.6636", b.Tax)

	r := b.Round(2)
	assertDecimal(t, "37.02", r.Subtotal)
	assertDecimal(t, "6.66", r.Tax)
	assertDecimal(t, "43.68", r.Total)

	r = b.Round(0)
	assertDecimal(t, "37", r.Subtotal)
	assertDecimal(t, "7", r.Tax)
	assertDecimal(t, "44", r.Total)
}

func TestPriceBreakdown_RoundHalfAwayFromZero(t *testing.T) {
	b := PriceBreakdown{Subtotal: dec("0.5"), Tax: dec("0.125")}
	r := b.Round(2)
	assertDecimal(t, "0.13", r.Tax)
	assertDecimal(t, "0.63", r.Total)
}

func TestSelection_Price(t *testing.T) {
	entry, _ := DefaultCatalog().EntryAt(1)
	s := Selection{Entry: entry, OptionIndex: 1, OptionName: "Aloo Samosa", Quantity: 2}

	p := s.Price(DefaultRoundPlaces)
	assertDecimal(t, "60", p.Subtotal)
	assertDecimal(t, "10.8", p.Tax)
	assertDecimal(t, "70.8", p.Total)
	assert.Equal(t, "70.8", p.Total.String())
}
