package domain

import "github.com/shopspring/decimal"

// GSTRate is the flat tax rate in percent applied to every order.
const GSTRate = 18

// Quantity bounds accepted for a single order line.
const (
	MinQuantity = 1
	MaxQuantity = 100
)

var hundred = decimal.NewFromInt(100)

// PriceBreakdown is the monetary breakdown of one order line.
type PriceBreakdown struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeBreakdown prices quantity units of basePrice with taxRatePercent applied.
// The result is exact; no rounding is performed.
func ComputeBreakdown(basePrice decimal.Decimal, quantity int, taxRatePercent decimal.Decimal) PriceBreakdown {
	subtotal := basePrice.Mul(decimal.NewFromInt(int64(quantity)))
	tax := subtotal.Mul(taxRatePercent).Div(hundred)
	return PriceBreakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Round rounds subtotal and tax half away from zero to places decimal places
// and recomputes total from the rounded parts, so Total == Subtotal + Tax still holds.
func (b PriceBreakdown) Round(places int32) PriceBreakdown {
	subtotal := b.Subtotal.Round(places)
	tax := b.Tax.Round(places)
	return PriceBreakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Price computes the rounded breakdown for a selection at the fixed GST rate.
func (s Selection) Price(places int32) PriceBreakdown {
	return ComputeBreakdown(
		decimal.NewFromInt(int64(s.Entry.BasePrice)),
		s.Quantity,
		decimal.NewFromInt(GSTRate),
	).Round(places)
}
