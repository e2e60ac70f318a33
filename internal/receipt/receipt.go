// Package receipt renders the counter's screens: the menu, an entry's
// options, the per-order summary and the closing receipt.
// Every method is a pure function of its arguments.
package receipt

import (
	"fmt"
	"strings"

	"github.com/runoshun/makkah-counter/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	menuRuleWidth    = 50
	receiptRuleWidth = 40
)

// Printer formats counter output for one hotel.
// Fields are ordered to minimize memory padding.
type Printer struct {
	styles    Styles
	hotelName string
	currency  string
}

// NewPrinter creates a Printer.
func NewPrinter(hotelName, currency string, styles Styles) *Printer {
	return &Printer{
		hotelName: hotelName,
		currency:  currency,
		styles:    styles,
	}
}

func (p *Printer) amount(d decimal.Decimal) string {
	return fmt.Sprintf("%s %s", p.currency, d.String())
}

func (p *Printer) price(n int) string {
	return fmt.Sprintf("%s %d", p.currency, n)
}

// Menu renders the welcome header and the numbered catalog.
func (p *Printer) Menu(catalog domain.Catalog) string {
	var b strings.Builder
	rule := p.styles.Rule.Render(strings.Repeat("=", menuRuleWidth))

	b.WriteString(rule + "\n")
	b.WriteString(p.styles.Header.Render("WELCOME TO "+strings.ToUpper(p.hotelName)) + "\n")
	b.WriteString(rule + "\n")
	for i, e := range catalog.Entries() {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, e.Name, p.price(e.BasePrice))
	}
	b.WriteString(p.styles.Rule.Render(strings.Repeat("-", menuRuleWidth)) + "\n")
	return b.String()
}

// Options renders an entry's name, price and numbered options.
func (p *Printer) Options(entry domain.MenuEntry) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(p.styles.EntryName.Render(fmt.Sprintf("%s - %s", entry.Name, p.price(entry.BasePrice))) + "\n")
	b.WriteString("Available Options:\n")
	for i, opt := range entry.Options {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, opt)
	}
	return b.String()
}

// Summary renders the breakdown of one order round.
func (p *Printer) Summary(sel domain.Selection, price domain.PriceBreakdown) string {
	var b strings.Builder
	b.WriteString("\n" + p.styles.Heading.Render("📦 Order Summary:") + "\n")
	fmt.Fprintf(&b, "Item       : %s\n", sel.Entry.Name)
	fmt.Fprintf(&b, "Option     : %s\n", sel.OptionName)
	fmt.Fprintf(&b, "Quantity   : %d\n", sel.Quantity)
	fmt.Fprintf(&b, "Subtotal   : %s\n", p.amount(price.Subtotal))
	fmt.Fprintf(&b, "GST (%d%%) : %s\n", domain.GSTRate, p.amount(price.Tax))
	b.WriteString(p.styles.Total.Render("Total      : "+p.amount(price.Total)) + "\n")
	return b.String()
}

// Receipt renders the grand total and the closing lines.
func (p *Printer) Receipt(grandTotal decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("\n" + p.styles.GrandTotal.Render("🧾 Grand Total: "+p.amount(grandTotal)) + "\n")
	fmt.Fprintf(&b, "Thank you for ordering from %s!\n", p.hotelName)
	b.WriteString(p.styles.Rule.Render(strings.Repeat("=", receiptRuleWidth)) + "\n")
	return b.String()
}

// Warning renders the message shown when input is not a number in [lo, hi].
func (p *Printer) Warning(lo, hi int) string {
	return p.styles.Warning.Render(fmt.Sprintf("⚠️  Please enter a number between %d and %d.", lo, hi)) + "\n"
}
