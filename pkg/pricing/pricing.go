package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineInput is one priced line as submitted by a caller. Rate and
// TaxPercentage are expected to already be parsed; use ParseAmount for
// caller-supplied strings.
type LineInput struct {
	Name          string
	Quantity      int
	Rate          decimal.Decimal
	TaxPercentage decimal.Decimal
}

// LineAmounts holds the exact (unrounded) computed amounts for a single
// line. Rounding happens once, at the persistence edge: aggregates via
// Compute, per-line stored values via Rounded.
type LineAmounts struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// Rounded returns the line amounts at currency precision for storage.
func (a LineAmounts) Rounded() LineAmounts {
	sub := a.Subtotal.Round(2)
	tax := a.TaxAmount.Round(2)
	return LineAmounts{Subtotal: sub, TaxAmount: tax, Total: sub.Add(tax)}
}

// Totals is the aggregate financial result for a set of lines.
// TotalAmount is always Subtotal + TaxAmount after rounding, so the
// identity holds exactly at 2 decimal places.
type Totals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// ParseAmount parses a caller-supplied decimal string. A failure here is an
// input error on the caller's side, not a pricing error.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// ComputeLine computes the exact amounts for a single line.
func ComputeLine(l LineInput) (LineAmounts, error) {
	if l.Quantity <= 0 {
		return LineAmounts{}, fmt.Errorf("quantity must be a positive integer, got %d", l.Quantity)
	}
	if l.Rate.IsNegative() {
		return LineAmounts{}, fmt.Errorf("rate must not be negative, got %s", l.Rate)
	}
	if l.TaxPercentage.IsNegative() {
		return LineAmounts{}, fmt.Errorf("tax percentage must not be negative, got %s", l.TaxPercentage)
	}

	subtotal := l.Rate.Mul(decimal.NewFromInt(int64(l.Quantity)))
	tax := subtotal.Mul(l.TaxPercentage).Div(hundred)
	return LineAmounts{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
	}, nil
}

// Compute derives the aggregate totals and the per-line amounts for a set of
// lines. Per-line values stay exact through the summation; only the three
// aggregate fields are rounded to currency precision. The function is pure:
// no I/O, deterministic for identical input.
func Compute(lines []LineInput) (Totals, []LineAmounts, error) {
	if len(lines) == 0 {
		return Totals{}, nil, fmt.Errorf("at least one line item is required")
	}

	amounts := make([]LineAmounts, 0, len(lines))
	subtotal := decimal.Zero
	tax := decimal.Zero
	for i, l := range lines {
		a, err := ComputeLine(l)
		if err != nil {
			return Totals{}, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		amounts = append(amounts, a)
		subtotal = subtotal.Add(a.Subtotal)
		tax = tax.Add(a.TaxAmount)
	}

	subtotal = subtotal.Round(2)
	tax = tax.Round(2)
	return Totals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: subtotal.Add(tax),
	}, amounts, nil
}
