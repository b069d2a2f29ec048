package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestCompute_KitchenOrderScenario(t *testing.T) {
	totals, amounts, err := Compute([]LineInput{
		{Name: "Paneer Tikka", Quantity: 2, Rate: dec(t, "450.00"), TaxPercentage: dec(t, "18")},
		{Name: "Masala Chai", Quantity: 1, Rate: dec(t, "80.00"), TaxPercentage: dec(t, "18")},
	})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if got := totals.Subtotal.StringFixed(2); got != "980.00" {
		t.Errorf("subtotal = %s, want 980.00", got)
	}
	if got := totals.TaxAmount.StringFixed(2); got != "176.40" {
		t.Errorf("tax = %s, want 176.40", got)
	}
	if got := totals.TotalAmount.StringFixed(2); got != "1156.40" {
		t.Errorf("total = %s, want 1156.40", got)
	}

	if got := amounts[0].TaxAmount.StringFixed(2); got != "162.00" {
		t.Errorf("line 1 tax = %s, want 162.00", got)
	}
	if got := amounts[1].Total.StringFixed(2); got != "94.40" {
		t.Errorf("line 2 total = %s, want 94.40", got)
	}
}

func TestCompute_TotalIdentity(t *testing.T) {
	cases := [][]LineInput{
		{{Quantity: 1, Rate: dec(t, "0"), TaxPercentage: dec(t, "0")}},
		{{Quantity: 3, Rate: dec(t, "33.33"), TaxPercentage: dec(t, "5")}},
		{
			{Quantity: 7, Rate: dec(t, "19.99"), TaxPercentage: dec(t, "12")},
			{Quantity: 2, Rate: dec(t, "450.00"), TaxPercentage: dec(t, "18")},
			{Quantity: 13, Rate: dec(t, "1.01"), TaxPercentage: dec(t, "28")},
		},
	}
	for i, lines := range cases {
		totals, _, err := Compute(lines)
		if err != nil {
			t.Fatalf("case %d: Compute error: %v", i, err)
		}
		sum := totals.Subtotal.Add(totals.TaxAmount)
		if !totals.TotalAmount.Equal(sum) {
			t.Errorf("case %d: total %s != subtotal+tax %s", i, totals.TotalAmount, sum)
		}
	}
}

func TestCompute_ZeroLine(t *testing.T) {
	totals, _, err := Compute([]LineInput{{Quantity: 1, Rate: decimal.Zero, TaxPercentage: decimal.Zero}})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if !totals.Subtotal.IsZero() || !totals.TaxAmount.IsZero() || !totals.TotalAmount.IsZero() {
		t.Errorf("expected all-zero totals, got %+v", totals)
	}
}

func TestCompute_RejectsBadLines(t *testing.T) {
	cases := []struct {
		name string
		line LineInput
	}{
		{"zero quantity", LineInput{Quantity: 0, Rate: dec(t, "10")}},
		{"negative quantity", LineInput{Quantity: -2, Rate: dec(t, "10")}},
		{"negative rate", LineInput{Quantity: 1, Rate: dec(t, "-1")}},
		{"negative tax", LineInput{Quantity: 1, Rate: dec(t, "10"), TaxPercentage: dec(t, "-18")}},
	}
	for _, tc := range cases {
		if _, _, err := Compute([]LineInput{tc.line}); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestCompute_EmptyLines(t *testing.T) {
	if _, _, err := Compute(nil); err == nil {
		t.Error("expected error for empty line list")
	}
}

func TestParseAmount(t *testing.T) {
	if _, err := ParseAmount("123.45"); err != nil {
		t.Errorf("ParseAmount(123.45) error: %v", err)
	}
	if _, err := ParseAmount("twelve"); err == nil {
		t.Error("ParseAmount(twelve) expected error")
	}
}

func TestCompute_NoDriftAcrossManyLines(t *testing.T) {
	// 0.1 style values drift with binary floats; decimals must not.
	lines := make([]LineInput, 100)
	for i := range lines {
		lines[i] = LineInput{Quantity: 1, Rate: dec(t, "0.10"), TaxPercentage: dec(t, "18")}
	}
	totals, _, err := Compute(lines)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if got := totals.Subtotal.StringFixed(2); got != "10.00" {
		t.Errorf("subtotal = %s, want 10.00", got)
	}
	if got := totals.TotalAmount.StringFixed(2); got != "11.80" {
		t.Errorf("total = %s, want 11.80", got)
	}
}
