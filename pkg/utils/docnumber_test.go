package utils

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateDocumentNumber_Format(t *testing.T) {
	when := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		prefix  string
		pattern string
	}{
		{PrefixKitchenInvoice, `^KT20240305\d{4}$`},
		{PrefixResortInvoice, `^RS20240305\d{4}$`},
		{PrefixKitchenOrder, `^KO20240305\d{4}$`},
	}
	for _, tc := range cases {
		re := regexp.MustCompile(tc.pattern)
		for i := 0; i < 50; i++ {
			got := GenerateDocumentNumber(tc.prefix, when)
			if !re.MatchString(got) {
				t.Fatalf("GenerateDocumentNumber(%q) = %q, want match for %s", tc.prefix, got, tc.pattern)
			}
		}
	}
}

func TestGenerateDocumentNumber_UsesSuppliedDate(t *testing.T) {
	when := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	got := GenerateDocumentNumber(PrefixKitchenOrder, when)
	if got[:10] != "KO20231231" {
		t.Errorf("expected date component 20231231, got %q", got)
	}
}
