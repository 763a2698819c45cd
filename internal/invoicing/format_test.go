package invoicing

import (
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1000, "$1,000.00"},
		{1234.56, "$1,234.56"},
		{59.97, "$59.97"},
		{1234567.8, "$1,234,567.80"},
	}
	for _, c := range cases {
		if got := formatCurrency(c.in); got != c.want {
			t.Fatalf("formatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDate_NoZeroPadding(t *testing.T) {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := formatDate(d); got != "5/3/2024" {
		t.Fatalf("formatDate = %q, want 5/3/2024", got)
	}
	d = time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	if got := formatDate(d); got != "25/12/2024" {
		t.Fatalf("formatDate = %q, want 25/12/2024", got)
	}
}
