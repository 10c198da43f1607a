package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{4.5, "$4.50"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-50, "-$50.00"},
		{999.999, "$1,000.00"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoneyCompact(t *testing.T) {
	if got := FormatMoneyCompact(600000); got != "$600,000" {
		t.Fatalf("FormatMoneyCompact(600000) = %q, want $600,000", got)
	}
	if got := FormatMoneyCompact(-1234.6); got != "-$1,235" {
		t.Fatalf("FormatMoneyCompact(-1234.6) = %q, want -$1,235", got)
	}
}

func TestMoney_Masked(t *testing.T) {
	if got := Money(1234.5, true); got != MaskMoney(1234.5) {
		t.Fatalf("masked Money = %q, want mask", got)
	}
	if got := Money(1234.5, false); got != "$1,234.50" {
		t.Fatalf("unmasked Money = %q, want $1,234.50", got)
	}
}

func TestFormatPercent_TwoDecimals(t *testing.T) {
	// 1550/5550 rounds to 27.93 at two decimals.
	if got := FormatPercent(1550.0 / 5550.0 * 100); got != "27.93%" {
		t.Fatalf("FormatPercent = %q, want 27.93%%", got)
	}
	if got := FormatPercent(0); got != "0.00%" {
		t.Fatalf("FormatPercent(0) = %q, want 0.00%%", got)
	}
}

func TestFormatYears(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{3.5, "3y 6m"},
		{0.4, "5m"},
		{0, "now"},
		{1, "1y 0m"},
	}
	for _, c := range cases {
		if got := FormatYears(c.in); got != c.want {
			t.Fatalf("FormatYears(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
