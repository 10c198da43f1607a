// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a dollar amount for display.
// e.g., 1234.5 -> "$1,234.50", -50 -> "-$50.00"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}

	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("$%s.%02d", FormatNumber(whole), cents)
}

// FormatMoneyCompact rounds away cents for dense tables.
// e.g., 1234.5 -> "$1,235"
func FormatMoneyCompact(v float64) string {
	if v < 0 {
		return "-" + FormatMoneyCompact(-v)
	}
	return "$" + FormatNumber(int64(math.Round(v)))
}

// MaskMoney replaces an amount with a fixed-width placeholder for
// screenshots and over-the-shoulder use.
func MaskMoney(float64) string {
	return "••••••"
}

// Money formats v, masked when the masked display mode is on.
func Money(v float64, masked bool) string {
	if masked {
		return MaskMoney(v)
	}
	return FormatMoney(v)
}

// FormatPercent formats a percentage value to two decimal places.
// e.g., 27.927 -> "27.93%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatMonths formats a fractional month count.
// e.g., 22.5 -> "22.5 mo"
func FormatMonths(months float64) string {
	return fmt.Sprintf("%.1f mo", months)
}

// FormatYears formats a fractional year count as years and months.
// e.g., 3.5 -> "3y 6m", 0.4 -> "5m"
func FormatYears(years float64) string {
	if years <= 0 {
		return "now"
	}
	totalMonths := int(math.Round(years * 12))
	y := totalMonths / 12
	m := totalMonths % 12
	if y == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dy %dm", y, m)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDelta formats a dollar delta with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoneyCompact(delta)
	}
	return "-" + FormatMoneyCompact(-delta)
}
