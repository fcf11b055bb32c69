// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
)

// FormatMoney formats an amount with two decimals and comma separators.
// e.g., -1234567.891 -> "-1,234,567.89"
func FormatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// Larger than int64; skip the separators.
		return sign(d) + s
	}
	return sign(d) + FormatNumber(n) + "." + frac
}

// FormatMoneyShort formats an amount with a K/M/B suffix for narrow columns.
// e.g., 1234 -> "1.2K", 950 -> "950"
func FormatMoneyShort(d decimal.Decimal) string {
	abs := d.Abs()
	switch {
	case abs.GreaterThanOrEqual(billion):
		return sign(d) + abs.Div(billion).StringFixed(1) + "B"
	case abs.GreaterThanOrEqual(million):
		return sign(d) + abs.Div(million).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return sign(d) + abs.Div(thousand).StringFixed(1) + "K"
	default:
		return sign(d) + abs.Round(0).String()
	}
}

func sign(d decimal.Decimal) string {
	if d.Round(2).IsNegative() {
		return "-"
	}
	return ""
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

// FormatPercent formats a 0-100 value as a whole percentage.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}

// FormatTrend formats a signed month-over-month change.
// e.g., 12 -> "+12%", -5 -> "-5%", 0 -> "0%"
func FormatTrend(p float64) string {
	r := math.Round(p)
	if r > 0 {
		return fmt.Sprintf("+%.0f%%", r)
	}
	if r == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", r)
}

// FormatDelta formats the signed difference between two amounts.
func FormatDelta(current, previous decimal.Decimal) string {
	delta := current.Sub(previous)
	if delta.IsNegative() {
		return "-" + FormatMoney(delta.Neg())
	}
	return "+" + FormatMoney(delta)
}

// FormatMonth renders a bucket month as "Jan 2026".
func FormatMonth(t time.Time) string {
	return t.Format("Jan 2006")
}

// FormatRatio formats a 0-1 ratio as a percentage with one decimal.
func FormatRatio(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
