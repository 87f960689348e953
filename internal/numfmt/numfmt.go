// Package numfmt parses user-entered numbers and formats calculated
// quantities for display.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Trim selects how trailing zeros are removed after fixed-precision formatting.
type Trim int

const (
	// TrimNone keeps every decimal place ("37.5000").
	TrimNone Trim = iota
	// TrimWhole drops the fraction only when it is entirely zero ("75.0000" -> "75").
	TrimWhole
	// TrimZeros drops every trailing zero and a dangling decimal point ("37.5000" -> "37.5").
	TrimZeros
)

// Parse reads a locale-agnostic decimal ("12.5", "-3e2", " 7 ").
// Empty, non-numeric and non-finite input reports ok=false.
func Parse(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !IsFinite(v) {
		return 0, false
	}
	return v, true
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite reports whether every value is finite.
func AllFinite(vs ...float64) bool {
	for _, v := range vs {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// Quantity renders v with the given number of decimals and trim policy.
// Non-finite values render as the empty string.
func Quantity(v float64, precision int, trim Trim) string {
	if !IsFinite(v) {
		return ""
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if precision > 0 {
		switch trim {
		case TrimWhole:
			s = strings.TrimSuffix(s, "."+strings.Repeat("0", precision))
		case TrimZeros:
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
	}
	return unsignZero(s)
}

// Fixed renders v with exactly the given number of decimals.
func Fixed(v float64, precision int) string {
	return Quantity(v, precision, TrimNone)
}

// unsignZero turns "-0", "-0.00" and friends into their unsigned form.
func unsignZero(s string) string {
	if !strings.HasPrefix(s, "-") {
		return s
	}
	if strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}
