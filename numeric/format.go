package numeric

import (
	"github.com/shopspring/decimal"
	"math"
	"strings"
)

const (
	// PreserveDecimals keeps the fractional digits the value already has
	PreserveDecimals = -1

	// DefaultDecimals precision used for monetary amounts
	DefaultDecimals = 2
)

// Format renders value with the given precision and separators, e.g.
//
//	Format(1000.12, 3, ",", " ") // "1 000,120"
//
// Values are rounded half away from zero. NaN and infinities render as "0".
func Format(value float64, decimals int, decimalSep string, thousandsSep string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}

	sign := ""
	if value < 0 {
		sign = "-"
	}

	magnitude := decimal.NewFromFloat(math.Abs(value))
	places := decimals
	switch {
	case decimals == PreserveDecimals:
		places = 0
		if exp := magnitude.Exponent(); exp < 0 {
			places = int(-exp)
		}
	case decimals < 0:
		places = -decimals
	}

	integer, fraction, _ := strings.Cut(magnitude.StringFixed(int32(places)), ".")
	if places == 0 {
		return sign + group(integer, thousandsSep)
	}
	return sign + group(integer, thousandsSep) + decimalSep + fraction
}

// FormatStyle renders value with the separators of s.
func FormatStyle(value float64, decimals int, s Style) string {
	return Format(value, decimals, s.Decimals, s.Thousands)
}

// group joins digits in clusters of three counted from the right.
func group(digits string, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}

	var b strings.Builder
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
