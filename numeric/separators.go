package numeric

import (
	"regexp"
)

// Style the separator convention of a formatted number
type Style struct {
	// Thousands groups integer digits, empty when digits are not grouped
	Thousands string
	// Decimals splits off the fraction
	Decimals string
}

// DefaultStyle used when no convention can be inferred
var DefaultStyle = Style{Thousands: "", Decimals: "."}

// numberPattern matches a number with optional grouping and a mandatory fraction.
// Group 1 is the last grouping character, group 2 the decimal separator, group 3 the fraction.
var numberPattern = regexp.MustCompile(`\d{1,3}(?:([^\d])\d{3})*([.,])(\d+)`)

// Infer inspects formatted text and reports which separators it uses.
// It is reliable for text holding a single number only.
func Infer(text string) Style {
	s, _ := infer(text)
	return s
}

// Precision reports how many fractional digits the number in text carries.
func Precision(text string) int {
	_, p := infer(text)
	return p
}

func infer(text string) (Style, int) {
	m := numberPattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultStyle, 0
	}

	thousands, decimals, fraction := m[1], m[2], m[3]
	if thousands == decimals {
		// 1,234,567: the last group is not a fraction.
		return Style{Thousands: thousands, Decimals: other(decimals)}, 0
	}
	return Style{Thousands: thousands, Decimals: decimals}, len(fraction)
}

func other(sep string) string {
	if sep == "." {
		return ","
	}
	return "."
}
