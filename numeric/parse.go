package numeric

import (
	"github.com/shopspring/decimal"
	"math"
	"strings"
	"unicode"
)

// Parse converts locale formatted text into a number.
// Whitespace and apostrophes are dropped and every comma is read as a decimal point.
// Text that does not hold a number yields NaN.
func Parse(text string) float64 {
	return toFloat(strings.ReplaceAll(clean(text), ",", "."))
}

// ParseStyle converts text formatted with the separators of s into a number.
// Only the last decimal separator splits the fraction off, grouping characters
// are removed from the integer part. Text that does not hold a number yields NaN.
func ParseStyle(text string, s Style) float64 {
	c := clean(text)
	sep := s.Decimals
	if sep == "" {
		sep = DefaultStyle.Decimals
	}

	i := strings.LastIndex(c, sep)
	if i < 0 {
		return toFloat(strip(c, s.Thousands))
	}
	return toFloat(strip(c[:i], s.Thousands) + "." + c[i+len(sep):])
}

// ParseInferred parses text with the separators inferred from the text itself.
func ParseInferred(text string) float64 {
	return ParseStyle(text, Infer(text))
}

// clean drops whitespace and apostrophes, both used for digit grouping.
func clean(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\'' || r == '’' {
			return -1
		}
		return r
	}, text)
}

func strip(s, sep string) string {
	if sep == "" {
		return s
	}
	return strings.ReplaceAll(s, sep, "")
}

func toFloat(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return math.NaN()
	}
	f, _ := d.Float64()
	return f
}
