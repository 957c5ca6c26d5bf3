package table

import (
	"errors"
	"strconv"
	"strings"
)

// Normalize trims surrounding whitespace and replaces every remaining space
// with an underscore.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
}

// Coerce converts s to the most specific cell kind. Integers win over
// floats, so "3" is Int(3) and "3.0" is Float(3). Anything that parses as
// neither is kept as text, unchanged.
func Coerce(s string) Cell {
	if v, ok := parseInt(s); ok {
		return Int(v)
	}
	if v, ok := parseFloat(s); ok {
		return Float(v)
	}
	return Text(s)
}

// NormalizeAndCoerce applies Normalize and then Coerce.
func NormalizeAndCoerce(s string) Cell {
	return Coerce(Normalize(s))
}

// parseInt accepts base-10 signed integers. Integers that overflow int64
// are rejected here and picked up by parseFloat.
func parseInt(s string) (int64, bool) {
	digits, ok := stripDigitSeparators(s)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseFloat accepts decimal and exponent literals plus the inf/nan
// spellings. Hex floats are rejected. Out-of-range magnitudes become ±Inf.
func parseFloat(s string) (float64, bool) {
	if strings.ContainsAny(s, "xX") {
		return 0, false
	}
	digits, ok := stripDigitSeparators(s)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// stripDigitSeparators removes underscores that sit between two digits,
// so "1_000" reads as 1000. Any other underscore makes the literal invalid.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
