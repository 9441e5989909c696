package sink

import (
	"math"
	"strconv"
	"strings"
)

// Format is an explicit, locale-independent number formatting policy.
//
// Values are rounded half away from zero on their 15 significant digit
// decimal form, then trailing zeros and a dangling decimal point are
// trimmed. The decimal separator is always '.'.
type Format struct {
	MMDecimals   int // millimeter labels
	UnitDecimals int // canvas coordinates
}

// Invariant prints millimeters as "0.#" and canvas units as "0.###".
var Invariant = Format{MMDecimals: 1, UnitDecimals: 3}

// MM formats a millimeter value for a label.
func (f Format) MM(v float64) string { return formatTrimmed(v, f.MMDecimals) }

// Unit formats a canvas coordinate or length.
func (f Format) Unit(v float64) string { return formatTrimmed(v, f.UnitDecimals) }

// significantDigits matches the precision of the reference formatter.
const significantDigits = 15

func formatTrimmed(v float64, decimals int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if decimals < 0 {
		decimals = 0
	}

	neg := v < 0
	sci := strconv.FormatFloat(math.Abs(v), 'e', significantDigits-1, 64)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)
	digits := strings.Replace(mantissa, ".", "", 1)

	// point is the number of digits before the decimal point.
	point := exp + 1
	if point < 0 {
		digits = strings.Repeat("0", -point) + digits
		point = 0
	}
	if point > len(digits) {
		digits += strings.Repeat("0", point-len(digits))
	}

	if keep := point + decimals; keep < len(digits) {
		up := digits[keep] >= '5'
		digits = digits[:keep]
		if up {
			var carry bool
			digits, carry = increment(digits)
			if carry {
				digits = "1" + digits
				point++
			}
		}
	}

	intPart := strings.TrimLeft(digits[:point], "0")
	if intPart == "" {
		intPart = "0"
	}
	out := intPart
	if frac := strings.TrimRight(digits[point:], "0"); frac != "" {
		out += "." + frac
	}
	if neg && out != "0" {
		out = "-" + out
	}
	return out
}

// increment adds one to a decimal digit string, reporting overflow.
func increment(digits string) (string, bool) {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b), false
		}
		b[i] = '0'
	}
	return string(b), true
}
