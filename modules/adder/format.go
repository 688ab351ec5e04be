package adder

import (
	"math"
	"strconv"
	"strings"
)

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatDouble renders the shortest decimal that round-trips to v.
// The mantissa always carries a decimal point ("30.0"). Magnitudes outside
// [1e-3, 1e7) use scientific form with an unpadded exponent ("1.0E7", "1.5E-4").
func formatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-3 || abs >= 1e7) {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		n, _ := strconv.Atoi(exp)
		return withPoint(mantissa) + "E" + strconv.Itoa(n)
	}

	return withPoint(strconv.FormatFloat(v, 'f', -1, 64))
}

func withPoint(s string) string {
	if !strings.Contains(s, ".") {
		return s + ".0"
	}
	return s
}
