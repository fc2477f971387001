package format

import (
	"math"
	"strconv"
	"strings"
)

// Number renders v with at most four decimals and no trailing zeros,
// e.g. 40 -> "40", 4.898e-15 -> "0", 37.5 -> "37.5".
func Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	// Use a fixed buffer to avoid allocation
	var buf [32]byte
	s := string(strconv.AppendFloat(buf[:0], v, 'f', 4, 64))
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Percent converts a fraction into a whole-number percentage label ("75%").
// Negative fractions mean unknown and render as "--".
func Percent(p float64) string {
	if p < 0 || math.IsNaN(p) {
		return "--"
	}
	return strconv.Itoa(int(math.Round(p*100))) + "%"
}
