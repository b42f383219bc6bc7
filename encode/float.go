package encode

import (
	"math"
	"strconv"
	"strings"
)

// formatFloat renders a finite float. Fixed and scientific formats fall
// back to the general format when the magnitude would not fit prec digits,
// and any output that reads back as a bare integer gets a ".0" suffix so
// the value stays a float across a reparse.
func formatFloat(v float64, verb byte, prec int) string {
	if verb != 'g' && prec >= 0 {
		abs := math.Abs(v)
		if abs != 0 && (abs >= math.Pow10(prec) || abs <= math.Pow10(-prec)) {
			verb = 'g'
		}
	}
	s := strconv.FormatFloat(v, verb, prec, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
