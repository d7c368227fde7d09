package pod

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber converts a free-text numeric field into a number. It strips
// every rune that is not a digit, '.' or '-', then parses the rest as a
// float. It is total: empty, unparseable and non-finite inputs all yield 0.
//
// This is the sole numeric gateway for quantities, unit prices and sold
// quantities; the raw text is never normalized in storage.
func ParseNumber(text string) float64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatMoney renders v with exactly two decimals, rounding half away from
// zero.
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
