package renderer

import (
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatAmount renders a derived monetary value in the display currency, with
// the currency's own symbol and fraction. The document's free-text prices are
// never reformatted; this only applies to computed totals.
func formatAmount(v float64, code string) string {
	if code == "" {
		code = "KWD"
	}
	// the Money constructor is the only way to get a never-nil currency.
	cur := *money.New(0, code).Currency()
	dec := decimal.NewFromFloat(v).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// trimNumber renders a derived quantity without trailing zeros.
func trimNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
