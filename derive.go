package pod

import (
	"fmt"
	"time"

	"github.com/etnz/pod/date"
)

// Derived values are pure functions of the current Document, recomputed on
// every read. There is no cached state to invalidate.

// LineTotal is the monetary total of one row: parsed quantity times parsed
// unit price.
func LineTotal(it LineItem) float64 {
	return ParseNumber(it.Qty) * ParseNumber(it.UnitPrice)
}

// GrandTotal sums the line totals of all rows, in order.
func GrandTotal(d *Document) float64 {
	var total float64
	for _, it := range d.Items {
		total += LineTotal(it)
	}
	return total
}

// Sold returns the parsed sold quantity for a row. Rows without a recorded
// sale parse to 0.
func Sold(d *Document, i int) float64 {
	if i < 0 || i >= len(d.Sales) {
		return 0
	}
	return ParseNumber(d.Sales[i])
}

// Remaining returns the unsold quantity for a row, never negative.
func Remaining(d *Document, i int) float64 {
	if i < 0 || i >= len(d.Items) {
		return 0
	}
	r := ParseNumber(d.Items[i].Qty) - Sold(d, i)
	if r < 0 {
		return 0
	}
	return r
}

// TotalSold sums the sold quantities over all rows.
func TotalSold(d *Document) float64 {
	var total float64
	for i := range d.Items {
		total += Sold(d, i)
	}
	return total
}

// TotalRemaining sums the remaining quantities over all rows.
func TotalRemaining(d *Document) float64 {
	var total float64
	for i := range d.Items {
		total += Remaining(d, i)
	}
	return total
}

// FrancoTier classifies the urgency of the franco (delivery deadline) date.
type FrancoTier int

const (
	// FrancoInvalid marks an unparseable franco date.
	FrancoInvalid FrancoTier = iota
	// FrancoAlert marks a deadline already passed.
	FrancoAlert
	// FrancoWarning marks a deadline within 15 days.
	FrancoWarning
	// FrancoNormal marks a deadline more than 15 days away.
	FrancoNormal
)

func (t FrancoTier) String() string {
	switch t {
	case FrancoInvalid:
		return "invalid"
	case FrancoAlert:
		return "alert"
	case FrancoWarning:
		return "warning"
	case FrancoNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// warningDays is the inclusive day threshold separating the warning tier from
// the normal tier.
const warningDays = 15

// FrancoStatus is the classified deadline shown in the urgency banner.
type FrancoStatus struct {
	Tier  FrancoTier
	Days  int // days until the deadline; negative when passed, 0 when invalid
	Label string
}

// ClassifyFranco classifies a franco date against the given clock reading.
// The tiers and the 0..15 inclusive warning window are a rendering contract.
func ClassifyFranco(now time.Time, francoDate string) FrancoStatus {
	days, ok := date.DaysUntil(now, francoDate)
	switch {
	case !ok:
		return FrancoStatus{Tier: FrancoInvalid, Label: "invalid date"}
	case days < 0:
		return FrancoStatus{Tier: FrancoAlert, Days: days, Label: fmt.Sprintf("passed by %d days", -days)}
	case days <= warningDays:
		return FrancoStatus{Tier: FrancoWarning, Days: days, Label: fmt.Sprintf("%d days left", days)}
	default:
		return FrancoStatus{Tier: FrancoNormal, Days: days, Label: fmt.Sprintf("%d days left", days)}
	}
}
