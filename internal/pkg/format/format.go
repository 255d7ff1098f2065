// Package format renders KPI values for display.
package format

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is shown for an absent value
const Placeholder = "—"

var printer = message.NewPrinter(language.English)

// Currency shows whole dollars from $100 up and cents below that
func Currency(d decimal.Decimal) string {
	f := d.InexactFloat64()
	if math.Abs(f) >= 100 {
		return "$" + printer.Sprintf("%.0f", f)
	}
	return "$" + printer.Sprintf("%.2f", f)
}

// Int rounds half to even and groups thousands
func Int(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.RoundBank(0).IntPart())
}

// Pct shows a ratio as a percentage with one decimal
func Pct(ratio *float64) string {
	if ratio == nil || math.IsNaN(*ratio) || math.IsInf(*ratio, 0) {
		return Placeholder
	}
	return fmt.Sprintf("%.1f%%", *ratio*100)
}
