package kpi

import (
	"slices"
	"strings"

	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/kpi"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/numeric"
	"github.com/shopspring/decimal"
)

// Topline reduces the three record sets of one period to a summary.
//
// LaborPct divides labor cost by the labor table's own sales, which can differ
// from Sales; the two are not reconciled.
func Topline(sales []kpi.SalesRecord, labor []kpi.LaborRecord, waste []kpi.WasteRecord) kpi.ToplineSummary {
	totalSales := decimal.Zero
	units := decimal.Zero
	for _, s := range sales {
		totalSales = totalSales.Add(s.Value)
		units = units.Add(s.Quantity)
	}

	var checks int64
	laborCost := decimal.Zero
	laborSales := decimal.Zero
	for _, l := range labor {
		checks += l.CheckCount
		laborCost = laborCost.Add(l.ActualLabor)
		laborSales = laborSales.Add(l.SalesValue)
	}

	avgCheck := decimal.Zero
	if checks > 0 {
		avgCheck = totalSales.Div(decimal.NewFromInt(checks))
	}

	var laborPct *float64
	if laborSales.IsPositive() {
		laborPct = ratio(laborCost, laborSales)
	}

	var wastePct *float64
	if len(waste) > 0 && totalSales.IsPositive() {
		wasteDollar := decimal.Zero
		for _, w := range waste {
			wasteDollar = wasteDollar.Add(w.WasteDollar)
		}
		wastePct = ratio(wasteDollar, totalSales)
	}

	return kpi.ToplineSummary{
		Sales:      totalSales,
		Checks:     checks,
		AvgCheck:   avgCheck,
		DonutUnits: numeric.Int(units),
		WastePct:   wastePct,
		LaborPct:   laborPct,
	}
}

func ratio(num, den decimal.Decimal) *float64 {
	r := num.Div(den).InexactFloat64()
	return &r
}

// GroupHourly sums value and quantity per time bucket, ascending by bucket.
// Rows without a bucket form their own "" group so no value is dropped.
func GroupHourly(sales []kpi.SalesRecord) []kpi.HourlySales {
	index := make(map[string]int)
	out := []kpi.HourlySales{}
	for _, s := range sales {
		i, ok := index[s.TimeBucket]
		if !ok {
			i = len(out)
			index[s.TimeBucket] = i
			out = append(out, kpi.HourlySales{TimeBucket: s.TimeBucket})
		}
		out[i].Value = out[i].Value.Add(s.Value)
		out[i].Quantity = out[i].Quantity.Add(s.Quantity)
	}
	slices.SortFunc(out, func(a, b kpi.HourlySales) int {
		return strings.Compare(a.TimeBucket, b.TimeBucket)
	})
	return out
}
