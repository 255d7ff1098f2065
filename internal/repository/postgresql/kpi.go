package postgresql

import (
	"context"

	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/kpi"
	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/query"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/numeric"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/validator"
)

// Tables names the physical tables and the store id column
type Tables struct {
	Sales       string
	Labor       string
	Waste       string
	StoreColumn string
}

type kpiRepositoryImpl struct {
	gw     query.Gateway
	tables Tables
}

func NewKPIRepository(gw query.Gateway, tables Tables) kpi.KPIRepository {
	return &kpiRepositoryImpl{gw: gw, tables: tables}
}

func (r *kpiRepositoryImpl) FetchSales(ctx context.Context, scope kpi.Scope, columns ...string) []kpi.SalesRecord {
	rows := r.gw.Fetch(ctx, r.tables.Sales, r.physical(columns), r.filters(scope)...)

	records := make([]kpi.SalesRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, kpi.SalesRecord{
			StoreID:     numeric.Text(row[r.tables.StoreColumn]),
			Date:        numeric.Text(row[kpi.ColDate]),
			TimeBucket:  numeric.Text(row[kpi.ColTimeBucket]),
			ProductType: numeric.Text(row[kpi.ColProductType]),
			ProductName: numeric.Text(row[kpi.ColProductName]),
			Quantity:    numeric.Decimal(row[kpi.ColQuantity]),
			Value:       numeric.Decimal(row[kpi.ColValue]),
		})
	}
	return records
}

func (r *kpiRepositoryImpl) FetchLabor(ctx context.Context, scope kpi.Scope, columns ...string) []kpi.LaborRecord {
	rows := r.gw.Fetch(ctx, r.tables.Labor, r.physical(columns), r.filters(scope)...)

	records := make([]kpi.LaborRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, kpi.LaborRecord{
			StoreID:           numeric.Text(row[r.tables.StoreColumn]),
			Date:              numeric.Text(row[kpi.ColDate]),
			HourRange:         numeric.Text(row[kpi.ColHourRange]),
			ActualHours:       numeric.Decimal(row[kpi.ColActualHours]),
			ActualLabor:       numeric.Decimal(row[kpi.ColActualLabor]),
			SalesValue:        numeric.Decimal(row[kpi.ColSalesValue]),
			CheckCount:        numeric.Int(numeric.Decimal(row[kpi.ColCheckCount])),
			SalesPerLaborHour: numeric.Decimal(row[kpi.ColSalesPerLaborHour]),
		})
	}
	return records
}

func (r *kpiRepositoryImpl) FetchWaste(ctx context.Context, scope kpi.Scope, columns ...string) []kpi.WasteRecord {
	rows := r.gw.Fetch(ctx, r.tables.Waste, r.physical(columns), r.filters(scope)...)

	records := make([]kpi.WasteRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, kpi.WasteRecord{
			UsageID:             numeric.Text(row[kpi.ColUsageID]),
			StoreID:             numeric.Text(row[r.tables.StoreColumn]),
			Date:                numeric.Text(row[kpi.ColDate]),
			ProductType:         numeric.Text(row[kpi.ColProductType]),
			StoreName:           numeric.Text(row[kpi.ColStoreName]),
			OrderedQty:          numeric.Decimal(row[kpi.ColOrderedQty]),
			WastedQty:           numeric.Decimal(row[kpi.ColWastedQty]),
			WastePercent:        numeric.Decimal(row[kpi.ColWastePercent]),
			WasteDollar:         numeric.Decimal(row[kpi.ColWasteDollar]),
			ExpectedConsumption: numeric.Decimal(row[kpi.ColExpectedConsumption]),
		})
	}
	return records
}

// filters scopes every fetch to one store, then to a day or an inclusive range
func (r *kpiRepositoryImpl) filters(scope kpi.Scope) []query.Filter {
	filters := []query.Filter{
		query.Equals{Column: r.tables.StoreColumn, Value: scope.StoreID},
	}
	if scope.Day {
		return append(filters, query.Equals{Column: kpi.ColDate, Value: scope.Start.Format(validator.DateLayout)})
	}
	return append(filters, query.InRange{
		Column: kpi.ColDate,
		Low:    scope.Start.Format(validator.DateLayout),
		High:   scope.End.Format(validator.DateLayout),
	})
}

func (r *kpiRepositoryImpl) physical(columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if c == kpi.ColStoreID {
			c = r.tables.StoreColumn
		}
		out = append(out, c)
	}
	return out
}
