package kpi

import (
	"context"
	"time"
)

// Logical column names. The repository maps ColStoreID to the configured store column.
const (
	ColStoreID             = "store_id"
	ColDate                = "date"
	ColTimeBucket          = "time"
	ColProductType         = "product_type"
	ColProductName         = "product_name"
	ColQuantity            = "quantity"
	ColValue               = "value"
	ColHourRange           = "hour_range"
	ColActualHours         = "actual_hours"
	ColActualLabor         = "actual_labor"
	ColSalesValue          = "sales_value"
	ColCheckCount          = "check_count"
	ColSalesPerLaborHour   = "sales_per_labor_hour"
	ColUsageID             = "usage_id"
	ColStoreName           = "store_name"
	ColOrderedQty          = "ordered_qty"
	ColWastedQty           = "wasted_qty"
	ColWastePercent        = "waste_percent"
	ColWasteDollar         = "waste_dollar"
	ColExpectedConsumption = "expected_consumption"
)

// Scope limits a fetch to one store and either a date range or one exact day
type Scope struct {
	StoreID string
	Start   time.Time
	End     time.Time
	Day     bool
}

// RangeScope covers every date in [start, end]
func RangeScope(storeID string, p Period) Scope {
	return Scope{StoreID: storeID, Start: p.Start, End: p.End}
}

// DayScope matches date = day exactly
func DayScope(storeID string, day time.Time) Scope {
	return Scope{StoreID: storeID, Start: day, End: day, Day: true}
}

// KPIRepository fetches store-scoped record sets.
// Fetch failures are absorbed: an unavailable table reads as empty.
type KPIRepository interface {
	// FetchSales returns sales rows with the given columns populated
	FetchSales(ctx context.Context, scope Scope, columns ...string) []SalesRecord

	// FetchLabor returns labor rows with the given columns populated
	FetchLabor(ctx context.Context, scope Scope, columns ...string) []LaborRecord

	// FetchWaste returns waste rows with the given columns populated
	FetchWaste(ctx context.Context, scope Scope, columns ...string) []WasteRecord
}
