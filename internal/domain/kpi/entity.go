package kpi

import "github.com/shopspring/decimal"

// SalesRecord is one hour-bucketed product sales observation
type SalesRecord struct {
	StoreID     string          `json:"store_id"`
	Date        string          `json:"date"`
	TimeBucket  string          `json:"time"`
	ProductType string          `json:"product_type"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
}

// LaborRecord is one shift or period labor observation
type LaborRecord struct {
	StoreID           string          `json:"store_id,omitempty"`
	Date              string          `json:"date"`
	HourRange         string          `json:"hour_range,omitempty"`
	ActualHours       decimal.Decimal `json:"actual_hours"`
	ActualLabor       decimal.Decimal `json:"actual_labor"`
	SalesValue        decimal.Decimal `json:"sales_value"`
	CheckCount        int64           `json:"check_count"`
	SalesPerLaborHour decimal.Decimal `json:"sales_per_labor_hour"`
}

// WasteRecord is one product waste observation
type WasteRecord struct {
	UsageID             string          `json:"usage_id,omitempty"`
	StoreID             string          `json:"store_id"`
	Date                string          `json:"date"`
	ProductType         string          `json:"product_type"`
	StoreName           string          `json:"store_name"`
	OrderedQty          decimal.Decimal `json:"ordered_qty"`
	WastedQty           decimal.Decimal `json:"wasted_qty"`
	WastePercent        decimal.Decimal `json:"waste_percent"`
	WasteDollar         decimal.Decimal `json:"waste_dollar"`
	ExpectedConsumption decimal.Decimal `json:"expected_consumption"`
}

// ToplineSummary is the single-row summary over a date range.
// A nil ratio means its denominator was zero or there was nothing to divide.
type ToplineSummary struct {
	Sales      decimal.Decimal `json:"sales"`
	Checks     int64           `json:"checks"`
	AvgCheck   decimal.Decimal `json:"avg_check"`
	DonutUnits int64           `json:"donut_units"`
	WastePct   *float64        `json:"waste_pct"`
	LaborPct   *float64        `json:"labor_pct"`
}

// HourlySales is the total for one time bucket of a day
type HourlySales struct {
	TimeBucket string          `json:"time"`
	Value      decimal.Decimal `json:"value"`
	Quantity   decimal.Decimal `json:"quantity"`
}
