package kpi

import (
	"context"
	"time"
)

// KPIService defines the interface for store KPI operations.
// Fetch failures never surface as errors; only invalid input does.
type KPIService interface {
	// ResolvePeriod validates a request and fills in default dates
	ResolvePeriod(req PeriodRequest) (Period, error)

	// ResolveDay validates a request and defaults the day to today
	ResolveDay(req DayRequest) (time.Time, error)

	// GetTopline returns sales, checks, average check, units, waste % and labor %
	GetTopline(ctx context.Context, storeID string, p Period) (*ToplineSummary, error)

	// GetHourlySales returns per-bucket sales for one day, ascending by bucket
	GetHourlySales(ctx context.Context, storeID string, day time.Time) ([]HourlySales, error)

	// GetWasteSummary returns raw waste observations in the period
	GetWasteSummary(ctx context.Context, storeID string, p Period) ([]WasteRecord, error)

	// GetLaborKPIs returns raw labor observations in the period
	GetLaborKPIs(ctx context.Context, storeID string, p Period) ([]LaborRecord, error)

	// GetDashboard returns the topline, cards and all breakdowns in one call
	GetDashboard(ctx context.Context, storeID string, p Period) (*DashboardResponse, error)

	// ExportWasteSummary renders the waste summary as an XLSX workbook
	ExportWasteSummary(ctx context.Context, storeID string, p Period) (*Export, error)

	// ExportLaborKPIs renders the labor KPIs as an XLSX workbook
	ExportLaborKPIs(ctx context.Context, storeID string, p Period) (*Export, error)
}
