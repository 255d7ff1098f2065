package kpi

import (
	"time"

	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/format"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== REQUESTS ==========

// PeriodRequest carries raw query parameters; empty dates take defaults
type PeriodRequest struct {
	StoreID   string
	StartDate string // YYYY-MM-DD, default: EndDate minus the default window
	EndDate   string // YYYY-MM-DD, default: today
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateStoreID(r.StoreID)...)

	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayRequest selects one day; empty Date means today
type DayRequest struct {
	StoreID string
	Date    string
}

func (r *DayRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateStoreID(r.StoreID)...)

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateStoreID(storeID string) validator.ValidationErrors {
	if validator.IsEmpty(storeID) {
		return validator.ValidationErrors{{Field: "store_id", Message: "store_id is required"}}
	}
	if !validator.IsValidStoreID(storeID) {
		return validator.ValidationErrors{{Field: "store_id", Message: "store_id contains invalid characters"}}
	}
	return nil
}

// Period is an inclusive date range
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) StartDate() string { return p.Start.Format(validator.DateLayout) }
func (p Period) EndDate() string   { return p.End.Format(validator.DateLayout) }

// ========== RESPONSES ==========

// KPICard is one tile of the KPI strip
type KPICard struct {
	Label   string `json:"label"`
	Value   any    `json:"value"`
	Format  string `json:"format"`
	Display string `json:"display"`
}

const (
	FormatCurrency = "currency"
	FormatInt      = "int"
	FormatPct      = "pct"
)

// NewCards lays out the six topline cards in display order
func NewCards(s ToplineSummary) []KPICard {
	checks := decimal.NewFromInt(s.Checks)
	units := decimal.NewFromInt(s.DonutUnits)
	return []KPICard{
		{Label: "Sales ($)", Value: s.Sales, Format: FormatCurrency, Display: format.Currency(s.Sales)},
		{Label: "Checks", Value: s.Checks, Format: FormatInt, Display: format.Int(checks)},
		{Label: "Avg Check ($)", Value: s.AvgCheck, Format: FormatCurrency, Display: format.Currency(s.AvgCheck)},
		{Label: "Donuts Sold", Value: s.DonutUnits, Format: FormatInt, Display: format.Int(units)},
		{Label: "Waste %", Value: s.WastePct, Format: FormatPct, Display: format.Pct(s.WastePct)},
		{Label: "Labor %", Value: s.LaborPct, Format: FormatPct, Display: format.Pct(s.LaborPct)},
	}
}

// ToplineResponse is returned by GET /stores/{storeID}/topline
type ToplineResponse struct {
	StoreID   string         `json:"store_id"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Summary   ToplineSummary `json:"summary"`
	Cards     []KPICard      `json:"cards"`
}

// HourlySalesResponse is the chart series for one day
type HourlySalesResponse struct {
	StoreID string        `json:"store_id"`
	Date    string        `json:"date"`
	Rows    []HourlySales `json:"rows"`
}

// WasteSummaryResponse holds one row per waste observation
type WasteSummaryResponse struct {
	StoreID   string        `json:"store_id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Rows      []WasteRecord `json:"rows"`
}

// LaborKPIsResponse holds one row per labor observation
type LaborKPIsResponse struct {
	StoreID   string        `json:"store_id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Rows      []LaborRecord `json:"rows"`
}

// DashboardResponse is the combined response for the dashboard page
type DashboardResponse struct {
	StoreID      string              `json:"store_id"`
	StartDate    string              `json:"start_date"`
	EndDate      string              `json:"end_date"`
	Topline      ToplineSummary      `json:"topline"`
	Cards        []KPICard           `json:"cards"`
	HourlySales  HourlySalesResponse `json:"hourly_sales"` // for EndDate
	WasteSummary []WasteRecord       `json:"waste_summary"`
	LaborKPIs    []LaborRecord       `json:"labor_kpis"`
}

// Export is a rendered spreadsheet download
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}
