package kpi

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/kpi"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/export"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/validator"
)

var (
	toplineSalesColumns = []string{kpi.ColValue, kpi.ColQuantity}
	toplineLaborColumns = []string{kpi.ColActualLabor, kpi.ColSalesValue, kpi.ColCheckCount}
	toplineWasteColumns = []string{kpi.ColWasteDollar}
	hourlySalesColumns  = []string{kpi.ColTimeBucket, kpi.ColValue, kpi.ColQuantity}
	wasteSummaryColumns = []string{
		kpi.ColDate, kpi.ColOrderedQty, kpi.ColWastedQty, kpi.ColWastePercent, kpi.ColWasteDollar,
		kpi.ColExpectedConsumption, kpi.ColProductType, kpi.ColStoreID, kpi.ColStoreName,
	}
	laborKPIColumns = []string{
		kpi.ColDate, kpi.ColActualHours, kpi.ColActualLabor, kpi.ColSalesValue,
		kpi.ColSalesPerLaborHour, kpi.ColCheckCount,
	}
)

type KPIServiceImpl struct {
	kpi.KPIRepository
	windowDays int
	now        func() time.Time
}

type Option func(*KPIServiceImpl)

// WithClock replaces time.Now when resolving default dates
func WithClock(now func() time.Time) Option {
	return func(s *KPIServiceImpl) {
		s.now = now
	}
}

func NewKPIService(repo kpi.KPIRepository, windowDays int, opts ...Option) kpi.KPIService {
	s := &KPIServiceImpl{
		KPIRepository: repo,
		windowDays:    windowDays,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *KPIServiceImpl) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolvePeriod defaults end to today and start to end minus the window
func (s *KPIServiceImpl) ResolvePeriod(req kpi.PeriodRequest) (kpi.Period, error) {
	if err := req.Validate(); err != nil {
		return kpi.Period{}, err
	}

	end := s.today()
	if req.EndDate != "" {
		end, _ = validator.IsValidDate(req.EndDate)
	}
	start := end.AddDate(0, 0, -s.windowDays)
	if req.StartDate != "" {
		start, _ = validator.IsValidDate(req.StartDate)
	}

	if start.After(end) {
		return kpi.Period{}, validator.ValidationErrors{{
			Field:   "start_date",
			Message: kpi.ErrInvalidDateRange.Error(),
		}}
	}
	return kpi.Period{Start: start, End: end}, nil
}

// ResolveDay defaults the day to today
func (s *KPIServiceImpl) ResolveDay(req kpi.DayRequest) (time.Time, error) {
	if err := req.Validate(); err != nil {
		return time.Time{}, err
	}
	if req.Date == "" {
		return s.today(), nil
	}
	day, _ := validator.IsValidDate(req.Date)
	return day, nil
}

func checkScope(storeID string, p kpi.Period) error {
	if validator.IsEmpty(storeID) {
		return kpi.ErrStoreIDRequired
	}
	if p.Start.After(p.End) {
		return kpi.ErrInvalidDateRange
	}
	return nil
}

// GetTopline fetches sales, labor and waste in that order and reduces them
func (s *KPIServiceImpl) GetTopline(ctx context.Context, storeID string, p kpi.Period) (*kpi.ToplineSummary, error) {
	if err := checkScope(storeID, p); err != nil {
		return nil, err
	}
	scope := kpi.RangeScope(storeID, p)

	sales := s.FetchSales(ctx, scope, toplineSalesColumns...)
	labor := s.FetchLabor(ctx, scope, toplineLaborColumns...)
	waste := s.FetchWaste(ctx, scope, toplineWasteColumns...)

	summary := Topline(sales, labor, waste)
	return &summary, nil
}

// GetHourlySales groups one day's sales by time bucket
func (s *KPIServiceImpl) GetHourlySales(ctx context.Context, storeID string, day time.Time) ([]kpi.HourlySales, error) {
	if validator.IsEmpty(storeID) {
		return nil, kpi.ErrStoreIDRequired
	}
	sales := s.FetchSales(ctx, kpi.DayScope(storeID, day), hourlySalesColumns...)
	return GroupHourly(sales), nil
}

func (s *KPIServiceImpl) GetWasteSummary(ctx context.Context, storeID string, p kpi.Period) ([]kpi.WasteRecord, error) {
	if err := checkScope(storeID, p); err != nil {
		return nil, err
	}
	return s.FetchWaste(ctx, kpi.RangeScope(storeID, p), wasteSummaryColumns...), nil
}

func (s *KPIServiceImpl) GetLaborKPIs(ctx context.Context, storeID string, p kpi.Period) ([]kpi.LaborRecord, error) {
	if err := checkScope(storeID, p); err != nil {
		return nil, err
	}
	return s.FetchLabor(ctx, kpi.RangeScope(storeID, p), laborKPIColumns...), nil
}

// GetDashboard runs topline, hourly sales for the end day, waste and labor sequentially
func (s *KPIServiceImpl) GetDashboard(ctx context.Context, storeID string, p kpi.Period) (*kpi.DashboardResponse, error) {
	summary, err := s.GetTopline(ctx, storeID, p)
	if err != nil {
		return nil, err
	}
	hourly, err := s.GetHourlySales(ctx, storeID, p.End)
	if err != nil {
		return nil, err
	}
	waste, err := s.GetWasteSummary(ctx, storeID, p)
	if err != nil {
		return nil, err
	}
	labor, err := s.GetLaborKPIs(ctx, storeID, p)
	if err != nil {
		return nil, err
	}

	return &kpi.DashboardResponse{
		StoreID:   storeID,
		StartDate: p.StartDate(),
		EndDate:   p.EndDate(),
		Topline:   *summary,
		Cards:     kpi.NewCards(*summary),
		HourlySales: kpi.HourlySalesResponse{
			StoreID: storeID,
			Date:    p.EndDate(),
			Rows:    hourly,
		},
		WasteSummary: waste,
		LaborKPIs:    labor,
	}, nil
}

func (s *KPIServiceImpl) ExportWasteSummary(ctx context.Context, storeID string, p kpi.Period) (*kpi.Export, error) {
	records, err := s.GetWasteSummary(ctx, storeID, p)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.Date,
			r.OrderedQty.InexactFloat64(),
			r.WastedQty.InexactFloat64(),
			r.WastePercent.InexactFloat64(),
			r.WasteDollar.InexactFloat64(),
			r.ExpectedConsumption.InexactFloat64(),
			r.ProductType,
			r.StoreID,
			r.StoreName,
		})
	}

	return render(fmt.Sprintf("waste_%s_%s_%s.xlsx", storeID, p.StartDate(), p.EndDate()), export.Sheet{
		Name:    "Waste",
		Headers: wasteSummaryColumns,
		Rows:    rows,
	})
}

func (s *KPIServiceImpl) ExportLaborKPIs(ctx context.Context, storeID string, p kpi.Period) (*kpi.Export, error) {
	records, err := s.GetLaborKPIs(ctx, storeID, p)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.Date,
			r.ActualHours.InexactFloat64(),
			r.ActualLabor.InexactFloat64(),
			r.SalesValue.InexactFloat64(),
			r.SalesPerLaborHour.InexactFloat64(),
			r.CheckCount,
		})
	}

	return render(fmt.Sprintf("labor_%s_%s_%s.xlsx", storeID, p.StartDate(), p.EndDate()), export.Sheet{
		Name:    "Labor",
		Headers: laborKPIColumns,
		Rows:    rows,
	})
}

func render(filename string, sheet export.Sheet) (*kpi.Export, error) {
	body, err := export.XLSX(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kpi.ErrExportFailed, err)
	}
	return &kpi.Export{
		Filename:    filename,
		ContentType: export.ContentTypeXLSX,
		Body:        body,
	}, nil
}
