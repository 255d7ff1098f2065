package http

import (
	"net/http"

	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/kpi"
	"github.com/cmlabs-hris/kpi-dashboard/internal/handler/http/response"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type KPIHandler interface {
	// GetDefaultDashboard returns the dashboard for the configured store
	GetDefaultDashboard(w http.ResponseWriter, r *http.Request)
	// GetDashboard returns topline, cards and breakdowns for a store
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetTopline returns the topline summary and cards
	GetTopline(w http.ResponseWriter, r *http.Request)
	// GetHourlySales returns per-bucket sales for one day
	GetHourlySales(w http.ResponseWriter, r *http.Request)
	// GetWasteSummary returns waste observations in the period
	GetWasteSummary(w http.ResponseWriter, r *http.Request)
	// GetLaborKPIs returns labor observations in the period
	GetLaborKPIs(w http.ResponseWriter, r *http.Request)
	// ExportWasteSummary downloads the waste summary as XLSX
	ExportWasteSummary(w http.ResponseWriter, r *http.Request)
	// ExportLaborKPIs downloads the labor KPIs as XLSX
	ExportLaborKPIs(w http.ResponseWriter, r *http.Request)
}

type kpiHandlerImpl struct {
	kpiService     kpi.KPIService
	defaultStoreID string
}

func NewKPIHandler(kpiService kpi.KPIService, defaultStoreID string) KPIHandler {
	return &kpiHandlerImpl{kpiService: kpiService, defaultStoreID: defaultStoreID}
}

func (h *kpiHandlerImpl) period(r *http.Request, storeID string) (kpi.Period, error) {
	q := r.URL.Query()
	return h.kpiService.ResolvePeriod(kpi.PeriodRequest{
		StoreID:   storeID,
		StartDate: q.Get("start_date"), // format: YYYY-MM-DD, default: end_date minus the window
		EndDate:   q.Get("end_date"),   // format: YYYY-MM-DD, default: today
	})
}

// GetDefaultDashboard handles GET /dashboard
func (h *kpiHandlerImpl) GetDefaultDashboard(w http.ResponseWriter, r *http.Request) {
	h.dashboard(w, r, h.defaultStoreID)
}

// GetDashboard handles GET /stores/{storeID}/dashboard
func (h *kpiHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	h.dashboard(w, r, chi.URLParam(r, "storeID"))
}

func (h *kpiHandlerImpl) dashboard(w http.ResponseWriter, r *http.Request, storeID string) {
	p, err := h.period(r, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.kpiService.GetDashboard(r.Context(), storeID, p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTopline handles GET /stores/{storeID}/topline
func (h *kpiHandlerImpl) GetTopline(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	p, err := h.period(r, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.kpiService.GetTopline(r.Context(), storeID, p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, kpi.ToplineResponse{
		StoreID:   storeID,
		StartDate: p.StartDate(),
		EndDate:   p.EndDate(),
		Summary:   *summary,
		Cards:     kpi.NewCards(*summary),
	})
}

// GetHourlySales handles GET /stores/{storeID}/hourly-sales
func (h *kpiHandlerImpl) GetHourlySales(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	day, err := h.kpiService.ResolveDay(kpi.DayRequest{
		StoreID: storeID,
		Date:    r.URL.Query().Get("date"), // format: YYYY-MM-DD, default: today
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.kpiService.GetHourlySales(r.Context(), storeID, day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, kpi.HourlySalesResponse{
		StoreID: storeID,
		Date:    day.Format(validator.DateLayout),
		Rows:    rows,
	})
}

// GetWasteSummary handles GET /stores/{storeID}/waste
func (h *kpiHandlerImpl) GetWasteSummary(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	p, err := h.period(r, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.kpiService.GetWasteSummary(r.Context(), storeID, p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, kpi.WasteSummaryResponse{
		StoreID:   storeID,
		StartDate: p.StartDate(),
		EndDate:   p.EndDate(),
		Rows:      rows,
	})
}

// GetLaborKPIs handles GET /stores/{storeID}/labor
func (h *kpiHandlerImpl) GetLaborKPIs(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	p, err := h.period(r, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.kpiService.GetLaborKPIs(r.Context(), storeID, p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, kpi.LaborKPIsResponse{
		StoreID:   storeID,
		StartDate: p.StartDate(),
		EndDate:   p.EndDate(),
		Rows:      rows,
	})
}

// ExportWasteSummary handles GET /stores/{storeID}/waste/export
func (h *kpiHandlerImpl) ExportWasteSummary(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	p, err := h.period(r, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.kpiService.ExportWasteSummary(r.Context(), storeID, p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Body)
}

// ExportLaborKPIs handles GET /stores/{storeID}/labor/export
func (h *kpiHandlerImpl) ExportLaborKPIs(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	p, err := h.period(r, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.kpiService.ExportLaborKPIs(r.Context(), storeID, p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Body)
}
