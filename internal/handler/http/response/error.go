package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/auth"
	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/kpi"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrStoreForbidden):
		Forbidden(w, "Token does not grant access to this store")

	// KPI domain errors
	case errors.Is(err, kpi.ErrStoreIDRequired):
		BadRequest(w, "Store id is required", nil)
	case errors.Is(err, kpi.ErrInvalidDateRange):
		BadRequest(w, "Start date must be on or before end date", nil)
	case errors.Is(err, kpi.ErrExportFailed):
		InternalServerError(w, "Failed to build export")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
