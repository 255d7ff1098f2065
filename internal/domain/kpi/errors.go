package kpi

import "errors"

var (
	ErrStoreIDRequired  = errors.New("store id is required")
	ErrInvalidDateRange = errors.New("start date must be on or before end date")
	ErrExportFailed     = errors.New("failed to build export")
)
