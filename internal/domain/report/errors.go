package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrRenderFailed     = errors.New("failed to render report workbook")
)
