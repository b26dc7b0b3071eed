package report

import (
	"context"
	"time"
)

// ReportRepository supplies the fully joined data for report generation.
type ReportRepository interface {
	// GetEmployeesWithAttendanceAndAbsences returns every non-deleted
	// employee of the company (optionally narrowed to one department),
	// enriched with attendance records whose check-in falls inside
	// [start, end] and absences whose period intersects it.
	GetEmployeesWithAttendanceAndAbsences(ctx context.Context, companyID string, start, end time.Time, departmentID *string) ([]ReportEmployee, error)
}
