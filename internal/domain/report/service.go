package report

import "context"

// ReportService produces the multi-sheet attendance workbook.
type ReportService interface {
	// GenerateAttendanceReport aggregates attendance and absence data for
	// the requested range into a protected three-sheet workbook.
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (ReportFile, error)
}
