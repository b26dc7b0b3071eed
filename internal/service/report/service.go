package report

import (
	"context"
	"fmt"

	"github.com/punchly/punchly-backend-go/internal/domain/report"
	"github.com/punchly/punchly-backend-go/internal/pkg/excel"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportServiceImpl struct {
	reportRepo      report.ReportRepository
	defaultTimezone string
}

func NewReportService(reportRepo report.ReportRepository, defaultTimezone string) report.ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo, defaultTimezone: defaultTimezone}
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.ReportFile, error) {
	if validator.IsEmpty(req.Timezone) {
		req.Timezone = s.defaultTimezone
	}
	if err := req.Validate(); err != nil {
		return report.ReportFile{}, err
	}

	employees, err := s.reportRepo.GetEmployeesWithAttendanceAndAbsences(ctx, req.CompanyID, req.Start, req.End, req.DepartmentID)
	if err != nil {
		return report.ReportFile{}, fmt.Errorf("failed to get report data: %w", err)
	}

	sheets := []excel.Sheet{
		buildOverviewSheet(employees),
		buildDailyGridSheet(employees, req.Location),
		buildSalarySheet(employees),
	}

	content, err := excel.Write(sheets)
	if err != nil {
		return report.ReportFile{}, fmt.Errorf("failed to render report workbook: %w", err)
	}

	return report.ReportFile{
		Filename:    fmt.Sprintf("attendance-report_%s_%s.xlsx", req.StartDate, req.EndDate),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}
